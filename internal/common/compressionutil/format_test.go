package compression

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compress(t *testing.T, data []byte, format Format) []byte {
	t.Helper()
	var buf bytes.Buffer
	w, err := NewWriter(&buf, format)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func decompress(data []byte, format Format) ([]byte, error) {
	r, err := NewReader(bytes.NewReader(data), format)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"":                None,
		"-":               None,
		"backup.cfg":      None,
		"backup.cfg.gz":   Gzip,
		"NVRAM.BIN.BZ2":   Bzip2,
		"dir/nvram.xz":    XZ,
		"archive.tar.zst": None,
	}
	for path, want := range tests {
		assert.Equal(t, want, FormatFromPath(path), path)
	}
}

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("wan_proto=dhcp\x00"), 200)

	for _, format := range []Format{None, Gzip, Bzip2, XZ} {
		t.Run(format.String(), func(t *testing.T) {
			packed := compress(t, payload, format)
			assert.Equal(t, format, DetectFormat(packed))

			unpacked, err := decompress(packed, format)
			require.NoError(t, err)
			assert.Equal(t, payload, unpacked)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name   string
		header []byte
		want   Format
	}{
		{"empty", nil, None},
		{"nvram image", []byte("FLSH\x00\x00"), None},
		{"gzip", []byte{0x1F, 0x8B, 0x08, 0x00}, Gzip},
		{"gzip magic without deflate", []byte{0x1F, 0x8B, 0x00, 0x00}, None},
		{"bzip2", []byte("BZh91AY"), Bzip2},
		{"bzip2 magic without block size", []byte("BZhello"), None},
		{"bzip2 short", []byte("BZh"), None},
		{"xz", []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}, XZ},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.header), tt.name)
	}
}

func TestDetectReaderDoesNotConsume(t *testing.T) {
	packed := compress(t, []byte("system_name=WNDR4500v2"), XZ)
	r := bufio.NewReader(bytes.NewReader(packed))

	assert.Equal(t, XZ, DetectReader(r))
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, packed, rest)

	assert.Equal(t, None, DetectReader(bufio.NewReader(bytes.NewReader([]byte{0x1F}))))
}

func TestDecompressRejectsGarbage(t *testing.T) {
	for _, format := range []Format{Gzip, Bzip2, XZ} {
		_, err := decompress([]byte("definitely not compressed"), format)
		assert.Error(t, err, format.String())
	}
}
