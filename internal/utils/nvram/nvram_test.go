package nvram

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

// referenceCRC8 is the table-less form of the Broadcom CRC-8
func referenceCRC8(data []byte, c uint8) uint8 {
	for _, b := range data {
		c ^= b
		for i := 0; i < 8; i++ {
			if c&1 != 0 {
				c = c>>1 ^ 0xAB
			} else {
				c >>= 1
			}
		}
	}
	return c
}

func TestSum8CheckValue(t *testing.T) {
	assert.Equal(t, uint8(0x7F), Sum8([]byte("123456789")))

	data := []byte("lan_ipaddr=192.168.1.1\x00wan_proto=dhcp\x00")
	assert.Equal(t, referenceCRC8(data, 0xFF), Sum8(data))
}

func TestWrapKnownImage(t *testing.T) {
	image, err := Wrap("a=1\nb=2")
	require.NoError(t, err)
	require.Len(t, image, ImageSize)

	assert.Equal(t,
		"464c53480000001c890100000000000000000000613d3100623d3200",
		hex.EncodeToString(image[:28]))
	assert.True(t, bytes.Equal(image[28:], bytes.Repeat([]byte{Padding}, ImageSize-28)))

	h, err := ReadHeader(image)
	require.NoError(t, err)
	assert.Equal(t, Magic, h.Magic)
	assert.Equal(t, uint32(28), h.Length)
	assert.Equal(t, uint8(0x89), h.CRC)
	assert.Equal(t, Field1, h.Field1)
	assert.Equal(t, [SizeField2]byte{}, h.Field2)
}

func TestWrapEmptyText(t *testing.T) {
	image, err := Wrap("")
	require.NoError(t, err)
	require.Len(t, image, ImageSize)

	h, err := ReadHeader(image)
	require.NoError(t, err)
	assert.Equal(t, uint32(HeaderSize), h.Length)
	assert.Equal(t, uint8(0x08), h.CRC)
	assert.Equal(t, Padding, image[HeaderSize])
}

func TestWrapExtractRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		stable bool // re-wrapping the extracted text gives the same image
	}{
		{"empty", "", "", true},
		{"trailing newline", "a=1\n", "a=1\n", true},
		{"lone newline", "\n", "\n", true},
		{"aligned", "abc=123\n", "abc=123\n", true},
		// The alignment NUL comes back as one trailing newline
		{"unterminated", "a=1\nb=2", "a=1\nb=2\n", true},
		// Runs of separators collapse to a single newline
		{"blank lines", "a=1\n\n\nb=2\n", "a=1\nb=2\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			image, err := Wrap(tt.text)
			require.NoError(t, err)

			text, h, err := Extract(image, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
			assert.Equal(t, Magic, h.Magic)

			again, err := Wrap(text)
			require.NoError(t, err)
			assert.Equal(t, tt.stable, bytes.Equal(image, again))
		})
	}
}

func TestExtractNullAfterContent(t *testing.T) {
	image := make([]byte, 32)
	h := newHeader(32)
	require.NoError(t, h.Put(image))
	copy(image[HeaderSize:], "\x00\x00k=v\x00\x00\x00x\x00")
	image[IndexCRC] = CRC8(image)

	text, _, err := Extract(image, false)
	require.NoError(t, err)
	assert.Equal(t, "\nk=v\nx\n", text)
}

func TestExtractBadMagic(t *testing.T) {
	image, err := Wrap("a=1\n")
	require.NoError(t, err)
	copy(image, "HSLF")

	_, _, err = Extract(image, false)
	assert.ErrorIs(t, err, types.ErrBadMagic)

	text, h, err := Extract(image, true)
	require.NoError(t, err)
	assert.Equal(t, "a=1\n", text)
	assert.NotEqual(t, Magic, h.Magic)
}

func TestExtractBadCRC(t *testing.T) {
	image, err := Wrap("a=1\n")
	require.NoError(t, err)
	image[IndexCRC] ^= 0xFF

	_, _, err = Extract(image, false)
	assert.ErrorIs(t, err, types.ErrBadCRC)
	assert.True(t, types.IsIntegrityError(err))

	text, _, err := Extract(image, true)
	require.NoError(t, err)
	assert.Equal(t, "a=1\n", text)
}

func TestExtractTooLarge(t *testing.T) {
	image, err := Wrap("a=1\n")
	require.NoError(t, err)
	image[IndexLength] = 0x00
	image[IndexLength+1] = 0x00
	image[IndexLength+2] = 0xFF
	image[IndexLength+3] = 0xED // 65517

	_, _, err = Extract(image, false)
	assert.ErrorIs(t, err, types.ErrTooLarge)

	// Forced extraction reads up to the maximum data size
	text, _, err := Extract(image, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "a=1\n"))
	assert.Len(t, text, len("a=1\n")+MaxDataSize-HeaderSize-4)
}

func TestExtractShortImage(t *testing.T) {
	image, err := Wrap("a=1\nb=2\n")
	require.NoError(t, err)
	short := image[:HeaderSize+4]

	_, _, err = Extract(short, false)
	assert.ErrorIs(t, err, types.ErrLengthMismatch)

	text, _, err := Extract(short, true)
	require.NoError(t, err)
	assert.Equal(t, "a=1\n", text)

	_, _, err = Extract(image[:HeaderSize-1], true)
	assert.ErrorIs(t, err, types.ErrTruncated)
}

func TestWrapTooLarge(t *testing.T) {
	largest := strings.Repeat("x", MaxTextSize)
	image, err := Wrap(largest)
	require.NoError(t, err)

	h, err := ReadHeader(image)
	require.NoError(t, err)
	assert.Equal(t, uint32(MaxDataSize), h.Length)

	// The largest image Wrap builds must extract without force
	text, _, err := Extract(image, false)
	require.NoError(t, err)
	assert.Equal(t, largest, text)

	for _, n := range []int{MaxTextSize + 1, MaxTextSize + 4, MaxDataSize, MaxDataSize + 1} {
		_, err = Wrap(strings.Repeat("x", n))
		assert.ErrorIs(t, err, types.ErrTooLarge, "n=%d", n)
	}
}
