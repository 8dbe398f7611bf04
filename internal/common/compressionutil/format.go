package compression

import (
	"bufio"
	"bytes"
	"io"
	"path/filepath"
	"strings"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

// Format identifies the compression wrapped around an input or output stream.
type Format int

const (
	None Format = iota
	Gzip
	Bzip2
	XZ
)

func (f Format) String() string {
	switch f {
	case Gzip:
		return "gzip"
	case Bzip2:
		return "bzip2"
	case XZ:
		return "xz"
	default:
		return "none"
	}
}

var magicNumbers = map[Format][]byte{
	Gzip:  {0x1F, 0x8B, 0x08}, // deflate is the only gzip method
	Bzip2: {0x42, 0x5A, 0x68},
	XZ:    {0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00},
}

// FormatFromPath picks the compression format from the file extension.
// Unknown extensions (and "-" for stdin/stdout) mean no compression.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		return Gzip
	case ".bz2":
		return Bzip2
	case ".xz":
		return XZ
	default:
		return None
	}
}

// sniffSize is the number of leading bytes DetectFormat needs
const sniffSize = 6

// DetectFormat inspects the leading bytes of a stream for a known magic number.
func DetectFormat(header []byte) Format {
	for format, magic := range magicNumbers {
		if !bytes.HasPrefix(header, magic) {
			continue
		}
		// "BZh" is followed by the block size digit
		if format == Bzip2 && (len(header) < 4 || header[3] < '1' || header[3] > '9') {
			continue
		}
		return format
	}
	return None
}

// DetectReader peeks at the start of r without consuming it and reports the
// compression format found there.
func DetectReader(r *bufio.Reader) Format {
	// A short stream returns what it has along with an error; the magic
	// check copes with fewer bytes.
	header, _ := r.Peek(sniffSize)
	return DetectFormat(header)
}

// NewReader wraps r with a decompressor for format. The returned reader must
// be closed; closing it does not close r.
func NewReader(r io.Reader, format Format) (io.ReadCloser, error) {
	switch format {
	case None:
		return io.NopCloser(r), nil
	case Gzip:
		return newGZIPReader(r)
	case Bzip2:
		return newBZIP2Reader(r)
	case XZ:
		return newXZReader(r)
	default:
		return nil, commonerrors.ErrUnsupportedCompression
	}
}

// NewWriter wraps w with a compressor for format. Close flushes the
// compressed trailer but leaves w open.
func NewWriter(w io.Writer, format Format) (io.WriteCloser, error) {
	switch format {
	case None:
		return nopWriteCloser{w}, nil
	case Gzip:
		return newGZIPWriter(w)
	case Bzip2:
		return newBZIP2Writer(w)
	case XZ:
		return newXZWriter(w)
	default:
		return nil, commonerrors.ErrUnsupportedCompression
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
