package compression

import (
	"compress/gzip"
	"fmt"
	"io"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

func newGZIPReader(r io.Reader) (io.ReadCloser, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: gzip: %v", commonerrors.ErrDecompressionFailed, err)
	}
	return gzipReader, nil
}

func newGZIPWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}
