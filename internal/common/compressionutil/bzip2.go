package compression

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

func newBZIP2Reader(r io.Reader) (io.ReadCloser, error) {
	bzip2Reader, err := bzip2.NewReader(r, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bzip2: %v", commonerrors.ErrDecompressionFailed, err)
	}
	return bzip2Reader, nil
}

func newBZIP2Writer(w io.Writer) (io.WriteCloser, error) {
	bzip2Writer, err := bzip2.NewWriter(w, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: bzip2: %v", commonerrors.ErrCompressionFailed, err)
	}
	return bzip2Writer, nil
}
