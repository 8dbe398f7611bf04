package compression

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	commonerrors "github.com/deploymenttheory/go-ntgrbak/internal/common/errors"
)

func newXZReader(r io.Reader) (io.ReadCloser, error) {
	xzReader, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: xz: %v", commonerrors.ErrDecompressionFailed, err)
	}
	return io.NopCloser(xzReader), nil
}

func newXZWriter(w io.Writer) (io.WriteCloser, error) {
	xzWriter, err := xz.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("%w: xz: %v", commonerrors.ErrCompressionFailed, err)
	}
	return xzWriter, nil
}
