// fsutil/files.go
package fsutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"

	compression "github.com/deploymenttheory/go-ntgrbak/internal/common/compressionutil"
	"github.com/deploymenttheory/go-ntgrbak/internal/utils/netgear/pkg/types"
)

// Stdio is the path that selects stdin for input and stdout for output.
const Stdio = "-"

// Path mutex registry to protect operations on the same paths
var pathMutexes sync.Map

// GetPathMutex returns a mutex for the given path
func GetPathMutex(path string) *sync.Mutex {
	actual, _ := pathMutexes.LoadOrStore(filepath.Clean(path), &sync.Mutex{})
	return actual.(*sync.Mutex)
}

// IsStdio reports whether path selects the standard streams.
func IsStdio(path string) bool {
	return path == "" || path == Stdio
}

// DisplayName returns a printable name for path, used in logs and errors.
func DisplayName(path string, input bool) string {
	if !IsStdio(path) {
		return path
	}
	if input {
		return "stdin"
	}
	return "stdout"
}

// ReadInput reads at most limit bytes from path, or from stdin when path is
// empty or "-". Files ending in .gz, .bz2 or .xz are decompressed first;
// stdin is decompressed when it starts with one of their magic numbers. The
// limit applies to the decompressed stream and anything past it is ignored.
func ReadInput(path string, limit int) ([]byte, error) {
	return readFrom(os.Stdin, path, limit)
}

func readFrom(stdin io.Reader, path string, limit int) ([]byte, error) {
	src := stdin
	format := compression.FormatFromPath(path)
	if IsStdio(path) {
		buffered := bufio.NewReader(stdin)
		format = compression.DetectReader(buffered)
		src = buffered
	} else {
		mu := GetPathMutex(path)
		mu.Lock()
		defer mu.Unlock()

		file, err := os.Open(path)
		if err != nil {
			return nil, ioError(err, "open input", path)
		}
		defer file.Close()
		src = file
	}

	reader, err := compression.NewReader(src, format)
	if err != nil {
		return nil, ioError(err, "decompress input", DisplayName(path, true))
	}
	defer reader.Close()

	data, err := io.ReadAll(io.LimitReader(reader, int64(limit)))
	if err != nil {
		return nil, ioError(err, "read input", DisplayName(path, true))
	}
	return data, nil
}

// WriteOutput writes data to path, or to stdout when path is empty or "-".
// The parent directory is created if needed and the file is compressed
// according to its extension.
func WriteOutput(path string, data []byte) error {
	return writeTo(os.Stdout, path, data)
}

func writeTo(stdout io.Writer, path string, data []byte) error {
	dst := stdout
	if !IsStdio(path) {
		mu := GetPathMutex(path)
		mu.Lock()
		defer mu.Unlock()

		if err := CreateDirIfNotExists(filepath.Dir(path)); err != nil {
			return ioError(err, "create output directory", path)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return ioError(err, "open output", path)
		}
		defer file.Close()
		dst = file
	}

	writer, err := compression.NewWriter(dst, compression.FormatFromPath(path))
	if err != nil {
		return ioError(err, "compress output", path)
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return ioError(err, "write output", DisplayName(path, false))
	}
	if err := writer.Close(); err != nil {
		return ioError(err, "flush output", DisplayName(path, false))
	}
	if file, ok := dst.(*os.File); ok && !IsStdio(path) {
		if err := file.Sync(); err != nil {
			return ioError(err, "sync output", path)
		}
	}
	return nil
}

func ioError(err error, action, path string) error {
	return oops.
		In("fsutil").
		With("path", path).
		Wrapf(fmt.Errorf("%w: %w", types.ErrIOFailure, err), "%s %s", action, path)
}
