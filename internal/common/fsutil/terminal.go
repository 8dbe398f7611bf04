// fsutil/terminal.go
package fsutil

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// OutputIsTerminal reports whether writing to path would land on an
// interactive terminal.
func OutputIsTerminal(path string) bool {
	return IsStdio(path) && IsTerminal(os.Stdout)
}
