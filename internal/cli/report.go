package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// ReportError prints err as "<path>: <message>", or the bare message when no
// path is attached. On a terminal the path is highlighted.
func ReportError(w io.Writer, err error) {
	var srcErr *domain.SourceError
	if !errors.As(err, &srcErr) {
		fmt.Fprintln(w, err)
		return
	}

	path := srcErr.Path
	if isTerminal(w) {
		out := termenv.NewOutput(w)
		path = out.String(path).Bold().Foreground(out.Color("1")).String()
	}
	fmt.Fprintf(w, "%s: %s\n", path, srcErr.Err)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	return ok && term.IsTerminal(int(f.Fd()))
}
