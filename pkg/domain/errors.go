package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrIsDirectory is returned when a path token names a directory.
// It is the platform errno so the process can exit with it.
var ErrIsDirectory error = syscall.EISDIR

// ErrNilResolver is returned when a run is started without a source resolver.
var ErrNilResolver = errors.New("no source resolver configured")

// ExitFailure is the exit code used when an error carries no OS errno.
const ExitFailure = 1

// SourceError ties an I/O failure to the path token that caused it.
// Its message has the form "<path>: <underlying message>".
type SourceError struct {
	Path string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Err.Error())
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError wraps err with path. An *fs.PathError is unwrapped first so
// the message does not repeat the operation and path.
func NewSourceError(path string, err error) *SourceError {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}
	return &SourceError{Path: path, Err: err}
}

// ExitCode maps an error to a process exit code.
// Nil maps to 0, errors wrapping a syscall.Errno map to the errno value and
// everything else maps to ExitFailure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && errno != 0 {
		return int(errno)
	}
	return ExitFailure
}
