package file

import (
	"io"
	"os"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/ports"
)

// Resolver implements ports.SourceResolver on top of the local filesystem.
// The token "-" resolves to Stdin.
type Resolver struct {
	Stdin io.Reader
}

// New creates a Resolver reading standard input from stdin.
// If stdin is nil, it defaults to os.Stdin.
func New(stdin io.Reader) *Resolver {
	if stdin == nil {
		stdin = os.Stdin
	}
	return &Resolver{Stdin: stdin}
}

// Open resolves a path token to a readable source.
func (r *Resolver) Open(path string) (ports.Source, error) {
	if path == ports.StdinToken {
		return &stdinSource{Reader: r.stdin()}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, domain.NewSourceError(path, err)
	}

	// Some platforms allow opening directories for reading, so check explicitly.
	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, domain.NewSourceError(path, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &domain.SourceError{Path: path, Err: domain.ErrIsDirectory}
	}

	return &fileSource{File: f, path: path}, nil
}

func (r *Resolver) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

type fileSource struct {
	*os.File
	path string
}

func (s *fileSource) Path() string { return s.path }

// stdinSource never closes the process descriptor.
type stdinSource struct {
	io.Reader
}

func (s *stdinSource) Path() string { return ports.StdinToken }
func (s *stdinSource) Close() error { return nil }
