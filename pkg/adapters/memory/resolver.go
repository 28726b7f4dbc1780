package memory

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/ports"
)

// Resolver implements ports.SourceResolver using an in-memory map.
// It is useful for embedding and for tests that should not touch the disk.
type Resolver struct {
	files map[string][]byte
	dirs  map[string]bool
	stdin io.Reader
	open  map[string]int
}

// NewResolver creates a Resolver serving the provided contents.
func NewResolver(data map[string]string) *Resolver {
	files := make(map[string][]byte, len(data))
	for k, v := range data {
		files[k] = []byte(v)
	}
	return &Resolver{
		files: files,
		dirs:  make(map[string]bool),
		stdin: bytes.NewReader(nil),
		open:  make(map[string]int),
	}
}

// WithDirectory registers tokens that behave like directories.
func (r *Resolver) WithDirectory(paths ...string) *Resolver {
	for _, p := range paths {
		r.dirs[p] = true
	}
	return r
}

// WithStdin sets what the "-" token reads.
func (r *Resolver) WithStdin(stdin io.Reader) *Resolver {
	r.stdin = stdin
	return r
}

// Open resolves a path token to a readable source.
func (r *Resolver) Open(path string) (ports.Source, error) {
	if path == ports.StdinToken {
		return &source{Reader: r.stdin, path: path, release: func() {}}, nil
	}
	if r.dirs[path] {
		return nil, &domain.SourceError{Path: path, Err: domain.ErrIsDirectory}
	}
	content, ok := r.files[path]
	if !ok {
		return nil, &domain.SourceError{Path: path, Err: fs.ErrNotExist}
	}

	r.open[path]++
	return &source{
		Reader:  bytes.NewReader(content),
		path:    path,
		release: func() { r.open[path]-- },
	}, nil
}

// OpenCount returns how many sources for path are currently open.
func (r *Resolver) OpenCount(path string) int {
	return r.open[path]
}

type source struct {
	io.Reader
	path    string
	release func()
	closed  bool
}

func (s *source) Path() string { return s.path }

func (s *source) Close() error {
	if !s.closed {
		s.closed = true
		s.release()
	}
	return nil
}
