package ports

import "io"

// StdinToken is the path token that denotes standard input.
const StdinToken = "-"

// Source is one opened input stream.
// The consumer owns it after Open and must Close it exactly once.
type Source interface {
	io.ReadCloser

	// Path returns the token the source was resolved from.
	Path() string
}

// SourceResolver defines how the transducer obtains input streams.
type SourceResolver interface {
	// Open resolves a path token to a readable Source.
	// Failures are reported as *domain.SourceError carrying the token.
	// A token naming a directory fails with domain.ErrIsDirectory.
	Open(path string) (Source, error)
}
