package catena

import (
	"io"
	"log/slog"

	"github.com/aretw0/catena/internal/logging"
	"github.com/aretw0/catena/internal/runtime"
	"github.com/aretw0/catena/pkg/adapters/file"
	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/ports"
)

// Concatenator is the high-level entry point for the catena library.
// It wraps the internal transducer and resolves path tokens for it.
type Concatenator struct {
	cfg      domain.Config
	resolver ports.SourceResolver
	stdin    io.Reader
	logger   *slog.Logger
	hooks    domain.LifecycleHooks
}

// Option defines a functional option for configuring the Concatenator.
type Option func(*Concatenator)

// WithResolver injects a custom SourceResolver, bypassing the filesystem.
func WithResolver(r ports.SourceResolver) Option {
	return func(c *Concatenator) {
		c.resolver = r
	}
}

// WithStdin sets the reader behind the "-" token of the default resolver.
// It has no effect when WithResolver is used.
func WithStdin(r io.Reader) Option {
	return func(c *Concatenator) {
		c.stdin = r
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Concatenator) {
		c.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
// Calling it more than once chains the hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Concatenator) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// New creates a Concatenator for cfg.
// By default, path tokens are resolved against the local filesystem.
func New(cfg domain.Config, opts ...Option) *Concatenator {
	c := &Concatenator{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	if c.resolver == nil {
		c.resolver = file.New(c.stdin)
	}
	return c
}

// Config returns the configuration in use.
func (c *Concatenator) Config() domain.Config {
	return c.cfg
}

// Concat writes the transformed content of paths, in order, to w.
// An empty list reads standard input. The first error aborts the run.
func (c *Concatenator) Concat(w io.Writer, paths []string) error {
	if len(paths) == 0 {
		paths = []string{ports.StdinToken}
	}
	c.logger.Debug("concat",
		"sources", len(paths),
		"numbering", c.cfg.Numbering.String(),
		"squeeze", c.cfg.SqueezeBlank,
		"passthrough", c.cfg.IsPassthrough(),
	)

	t := runtime.NewTransducer(c.cfg,
		runtime.WithLogger(c.logger),
		runtime.WithLifecycleHooks(c.hooks),
	)
	return t.Run(w, c.resolver, paths)
}
