package cli

import (
	"io"
	"log/slog"

	"github.com/aretw0/catena"
	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/observability"
)

// createConcatenator wires a Concatenator with the CLI conventions:
// filesystem resolver, shared logger and, when requested, metrics.
func createConcatenator(cfg domain.Config, stdin io.Reader, logger *slog.Logger, metrics *observability.Metrics) *catena.Concatenator {
	opts := []catena.Option{
		catena.WithStdin(stdin),
		catena.WithLogger(logger),
	}
	if metrics != nil {
		opts = append(opts, catena.WithLifecycleHooks(metrics.Hooks()))
	}
	return catena.New(cfg, opts...)
}
