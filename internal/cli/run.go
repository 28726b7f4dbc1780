package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/catena/internal/config"
	"github.com/aretw0/catena/internal/logging"
	"github.com/aretw0/catena/pkg/domain"
	"github.com/aretw0/catena/pkg/observability"
)

// RunOptions contains everything one invocation needs.
type RunOptions struct {
	Flags  Flags
	Paths  []string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes one invocation and returns the process exit code.
// Errors are reported on Stderr; Stdout only ever carries data.
func Run(opts RunOptions) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	level := logging.Level(opts.Flags.Debug)
	if opts.Flags.Stats && level > slog.LevelInfo {
		level = slog.LevelInfo
	}
	logger := logging.New(opts.Stderr, level)

	cfgPath := config.Resolve(opts.Flags.ConfigPath)
	defaults, err := config.Load(cfgPath)
	if err != nil {
		ReportError(opts.Stderr, err)
		return domain.ExitFailure
	}
	if cfgPath != "" {
		logger.Debug("loaded defaults", "path", cfgPath)
	}

	cfg, err := opts.Flags.Config(defaults)
	if err != nil {
		ReportError(opts.Stderr, err)
		return domain.ExitFailure
	}

	var metrics *observability.Metrics
	if opts.Flags.Stats {
		metrics = observability.NewMetrics()
	}

	runErr := createConcatenator(cfg, opts.Stdin, logger, metrics).Concat(opts.Stdout, opts.Paths)

	if metrics != nil {
		if err := metrics.Log(logger); err != nil {
			logger.Warn("failed to gather stats", "error", err)
		}
	}

	if runErr != nil {
		ReportError(opts.Stderr, runErr)
		return domain.ExitCode(runErr)
	}
	return 0
}
