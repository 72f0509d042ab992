// Package app runs the fwdgen tools from a loaded configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/bethropolis/fwdgen/internal/aggregate"
	"github.com/bethropolis/fwdgen/internal/config"
	"github.com/bethropolis/fwdgen/internal/forward"
	"github.com/bethropolis/fwdgen/internal/logger"
	"github.com/bethropolis/fwdgen/internal/solink"
	"github.com/bethropolis/fwdgen/internal/summary"
	"github.com/bethropolis/fwdgen/internal/walker"
)

// ErrConfiguration reports an unusable working or output directory.
var ErrConfiguration = errors.New("configuration error")

// App encapsulates the main application functionality
type App struct {
	cfg *config.Config
	log *logger.Logger
	out io.Writer
}

// New creates an App that logs to out.
func New(cfg *config.Config, out io.Writer) *App {
	color.NoColor = !cfg.UseColors

	log := logger.New(out, cfg.Verbose, cfg.UseColors)
	// --log-level overrides --verbose and --quiet
	if cfg.LogLevel != "" {
		log.SetLevel(cfg.LogLevel)
	} else if cfg.Quiet {
		log.WithLevel(logger.LevelWarn)
	}

	return &App{cfg: cfg, log: log, out: out}
}

// Logger returns the application logger.
func (a *App) Logger() *logger.Logger {
	return a.log
}

// Forward generates the forwarding headers.
func (a *App) Forward(ctx context.Context) (forward.Result, error) {
	dir, err := a.workingDir()
	if err != nil {
		return forward.Result{}, err
	}
	req := a.cfg.ForwardRequest()
	req.BaseDir = dir

	res, err := forward.New(req,
		forward.WithLogger(a.log),
		forward.WithVerbose(a.log.Verbose()),
		forward.WithJobs(a.cfg.Jobs),
	).Run(ctx)
	if err != nil {
		return res, configError(err)
	}

	summary.DisplayResults(a.log, res)
	a.showSkipped(res.Skipped)
	return res, nil
}

// Aggregate writes the combined header.
func (a *App) Aggregate(ctx context.Context) (aggregate.Result, error) {
	dir, err := a.workingDir()
	if err != nil {
		return aggregate.Result{}, err
	}
	req := a.cfg.AggregateRequest()
	req.BaseDir = dir

	res, err := aggregate.Run(ctx, req,
		aggregate.WithLogger(a.log),
		aggregate.WithVerbose(a.log.Verbose()),
	)
	if err != nil {
		return res, configError(err)
	}
	a.showSkipped(res.Skipped)
	return res, nil
}

// Solink creates the unversioned shared library links.
func (a *App) Solink(ctx context.Context) ([]solink.Link, error) {
	dir, err := a.workingDir()
	if err != nil {
		return nil, err
	}
	req := a.cfg.SolinkRequest()
	req.Dir = dir

	links, err := solink.Run(ctx, req, solink.WithLogger(a.log))
	if err != nil {
		return links, err
	}
	a.log.Info("Created %d library links in %s.", len(links), dir)
	return links, nil
}

// workingDir resolves and validates the configured working directory.
func (a *App) workingDir() (string, error) {
	dir, err := a.cfg.AbsWorkingDir()
	if err != nil {
		return "", fmt.Errorf("%w: working directory %q: %w", ErrConfiguration, a.cfg.WorkingDir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("%w: working directory %q not found", ErrConfiguration, dir)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: working directory %q is not a directory", ErrConfiguration, dir)
	}
	a.log.Debug("Working directory: %s", dir)
	if a.cfg.ConfigFileUsed != "" {
		a.log.Debug("Using config file: %s", a.cfg.ConfigFileUsed)
	}
	return dir, nil
}

func (a *App) showSkipped(items []walker.SkippedItem) {
	if a.cfg.ShowSkipped {
		summary.DisplaySkippedItems(a.log, items, a.out)
	}
}

func configError(err error) error {
	if errors.Is(err, forward.ErrOutputDir) {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return err
}
