// Package aggregate writes one combined header that includes every header
// found under a set of roots.
package aggregate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bethropolis/fwdgen/internal/forward"
	"github.com/bethropolis/fwdgen/internal/pattern"
	"github.com/bethropolis/fwdgen/internal/printer"
	"github.com/bethropolis/fwdgen/internal/relpath"
	"github.com/bethropolis/fwdgen/internal/setup"
	"github.com/bethropolis/fwdgen/internal/utils"
	"github.com/bethropolis/fwdgen/internal/walker"
)

// Request describes one aggregation run.
type Request struct {
	Roots   []string
	Include []string
	Exclude []string
	Ignore  []string
	// OutputFile is the combined header. Its directory is created when
	// missing and is never scanned.
	OutputFile string
	BaseDir    string
	Gitignore  bool
}

// Result summarizes an aggregation run.
type Result struct {
	OutputFile   string
	Includes     []string
	Skipped      []walker.SkippedItem
	MissingRoots []string
}

type options struct {
	log     utils.Logger
	now     func() time.Time
	verbose bool
}

// Option configures Run.
type Option func(*options)

func WithLogger(logger utils.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.log = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func WithVerbose(enabled bool) Option {
	return func(o *options) {
		o.verbose = enabled
	}
}

// Run scans the roots and writes req.OutputFile. Includes are relative to
// the output file's directory, in traversal order, each at most once. The
// output file never includes itself.
func Run(ctx context.Context, req Request, opts ...Option) (Result, error) {
	o := options{log: utils.NoopLogger{}, now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	fwdReq := forward.Request{BaseDir: req.BaseDir}
	outFile, err := fwdReq.Abs(req.OutputFile)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %q: %w", forward.ErrOutputDir, req.OutputFile, err)
	}
	outDir := filepath.Dir(outFile)
	if err := forward.PrepareOutputDir(outDir); err != nil {
		return Result{}, err
	}

	res := Result{OutputFile: outFile}
	selector := pattern.NewFilter(req.Include, req.Exclude)
	tracker := walker.NewSkippedTracker(16)
	seen := make(map[string]struct{})

	for _, root := range req.Roots {
		absRoot, err := fwdReq.Abs(root)
		if err == nil {
			var info os.FileInfo
			info, err = os.Stat(absRoot)
			if err == nil && !info.IsDir() {
				err = fmt.Errorf("not a directory")
			}
		}
		if err != nil {
			o.log.Warn("Path not found, \"%s\", continuing...", root)
			res.MissingRoots = append(res.MissingRoots, root)
			continue
		}

		filter, walkOpts, err := setup.ConfigureWalker(setup.WalkerConfig{
			RootDir:          absRoot,
			IgnoreSubstrings: req.Ignore,
			ExcludedPaths:    []string{outDir},
			Gitignore:        req.Gitignore,
			Verbose:          o.verbose,
			Tracker:          tracker,
			Logger:           o.log,
		})
		if err != nil {
			return res, err
		}

		_, err = walker.Walk(ctx, absRoot, filter, func(dir string, files []string) error {
			selected, dropped := selector.Select(files)
			for _, name := range dropped {
				o.log.Debug("\tIgnoring file because it matches the ignore pattern: %s", name)
				tracker.Track(filepath.Join(dir, name), walker.ReasonExcludedPattern, false)
			}
			for _, name := range selected {
				abs := filepath.Join(dir, name)
				if abs == outFile {
					continue
				}
				if _, dup := seen[abs]; dup {
					continue
				}
				seen[abs] = struct{}{}
				inc, err := relpath.Resolve(abs, outDir)
				if err != nil {
					return err
				}
				o.log.Info("Discovered: %s", abs)
				res.Includes = append(res.Includes, inc)
			}
			return nil
		}, walkOpts...)
		if err != nil {
			return res, err
		}
	}

	res.Skipped = tracker.Items()
	p := printer.New(o.now())
	if err := p.WriteAggregate(outFile, res.Includes); err != nil {
		return res, fmt.Errorf("%w: %w", forward.ErrWrite, err)
	}
	o.log.Info("Wrote %d includes to %s", len(res.Includes), outFile)
	return res, nil
}
