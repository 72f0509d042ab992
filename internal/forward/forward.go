// Package forward generates forwarding headers: one file per discovered
// header, placed flat in an output directory, whose only content is an
// #include of the original header.
//
// Two discovered headers with the same file name produce the same output
// file. The one found later in traversal order wins; every such replacement
// is logged as a warning and listed in Result.Collisions. Stale headers from
// earlier runs are never removed.
package forward

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bethropolis/fwdgen/internal/pattern"
	"github.com/bethropolis/fwdgen/internal/printer"
	"github.com/bethropolis/fwdgen/internal/relpath"
	"github.com/bethropolis/fwdgen/internal/setup"
	"github.com/bethropolis/fwdgen/internal/utils"
	"github.com/bethropolis/fwdgen/internal/walker"
)

var (
	// ErrOutputDir is returned when the output directory cannot be created
	// or is not a directory.
	ErrOutputDir = errors.New("output directory unusable")
	// ErrWrite is returned when a forwarding header cannot be written.
	ErrWrite = errors.New("writing forwarding header")
)

// Result summarizes a run.
type Result struct {
	// Discovered counts selected headers, including ones whose output was
	// later replaced by a collision.
	Discovered int
	// Written counts generated files.
	Written      int
	Headers      []Header
	Collisions   []Collision
	Skipped      []walker.SkippedItem
	MissingRoots []string
	Duration     time.Duration
}

// Forwarder runs one Request.
type Forwarder struct {
	req     Request
	log     utils.Logger
	now     func() time.Time
	jobs    int
	verbose bool
}

// New creates a Forwarder for req.
func New(req Request, opts ...Option) *Forwarder {
	f := &Forwarder{
		req:  req,
		log:  utils.NoopLogger{},
		now:  time.Now,
		jobs: 1,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Run generates headers for req and returns how many files were written.
func Run(ctx context.Context, req Request, opts ...Option) (int, error) {
	res, err := New(req, opts...).Run(ctx)
	return res.Written, err
}

// PrepareOutputDir creates dir and its parents when missing.
func PrepareOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutputDir, dir, err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrOutputDir, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %q is not a directory", ErrOutputDir, dir)
	}
	return nil
}

// Run scans every root and writes the forwarding headers. Nothing is written
// until traversal is complete; the first write failure aborts the run.
func (f *Forwarder) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	outDir, err := f.req.Abs(f.req.OutputDir)
	if err != nil {
		return res, fmt.Errorf("%w: %q: %w", ErrOutputDir, f.req.OutputDir, err)
	}
	if err := PrepareOutputDir(outDir); err != nil {
		return res, err
	}

	// The raw output directory string joins the ignore substrings, and the
	// directory itself is pruned by path in case the string never matches
	// a single directory name.
	ignores := append(append([]string(nil), f.req.Ignore...), f.req.OutputDir)
	f.logSettings(ignores)

	p := printer.New(f.now())
	selector := pattern.NewFilter(f.req.Include, f.req.Exclude)
	tracker := walker.NewSkippedTracker(16)
	plan := newPlan()

	for _, root := range f.req.Roots {
		absRoot, ok := f.checkRoot(root, outDir)
		if !ok {
			res.MissingRoots = append(res.MissingRoots, root)
			continue
		}

		filter, walkOpts, err := setup.ConfigureWalker(setup.WalkerConfig{
			RootDir:          absRoot,
			IgnoreSubstrings: ignores,
			ExcludedPaths:    []string{outDir},
			Gitignore:        f.req.Gitignore,
			Verbose:          f.verbose,
			Tracker:          tracker,
			Logger:           f.log,
		})
		if err != nil {
			return res, err
		}

		_, err = walker.Walk(ctx, absRoot, filter, func(dir string, files []string) error {
			selected, excluded := selector.Select(files)
			for _, name := range excluded {
				f.log.Debug("\tIgnoring file because it matches the ignore pattern: %s", name)
				tracker.Track(filepath.Join(dir, name), walker.ReasonExcludedPattern, false)
			}
			for _, name := range selected {
				df := NewDiscoveredFile(filepath.Join(dir, name))
				include, err := relpath.Resolve(df.AbsPath, outDir)
				if err != nil {
					return err
				}
				f.log.Info("Discovered: %s", displayPath(root, absRoot, df.AbsPath))

				h := Header{
					Path:    filepath.Join(outDir, df.OutputName(f.req.Prefix)),
					Include: include,
					Source:  df.AbsPath,
				}
				if c, replaced := plan.add(h); replaced {
					f.log.Warn("Overwriting %s: %s replaces %s", c.Path, c.By, c.Replaced)
					res.Collisions = append(res.Collisions, c)
				}
				res.Discovered++
			}
			return nil
		}, walkOpts...)
		if err != nil {
			return res, err
		}
	}

	res.Skipped = tracker.Items()
	res.Headers = plan.list()
	if err := f.write(ctx, p, res.Headers); err != nil {
		return res, err
	}
	res.Written = int(p.GetCount())
	res.Duration = time.Since(start)
	f.log.Info("Header Generation Complete")
	return res, nil
}

// checkRoot resolves root and reports whether it can be scanned.
func (f *Forwarder) checkRoot(root, outDir string) (string, bool) {
	absRoot, err := f.req.Abs(root)
	if err != nil {
		f.log.Warn("Path not found, \"%s\", continuing...", root)
		return "", false
	}
	info, err := os.Stat(absRoot)
	if err != nil {
		f.log.Warn("Path not found, \"%s\", continuing...", root)
		return "", false
	}
	if !info.IsDir() {
		f.log.Warn("Path is not a directory, \"%s\", continuing...", root)
		return "", false
	}
	if within(absRoot, outDir) {
		f.log.Warn("Path is inside the output directory, \"%s\", continuing...", root)
		return "", false
	}
	return absRoot, true
}

func (f *Forwarder) logSettings(ignores []string) {
	f.log.Debug("Looking for patterns like %q", f.req.Include)
	f.log.Debug("Ignoring patterns like %q", f.req.Exclude)
	f.log.Debug("Searching in the following directories:")
	for _, r := range f.req.Roots {
		f.log.Debug("\t%s", r)
	}
	f.log.Debug("Ignoring the following directories:")
	for _, ig := range ignores {
		f.log.Debug("\t%s", ig)
	}
}

func (f *Forwarder) write(ctx context.Context, p *printer.Printer, headers []Header) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.jobs)
	for _, h := range headers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := p.WriteForwarding(h.Path, h.Include); err != nil {
				return fmt.Errorf("%w: %w", ErrWrite, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// displayPath renders abs the way the user spelled root.
func displayPath(root, absRoot, abs string) string {
	rel, err := filepath.Rel(absRoot, abs)
	if err != nil {
		return abs
	}
	return filepath.Join(root, rel)
}

// within reports whether path is dir or below it.
func within(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, strings.TrimSuffix(dir, string(filepath.Separator))+string(filepath.Separator))
}

// plan keeps one header per output path in first-seen order.
type plan struct {
	index   map[string]int
	headers []Header
}

func newPlan() *plan {
	return &plan{index: make(map[string]int)}
}

func (p *plan) add(h Header) (Collision, bool) {
	if i, ok := p.index[h.Path]; ok {
		c := Collision{Path: h.Path, Replaced: p.headers[i].Source, By: h.Source}
		p.headers[i] = h
		return c, true
	}
	p.index[h.Path] = len(p.headers)
	p.headers = append(p.headers, h)
	return Collision{}, false
}

func (p *plan) list() []Header {
	return append([]Header(nil), p.headers...)
}
