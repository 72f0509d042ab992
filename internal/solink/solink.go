// Package solink creates unversioned symlinks for versioned shared
// libraries, e.g. libfoo.so -> libfoo.so.1.
package solink

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"

	"github.com/bethropolis/fwdgen/internal/utils"
)

// ErrLink is returned when a symlink cannot be created.
var ErrLink = errors.New("creating library link")

// Request names the directory to scan and the library version to link.
type Request struct {
	Dir string
	// Version selects files ending in ".so.<Version>". Empty selects any
	// ".so." suffix starting with a digit.
	Version string
}

// Link is a planned symlink Name -> Target, both plain file names inside
// the scanned directory.
type Link struct {
	Name   string
	Target string
}

// Pattern returns the glob selecting library files for version.
func Pattern(version string) string {
	if version == "" {
		return "*.so.[0-9]*"
	}
	return "*.so." + glob.QuoteMeta(version)
}

// LinkName returns the unversioned name for file: everything before the
// first ".so." followed by ".so".
func LinkName(file string) (string, bool) {
	i := strings.Index(file, ".so.")
	if i <= 0 {
		return "", false
	}
	return file[:i] + ".so", true
}

// Plan lists the links to create for the files directly inside dir.
// Symlinks count when they resolve to a file.
// Files are considered in lexical order; when two files map to the same link
// name the later one wins.
func Plan(dir, version string) ([]Link, error) {
	g, err := glob.Compile(Pattern(version))
	if err != nil {
		return nil, fmt.Errorf("solink: bad version %q: %w", version, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("solink: %w", err)
	}

	index := make(map[string]int)
	var links []Link
	for _, e := range entries {
		if e.IsDir() || !g.Match(e.Name()) {
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(dir, e.Name()))
			if err != nil || info.IsDir() {
				continue
			}
		}
		name, ok := LinkName(e.Name())
		if !ok {
			continue
		}
		if i, dup := index[name]; dup {
			links[i].Target = e.Name()
			continue
		}
		index[name] = len(links)
		links = append(links, Link{Name: name, Target: e.Name()})
	}
	sort.Slice(links, func(i, j int) bool { return links[i].Name < links[j].Name })
	return links, nil
}

type options struct {
	log utils.Logger
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

// Run creates the links planned for req. An existing symlink with the link
// name is replaced; any other existing file is left alone with a warning.
func Run(ctx context.Context, req Request, opts ...Option) ([]Link, error) {
	o := options{log: utils.NoopLogger{}}
	for _, opt := range opts {
		opt(&o)
	}

	links, err := Plan(req.Dir, req.Version)
	if err != nil {
		return nil, err
	}

	var made []Link
	for _, l := range links {
		if err := ctx.Err(); err != nil {
			return made, err
		}
		path := filepath.Join(req.Dir, l.Name)
		info, err := os.Lstat(path)
		switch {
		case err == nil && info.Mode()&fs.ModeSymlink == 0:
			o.log.Warn("Not replacing %s: it exists and is not a symlink", path)
			continue
		case err == nil:
			if err := os.Remove(path); err != nil {
				return made, fmt.Errorf("%w: %w", ErrLink, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return made, fmt.Errorf("%w: %w", ErrLink, err)
		}

		if err := os.Symlink(l.Target, path); err != nil {
			return made, fmt.Errorf("%w: %w", ErrLink, err)
		}
		o.log.Info("Linked %s -> %s", l.Name, l.Target)
		made = append(made, l)
	}
	return made, nil
}
