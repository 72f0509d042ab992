package walker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bethropolis/fwdgen/internal/ignore"
)

// Walk visits root and every directory below it that filter keeps, calling
// fn once per directory. Directories are visited top-down, depth-first, in
// lexical order.
//
// Pending directories live on an explicit frontier. A subdirectory is
// checked against filter before it is pushed, so a pruned directory is
// never listed and none of its descendants are reported.
//
// Unreadable subdirectories are recorded and skipped. An unreadable root,
// an error from fn, or a cancelled ctx ends the walk with an error.
func Walk(ctx context.Context, root string, filter *ignore.Filter, fn DirFunc, opts ...Option) ([]SkippedItem, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	tracker := options.Tracker
	if tracker == nil {
		tracker = NewSkippedTracker(16)
	}

	absRootDir, err := filepath.Abs(root)
	if err != nil {
		return tracker.Items(), fmt.Errorf("walker: failed to get absolute path for '%s': %w", root, err)
	}

	frontier := []string{absRootDir}
	for len(frontier) > 0 {
		if err := ctx.Err(); err != nil {
			return tracker.Items(), err
		}
		dir := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if options.Verbose {
			options.Logger.Debug("\tSearching %s", dir)
		}

		l, err := processDir(dir, filter, options, tracker)
		if err != nil {
			if dir == absRootDir {
				return tracker.Items(), fmt.Errorf("walker: reading root %q: %w", root, err)
			}
			reason := ReasonSkippedReadError
			if os.IsPermission(err) {
				reason = ReasonSkippedPermError
			}
			options.Logger.Warn("Skipping unreadable directory %s: %v", dir, err)
			tracker.Track(dir, reason, true)
			continue
		}

		if err := fn(dir, l.files); err != nil {
			return tracker.Items(), err
		}

		// Reverse push keeps lexical order when popping.
		for i := len(l.subdirs) - 1; i >= 0; i-- {
			frontier = append(frontier, l.subdirs[i])
		}
	}
	return tracker.Items(), nil
}
