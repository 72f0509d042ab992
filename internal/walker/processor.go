package walker

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bethropolis/fwdgen/internal/ignore"
)

// listing is one directory split into kept files and kept subdirectories.
type listing struct {
	files   []string
	subdirs []string
}

// processDir reads dir and sorts its entries. Subdirectories rejected by
// filter, and symlinks to directories, are recorded in tracker and left out.
func processDir(dir string, filter *ignore.Filter, options WalkOptions, tracker *SkippedTracker) (listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing{}, err
	}

	var l listing
	var names []string
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		isDir := e.IsDir()

		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				options.Logger.Debug("\tNot following symlinked directory %s", path)
				tracker.Track(path, ReasonSkippedSymlinkDir, true)
				continue
			}
		}

		if !isDir {
			if filter.CheckFile(path) == ignore.Gitignore {
				tracker.Track(path, ReasonIgnoredGitignore, false)
				continue
			}
			l.files = append(l.files, e.Name())
			continue
		}

		names = append(names, e.Name())
		if v := filter.CheckDir(path); v != ignore.Keep {
			options.Logger.Debug("\tIgnoring %s", e.Name())
			tracker.Track(path, reasonFor(v), true)
			continue
		}
		l.subdirs = append(l.subdirs, path)
	}

	if options.Verbose {
		options.Logger.Debug("Subdirectories: %v", names)
	}
	return l, nil
}

func reasonFor(v ignore.Verdict) SkippedReason {
	switch v {
	case ignore.ExcludedPath:
		return ReasonIgnoredOutputDir
	case ignore.Gitignore:
		return ReasonIgnoredGitignore
	default:
		return ReasonIgnoredSubstring
	}
}
