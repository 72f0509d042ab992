package ignore

import (
	"path/filepath"
)

// CheckDir returns why the directory at absPath is pruned, or Keep.
// The traversal root itself is never pruned.
func (f *Filter) CheckDir(absPath string) Verdict {
	if f == nil || f.disabled {
		return Keep
	}
	absPath = filepath.Clean(absPath)
	if absPath == f.rootDir {
		return Keep
	}

	if Match(filepath.Base(absPath), f.substrings) {
		f.logger.Debug("ignore.CheckDir: %q contains an ignore substring", absPath)
		return Substring
	}
	for _, p := range f.excludedPaths {
		if absPath == p {
			f.logger.Debug("ignore.CheckDir: %q is an excluded path", absPath)
			return ExcludedPath
		}
	}
	if f.gitignored(absPath, true) {
		return Gitignore
	}
	return Keep
}

// CheckFile returns why the file at absPath is skipped, or Keep. Substring
// rules apply to directories only.
func (f *Filter) CheckFile(absPath string) Verdict {
	if f == nil || f.disabled {
		return Keep
	}
	if f.gitignored(filepath.Clean(absPath), false) {
		return Gitignore
	}
	return Keep
}

func (f *Filter) gitignored(absPath string, isDir bool) (ignored bool) {
	if f.repoIgnore == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			f.logger.Error("gitignore matcher panicked for path %q: %v", absPath, r)
			ignored = false
		}
	}()

	match := f.repoIgnore.Absolute(absPath, isDir)
	if match == nil {
		return false
	}
	if match.Ignore() {
		f.logger.Debug("ignore: %q matched .gitignore rule %s", absPath, match)
		return true
	}
	return false
}
