// Package walker traverses header source trees top-down.
package walker

import (
	"sync"
)

// DirFunc is called once for every visited directory with the absolute
// directory path and the names of its non-directory entries in lexical
// order. A non-nil error stops the walk and is returned by Walk.
type DirFunc func(dir string, files []string) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredSubstring  SkippedReason = "Ignored (Path Substring)"
	ReasonIgnoredOutputDir  SkippedReason = "Ignored (Output Directory)"
	ReasonIgnoredGitignore  SkippedReason = "Ignored (Gitignore Rule)"
	ReasonExcludedPattern   SkippedReason = "Excluded (Ignore Pattern)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedReadError  SkippedReason = "Skipped (Read Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// SkippedTracker collects skipped items. It is safe for concurrent use.
type SkippedTracker struct {
	items []SkippedItem
	mutex sync.Mutex
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns a copy of the tracked items.
func (st *SkippedTracker) Items() []SkippedItem {
	st.mutex.Lock()
	defer st.mutex.Unlock()
	return append([]SkippedItem(nil), st.items...)
}
