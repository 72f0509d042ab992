// Package pattern selects file names with shell-style glob patterns.
//
// Patterns follow fnmatch(3) without escaping: '*' and '?' match any run of
// characters or a single character, '[...]' is a character class and
// '[!...]' its negation. Backslash is an ordinary character. Matching is
// case-sensitive and only ever sees a bare file name, never a path.
package pattern

import (
	"github.com/danwakefield/fnmatch"
)

const matchFlags = fnmatch.FNM_NOESCAPE

// Match reports whether name matches at least one of patterns.
// An empty pattern set matches nothing.
func Match(name string, patterns []string) bool {
	for _, p := range patterns {
		if fnmatch.Match(p, name, matchFlags) {
			return true
		}
	}
	return false
}

// Filter applies include patterns then exclude patterns to a directory listing.
type Filter struct {
	Include []string
	Exclude []string
}

// NewFilter returns a Filter for the given pattern sets.
func NewFilter(include, exclude []string) *Filter {
	return &Filter{Include: include, Exclude: exclude}
}

// Select returns the names matching an include pattern and no exclude
// pattern. Order is pattern-major: all names matched by the first include
// pattern in listing order, then new names matched by the second, and so on.
// Names that matched an include pattern but were removed by an exclude
// pattern are returned in excluded, in the same order.
func (f *Filter) Select(names []string) (selected, excluded []string) {
	seen := make(map[string]struct{}, len(names))
	for _, p := range f.Include {
		for _, name := range names {
			if _, dup := seen[name]; dup {
				continue
			}
			if !fnmatch.Match(p, name, matchFlags) {
				continue
			}
			seen[name] = struct{}{}
			if Match(name, f.Exclude) {
				excluded = append(excluded, name)
				continue
			}
			selected = append(selected, name)
		}
	}
	return selected, excluded
}
