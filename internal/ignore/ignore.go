// Package ignore decides which directories are pruned from a header scan.
//
// The primary rule is deliberately loose: a directory is pruned when its
// name contains, case-insensitively, any configured substring. An entry of
// "test" therefore also prunes "latest" and "Contest". Existing build
// configurations rely on this, so it is kept as is.
//
// Two further rules can be layered on top: pruning by absolute path (used
// for the output directory) and .gitignore rules.
package ignore

import "strings"

// Match reports whether name, case-folded, contains any case-folded entry
// of substrings. Empty entries never match.
func Match(name string, substrings []string) bool {
	lower := strings.ToLower(name)
	for _, s := range substrings {
		if s == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// NewFromConfig creates a Filter from a Config struct
func NewFromConfig(cfg Config) (*Filter, error) {
	options := []Option{
		WithSubstrings(cfg.Substrings),
		WithExcludedPaths(cfg.ExcludedPaths),
		WithGitignore(cfg.Gitignore),
		WithDisabled(cfg.Disabled),
	}
	if cfg.Logger != nil {
		options = append(options, WithLogger(cfg.Logger))
	}
	return New(cfg.RootDir, options...)
}

// CreateDisabledFilter returns a filter that prunes nothing.
func CreateDisabledFilter() *Filter {
	f, _ := New(".", WithDisabled(true))
	return f
}
