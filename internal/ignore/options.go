package ignore

import "github.com/bethropolis/fwdgen/internal/utils"

// Option configures a Filter.
type Option func(*Filter)

// WithSubstrings sets the case-insensitive directory name substrings.
// Empty entries are dropped since they would match every directory.
func WithSubstrings(substrings []string) Option {
	return func(f *Filter) {
		f.substrings = f.substrings[:0]
		for _, s := range substrings {
			if s != "" {
				f.substrings = append(f.substrings, s)
			}
		}
	}
}

// WithExcludedPaths prunes directories by absolute path.
func WithExcludedPaths(paths []string) Option {
	return func(f *Filter) {
		f.excludedPaths = append([]string(nil), paths...)
	}
}

// WithGitignore enables .gitignore rules found under the root.
func WithGitignore(enabled bool) Option {
	return func(f *Filter) {
		f.useGitignore = enabled
	}
}

func WithLogger(logger utils.Logger) Option {
	return func(f *Filter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

func WithDisabled(disabled bool) Option {
	return func(f *Filter) {
		f.disabled = disabled
	}
}
