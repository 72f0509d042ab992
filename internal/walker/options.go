package walker

import (
	"github.com/bethropolis/fwdgen/internal/utils"
)

// WalkOptions configures the behavior of the Walk function
type WalkOptions struct {
	Logger  utils.Logger
	Tracker *SkippedTracker
	// Verbose enables per-directory "Searching" and "Subdirectories" lines.
	Verbose bool
}

func defaultOptions() WalkOptions {
	return WalkOptions{
		Logger: utils.NoopLogger{},
	}
}

// Option is a functional option for configuring WalkOptions
type Option func(*WalkOptions)

// WithLogger sets a custom logger for the walker
func WithLogger(logger utils.Logger) Option {
	return func(opts *WalkOptions) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

// WithTracker records skipped items into t instead of a private tracker,
// so several walks can share one report.
func WithTracker(t *SkippedTracker) Option {
	return func(opts *WalkOptions) {
		opts.Tracker = t
	}
}

// WithVerbose enables per-directory progress messages.
func WithVerbose(enabled bool) Option {
	return func(opts *WalkOptions) {
		opts.Verbose = enabled
	}
}
