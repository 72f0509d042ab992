package forward

import (
	"time"

	"github.com/bethropolis/fwdgen/internal/utils"
)

// Option configures a Forwarder.
type Option func(*Forwarder)

// WithLogger sets the logger. "Discovered" lines are logged at info level,
// traversal details at debug level.
func WithLogger(logger utils.Logger) Option {
	return func(f *Forwarder) {
		if logger != nil {
			f.log = logger
		}
	}
}

// WithVerbose enables per-directory traversal messages.
func WithVerbose(enabled bool) Option {
	return func(f *Forwarder) {
		f.verbose = enabled
	}
}

// WithClock sets the source of the generation timestamp.
func WithClock(now func() time.Time) Option {
	return func(f *Forwarder) {
		if now != nil {
			f.now = now
		}
	}
}

// WithJobs sets how many headers are written concurrently. Values below one
// select one.
func WithJobs(n int) Option {
	return func(f *Forwarder) {
		if n < 1 {
			n = 1
		}
		f.jobs = n
	}
}
