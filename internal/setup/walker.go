// Package setup builds the per-root ignore filter and walker options shared
// by the forwarder and the aggregator.
package setup

import (
	"fmt"

	"github.com/bethropolis/fwdgen/internal/ignore"
	"github.com/bethropolis/fwdgen/internal/utils"
	"github.com/bethropolis/fwdgen/internal/walker"
)

// WalkerConfig holds all parameters needed to configure a directory walker
type WalkerConfig struct {
	RootDir          string
	IgnoreSubstrings []string
	// ExcludedPaths are absolute directories pruned by path, such as the
	// output directory.
	ExcludedPaths []string
	Gitignore     bool
	Verbose       bool
	Tracker       *walker.SkippedTracker
	Logger        utils.Logger
}

// ConfigureWalker creates the ignore filter for cfg.RootDir and the walker
// options matching cfg.
func ConfigureWalker(cfg WalkerConfig) (*ignore.Filter, []walker.Option, error) {
	log := cfg.Logger
	if log == nil {
		log = utils.NoopLogger{}
	}

	filter, err := ignore.NewFromConfig(ignore.Config{
		RootDir:       cfg.RootDir,
		Substrings:    cfg.IgnoreSubstrings,
		ExcludedPaths: cfg.ExcludedPaths,
		Gitignore:     cfg.Gitignore,
		Logger:        log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing ignore rules: %w", err)
	}

	walkOptions := []walker.Option{
		walker.WithLogger(log),
		walker.WithVerbose(cfg.Verbose),
	}
	if cfg.Tracker != nil {
		walkOptions = append(walkOptions, walker.WithTracker(cfg.Tracker))
	}
	return filter, walkOptions, nil
}
