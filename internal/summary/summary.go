// Package summary handles display of run results and skipped paths
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/fwdgen/internal/forward"
	"github.com/bethropolis/fwdgen/internal/utils"
	"github.com/bethropolis/fwdgen/internal/walker"
)

// DisplayResults reports what a forwarder run produced.
func DisplayResults(logger utils.Logger, res forward.Result) {
	logger.Info("Generated %d forwarding headers for %d discovered files in %v.",
		res.Written, res.Discovered, res.Duration.Round(time.Millisecond))
	if n := len(res.Collisions); n > 0 {
		logger.Warn("%d generated headers were overwritten by later sources.", n)
	}
	if n := len(res.MissingRoots); n > 0 {
		logger.Warn("%d input directories were not scanned: %v", n, res.MissingRoots)
	}
}

// DisplaySkippedItems prints one line per skipped path to output, sorted by
// path. The header and footer go through logger.
func DisplaySkippedItems(logger utils.Logger, items []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(items))
	if len(items) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	sorted := append([]walker.SkippedItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // aligned with FILE
		}
		fmt.Fprintf(output, "Skipped %s: %s [%s]\n", typeStr, item.Path, item.Reason)
	}
	logger.Info("--- End Skipped Items ---")
}
