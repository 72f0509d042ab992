package ignore

import (
	"github.com/bethropolis/fwdgen/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// Verdict says whether, and why, a path is pruned from traversal.
type Verdict int

const (
	// Keep means the path is traversed.
	Keep Verdict = iota
	// Substring means the directory name contains an ignore substring.
	Substring
	// ExcludedPath means the directory is one of the excluded absolute paths,
	// such as the output directory.
	ExcludedPath
	// Gitignore means a .gitignore rule matched.
	Gitignore
)

func (v Verdict) String() string {
	switch v {
	case Keep:
		return "keep"
	case Substring:
		return "ignore substring"
	case ExcludedPath:
		return "excluded path"
	case Gitignore:
		return "gitignore"
	}
	return "unknown"
}

// Filter decides which directories and files of one traversal root are
// pruned.
type Filter struct {
	// Loaded lazily from the root when gitignore support is on.
	repoIgnore gitignore.GitIgnore

	rootDir       string
	substrings    []string
	excludedPaths []string
	useGitignore  bool
	logger        utils.Logger
	disabled      bool
}

// Config holds configuration options for a Filter.
type Config struct {
	RootDir       string
	Substrings    []string
	ExcludedPaths []string
	Gitignore     bool
	Logger        utils.Logger
	Disabled      bool
}
