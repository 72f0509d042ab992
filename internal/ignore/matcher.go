package ignore

import (
	"fmt"
	"path/filepath"

	"github.com/bethropolis/fwdgen/internal/utils"
	gitignore "github.com/denormal/go-gitignore"
)

// New creates a Filter for the traversal root rootDir.
func New(rootDir string, opts ...Option) (*Filter, error) {
	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("ignore: failed to get absolute path for rootDir '%s': %w", rootDir, err)
	}

	f := &Filter{
		rootDir: absRootDir,
		logger:  utils.NoopLogger{},
	}
	for _, opt := range opts {
		opt(f)
	}
	for i, p := range f.excludedPaths {
		if abs, err := filepath.Abs(p); err == nil {
			f.excludedPaths[i] = abs
		}
	}

	if err := f.init(); err != nil {
		return nil, err
	}
	return f, nil
}

// init loads .gitignore rules when enabled.
func (f *Filter) init() error {
	if f.disabled || !f.useGitignore {
		return nil
	}

	f.logger.Debug("ignore.New: Loading .gitignore rules under %s", f.rootDir)
	repo, err := gitignore.NewRepository(f.rootDir)
	if err != nil {
		if repo != nil {
			return fmt.Errorf("ignore: failed to load repository ignores: %w", err)
		}
		f.logger.Warn("No .gitignore rules loaded for '%s': %v", f.rootDir, err)
		repo = gitignore.New(nil, f.rootDir, nil)
	}
	f.repoIgnore = repo
	return nil
}
