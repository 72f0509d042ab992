package forward

import (
	"path/filepath"
	"strings"
)

// Request describes one generation run. It is built once from
// configuration and never modified.
type Request struct {
	// Roots are scanned in order. Missing roots are skipped with a warning.
	Roots []string
	// Include and Exclude are glob patterns applied to file names.
	// Exclude wins over Include.
	Include []string
	Exclude []string
	// Ignore holds case-insensitive directory name substrings.
	Ignore []string
	// OutputDir receives the generated headers. It is created when missing
	// and never scanned.
	OutputDir string
	// Prefix is prepended to every generated file name.
	Prefix string
	// BaseDir is the directory relative paths are resolved against. Empty
	// means the process working directory.
	BaseDir string
	// Gitignore additionally prunes paths matched by .gitignore files.
	Gitignore bool
}

// Abs resolves p against the request's base directory.
func (r Request) Abs(p string) (string, error) {
	return resolve(r.BaseDir, p)
}

func resolve(base, p string) (string, error) {
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	if base == "" {
		return filepath.Abs(p)
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	return filepath.Join(absBase, p), nil
}

// DiscoveredFile is a header selected during traversal.
type DiscoveredFile struct {
	AbsPath string
	// Base is the file name without its extension.
	Base string
	// Ext is the extension including the dot, or empty.
	Ext string
}

// NewDiscoveredFile splits the file name of absPath. Leading dots are part
// of the base name, so ".config" has no extension.
func NewDiscoveredFile(absPath string) DiscoveredFile {
	name := filepath.Base(absPath)
	base, ext := name, ""
	if i := strings.LastIndexByte(name, '.'); i > 0 && strings.TrimLeft(name[:i], ".") != "" {
		base, ext = name[:i], name[i:]
	}
	return DiscoveredFile{AbsPath: absPath, Base: base, Ext: ext}
}

// OutputName returns the generated file name for prefix.
func (d DiscoveredFile) OutputName(prefix string) string {
	return prefix + d.Base + d.Ext
}

// Header is a planned forwarding header.
type Header struct {
	// Path is the absolute path of the generated file.
	Path string
	// Include is the #include operand, relative to the output directory.
	Include string
	// Source is the absolute path of the forwarded header.
	Source string
}

// Collision records a generated file name claimed by two sources within one
// run. The later source wins.
type Collision struct {
	Path     string
	Replaced string
	By       string
}
