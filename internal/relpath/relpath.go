// Package relpath computes the include path that leads from a generated
// header back to the header it forwards to.
package relpath

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolve returns the relative path from the directory destAbsDir to the
// file sourceAbsPath, using forward slashes.
//
// The two paths are compared component by component. The number of
// destination components after the divergence point gives the number of
// ".." segments; the source components after it follow, then the file name.
// Comparison is case-sensitive on every platform.
//
// When the paths are on different volumes no relative path exists and the
// cleaned source path is returned.
func Resolve(sourceAbsPath, destAbsDir string) (string, error) {
	if !filepath.IsAbs(sourceAbsPath) {
		return "", fmt.Errorf("relpath: source %q is not absolute", sourceAbsPath)
	}
	if !filepath.IsAbs(destAbsDir) {
		return "", fmt.Errorf("relpath: destination %q is not absolute", destAbsDir)
	}

	srcDir, name := filepath.Split(filepath.Clean(sourceAbsPath))
	if name == "" {
		return "", fmt.Errorf("relpath: source %q has no file name", sourceAbsPath)
	}
	if filepath.VolumeName(srcDir) != filepath.VolumeName(destAbsDir) {
		return filepath.ToSlash(filepath.Clean(sourceAbsPath)), nil
	}

	src := components(srcDir)
	dst := components(destAbsDir)
	common := commonPrefix(src, dst)

	parts := make([]string, 0, len(dst)-common+len(src)-common+1)
	for i := common; i < len(dst); i++ {
		parts = append(parts, "..")
	}
	parts = append(parts, src[common:]...)
	parts = append(parts, name)
	return strings.Join(parts, "/"), nil
}

// DivergencePoint returns the number of leading path components a and b
// share. "/a/src" and "/a/srcx" share one component, not the five bytes
// "/a/sr" they have in common.
func DivergencePoint(a, b string) int {
	return commonPrefix(components(a), components(b))
}

// components splits a cleaned path into its elements without the volume
// name or the root separator.
func components(p string) []string {
	p = filepath.Clean(p)
	p = p[len(filepath.VolumeName(p)):]
	p = strings.Trim(p, string(filepath.Separator))
	if p == "" {
		return nil
	}
	return strings.Split(p, string(filepath.Separator))
}

func commonPrefix(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
