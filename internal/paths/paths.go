// Package paths is the filesystem probe for the catalog: existence checks,
// canonicalization, and access-time reads. The store and workflows never
// touch the filesystem directly except through this package.
package paths

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Exists reports whether path refers to an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Canonicalize resolves path to an absolute path with symlinks evaluated.
// If symlink resolution fails (e.g. a dangling link component), the absolute
// path is returned as-is.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

// Basename returns the last path segment, which is the default repository
// identifier at registration.
func Basename(path string) string {
	return filepath.Base(strings.TrimRight(path, string(filepath.Separator)))
}

// AccessTime reads the access time of path. The second return is false when
// the path does not exist or the platform exposes no usable timestamp.
func AccessTime(path string) (time.Time, bool) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	if t, ok := accessTime(fi); ok {
		return t, true
	}
	// Filesystems mounted noatime still update mtime; better than nothing.
	return fi.ModTime(), true
}

// ReplaceHome substitutes the current home directory prefix with "${HOME}".
// Used by export so snapshots stay portable between machines.
func ReplaceHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return strings.Replace(path, home, "${HOME}", 1)
}
