// Package dirs builds paths relative to the working directory and
// locates executables.
package dirs

import (
	"fmt"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"
)

// CD returns the path under the current working directory formed by
// joining sub. With no arguments it returns the working directory
// itself. The path is not created. In the rare case that the working
// directory cannot be determined (it was removed, or a parent is
// unreadable), the result is relative to ".".
func CD(sub ...string) string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(append([]string{wd}, sub...)...)
}

// CDMkdir is CD followed by directory creation. When the last path
// element carries a file extension it is treated as a file name and
// only its parent directory is created.
func CDMkdir(sub ...string) (string, error) {
	path := CD(sub...)

	dir := path
	if len(sub) > 0 && filepath.Ext(sub[len(sub)-1]) != "" {
		dir = filepath.Dir(path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return path, nil
}

// CDD is CD rooted at the conventional "data" subdirectory.
func CDD(sub ...string) string {
	return CD(append([]string{"data"}, sub...)...)
}

// FindExecutable looks for the named executable on PATH and then among
// extraPaths (each entry a candidate file or a directory to search).
// When nothing is found it returns the name unchanged and false.
func FindExecutable(name string, extraPaths []string) (string, bool) {
	if path, err := exec.LookPath(name); err == nil {
		return path, true
	}

	for _, candidate := range extraPaths {
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if info.IsDir() {
			joined := filepath.Join(candidate, name)
			if fi, err := os.Stat(joined); err == nil && !fi.IsDir() {
				return joined, true
			}
			continue
		}
		if filepath.Base(candidate) == name {
			return candidate, true
		}
	}
	return name, false
}

// ToSlashPath normalizes a path to forward slashes, converting
// Windows-style separators regardless of the platform.
func ToSlashPath(p string) string {
	return path.Clean(strings.ReplaceAll(p, `\`, "/"))
}

// IsDir reports whether p names a directory on disk.
func IsDir(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
