package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading "~/" to the user's home directory.
//
// Usage example:
//
//	expanded := fileops.ExpandPath("~/src/design-system")
//	// Returns something like "/home/user/src/design-system"
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// ReadIndexed returns the exact contents of a file the walker reported.
// Symlinks are followed wherever they point, so every listed entry can be
// read back. Paths that do not resolve to a regular file are an error.
//
// Usage example:
//
//	content, err := fileops.ReadIndexed(component.FilePath)
//	if err != nil {
//	    return fmt.Errorf("read component: %w", err)
//	}
func ReadIndexed(filePath string) ([]byte, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file does not exist: %s", filepath.Base(filePath))
		}
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("path is not a regular file: %s", filepath.Base(filePath))
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return content, nil
}
