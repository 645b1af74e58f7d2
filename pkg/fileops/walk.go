package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// IgnoreFunc reports whether an entry should be skipped. rel is the entry's
// path relative to the walk root as ordered segments. Returning true for a
// directory prunes the whole subtree.
type IgnoreFunc func(rel []string, isDir bool) bool

// WalkOptions configures Walk.
type WalkOptions struct {
	// IncludeExtensions lists the file extensions (with leading dot) that are
	// emitted. An empty list emits every file.
	IncludeExtensions []string

	// Ignore is consulted for every entry before anything else happens to it.
	Ignore IgnoreFunc
}

// WalkEntry is one file discovered by Walk.
type WalkEntry struct {
	// AbsPath is the absolute path of the file.
	AbsPath string

	// RelPath is the path relative to the walk root, one element per segment.
	RelPath []string
}

// Name returns the final segment of the relative path.
func (e WalkEntry) Name() string {
	if len(e.RelPath) == 0 {
		return ""
	}
	return e.RelPath[len(e.RelPath)-1]
}

// Slash returns the relative path joined with forward slashes.
func (e WalkEntry) Slash() string {
	return strings.Join(e.RelPath, "/")
}

// Walk recursively lists baseDir and returns every file that passes the
// extension filter and is not ignored. Entries are visited in lexical order.
//
// Walk does not special-case a missing baseDir: the filesystem error is
// returned and callers are expected to guard with PathExists first. Symlinks
// are reported as whatever the directory listing yields and are never
// followed, and there is no depth limit.
func Walk(baseDir string, opts WalkOptions) ([]WalkEntry, error) {
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve walk root: %w", err)
	}

	w := &walker{
		base: absBase,
		opts: opts,
	}
	if err := w.walkDir(absBase, nil); err != nil {
		return nil, err
	}
	return w.results, nil
}

type walker struct {
	base    string
	opts    WalkOptions
	results []WalkEntry
}

func (w *walker) walkDir(dir string, rel []string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		entryRel := append(slices.Clip(rel), entry.Name())
		entryPath := filepath.Join(dir, entry.Name())

		if w.opts.Ignore != nil && w.opts.Ignore(entryRel, entry.IsDir()) {
			continue
		}

		if entry.IsDir() {
			if err := w.walkDir(entryPath, entryRel); err != nil {
				return err
			}
			continue
		}

		if !w.includeFile(entry.Name()) {
			continue
		}
		w.results = append(w.results, WalkEntry{
			AbsPath: entryPath,
			RelPath: entryRel,
		})
	}

	return nil
}

func (w *walker) includeFile(name string) bool {
	if len(w.opts.IncludeExtensions) == 0 {
		return true
	}
	return slices.Contains(w.opts.IncludeExtensions, filepath.Ext(name))
}

// PathExists reports whether path exists. Permission errors count as absent.
func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
