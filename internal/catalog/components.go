package catalog

import (
	"fmt"
	"strings"

	"dsmcp/internal/repopaths"
	"dsmcp/pkg/fileops"
)

// Category is the atomic-design folder a component lives in.
type Category string

const (
	CategoryAtoms     Category = "atoms"
	CategoryMolecules Category = "molecules"
	CategoryOrganisms Category = "organisms"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryAtoms, CategoryMolecules, CategoryOrganisms}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryAtoms, CategoryMolecules, CategoryOrganisms:
		return true
	}
	return false
}

// reservedComponentDir is surfaced only through the category folders.
const reservedComponentDir = "ui"

// barrelFiles carry re-exports only and have no component identity.
var barrelFiles = map[string]bool{
	"index.ts":  true,
	"index.tsx": true,
}

// Component is one entry of the component index.
type Component struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	FileStem string   `json:"fileStem"`
	FilePath string   `json:"filePath"`
}

// ListComponents builds the component index, sorted ascending by ID.
func ListComponents(paths repopaths.RepoPaths) ([]Component, error) {
	if !fileops.PathExists(paths.ComponentsDir) {
		return []Component{}, nil
	}

	entries, err := fileops.Walk(paths.ComponentsDir, fileops.WalkOptions{
		IncludeExtensions: sourceExtensions,
		Ignore:            ignoreComponentEntry,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index components: %w", err)
	}

	components := make([]Component, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	for _, entry := range entries {
		category := Category(entry.RelPath[0])
		if len(entry.RelPath) < 2 || !category.Valid() {
			continue
		}

		stem := componentStem(entry.Name())
		id := string(category) + "/" + stem
		// The same stem nested twice under one category collapses to one id;
		// the first file in walk order wins.
		if seen[id] {
			continue
		}
		seen[id] = true

		components = append(components, Component{
			ID:       id,
			Category: category,
			FileStem: stem,
			FilePath: entry.AbsPath,
		})
	}

	sortByKey(components, func(c Component) string { return c.ID })
	return components, nil
}

// FindComponentByID rebuilds the index and returns the component whose ID
// matches id case-insensitively.
func FindComponentByID(paths repopaths.RepoPaths, id string) (Component, bool, error) {
	components, err := ListComponents(paths)
	if err != nil {
		return Component{}, false, err
	}
	for _, c := range components {
		if strings.EqualFold(c.ID, id) {
			return c, true, nil
		}
	}
	return Component{}, false, nil
}

// FilterByCategory returns the components in category, preserving order.
func FilterByCategory(components []Component, category Category) []Component {
	filtered := make([]Component, 0, len(components))
	for _, c := range components {
		if c.Category == category {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func ignoreComponentEntry(rel []string, isDir bool) bool {
	if rel[0] == reservedComponentDir {
		return true
	}
	return !isDir && barrelFiles[rel[len(rel)-1]]
}

func componentStem(filename string) string {
	if stem, ok := strings.CutSuffix(filename, ".tsx"); ok {
		return stem
	}
	stem, _ := strings.CutSuffix(filename, ".ts")
	return stem
}
