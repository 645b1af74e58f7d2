package catalog

import (
	"fmt"
	"strings"

	"dsmcp/internal/repopaths"
	"dsmcp/pkg/fileops"
)

// StorySuffix marks a Storybook story file.
const StorySuffix = ".stories.tsx"

// Story is one entry of the story index.
type Story struct {
	Name     string `json:"name"`
	Filename string `json:"filename"`
	FilePath string `json:"filePath"`
}

// ListStories builds the story index, sorted ascending by Name. Story names
// are not unique; stories with equal names keep walk order.
func ListStories(paths repopaths.RepoPaths) ([]Story, error) {
	if !fileops.PathExists(paths.StoriesDir) {
		return []Story{}, nil
	}

	entries, err := fileops.Walk(paths.StoriesDir, fileops.WalkOptions{
		IncludeExtensions: sourceExtensions,
		Ignore:            ignoreNonStoryFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index stories: %w", err)
	}

	stories := make([]Story, 0, len(entries))
	for _, entry := range entries {
		filename := entry.Name()
		stories = append(stories, Story{
			Name:     strings.TrimSuffix(filename, StorySuffix),
			Filename: filename,
			FilePath: entry.AbsPath,
		})
	}

	sortByKey(stories, func(s Story) string { return s.Name })
	return stories, nil
}

// FindStoryByName rebuilds the story index and returns the first story, in
// sorted order, whose name matches name case-insensitively.
func FindStoryByName(paths repopaths.RepoPaths, name string) (Story, bool, error) {
	stories, err := ListStories(paths)
	if err != nil {
		return Story{}, false, err
	}
	for _, s := range stories {
		if strings.EqualFold(s.Name, name) {
			return s, true, nil
		}
	}
	return Story{}, false, nil
}

// ignoreNonStoryFile drops files that are not stories. Directories are always
// entered so nested story folders are indexed.
func ignoreNonStoryFile(rel []string, isDir bool) bool {
	return !isDir && !strings.HasSuffix(rel[len(rel)-1], StorySuffix)
}
