package catalog

import (
	"path/filepath"
	"testing"

	"dsmcp/internal/repopaths"
	"dsmcp/internal/testfixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storyNames(stories []Story) []string {
	names := make([]string, 0, len(stories))
	for _, s := range stories {
		names = append(names, s.Name)
	}
	return names
}

func TestListStories_DesignSystem(t *testing.T) {
	paths := testfixture.DesignSystem(t)

	stories, err := ListStories(paths)
	require.NoError(t, err)

	assert.Equal(t, []string{"Button", "Card", "Header", "SplitButton"}, storyNames(stories))
	for _, s := range stories {
		assert.Equal(t, s.Name+StorySuffix, s.Filename)
		assert.Equal(t, s.Filename, filepath.Base(s.FilePath))
		assert.FileExists(t, s.FilePath)
	}
}

func TestListStories_CollationOrder(t *testing.T) {
	paths := testfixture.NewRepo(t, nil, map[string]string{
		"Card.stories.tsx":   "",
		"avatar.stories.tsx": "",
		"Button.stories.tsx": "",
	}, nil)

	stories, err := ListStories(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"avatar", "Button", "Card"}, storyNames(stories))
}

func TestListStories_DuplicateNamesKeepWalkOrder(t *testing.T) {
	paths := testfixture.NewRepo(t, nil, map[string]string{
		"a/Card.stories.tsx": "first",
		"b/Card.stories.tsx": "second",
	}, nil)

	stories, err := ListStories(paths)
	require.NoError(t, err)
	require.Len(t, stories, 2)
	assert.Equal(t, filepath.Join(paths.StoriesDir, "a", "Card.stories.tsx"), stories[0].FilePath)
	assert.Equal(t, filepath.Join(paths.StoriesDir, "b", "Card.stories.tsx"), stories[1].FilePath)

	found, ok, err := FindStoryByName(paths, "card")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, stories[0].FilePath, found.FilePath)
}

func TestListStories_IgnoresNonStories(t *testing.T) {
	paths := testfixture.NewRepo(t, nil, map[string]string{
		"helpers.tsx":            "",
		"Old.stories.ts":         "",
		"Button.stories.tsx.md":  "",
		"deep/x/y/Z.stories.tsx": "",
	}, nil)

	stories, err := ListStories(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"Z"}, storyNames(stories))
}

func TestListStories_MissingDirectory(t *testing.T) {
	paths := repopaths.FromRoot(t.TempDir())

	stories, err := ListStories(paths)
	require.NoError(t, err)
	assert.NotNil(t, stories)
	assert.Empty(t, stories)
}

func TestFindStoryByName(t *testing.T) {
	paths := testfixture.DesignSystem(t)

	s, ok, err := FindStoryByName(paths, "splitbutton")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "SplitButton", s.Name)

	_, ok, err = FindStoryByName(paths, "Split")
	require.NoError(t, err)
	assert.False(t, ok)
}
