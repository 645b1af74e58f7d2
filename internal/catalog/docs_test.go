package catalog

import (
	"testing"

	"dsmcp/internal/repopaths"
	"dsmcp/internal/testfixture"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDocs_DesignSystem(t *testing.T) {
	paths := testfixture.DesignSystem(t)

	docs, err := ListDocs(paths)
	require.NoError(t, err)
	require.Len(t, docs, 2)

	assert.Equal(t, "getting-started", docs[0].Name)
	assert.Equal(t, "Getting Started", docs[0].Title)
	assert.Equal(t, "Install and wire the design system", docs[0].Description)

	assert.Equal(t, "tokens/colors", docs[1].Name)
	assert.Equal(t, "Color tokens", docs[1].Title)
	assert.Empty(t, docs[1].Description)
}

func TestListDocs_MissingDirectory(t *testing.T) {
	docs, err := ListDocs(repopaths.FromRoot(t.TempDir()))
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestFindDocByName(t *testing.T) {
	paths := testfixture.DesignSystem(t)

	doc, ok, err := FindDocByName(paths, "Tokens/Colors")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tokens/colors", doc.Name)

	_, ok, err = FindDocByName(paths, "notes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestParseDoc(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "frontmatter title wins over heading",
			content:   "---\ntitle: From Matter\n---\n# From Heading\n",
			wantTitle: "From Matter",
			wantBody:  "# From Heading\n",
		},
		{
			name:      "heading fallback",
			content:   "intro\n\n#  Spaced Title  \n## Sub\n",
			wantTitle: "Spaced Title",
			wantBody:  "intro\n\n#  Spaced Title  \n## Sub\n",
		},
		{
			name:      "second level heading is not a title",
			content:   "## Only sub\n",
			wantTitle: "",
			wantBody:  "## Only sub\n",
		},
		{
			name:      "empty",
			content:   "",
			wantTitle: "",
			wantBody:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matter, body := ParseDoc([]byte(tt.content))
			assert.Equal(t, tt.wantTitle, matter.Title)
			assert.Contains(t, string(body), tt.wantBody)
			assert.NotContains(t, string(body), "title:")
		})
	}
}
