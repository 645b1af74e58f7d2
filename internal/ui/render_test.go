package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	out := Table([]string{"ID", "Category"}, [][]string{
		{"atoms/button", "atoms"},
		{"molecules/card"},
	})

	for _, want := range []string{"ID", "Category", "atoms/button", "molecules/card"} {
		assert.Contains(t, out, want)
	}
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 4)
}

func TestTable_Empty(t *testing.T) {
	out := Table([]string{"Name"}, nil)
	assert.Contains(t, out, "Name")
}

func TestError(t *testing.T) {
	out := Error("Component not found: x", "Call list_components.")
	assert.Contains(t, out, "Error: Component not found: x")
	assert.Contains(t, out, "Call list_components.")

	assert.NotContains(t, Error("boom", ""), "\n")
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("# Welcome\n\nRun the installer.\n", 0)
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "installer")
	assert.True(t, strings.HasSuffix(out, "\n"))
}
