package repopaths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_FromInstallDir(t *testing.T) {
	repo := t.TempDir()
	install := filepath.Join(repo, "tools", "dsmcp", "bin")

	paths := Resolve(install, "")

	assert.Equal(t, repo, paths.RepoRoot)
	assert.Equal(t, filepath.Join(repo, "src", "components"), paths.ComponentsDir)
	assert.Equal(t, filepath.Join(repo, "src", "stories"), paths.StoriesDir)
	assert.Equal(t, filepath.Join(repo, "docs"), paths.DocsDir)
}

func TestResolve_Override(t *testing.T) {
	install := filepath.Join(t.TempDir(), "a", "b", "c")
	override := t.TempDir()

	paths := Resolve(install, "  "+override+"\n")

	assert.Equal(t, override, paths.RepoRoot)
	assert.Equal(t, filepath.Join(override, "src", "components"), paths.ComponentsDir)
}

func TestResolve_BlankOverrideFallsBack(t *testing.T) {
	repo := t.TempDir()
	install := filepath.Join(repo, "x", "y", "z")

	for _, blank := range []string{"", "   ", "\t\n"} {
		assert.Equal(t, repo, Resolve(install, blank).RepoRoot, "override %q", blank)
	}
}

func TestResolve_RelativeOverrideBecomesAbsolute(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	paths := Resolve("/unused/a/b/c", "fixtures/repo")

	assert.True(t, filepath.IsAbs(paths.RepoRoot))
	assert.Equal(t, filepath.Join(cwd, "fixtures", "repo"), paths.RepoRoot)
}

func TestResolve_TildeOverride(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	paths := Resolve("/unused/a/b/c", "~/design-system")
	assert.Equal(t, filepath.Join(home, "design-system"), paths.RepoRoot)
}

func TestResolve_NonexistentOverrideIsNotAnError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nowhere")

	paths := Resolve("", missing)

	assert.Equal(t, missing, paths.RepoRoot)
	_, err := os.Stat(paths.ComponentsDir)
	assert.True(t, os.IsNotExist(err))
}

func TestResolve_Deterministic(t *testing.T) {
	install := filepath.Join(t.TempDir(), "a", "b", "c")
	assert.Equal(t, Resolve(install, ""), Resolve(install, ""))
}

func TestOverride(t *testing.T) {
	assert.Equal(t, "flag", Override("flag", "env", "config"))
	assert.Equal(t, "env", Override("", " env ", "config"))
	assert.Equal(t, "config", Override("", "  ", "config"))
	assert.Equal(t, "", Override("", " "))
	assert.Equal(t, "", Override())
}

func TestInstallDir(t *testing.T) {
	dir, err := InstallDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir))
}
