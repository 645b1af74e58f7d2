package fileops

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"tilde prefix", "~/repo", filepath.Join(home, "repo")},
		{"bare tilde", "~", home},
		{"absolute", "/opt/repo", "/opt/repo"},
		{"relative", "repo", "repo"},
		{"tilde in middle", "a/~/b", "a/~/b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}

func TestReadIndexed(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"base/atoms/button.tsx": "export const Button = () => null\n",
	})
	base := filepath.Join(root, "base")

	t.Run("reads exact contents", func(t *testing.T) {
		content, err := ReadIndexed(filepath.Join(base, "atoms", "button.tsx"))
		require.NoError(t, err)
		assert.Equal(t, "export const Button = () => null\n", string(content))
	})

	t.Run("rejects missing file", func(t *testing.T) {
		_, err := ReadIndexed(filepath.Join(base, "atoms", "nope.tsx"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("rejects directory", func(t *testing.T) {
		_, err := ReadIndexed(filepath.Join(base, "atoms"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a regular file")
	})

	t.Run("no size cap", func(t *testing.T) {
		big := filepath.Join(base, "atoms", "big.tsx")
		data := strings.Repeat("x", 6<<20)
		require.NoError(t, os.WriteFile(big, []byte(data), 0o644))
		content, err := ReadIndexed(big)
		require.NoError(t, err)
		assert.Len(t, content, len(data))
	})
}

func TestReadIndexed_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"base/atoms/real.tsx": "ok",
		"shared/badge.tsx":    "export const Badge = () => null\n",
	})
	base := filepath.Join(root, "base")

	outside := filepath.Join(base, "atoms", "badge.tsx")
	require.NoError(t, os.Symlink(filepath.Join(root, "shared", "badge.tsx"), outside))
	content, err := ReadIndexed(outside)
	require.NoError(t, err)
	assert.Equal(t, "export const Badge = () => null\n", string(content))

	inner := filepath.Join(base, "atoms", "alias.tsx")
	require.NoError(t, os.Symlink(filepath.Join(base, "atoms", "real.tsx"), inner))
	content, err = ReadIndexed(inner)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(content))

	dangling := filepath.Join(base, "atoms", "gone.tsx")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.tsx"), dangling))
	_, err = ReadIndexed(dangling)
	require.Error(t, err)
}
