// Package repopaths resolves where the design-system sources live.
//
// The server binary is installed at a fixed depth inside the design-system
// repository (tools/dsmcp/bin/dsmcp), so the repository root is found by
// walking InstallDepth directories up from the executable's directory. An
// explicit override (flag, DSMCP_REPO_ROOT, or the config file) replaces that
// derivation. Every other directory is joined from the root with fixed
// segments. Nothing here touches the filesystem except InstallDir, which asks
// the OS for the running executable.
package repopaths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dsmcp/pkg/fileops"
)

// EnvRepoRoot names the environment variable that overrides the repo root.
const EnvRepoRoot = "DSMCP_REPO_ROOT"

// InstallDepth is how many directories separate the executable's directory
// from the repository root.
const InstallDepth = 3

// Fixed locations relative to the repository root.
var (
	componentsSegments = []string{"src", "components"}
	storiesSegments    = []string{"src", "stories"}
	docsSegments       = []string{"docs"}
)

// RepoPaths is the immutable set of locations every index operation reads
// from. It is computed once and passed by value.
type RepoPaths struct {
	RepoRoot      string `json:"repoRoot"`
	ComponentsDir string `json:"componentsDir"`
	StoriesDir    string `json:"storiesDir"`
	DocsDir       string `json:"docsDir"`
}

// Resolve computes RepoPaths. A non-blank override is expanded, made absolute
// and used as the root; otherwise the root is InstallDepth levels above
// installDir.
func Resolve(installDir, override string) RepoPaths {
	var root string
	if o := strings.TrimSpace(override); o != "" {
		root = absolute(fileops.ExpandPath(o))
	} else {
		root = absolute(installDir)
		for range InstallDepth {
			root = filepath.Dir(root)
		}
	}
	return FromRoot(root)
}

// FromRoot derives every directory from an already-known repository root.
func FromRoot(root string) RepoPaths {
	root = filepath.Clean(root)
	return RepoPaths{
		RepoRoot:      root,
		ComponentsDir: join(root, componentsSegments),
		StoriesDir:    join(root, storiesSegments),
		DocsDir:       join(root, docsSegments),
	}
}

// Override returns the first candidate that is non-empty after trimming.
// Callers pass candidates in precedence order.
func Override(candidates ...string) string {
	for _, c := range candidates {
		if t := strings.TrimSpace(c); t != "" {
			return t
		}
	}
	return ""
}

// InstallDir returns the directory that holds the running executable, with
// symlinks resolved so a linked binary still finds its repository.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("cannot locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func absolute(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}

func join(root string, segments []string) string {
	return filepath.Join(append([]string{root}, segments...)...)
}
