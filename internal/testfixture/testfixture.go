// Package testfixture builds throwaway design-system repositories for tests.
package testfixture

import (
	"os"
	"path/filepath"
	"testing"

	"dsmcp/internal/repopaths"
)

// WriteTree creates every file in files (slash-separated paths relative to
// root), creating parent directories as needed.
func WriteTree(t testing.TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", rel, err)
		}
	}
}

// NewRepo creates a repository in a temp dir and returns its paths. Keys in
// components, stories and docs are relative to the respective directory.
func NewRepo(t testing.TB, components, stories, docs map[string]string) repopaths.RepoPaths {
	t.Helper()
	paths := repopaths.FromRoot(t.TempDir())
	if components != nil {
		mkdir(t, paths.ComponentsDir)
		WriteTree(t, paths.ComponentsDir, components)
	}
	if stories != nil {
		mkdir(t, paths.StoriesDir)
		WriteTree(t, paths.StoriesDir, stories)
	}
	if docs != nil {
		mkdir(t, paths.DocsDir)
		WriteTree(t, paths.DocsDir, docs)
	}
	return paths
}

// DesignSystem returns a small but representative repository: three
// categories, a reserved ui folder, barrel files, a stray top-level file,
// nested stories and a couple of docs.
func DesignSystem(t testing.TB) repopaths.RepoPaths {
	t.Helper()
	return NewRepo(t,
		map[string]string{
			"atoms/button.tsx":           "export function Button() { return <button className=\"btn\" /> }\n",
			"atoms/split-button.tsx":     "import { Button } from './button'\nexport const SplitButton = () => null\n",
			"atoms/index.ts":             "export * from './button'\n",
			"atoms/icon.ts":              "export type IconName = 'plus' | 'minus'\n",
			"molecules/card.tsx":         "export const Card = ({ children }) => <div className=\"card\">{children}</div>\n",
			"molecules/ai_chat.tsx":      "export const AiChat = () => <Card>chat</Card>\n",
			"organisms/header.tsx":       "export const Header = () => <header><Button /></header>\n",
			"organisms/index.tsx":        "export * from './header'\n",
			"ui/button.tsx":              "export const RawButton = () => null\n",
			"ui/primitives/slot.tsx":     "export const Slot = () => null\n",
			"templates/page.tsx":         "export const Page = () => null\n",
			"utils.ts":                   "export const cn = () => ''\n",
			"atoms/button.module.css":    ".btn {}\n",
			"molecules/card.test.tsx.md": "not indexed\n",
		},
		map[string]string{
			"Button.stories.tsx":           "export default { title: 'Atoms/Button' }\n",
			"molecules/Card.stories.tsx":   "export default { title: 'Molecules/Card' }\n",
			"organisms/Header.stories.tsx": "export default { title: 'Organisms/Header' }\n",
			"organisms/helpers.tsx":        "export const wrap = () => null\n",
			"SplitButton.stories.tsx":      "export default { title: 'Atoms/SplitButton' }\n",
			"README.md":                    "# Stories\n",
			"legacy/old-card.stories.ts":   "not a tsx story\n",
		},
		map[string]string{
			"getting-started.md": "---\ntitle: Getting Started\ndescription: Install and wire the design system\n---\n# Welcome\n\nRun the installer.\n",
			"tokens/colors.mdx":  "# Color tokens\n\nUse semantic tokens.\n",
			"notes.txt":          "ignored\n",
		},
	)
}

func mkdir(t testing.TB, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create %s: %v", dir, err)
	}
}
