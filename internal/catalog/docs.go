package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"path"
	"strings"

	"dsmcp/internal/repopaths"
	"dsmcp/pkg/fileops"

	"github.com/adrg/frontmatter"
)

// docExtensions are the markdown flavours indexed under the docs directory.
var docExtensions = []string{".md", ".mdx"}

// DocFrontmatter is the optional YAML header of a design-system doc.
type DocFrontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Doc is one entry of the doc index.
type Doc struct {
	// Name is the slash-separated path below the docs directory without extension.
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	FilePath    string `json:"filePath"`
}

// ListDocs builds the doc index, sorted ascending by Name.
func ListDocs(paths repopaths.RepoPaths) ([]Doc, error) {
	if !fileops.PathExists(paths.DocsDir) {
		return []Doc{}, nil
	}

	entries, err := fileops.Walk(paths.DocsDir, fileops.WalkOptions{
		IncludeExtensions: docExtensions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index docs: %w", err)
	}

	docs := make([]Doc, 0, len(entries))
	for _, entry := range entries {
		content, err := fileops.ReadIndexed(entry.AbsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read doc %s: %w", entry.Slash(), err)
		}
		matter, _ := ParseDoc(content)

		slash := entry.Slash()
		docs = append(docs, Doc{
			Name:        strings.TrimSuffix(slash, path.Ext(slash)),
			Title:       matter.Title,
			Description: matter.Description,
			FilePath:    entry.AbsPath,
		})
	}

	sortByKey(docs, func(d Doc) string { return d.Name })
	return docs, nil
}

// FindDocByName rebuilds the doc index and returns the doc whose name matches
// case-insensitively.
func FindDocByName(paths repopaths.RepoPaths, name string) (Doc, bool, error) {
	docs, err := ListDocs(paths)
	if err != nil {
		return Doc{}, false, err
	}
	for _, d := range docs {
		if strings.EqualFold(d.Name, name) {
			return d, true, nil
		}
	}
	return Doc{}, false, nil
}

// ParseDoc splits a markdown document into its frontmatter and body. A
// document without frontmatter gets its first level-one heading as Title. A
// malformed header is treated as part of the body.
func ParseDoc(content []byte) (DocFrontmatter, []byte) {
	var matter DocFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(content), &matter)
	if err != nil {
		matter = DocFrontmatter{}
		body = content
	}
	if matter.Title == "" {
		matter.Title = firstHeading(body)
	}
	return matter, body
}

func firstHeading(body []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(body))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title)
		}
	}
	return ""
}
