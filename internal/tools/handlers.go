package tools

import (
	"encoding/json"
	"errors"
	"fmt"

	"dsmcp/internal/catalog"
	"dsmcp/internal/gitinfo"
	"dsmcp/internal/repopaths"
	"dsmcp/internal/search"
	"dsmcp/pkg/fileops"
)

const (
	componentHint = "Call list_components to see available component ids."
	storyHint     = "Call list_stories to see available story names."
	docHint       = "Call list_docs to see available doc names."
)

type handlers struct {
	paths      repopaths.RepoPaths
	searchOpts []search.Option
}

func decode(input json.RawMessage, dst any) error {
	if err := json.Unmarshal(input, dst); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

type listComponentsInput struct {
	Category catalog.Category `json:"category"`
}

type componentList struct {
	Count      int                 `json:"count"`
	Components []catalog.Component `json:"components"`
}

func (h *handlers) listComponents(input json.RawMessage) (any, error) {
	var in listComponentsInput
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	components, err := catalog.ListComponents(h.paths)
	if err != nil {
		return nil, err
	}
	if in.Category != "" {
		components = catalog.FilterByCategory(components, in.Category)
	}
	return componentList{Count: len(components), Components: components}, nil
}

type getComponentSourceInput struct {
	ID string `json:"id"`
}

type componentSource struct {
	Component catalog.Component `json:"component"`
	Source    string            `json:"source"`
}

func (h *handlers) getComponentSource(input json.RawMessage) (any, error) {
	var in getComponentSourceInput
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	c, ok, err := catalog.FindComponentByID(h.paths, in.ID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Kind: "Component", Key: in.ID, Hint: componentHint}
	}

	source, err := fileops.ReadIndexed(c.FilePath)
	if err != nil {
		return nil, err
	}
	return componentSource{Component: c, Source: string(source)}, nil
}

type searchInput struct {
	Query         string `json:"query"`
	Limit         int    `json:"limit"`
	IncludeSource bool   `json:"includeSource"`
}

type searchResult struct {
	Query         string       `json:"query"`
	Limit         int          `json:"limit"`
	IncludeSource bool         `json:"includeSource"`
	Count         int          `json:"count"`
	Hits          []search.Hit `json:"hits"`
}

func (h *handlers) search(input json.RawMessage) (any, error) {
	in := searchInput{Limit: DefaultSearchLimit}
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	hits, err := search.Search(h.paths, in.Query, in.Limit, in.IncludeSource, h.searchOpts...)
	if err != nil {
		return nil, err
	}
	return searchResult{
		Query:         in.Query,
		Limit:         in.Limit,
		IncludeSource: in.IncludeSource,
		Count:         len(hits),
		Hits:          hits,
	}, nil
}

type storyList struct {
	Count   int             `json:"count"`
	Stories []catalog.Story `json:"stories"`
}

func (h *handlers) listStories(json.RawMessage) (any, error) {
	stories, err := catalog.ListStories(h.paths)
	if err != nil {
		return nil, err
	}
	return storyList{Count: len(stories), Stories: stories}, nil
}

type getStorySourceInput struct {
	Name string `json:"name"`
}

type storySource struct {
	Story  catalog.Story `json:"story"`
	Source string        `json:"source"`
}

func (h *handlers) getStorySource(input json.RawMessage) (any, error) {
	var in getStorySourceInput
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	s, ok, err := catalog.FindStoryByName(h.paths, in.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Kind: "Story", Key: in.Name, Hint: storyHint}
	}

	source, err := fileops.ReadIndexed(s.FilePath)
	if err != nil {
		return nil, err
	}
	return storySource{Story: s, Source: string(source)}, nil
}

type suggestStoryInput struct {
	ComponentID string `json:"componentId"`
}

type storySuggestion struct {
	ComponentID        string         `json:"componentId"`
	SuggestedStoryName string         `json:"suggestedStoryName"`
	Exists             bool           `json:"exists"`
	Story              *catalog.Story `json:"story,omitempty"`
}

func (h *handlers) suggestStoryForComponent(input json.RawMessage) (any, error) {
	var in suggestStoryInput
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	c, ok, err := catalog.FindComponentByID(h.paths, in.ComponentID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Kind: "Component", Key: in.ComponentID, Hint: componentHint}
	}

	suggestion := storySuggestion{
		ComponentID:        c.ID,
		SuggestedStoryName: catalog.BestGuessStoryName(c.FileStem),
	}
	s, exists, err := catalog.FindStoryByName(h.paths, suggestion.SuggestedStoryName)
	if err != nil {
		return nil, err
	}
	if exists {
		suggestion.Exists = true
		suggestion.Story = &s
	}
	return suggestion, nil
}

type docList struct {
	Count int           `json:"count"`
	Docs  []catalog.Doc `json:"docs"`
}

func (h *handlers) listDocs(json.RawMessage) (any, error) {
	docs, err := catalog.ListDocs(h.paths)
	if err != nil {
		return nil, err
	}
	return docList{Count: len(docs), Docs: docs}, nil
}

type getDocInput struct {
	Name string `json:"name"`
}

type docContent struct {
	Doc     catalog.Doc `json:"doc"`
	Content string      `json:"content"`
}

func (h *handlers) getDoc(input json.RawMessage) (any, error) {
	var in getDocInput
	if err := decode(input, &in); err != nil {
		return nil, err
	}

	d, ok, err := catalog.FindDocByName(h.paths, in.Name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &NotFoundError{Kind: "Doc", Key: in.Name, Hint: docHint}
	}

	raw, err := fileops.ReadIndexed(d.FilePath)
	if err != nil {
		return nil, err
	}
	_, body := catalog.ParseDoc(raw)
	return docContent{Doc: d, Content: string(body)}, nil
}

type repoInfo struct {
	repopaths.RepoPaths
	ComponentsDirExists bool          `json:"componentsDirExists"`
	StoriesDirExists    bool          `json:"storiesDirExists"`
	DocsDirExists       bool          `json:"docsDirExists"`
	Git                 *gitinfo.Info `json:"git,omitempty"`
}

func (h *handlers) getRepoInfo(json.RawMessage) (any, error) {
	info := repoInfo{
		RepoPaths:           h.paths,
		ComponentsDirExists: fileops.PathExists(h.paths.ComponentsDir),
		StoriesDirExists:    fileops.PathExists(h.paths.StoriesDir),
		DocsDirExists:       fileops.PathExists(h.paths.DocsDir),
	}

	g, err := gitinfo.Describe(h.paths.RepoRoot)
	switch {
	case errors.Is(err, gitinfo.ErrNotRepository):
	case err != nil:
		return nil, err
	default:
		info.Git = &g
	}
	return info, nil
}
