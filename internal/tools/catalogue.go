package tools

import (
	"encoding/json"

	"dsmcp/internal/catalog"

	"github.com/google/jsonschema-go/jsonschema"
)

// Name identifies a tool.
type Name string

const (
	ListComponents           Name = "list_components"
	GetComponentSource       Name = "get_component_source"
	Search                   Name = "search"
	ListStories              Name = "list_stories"
	GetStorySource           Name = "get_story_source"
	SuggestStoryForComponent Name = "suggest_story_for_component"
	ListDocs                 Name = "list_docs"
	GetDoc                   Name = "get_doc"
	GetRepoInfo              Name = "get_repo_info"
)

// Search argument bounds.
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 50
)

// handlerFunc receives arguments that already passed schema validation.
type handlerFunc func(h *handlers, input json.RawMessage) (any, error)

type toolSpec struct {
	name        Name
	description string
	schema      *jsonschema.Schema
	handle      handlerFunc
}

// catalogue lists every tool in the order tools/list reports them.
func catalogue() []toolSpec {
	return []toolSpec{
		{
			name:        ListComponents,
			description: "List the design-system components (atoms, molecules, organisms) with their ids and file paths. Optionally filter by category.",
			schema: object(map[string]*jsonschema.Schema{
				"category": {
					Type:        "string",
					Description: "Only return components of this category",
					Enum:        categoryEnum(),
				},
			}),
			handle: (*handlers).listComponents,
		},
		{
			name:        GetComponentSource,
			description: "Return the source code of one component. Use an id from list_components, e.g. \"atoms/button\". Matching is case-insensitive.",
			schema: object(map[string]*jsonschema.Schema{
				"id": {Type: "string", Description: "Component id, <category>/<file-stem>"},
			}, "id"),
			handle: (*handlers).getComponentSource,
		},
		{
			name:        Search,
			description: "Case-insensitive substring search over component ids, optionally component source, and story names.",
			schema: object(map[string]*jsonschema.Schema{
				"query": {Type: "string", Description: "Text to look for", MinLength: intPtr(1)},
				"limit": {
					Type:        "integer",
					Description: "Maximum number of hits",
					Minimum:     floatPtr(1),
					Maximum:     floatPtr(MaxSearchLimit),
					Default:     json.RawMessage("20"),
				},
				"includeSource": {
					Type:        "boolean",
					Description: "Also match inside component source files",
					Default:     json.RawMessage("false"),
				},
			}, "query"),
			handle: (*handlers).search,
		},
		{
			name:        ListStories,
			description: "List the Storybook stories (*.stories.tsx) with their names and file paths.",
			schema:      object(nil),
			handle:      (*handlers).listStories,
		},
		{
			name:        GetStorySource,
			description: "Return the source of one story by name, e.g. \"Button\". Matching is case-insensitive.",
			schema: object(map[string]*jsonschema.Schema{
				"name": {Type: "string", Description: "Story name without .stories.tsx"},
			}, "name"),
			handle: (*handlers).getStorySource,
		},
		{
			name:        SuggestStoryForComponent,
			description: "Guess the story name for a component (split-button -> SplitButton) and report whether that story exists.",
			schema: object(map[string]*jsonschema.Schema{
				"componentId": {Type: "string", Description: "Component id from list_components"},
			}, "componentId"),
			handle: (*handlers).suggestStoryForComponent,
		},
		{
			name:        ListDocs,
			description: "List the markdown docs of the design system with their titles.",
			schema:      object(nil),
			handle:      (*handlers).listDocs,
		},
		{
			name:        GetDoc,
			description: "Return the body of one doc by name, e.g. \"getting-started\" or \"tokens/colors\".",
			schema: object(map[string]*jsonschema.Schema{
				"name": {Type: "string", Description: "Doc name from list_docs"},
			}, "name"),
			handle: (*handlers).getDoc,
		},
		{
			name:        GetRepoInfo,
			description: "Report the directories being indexed and the git revision of the repository.",
			schema:      object(nil),
			handle:      (*handlers).getRepoInfo,
		},
	}
}

func object(properties map[string]*jsonschema.Schema, required ...string) *jsonschema.Schema {
	if properties == nil {
		properties = map[string]*jsonschema.Schema{}
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

func categoryEnum() []any {
	enum := make([]any, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		enum = append(enum, string(c))
	}
	return enum
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
