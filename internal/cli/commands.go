package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"dsmcp/internal/catalog"
	"dsmcp/internal/tools"

	"github.com/spf13/cobra"
)

func (a *app) callCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Call one tool and print its payload",
		Long: `Call one tool exactly as an MCP client would and print its payload.

Example:
  dsmcp call get_component_source '{"id":"atoms/button"}' --format json`,
		Args: cobra.RangeArgs(1, 2),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var names []string
			if a.router != nil {
				for _, d := range a.router.ListTools() {
					names = append(names, string(d.Name))
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var arguments map[string]any
			if len(args) == 2 {
				if err := json.Unmarshal([]byte(args[1]), &arguments); err != nil {
					return fmt.Errorf("arguments must be a JSON object: %w", err)
				}
			}
			return a.call(cmd, tools.Name(args[0]), arguments)
		},
	}
}

func (a *app) componentsCommand() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "components",
		Short: "List components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := map[string]any{}
			if category != "" {
				args["category"] = category
			}
			return a.call(cmd, tools.ListComponents, args)
		},
	}
	names := make([]string, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		names = append(names, string(c))
	}
	cmd.Flags().StringVar(&category, "category", "", "only list this category ("+strings.Join(names, ", ")+")")
	return cmd
}

func (a *app) storiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stories",
		Short: "List Storybook stories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, tools.ListStories, nil)
		},
	}
}

func (a *app) searchCommand() *cobra.Command {
	var (
		limit         int
		includeSource bool
	)
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search component ids, sources and story names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.call(cmd, tools.Search, map[string]any{
				"query":         args[0],
				"limit":         limit,
				"includeSource": includeSource,
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", tools.DefaultSearchLimit, fmt.Sprintf("maximum number of hits (1-%d)", tools.MaxSearchLimit))
	cmd.Flags().BoolVar(&includeSource, "source", false, "also search component source files")
	return cmd
}

func (a *app) docsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "docs [name]",
		Short: "List docs, or render one doc",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return a.call(cmd, tools.ListDocs, nil)
			}
			return a.call(cmd, tools.GetDoc, map[string]any{"name": args[0]})
		},
	}
}

func (a *app) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the indexed directories and git revision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.call(cmd, tools.GetRepoInfo, nil)
		},
	}
}
