// Package cli wires the cobra command tree of the dsmcp binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"dsmcp/internal/config"
	"dsmcp/internal/logging"
	"dsmcp/internal/repopaths"
	"dsmcp/internal/tools"
	"dsmcp/internal/ui"

	"github.com/spf13/cobra"
)

// errToolFailed marks a tool call whose error payload was already printed.
var errToolFailed = errors.New("tool call failed")

type app struct {
	version  string
	repoRoot string
	format   string

	logger *logging.AppLogger
	router *tools.Router
}

// NewRootCommand builds the command tree. Running the root command without a
// subcommand starts the MCP server.
func NewRootCommand(version string) *cobra.Command {
	a := &app{version: version}

	root := &cobra.Command{
		Use:   "dsmcp",
		Short: "Design-system introspection over MCP",
		Long: `dsmcp indexes the components, Storybook stories and docs of a design-system
repository and serves them to MCP clients over stdio.

The repository root is taken from, in order: --repo-root, the DSMCP_REPO_ROOT
environment variable, repo_root in the config file, and finally three
directories above the dsmcp executable.

Configuration for Claude Code:
  claude mcp add design-system -- dsmcp serve`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runServe,
	}

	root.PersistentFlags().StringVar(&a.repoRoot, "repo-root", "", "design-system repository root (overrides "+repopaths.EnvRepoRoot+")")
	root.PersistentFlags().StringVar(&a.format, "format", string(formatTable), "output format: json, toon or table")

	root.AddCommand(
		a.serveCommand(),
		a.callCommand(),
		a.componentsCommand(),
		a.storiesCommand(),
		a.searchCommand(),
		a.docsCommand(),
		a.infoCommand(),
	)
	return root
}

// Execute runs the CLI and reports whether it succeeded. SIGINT and SIGTERM
// cancel the command context.
func Execute(version string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand(version)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errToolFailed) {
		fmt.Fprintln(root.ErrOrStderr(), ui.Error(err.Error(), ""))
	}
	return err
}

// setup loads config, builds the logger and resolves the repository.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := validateFormat(a.format); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a.logger = logging.NewAppLoggerWithOptions(logging.Options{
		Level:  cfg.LogLevel,
		Output: cmd.ErrOrStderr(),
	})
	logging.SetDefault(a.logger)

	override := repopaths.Override(a.repoRoot, os.Getenv(repopaths.EnvRepoRoot), cfg.RepoRoot)
	var installDir string
	if override == "" {
		installDir, err = repopaths.InstallDir()
		if err != nil {
			return err
		}
	}
	paths := repopaths.Resolve(installDir, override)
	a.logger.Debug("Resolved repository", "root", paths.RepoRoot, "override", override != "")

	a.router, err = tools.NewRouter(paths, a.logger)
	return err
}
