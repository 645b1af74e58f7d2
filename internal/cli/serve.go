package cli

import (
	"dsmcp/internal/mcp"

	"github.com/spf13/cobra"
)

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the design-system tools over MCP on stdio (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, _ []string) error {
	s, err := mcp.NewServer(a.router, a.logger, a.version)
	if err != nil {
		return err
	}
	return s.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
