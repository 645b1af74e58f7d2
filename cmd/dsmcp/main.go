// Package main is the entry point for the dsmcp binary.
//
// dsmcp is meant to be installed at tools/dsmcp/bin inside a design-system
// repository and started by an MCP client. With no subcommand it serves the
// design-system tools on stdio; the other subcommands run the same tools from
// a terminal.
package main

import (
	"os"

	"dsmcp/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
