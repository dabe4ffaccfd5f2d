package main

import (
	"cloud.google.com/go/civil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/quill/internal/config"
	"github.com/gorewood/quill/internal/logger"
	quillmcp "github.com/gorewood/quill/internal/mcp"
	"github.com/gorewood/quill/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run quill as a Model Context Protocol (MCP) server over stdio.

This exposes the journal read-only to any MCP-capable agent environment.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "quill": {
        "command": "quill",
        "args": ["serve"]
      }
    }
  }

Available tools: streak, stats, query, show, render`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// stdout carries the protocol, so errors go to stderr.
			printer := output.NewPrinter(cmd.ErrOrStderr(), false, false)
			env, err := openJournal(cmd)
			if err != nil {
				printer.Error(err)
				return err
			}
			if _, err := resolveToday(env.cfg, ""); err != nil {
				printer.Error(err)
				return err
			}

			timezone := env.cfg.Timezone
			server := quillmcp.NewServer(buildVersion(), env.journal, quillmcp.Options{
				Today: func() civil.Date {
					today, _ := config.Today(timezone)
					return today
				},
				PreviewChars: env.cfg.PreviewChars,
			})

			logger.Info("mcp server starting", "location", env.journal.Location())
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
