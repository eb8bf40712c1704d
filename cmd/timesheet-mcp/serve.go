// Package main provides the entry point for the timesheet-mcp CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/hourstack/timesheet-mcp/internal/config"
	timesheetmcp "github.com/hourstack/timesheet-mcp/internal/mcp"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// newServeCmd creates the serve command for running as an MCP server over
// stdio.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run timesheet-mcp as a Model Context Protocol server over stdio.

This exposes Timesheet operations as MCP tools that any MCP-capable agent
environment can use (Claude Code, Cursor, Windsurf, Gemini CLI, etc).

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "timesheet": {
        "command": "timesheet-mcp",
        "args": ["serve"],
        "env": { "TIMESHEET_API_TOKEN": "<your API token>" }
      }
    }
  }`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			// stdout carries the protocol; logs go to stderr.
			logger := newLogger()

			opts := []timesheet.Option{timesheet.WithLogger(logger)}
			if cfg.APIURL != "" {
				opts = append(opts, timesheet.WithBaseURL(cfg.APIURL))
			}
			client := timesheet.New(cfg.APIToken, opts...)

			registry, err := widgets.Load()
			if err != nil {
				return err
			}
			registry = registry.WithAssetOrigin(cfg.ComponentBaseURL)

			server := timesheetmcp.NewServer(buildVersion(), client, registry, timesheetmcp.Options{
				StatsMaxPages: cfg.StatsMaxPages,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}

// newLogger builds the structured JSON logger. Stderr always, never stdout.
func newLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
