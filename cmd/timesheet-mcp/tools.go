// Package main provides the entry point for the timesheet-mcp CLI.
package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	timesheetmcp "github.com/hourstack/timesheet-mcp/internal/mcp"
	"github.com/hourstack/timesheet-mcp/internal/output"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// newToolsCmd creates the tools command, which lists every registered tool.
func newToolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the MCP tools this server exposes",
		Long: `List every MCP tool this server registers, with its description
and whether it is read-only or can modify data.

Useful when wiring the server into an agent environment and deciding
which tools to allow.`,
		RunE: runTools,
	}
}

func runTools(cmd *cobra.Command, _ []string) error {
	jsonMode := isJSONMode(cmd)
	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))

	tools, err := listTools(cmd.Context())
	if err != nil {
		return output.NewSystemErrorWithCause("listing tools", err)
	}

	if jsonMode {
		if err := printer.WriteJSON(tools); err != nil {
			return output.NewSystemErrorWithCause("writing JSON", err)
		}
		return nil
	}

	rows := make([][]string, 0, len(tools))
	for _, tool := range tools {
		access := "write"
		if tool.Annotations != nil && tool.Annotations.ReadOnlyHint {
			access = "read-only"
		}
		rows = append(rows, []string{tool.Name, access, tool.Description})
	}
	printer.Table([]string{"NAME", "ACCESS", "DESCRIPTION"}, rows)
	return nil
}

// listTools asks the server itself over an in-memory session, so the output
// always matches what a real client would see.
func listTools(ctx context.Context) ([]*mcp.Tool, error) {
	registry, err := widgets.Load()
	if err != nil {
		return nil, err
	}
	server := timesheetmcp.NewServer(buildVersion(), timesheet.New(""), registry, timesheetmcp.Options{})

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		return nil, err
	}
	client := mcp.NewClient(&mcp.Implementation{Name: "timesheet-mcp-cli", Version: buildVersion()}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return nil, err
	}
	defer session.Close() //nolint:errcheck

	result, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return nil, err
	}
	return result.Tools, nil
}
