// Package mcp provides the Model Context Protocol server for the Timesheet
// API. It exposes timer, project, task, team, export, and statistics
// operations as MCP tools, and serves the bundled UI widgets as ui://
// resources.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// ServerName is the MCP server implementation name.
const ServerName = "timesheet-mcp"

// Stats pagination defaults. The page cap bounds the total records fetched
// for a statistics range; it is configurable via STATS_MAX_PAGES rather
// than hard-coded so large ranges can opt into more data.
const (
	DefaultStatsPageSize = 100
	DefaultStatsMaxPages = 10
)

// Options tunes server behavior.
type Options struct {
	// StatsMaxPages caps how many task pages stats_get fetches. Zero means
	// DefaultStatsMaxPages.
	StatsMaxPages int
	// StatsPageSize is the page size for stats task fetches. Zero means
	// DefaultStatsPageSize.
	StatsPageSize int
}

// toolDeps bundles what tool handlers need.
type toolDeps struct {
	client  *timesheet.Client
	widgets *widgets.Registry
	opts    Options
}

// NewServer creates an MCP server with all timesheet tools and widget
// resources registered. The client carries the caller's credential; under
// the stateless HTTP transport a fresh server and client are built per
// request.
func NewServer(version string, client *timesheet.Client, registry *widgets.Registry, opts Options) *mcp.Server {
	if opts.StatsMaxPages <= 0 {
		opts.StatsMaxPages = DefaultStatsMaxPages
	}
	if opts.StatsPageSize <= 0 {
		opts.StatsPageSize = DefaultStatsPageSize
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: version,
	}, &mcp.ServerOptions{
		Instructions: "Timesheet MCP server for time tracking: start and stop timers, " +
			"manage projects and tasks, add notes/expenses/pauses to the running task, " +
			"generate exports, and compute statistics over date ranges.",
	})

	deps := &toolDeps{client: client, widgets: registry, opts: opts}
	registerTools(server, deps)
	registerResources(server, registry)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(true),
	}
}

// writeAnnotations returns annotations for additive write tools.
func writeAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(true),
	}
}

// destructiveAnnotations returns annotations for delete tools.
func destructiveAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		DestructiveHint: boolPtr(true),
		OpenWorldHint:   boolPtr(true),
	}
}

// registerTools adds all timesheet tools to the server.
func registerTools(server *mcp.Server, deps *toolDeps) {
	registerTimerTools(server, deps)
	registerTaskTools(server, deps)
	registerProjectTools(server, deps)
	registerTeamTools(server, deps)
	registerExportTools(server, deps)
	registerStatsTools(server, deps)
}
