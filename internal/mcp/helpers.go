package mcp

import (
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// Widget metadata keys understood by widget-capable hosts.
const (
	metaOutputTemplate    = "openai/outputTemplate"
	metaWidgetDescription = "openai/widgetDescription"
	metaWidgetCSP         = "openai/widgetCSP"
	metaVisibility        = "openai/visibility"
)

// textResult builds a plain success response.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// errorResult builds a non-fatal error response. The message stays in normal
// text content so the assistant can read and relay it; only IsError marks it
// as failed.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
		IsError: true,
	}
}

// upstreamErrorResult renders an upstream API failure as a readable error
// response. Upstream errors never become protocol-level exceptions.
func upstreamErrorResult(operation string, err error) *mcp.CallToolResult {
	var apiErr *timesheet.APIError
	if errors.As(err, &apiErr) {
		return errorResult(fmt.Sprintf("%s failed: %s", operation, apiErr.Error()))
	}
	return errorResult(fmt.Sprintf("%s failed: %s", operation, err.Error()))
}

// withWidget attaches widget metadata to a result so a capable host can
// render the matching component. Unknown component names leave the result
// untouched.
func (d *toolDeps) withWidget(result *mcp.CallToolResult, component string) *mcp.CallToolResult {
	if d.widgets == nil {
		return result
	}
	widget, ok := d.widgets.Get(component)
	if !ok {
		return result
	}
	if result.Meta == nil {
		result.Meta = mcp.Meta{}
	}
	result.Meta[metaOutputTemplate] = widget.URI()
	result.Meta[metaWidgetDescription] = widget.Description
	result.Meta[metaWidgetCSP] = map[string]any{
		"connect_domains":  widget.CSP.ConnectDomains,
		"resource_domains": widget.CSP.ResourceDomains,
	}
	result.Meta[metaVisibility] = widget.Visibility
	return result
}

// orUntitled substitutes the neutral default for a missing title.
func orUntitled(s string) string {
	if strings.TrimSpace(s) == "" {
		return "Untitled"
	}
	return s
}

// formatDuration renders seconds as "Hh MMm".
func formatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// billableLabel renders the billable flag for text summaries.
func billableLabel(billable bool) string {
	if billable {
		return "billable"
	}
	return "non-billable"
}
