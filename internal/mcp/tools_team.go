package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// teamListOutput is the structured content for team_list.
type teamListOutput struct {
	Teams []timesheet.Team `json:"teams"`
}

func registerTeamTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "team_list",
		Description: "List the teams the authenticated user belongs to, with members.",
		Annotations: readOnlyAnnotations(),
	}, handleTeamList(deps))
}

func handleTeamList(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		teams, err := deps.client.ListTeams(ctx)
		if err != nil {
			return upstreamErrorResult("Listing teams", err), nil, nil
		}

		result := textResult(formatTeamList(teams))
		result.StructuredContent = teamListOutput{Teams: teams}
		return result, nil, nil
	}
}
