package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/stats"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// StatsGetInput is the input for stats_get.
type StatsGetInput struct {
	StartDate string `json:"start_date"           jsonschema:"range start date YYYY-MM-DD (inclusive)"`
	EndDate   string `json:"end_date"             jsonschema:"range end date YYYY-MM-DD (inclusive)"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict statistics to one project"`
}

func registerStatsTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "stats_get",
		Description: "Compute time statistics for a date range: total/billable hours, " +
			"per-project breakdown, daily series, and weekly roll-up for ranges over two weeks.",
		Annotations: readOnlyAnnotations(),
	}, handleStatsGet(deps))
}

func handleStatsGet(deps *toolDeps) mcp.ToolHandlerFor[StatsGetInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input StatsGetInput) (*mcp.CallToolResult, any, error) {
		if input.StartDate == "" || input.EndDate == "" {
			return errorResult("start_date and end_date are required (YYYY-MM-DD)"), nil, nil
		}

		tasks, truncated, err := deps.fetchTasksForRange(ctx, input)
		if err != nil {
			return upstreamErrorResult("Fetching tasks", err), nil, nil
		}

		result, err := stats.Aggregate(tasks, input.StartDate, input.EndDate)
		if err != nil {
			return errorResult(err.Error()), nil, nil
		}

		text := formatStats(result)
		if truncated {
			text += "\nNote: the range contains more tasks than the fetch cap; totals may be incomplete. " +
				"Raise STATS_MAX_PAGES to include more."
		}

		response := textResult(text)
		response.StructuredContent = result
		return deps.withWidget(response, "StatsDashboard"), nil, nil
	}
}

// fetchTasksForRange paginates sequentially through the task search endpoint
// up to the configured page cap. The bool reports whether the cap truncated
// the result set.
func (d *toolDeps) fetchTasksForRange(ctx context.Context, input StatsGetInput) ([]timesheet.Task, bool, error) {
	var tasks []timesheet.Task
	for page := 1; page <= d.opts.StatsMaxPages; page++ {
		result, err := d.client.SearchTasks(ctx, timesheet.TaskSearch{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			ProjectID: input.ProjectID,
			Limit:     d.opts.StatsPageSize,
			Page:      page,
		})
		if err != nil {
			return nil, false, err
		}
		tasks = append(tasks, result.Items...)
		if len(result.Items) < d.opts.StatsPageSize {
			return tasks, false, nil
		}
		if result.Total > 0 && len(tasks) >= result.Total {
			return tasks, false, nil
		}
	}
	return tasks, true, nil
}
