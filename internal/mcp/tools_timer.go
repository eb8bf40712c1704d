package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// --- Inputs ---

// TimerStartInput is the input for timer_start.
type TimerStartInput struct {
	ProjectID   string `json:"project_id,omitempty"  jsonschema:"project to book the timer on"`
	Description string `json:"description,omitempty" jsonschema:"what is being worked on"`
	Billable    *bool  `json:"billable,omitempty"    jsonschema:"whether the time is billable"`
}

// TimerUpdateInput is the input for timer_update.
type TimerUpdateInput struct {
	ProjectID   string `json:"project_id,omitempty"  jsonschema:"move the running timer to this project"`
	Description string `json:"description,omitempty" jsonschema:"new description for the running task"`
	Billable    *bool  `json:"billable,omitempty"    jsonschema:"new billable flag"`
}

// emptyInput is shared by tools that take no parameters.
type emptyInput struct{}

// timerStatusOutput is the structured content for timer_status.
type timerStatusOutput struct {
	Status   string          `json:"status"`
	Task     *timesheet.Task `json:"task,omitempty"`
	User     string          `json:"user,omitempty"`
	Timezone string          `json:"timezone,omitempty"`
}

func registerTimerTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_status",
		Description: "Get the current timer state: status (running/paused/stopped), active task, and elapsed time.",
		Annotations: readOnlyAnnotations(),
	}, handleTimerStatus(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_start",
		Description: "Start a new timer, optionally on a project with a description.",
		Annotations: writeAnnotations(),
	}, handleTimerStart(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_stop",
		Description: "Stop the running timer and finalize its task.",
		Annotations: writeAnnotations(),
	}, handleTimerStop(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_pause",
		Description: "Pause the running timer.",
		Annotations: writeAnnotations(),
	}, handleTimerPause(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_resume",
		Description: "Resume a paused timer.",
		Annotations: writeAnnotations(),
	}, handleTimerResume(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "timer_update",
		Description: "Update the running timer's project, description, or billable flag.",
		Annotations: writeAnnotations(),
	}, handleTimerUpdate(deps))
}

func handleTimerStatus(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		// Timer state and account data are independent reads; fetch them
		// concurrently. Only the timer fetch is required to answer.
		var (
			timer    *timesheet.Timer
			profile  *timesheet.Profile
			settings *timesheet.Settings
		)
		group, groupCtx := errgroup.WithContext(ctx)
		group.Go(func() error {
			var err error
			timer, err = deps.client.CurrentTimer(groupCtx)
			return err
		})
		group.Go(func() error {
			profile, _ = deps.client.GetProfile(groupCtx)
			return nil
		})
		group.Go(func() error {
			settings, _ = deps.client.GetSettings(groupCtx)
			return nil
		})
		if err := group.Wait(); err != nil {
			return upstreamErrorResult("Fetching timer status", err), nil, nil
		}

		out := timerStatusOutput{Status: timer.Status, Task: timer.Task}
		if profile != nil {
			out.User = profile.Email
		}
		if settings != nil {
			out.Timezone = settings.Timezone
		}

		result := textResult(formatTimer(timer))
		result.StructuredContent = out
		return deps.withWidget(result, "TimerStatus"), nil, nil
	}
}

func handleTimerStart(deps *toolDeps) mcp.ToolHandlerFor[TimerStartInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimerStartInput) (*mcp.CallToolResult, any, error) {
		timer, err := deps.client.StartTimer(ctx, timesheet.StartTimerInput{
			ProjectID:   input.ProjectID,
			Description: input.Description,
			Billable:    input.Billable,
		})
		if err != nil {
			return upstreamErrorResult("Starting timer", err), nil, nil
		}
		return deps.timerResult(timer), nil, nil
	}
}

func handleTimerStop(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		timer, err := deps.client.StopTimer(ctx)
		if err != nil {
			return upstreamErrorResult("Stopping timer", err), nil, nil
		}
		return deps.timerResult(timer), nil, nil
	}
}

func handleTimerPause(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		timer, err := deps.client.PauseTimer(ctx)
		if err != nil {
			return upstreamErrorResult("Pausing timer", err), nil, nil
		}
		return deps.timerResult(timer), nil, nil
	}
}

func handleTimerResume(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		timer, err := deps.client.ResumeTimer(ctx)
		if err != nil {
			return upstreamErrorResult("Resuming timer", err), nil, nil
		}
		return deps.timerResult(timer), nil, nil
	}
}

func handleTimerUpdate(deps *toolDeps) mcp.ToolHandlerFor[TimerUpdateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TimerUpdateInput) (*mcp.CallToolResult, any, error) {
		timer, err := deps.client.UpdateTimer(ctx, timesheet.UpdateTimerInput{
			ProjectID:   input.ProjectID,
			Description: input.Description,
			Billable:    input.Billable,
		})
		if err != nil {
			return upstreamErrorResult("Updating timer", err), nil, nil
		}
		return deps.timerResult(timer), nil, nil
	}
}

// timerResult builds the standard timer response with widget metadata.
func (d *toolDeps) timerResult(timer *timesheet.Timer) *mcp.CallToolResult {
	result := textResult(formatTimer(timer))
	result.StructuredContent = timerStatusOutput{Status: timer.Status, Task: timer.Task}
	return d.withWidget(result, "TimerStatus")
}
