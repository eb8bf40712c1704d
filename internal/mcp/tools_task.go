package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// noRunningTimerMessage is returned by enhancement tools when there is no
// active task to attach to. No upstream write is attempted in that case.
const noRunningTimerMessage = "No running timer found. Start a timer first, then add notes, expenses, or pauses to it."

// --- Inputs ---

// TaskListInput is the input for task_list.
type TaskListInput struct {
	StartDate string `json:"start_date"           jsonschema:"range start date YYYY-MM-DD (inclusive)"`
	EndDate   string `json:"end_date"             jsonschema:"range end date YYYY-MM-DD (inclusive)"`
	ProjectID string `json:"project_id,omitempty" jsonschema:"restrict to one project"`
	Limit     int    `json:"limit,omitempty"      jsonschema:"maximum tasks to return (default 50, max 200)"`
	Page      int    `json:"page,omitempty"       jsonschema:"1-based page number"`
}

// TaskCreateInput is the input for task_create.
type TaskCreateInput struct {
	ProjectID     string `json:"project_id,omitempty"  jsonschema:"project to book the task on"`
	Description   string `json:"description,omitempty" jsonschema:"what was worked on"`
	StartDateTime string `json:"start_date_time"       jsonschema:"ISO 8601 start timestamp"`
	EndDateTime   string `json:"end_date_time"         jsonschema:"ISO 8601 end timestamp"`
	Billable      *bool  `json:"billable,omitempty"    jsonschema:"whether the time is billable"`
}

// TaskUpdateInput is the input for task_update.
type TaskUpdateInput struct {
	TaskID        string `json:"task_id"                   jsonschema:"task to update"`
	ProjectID     string `json:"project_id,omitempty"      jsonschema:"move the task to this project"`
	Description   string `json:"description,omitempty"     jsonschema:"new description"`
	StartDateTime string `json:"start_date_time,omitempty" jsonschema:"new start timestamp"`
	EndDateTime   string `json:"end_date_time,omitempty"   jsonschema:"new end timestamp"`
	Billable      *bool  `json:"billable,omitempty"        jsonschema:"new billable flag"`
}

// TaskDeleteInput is the input for task_delete.
type TaskDeleteInput struct {
	TaskID string `json:"task_id" jsonschema:"task to delete"`
}

// TaskAddNoteInput is the input for task_add_note.
type TaskAddNoteInput struct {
	Text string `json:"text" jsonschema:"note text to attach to the running task"`
}

// TaskAddExpenseInput is the input for task_add_expense.
type TaskAddExpenseInput struct {
	Description string  `json:"description,omitempty" jsonschema:"what the expense was for"`
	Amount      float64 `json:"amount"                jsonschema:"expense amount in the account currency"`
}

// TaskAddPauseInput is the input for task_add_pause.
type TaskAddPauseInput struct {
	StartDateTime string `json:"start_date_time,omitempty" jsonschema:"pause start, ISO 8601 (default now)"`
	EndDateTime   string `json:"end_date_time,omitempty"   jsonschema:"pause end, ISO 8601"`
	Description   string `json:"description,omitempty"     jsonschema:"reason for the pause"`
}

// taskListOutput is the structured content for task_list.
type taskListOutput struct {
	Tasks []timesheet.Task `json:"tasks"`
	Total int              `json:"total"`
}

func registerTaskTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_list",
		Description: "List tasks in a date range, optionally filtered by project.",
		Annotations: readOnlyAnnotations(),
	}, handleTaskList(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_create",
		Description: "Create a completed task with explicit start and end timestamps.",
		Annotations: writeAnnotations(),
	}, handleTaskCreate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_update",
		Description: "Update an existing task's project, description, timestamps, or billable flag.",
		Annotations: writeAnnotations(),
	}, handleTaskUpdate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_delete",
		Description: "Delete a task permanently.",
		Annotations: destructiveAnnotations(),
	}, handleTaskDelete(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_add_note",
		Description: "Attach a note to the currently running task. Requires an active timer.",
		Annotations: writeAnnotations(),
	}, handleTaskAddNote(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_add_expense",
		Description: "Attach an expense to the currently running task. Requires an active timer.",
		Annotations: writeAnnotations(),
	}, handleTaskAddExpense(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "task_add_pause",
		Description: "Record a manual break on the currently running task. Requires an active timer.",
		Annotations: writeAnnotations(),
	}, handleTaskAddPause(deps))
}

func handleTaskList(deps *toolDeps) mcp.ToolHandlerFor[TaskListInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskListInput) (*mcp.CallToolResult, any, error) {
		if input.StartDate == "" || input.EndDate == "" {
			return errorResult("start_date and end_date are required (YYYY-MM-DD)"), nil, nil
		}
		limit := input.Limit
		if limit <= 0 {
			limit = 50
		}
		if limit > 200 {
			limit = 200
		}

		page, err := deps.client.SearchTasks(ctx, timesheet.TaskSearch{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
			ProjectID: input.ProjectID,
			Limit:     limit,
			Page:      input.Page,
		})
		if err != nil {
			return upstreamErrorResult("Listing tasks", err), nil, nil
		}

		result := textResult(formatTaskList(page.Items, page.Total))
		result.StructuredContent = taskListOutput{Tasks: page.Items, Total: page.Total}
		return deps.withWidget(result, "TaskList"), nil, nil
	}
}

func handleTaskCreate(deps *toolDeps) mcp.ToolHandlerFor[TaskCreateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskCreateInput) (*mcp.CallToolResult, any, error) {
		if input.StartDateTime == "" || input.EndDateTime == "" {
			return errorResult("start_date_time and end_date_time are required"), nil, nil
		}

		task, err := deps.client.CreateTask(ctx, timesheet.CreateTaskInput{
			ProjectID:     input.ProjectID,
			Description:   input.Description,
			StartDateTime: input.StartDateTime,
			EndDateTime:   input.EndDateTime,
			Billable:      input.Billable,
		})
		if err != nil {
			return upstreamErrorResult("Creating task", err), nil, nil
		}

		result := textResult("Created.\n" + formatTask(task))
		result.StructuredContent = task
		return result, nil, nil
	}
}

func handleTaskUpdate(deps *toolDeps) mcp.ToolHandlerFor[TaskUpdateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskUpdateInput) (*mcp.CallToolResult, any, error) {
		if input.TaskID == "" {
			return errorResult("task_id is required"), nil, nil
		}

		task, err := deps.client.UpdateTask(ctx, input.TaskID, timesheet.UpdateTaskInput{
			ProjectID:     input.ProjectID,
			Description:   input.Description,
			StartDateTime: input.StartDateTime,
			EndDateTime:   input.EndDateTime,
			Billable:      input.Billable,
		})
		if err != nil {
			return upstreamErrorResult("Updating task", err), nil, nil
		}

		result := textResult("Updated.\n" + formatTask(task))
		result.StructuredContent = task
		return result, nil, nil
	}
}

func handleTaskDelete(deps *toolDeps) mcp.ToolHandlerFor[TaskDeleteInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskDeleteInput) (*mcp.CallToolResult, any, error) {
		if input.TaskID == "" {
			return errorResult("task_id is required"), nil, nil
		}
		if err := deps.client.DeleteTask(ctx, input.TaskID); err != nil {
			return upstreamErrorResult("Deleting task", err), nil, nil
		}
		return textResult("Task " + input.TaskID + " deleted."), nil, nil
	}
}

// activeTask fetches the current timer and returns its task when one is
// running or paused. The bool reports whether an active task exists.
func (d *toolDeps) activeTask(ctx context.Context) (*timesheet.Task, bool, error) {
	timer, err := d.client.CurrentTimer(ctx)
	if err != nil {
		return nil, false, err
	}
	if timer.Status == timesheet.TimerStopped || timer.Task == nil {
		return nil, false, nil
	}
	return timer.Task, true, nil
}

func handleTaskAddNote(deps *toolDeps) mcp.ToolHandlerFor[TaskAddNoteInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskAddNoteInput) (*mcp.CallToolResult, any, error) {
		if input.Text == "" {
			return errorResult("text is required"), nil, nil
		}

		task, active, err := deps.activeTask(ctx)
		if err != nil {
			return upstreamErrorResult("Checking timer", err), nil, nil
		}
		if !active {
			return errorResult(noRunningTimerMessage), nil, nil
		}

		note, err := deps.client.CreateNote(ctx, timesheet.Note{
			TaskID:   task.ID,
			Text:     input.Text,
			DateTime: time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return upstreamErrorResult("Adding note", err), nil, nil
		}

		result := textResult("Note added to " + orUntitled(task.Description) + ".")
		result.StructuredContent = note
		return result, nil, nil
	}
}

func handleTaskAddExpense(deps *toolDeps) mcp.ToolHandlerFor[TaskAddExpenseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskAddExpenseInput) (*mcp.CallToolResult, any, error) {
		if input.Amount == 0 {
			return errorResult("amount is required and must be non-zero"), nil, nil
		}

		task, active, err := deps.activeTask(ctx)
		if err != nil {
			return upstreamErrorResult("Checking timer", err), nil, nil
		}
		if !active {
			return errorResult(noRunningTimerMessage), nil, nil
		}

		expense, err := deps.client.CreateExpense(ctx, timesheet.Expense{
			TaskID:      task.ID,
			Description: input.Description,
			Amount:      input.Amount,
			DateTime:    time.Now().UTC().Format(time.RFC3339),
		})
		if err != nil {
			return upstreamErrorResult("Adding expense", err), nil, nil
		}

		result := textResult("Expense added to " + orUntitled(task.Description) + ".")
		result.StructuredContent = expense
		return result, nil, nil
	}
}

func handleTaskAddPause(deps *toolDeps) mcp.ToolHandlerFor[TaskAddPauseInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TaskAddPauseInput) (*mcp.CallToolResult, any, error) {
		task, active, err := deps.activeTask(ctx)
		if err != nil {
			return upstreamErrorResult("Checking timer", err), nil, nil
		}
		if !active {
			return errorResult(noRunningTimerMessage), nil, nil
		}

		start := input.StartDateTime
		if start == "" {
			start = time.Now().UTC().Format(time.RFC3339)
		}
		pause, err := deps.client.CreatePause(ctx, timesheet.Pause{
			TaskID:        task.ID,
			Description:   input.Description,
			StartDateTime: start,
			EndDateTime:   input.EndDateTime,
		})
		if err != nil {
			return upstreamErrorResult("Adding pause", err), nil, nil
		}

		result := textResult("Pause recorded on " + orUntitled(task.Description) + ".")
		result.StructuredContent = pause
		return result, nil, nil
	}
}
