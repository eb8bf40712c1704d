package timesheet

import (
	"context"
	"fmt"
	"net/http"
)

// TaskSearch holds filters for the task search endpoint. Dates are
// YYYY-MM-DD and inclusive. Page is 1-based.
type TaskSearch struct {
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	ProjectID string `json:"projectId,omitempty"`
	Limit     int    `json:"limit,omitempty"`
	Page      int    `json:"page,omitempty"`
}

// CreateTaskInput holds the fields for creating a completed task.
type CreateTaskInput struct {
	ProjectID     string `json:"projectId,omitempty"`
	Description   string `json:"description,omitempty"`
	StartDateTime string `json:"startDateTime"`
	EndDateTime   string `json:"endDateTime"`
	Billable      *bool  `json:"billable,omitempty"`
}

// UpdateTaskInput holds the mutable fields of an existing task.
type UpdateTaskInput struct {
	ProjectID     string `json:"projectId,omitempty"`
	Description   string `json:"description,omitempty"`
	StartDateTime string `json:"startDateTime,omitempty"`
	EndDateTime   string `json:"endDateTime,omitempty"`
	Billable      *bool  `json:"billable,omitempty"`
}

// SearchTasks returns one page of tasks matching the filters.
func (c *Client) SearchTasks(ctx context.Context, search TaskSearch) (*Page[Task], error) {
	var page Page[Task]
	if err := c.do(ctx, http.MethodPost, "/v1/tasks/search", search, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTask fetches a single task by ID.
func (c *Client) GetTask(ctx context.Context, id string) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodGet, "/v1/tasks/"+id, nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// CreateTask creates a completed task.
func (c *Client) CreateTask(ctx context.Context, input CreateTaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPost, "/v1/tasks", input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTask updates an existing task.
func (c *Client) UpdateTask(ctx context.Context, id string, input UpdateTaskInput) (*Task, error) {
	var task Task
	if err := c.do(ctx, http.MethodPut, "/v1/tasks/"+id, input, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("task id is required")
	}
	return c.do(ctx, http.MethodDelete, "/v1/tasks/"+id, nil, nil)
}

// CreateNote attaches a note to a task.
func (c *Client) CreateNote(ctx context.Context, note Note) (*Note, error) {
	var created Note
	if err := c.do(ctx, http.MethodPost, "/v1/notes", note, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateExpense attaches an expense to a task.
func (c *Client) CreateExpense(ctx context.Context, expense Expense) (*Expense, error) {
	var created Expense
	if err := c.do(ctx, http.MethodPost, "/v1/expenses", expense, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreatePause records a manual break on a task.
func (c *Client) CreatePause(ctx context.Context, pause Pause) (*Pause, error) {
	var created Pause
	if err := c.do(ctx, http.MethodPost, "/v1/pauses", pause, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
