package timesheet

import (
	"context"
	"net/http"
)

// StartTimerInput holds the fields for starting a new timer.
type StartTimerInput struct {
	ProjectID   string `json:"projectId,omitempty"`
	Description string `json:"description,omitempty"`
	Billable    *bool  `json:"billable,omitempty"`
}

// UpdateTimerInput holds the mutable fields of a running timer.
type UpdateTimerInput struct {
	ProjectID   string `json:"projectId,omitempty"`
	Description string `json:"description,omitempty"`
	Billable    *bool  `json:"billable,omitempty"`
}

// CurrentTimer fetches the current timer state.
func (c *Client) CurrentTimer(ctx context.Context) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodGet, "/v1/timer", nil, &timer); err != nil {
		return nil, err
	}
	if timer.Status == "" {
		timer.Status = TimerStopped
	}
	return &timer, nil
}

// StartTimer starts a new timer.
func (c *Client) StartTimer(ctx context.Context, input StartTimerInput) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodPost, "/v1/timer/start", input, &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}

// StopTimer stops the running timer and returns the completed task.
func (c *Client) StopTimer(ctx context.Context) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodPost, "/v1/timer/stop", nil, &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}

// PauseTimer pauses the running timer.
func (c *Client) PauseTimer(ctx context.Context) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodPost, "/v1/timer/pause", nil, &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}

// ResumeTimer resumes a paused timer.
func (c *Client) ResumeTimer(ctx context.Context) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodPost, "/v1/timer/resume", nil, &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}

// UpdateTimer updates the running timer in place.
func (c *Client) UpdateTimer(ctx context.Context, input UpdateTimerInput) (*Timer, error) {
	var timer Timer
	if err := c.do(ctx, http.MethodPut, "/v1/timer", input, &timer); err != nil {
		return nil, err
	}
	return &timer, nil
}
