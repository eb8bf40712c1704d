package timesheet

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ProjectSearch holds filters for listing projects.
type ProjectSearch struct {
	IncludeArchived bool
	Limit           int
	Page            int
}

// CreateProjectInput holds the fields for creating a project.
type CreateProjectInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Employer    string  `json:"employer,omitempty"`
	Color       string  `json:"color,omitempty"`
	TaskRate    float64 `json:"taskDefaultRate,omitempty"`
	TeamID      string  `json:"teamId,omitempty"`
}

// UpdateProjectInput holds the mutable fields of a project.
type UpdateProjectInput struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Employer    string   `json:"employer,omitempty"`
	Color       string   `json:"color,omitempty"`
	TaskRate    *float64 `json:"taskDefaultRate,omitempty"`
	Archived    *bool    `json:"archived,omitempty"`
}

// ListProjects returns one page of projects.
func (c *Client) ListProjects(ctx context.Context, search ProjectSearch) (*Page[Project], error) {
	query := url.Values{}
	if search.IncludeArchived {
		query.Set("includeArchived", "true")
	}
	if search.Limit > 0 {
		query.Set("limit", strconv.Itoa(search.Limit))
	}
	if search.Page > 0 {
		query.Set("page", strconv.Itoa(search.Page))
	}
	path := "/v1/projects"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page Page[Project]
	if err := c.do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateProject creates a project.
func (c *Client) CreateProject(ctx context.Context, input CreateProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPost, "/v1/projects", input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// UpdateProject updates an existing project.
func (c *Client) UpdateProject(ctx context.Context, id string, input UpdateProjectInput) (*Project, error) {
	var project Project
	if err := c.do(ctx, http.MethodPut, "/v1/projects/"+id, input, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject deletes a project.
func (c *Client) DeleteProject(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("project id is required")
	}
	return c.do(ctx, http.MethodDelete, "/v1/projects/"+id, nil, nil)
}
