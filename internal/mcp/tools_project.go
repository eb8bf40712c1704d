package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// --- Inputs ---

// ProjectListInput is the input for project_list.
type ProjectListInput struct {
	IncludeArchived bool `json:"include_archived,omitempty" jsonschema:"include archived projects"`
	Limit           int  `json:"limit,omitempty"            jsonschema:"maximum projects to return (default 100)"`
	Page            int  `json:"page,omitempty"             jsonschema:"1-based page number"`
}

// ProjectCreateInput is the input for project_create.
type ProjectCreateInput struct {
	Title       string  `json:"title"                 jsonschema:"project title (required)"`
	Description string  `json:"description,omitempty" jsonschema:"project description"`
	Employer    string  `json:"employer,omitempty"    jsonschema:"client or employer name"`
	Color       string  `json:"color,omitempty"       jsonschema:"display color as #RRGGBB"`
	TaskRate    float64 `json:"task_rate,omitempty"   jsonschema:"default hourly rate"`
	TeamID      string  `json:"team_id,omitempty"     jsonschema:"team to share the project with"`
}

// ProjectUpdateInput is the input for project_update.
type ProjectUpdateInput struct {
	ProjectID   string   `json:"project_id"            jsonschema:"project to update"`
	Title       string   `json:"title,omitempty"       jsonschema:"new title"`
	Description string   `json:"description,omitempty" jsonschema:"new description"`
	Employer    string   `json:"employer,omitempty"    jsonschema:"new client or employer name"`
	Color       string   `json:"color,omitempty"       jsonschema:"new display color as #RRGGBB"`
	TaskRate    *float64 `json:"task_rate,omitempty"   jsonschema:"new default hourly rate"`
	Archived    *bool    `json:"archived,omitempty"    jsonschema:"archive or unarchive the project"`
}

// ProjectDeleteInput is the input for project_delete.
type ProjectDeleteInput struct {
	ProjectID string `json:"project_id" jsonschema:"project to delete"`
}

// projectListOutput is the structured content for project_list.
type projectListOutput struct {
	Projects []timesheet.Project `json:"projects"`
	Total    int                 `json:"total"`
}

func registerProjectTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_list",
		Description: "List projects, optionally including archived ones.",
		Annotations: readOnlyAnnotations(),
	}, handleProjectList(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_create",
		Description: "Create a new project.",
		Annotations: writeAnnotations(),
	}, handleProjectCreate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_update",
		Description: "Update a project's title, description, employer, color, rate, or archived state.",
		Annotations: writeAnnotations(),
	}, handleProjectUpdate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "project_delete",
		Description: "Delete a project permanently.",
		Annotations: destructiveAnnotations(),
	}, handleProjectDelete(deps))
}

func handleProjectList(deps *toolDeps) mcp.ToolHandlerFor[ProjectListInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectListInput) (*mcp.CallToolResult, any, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = 100
		}

		page, err := deps.client.ListProjects(ctx, timesheet.ProjectSearch{
			IncludeArchived: input.IncludeArchived,
			Limit:           limit,
			Page:            input.Page,
		})
		if err != nil {
			return upstreamErrorResult("Listing projects", err), nil, nil
		}

		result := textResult(formatProjectList(page.Items, page.Total))
		result.StructuredContent = projectListOutput{Projects: page.Items, Total: page.Total}
		return deps.withWidget(result, "ProjectList"), nil, nil
	}
}

func handleProjectCreate(deps *toolDeps) mcp.ToolHandlerFor[ProjectCreateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectCreateInput) (*mcp.CallToolResult, any, error) {
		if input.Title == "" {
			return errorResult("title is required"), nil, nil
		}

		project, err := deps.client.CreateProject(ctx, timesheet.CreateProjectInput{
			Title:       input.Title,
			Description: input.Description,
			Employer:    input.Employer,
			Color:       input.Color,
			TaskRate:    input.TaskRate,
			TeamID:      input.TeamID,
		})
		if err != nil {
			return upstreamErrorResult("Creating project", err), nil, nil
		}

		result := textResult("Created.\n" + formatProject(project))
		result.StructuredContent = project
		return result, nil, nil
	}
}

func handleProjectUpdate(deps *toolDeps) mcp.ToolHandlerFor[ProjectUpdateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectUpdateInput) (*mcp.CallToolResult, any, error) {
		if input.ProjectID == "" {
			return errorResult("project_id is required"), nil, nil
		}

		project, err := deps.client.UpdateProject(ctx, input.ProjectID, timesheet.UpdateProjectInput{
			Title:       input.Title,
			Description: input.Description,
			Employer:    input.Employer,
			Color:       input.Color,
			TaskRate:    input.TaskRate,
			Archived:    input.Archived,
		})
		if err != nil {
			return upstreamErrorResult("Updating project", err), nil, nil
		}

		result := textResult("Updated.\n" + formatProject(project))
		result.StructuredContent = project
		return result, nil, nil
	}
}

func handleProjectDelete(deps *toolDeps) mcp.ToolHandlerFor[ProjectDeleteInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProjectDeleteInput) (*mcp.CallToolResult, any, error) {
		if input.ProjectID == "" {
			return errorResult("project_id is required"), nil, nil
		}
		if err := deps.client.DeleteProject(ctx, input.ProjectID); err != nil {
			return upstreamErrorResult("Deleting project", err), nil, nil
		}
		return textResult("Project " + input.ProjectID + " deleted."), nil, nil
	}
}
