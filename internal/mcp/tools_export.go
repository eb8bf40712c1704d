package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/timesheet"
)

// --- Inputs ---

// ExportTemplateCreateInput is the input for export_template_create.
type ExportTemplateCreateInput struct {
	Name       string   `json:"name"                  jsonschema:"template name (required)"`
	FileFormat string   `json:"file_format,omitempty" jsonschema:"output format: pdf, csv, or xlsx"`
	Fields     []string `json:"fields,omitempty"      jsonschema:"task fields to include in the export"`
	SortOrder  string   `json:"sort_order,omitempty"  jsonschema:"sort order for exported rows"`
}

// ExportTemplateUpdateInput is the input for export_template_update.
type ExportTemplateUpdateInput struct {
	TemplateID string   `json:"template_id"           jsonschema:"template to update"`
	Name       string   `json:"name,omitempty"        jsonschema:"new template name"`
	FileFormat string   `json:"file_format,omitempty" jsonschema:"new output format: pdf, csv, or xlsx"`
	Fields     []string `json:"fields,omitempty"      jsonschema:"new field selection"`
	SortOrder  string   `json:"sort_order,omitempty"  jsonschema:"new sort order"`
}

// ExportTemplateDeleteInput is the input for export_template_delete.
type ExportTemplateDeleteInput struct {
	TemplateID string `json:"template_id" jsonschema:"template to delete"`
}

// ExportDownloadInput is the input for export_download.
type ExportDownloadInput struct {
	TemplateID string `json:"template_id"          jsonschema:"template to generate from"`
	StartDate  string `json:"start_date,omitempty" jsonschema:"range start date YYYY-MM-DD (inclusive)"`
	EndDate    string `json:"end_date,omitempty"   jsonschema:"range end date YYYY-MM-DD (inclusive)"`
	ProjectID  string `json:"project_id,omitempty" jsonschema:"restrict to one project"`
}

// templateListOutput is the structured content for export_template_list.
type templateListOutput struct {
	Templates []timesheet.ExportTemplate `json:"templates"`
}

func registerExportTools(server *mcp.Server, deps *toolDeps) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_template_list",
		Description: "List saved export templates.",
		Annotations: readOnlyAnnotations(),
	}, handleExportTemplateList(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_template_create",
		Description: "Create a new export template.",
		Annotations: writeAnnotations(),
	}, handleExportTemplateCreate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_template_update",
		Description: "Update an export template's name, format, fields, or sort order.",
		Annotations: writeAnnotations(),
	}, handleExportTemplateUpdate(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_template_delete",
		Description: "Delete an export template permanently.",
		Annotations: destructiveAnnotations(),
	}, handleExportTemplateDelete(deps))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_download",
		Description: "Generate an export document from a template for a date range.",
		Annotations: readOnlyAnnotations(),
	}, handleExportDownload(deps))
}

func handleExportTemplateList(deps *toolDeps) mcp.ToolHandlerFor[emptyInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, any, error) {
		templates, err := deps.client.ListExportTemplates(ctx)
		if err != nil {
			return upstreamErrorResult("Listing export templates", err), nil, nil
		}

		result := textResult(formatTemplateList(templates))
		result.StructuredContent = templateListOutput{Templates: templates}
		return deps.withWidget(result, "ExportTemplates"), nil, nil
	}
}

func handleExportTemplateCreate(deps *toolDeps) mcp.ToolHandlerFor[ExportTemplateCreateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportTemplateCreateInput) (*mcp.CallToolResult, any, error) {
		if input.Name == "" {
			return errorResult("name is required"), nil, nil
		}

		template, err := deps.client.CreateExportTemplate(ctx, timesheet.ExportTemplate{
			Name:       input.Name,
			FileFormat: input.FileFormat,
			Fields:     input.Fields,
			SortOrder:  input.SortOrder,
		})
		if err != nil {
			return upstreamErrorResult("Creating export template", err), nil, nil
		}

		result := textResult("Export template " + orUntitled(template.Name) + " created.")
		result.StructuredContent = template
		return result, nil, nil
	}
}

func handleExportTemplateUpdate(deps *toolDeps) mcp.ToolHandlerFor[ExportTemplateUpdateInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportTemplateUpdateInput) (*mcp.CallToolResult, any, error) {
		if input.TemplateID == "" {
			return errorResult("template_id is required"), nil, nil
		}

		template, err := deps.client.UpdateExportTemplate(ctx, input.TemplateID, timesheet.ExportTemplate{
			Name:       input.Name,
			FileFormat: input.FileFormat,
			Fields:     input.Fields,
			SortOrder:  input.SortOrder,
		})
		if err != nil {
			return upstreamErrorResult("Updating export template", err), nil, nil
		}

		result := textResult("Export template " + orUntitled(template.Name) + " updated.")
		result.StructuredContent = template
		return result, nil, nil
	}
}

func handleExportTemplateDelete(deps *toolDeps) mcp.ToolHandlerFor[ExportTemplateDeleteInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportTemplateDeleteInput) (*mcp.CallToolResult, any, error) {
		if input.TemplateID == "" {
			return errorResult("template_id is required"), nil, nil
		}
		if err := deps.client.DeleteExportTemplate(ctx, input.TemplateID); err != nil {
			return upstreamErrorResult("Deleting export template", err), nil, nil
		}
		return textResult("Export template " + input.TemplateID + " deleted."), nil, nil
	}
}

func handleExportDownload(deps *toolDeps) mcp.ToolHandlerFor[ExportDownloadInput, any] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ExportDownloadInput) (*mcp.CallToolResult, any, error) {
		if input.TemplateID == "" {
			return errorResult("template_id is required"), nil, nil
		}

		export, err := deps.client.DownloadExport(ctx, timesheet.ExportRequest{
			TemplateID: input.TemplateID,
			StartDate:  input.StartDate,
			EndDate:    input.EndDate,
			ProjectID:  input.ProjectID,
		})
		if err != nil {
			return upstreamErrorResult("Generating export", err), nil, nil
		}

		text := "Export generated: " + export.FileName
		if export.URL != "" {
			text += "\nDownload: " + export.URL
		}
		result := textResult(text)
		result.StructuredContent = export
		return result, nil, nil
	}
}
