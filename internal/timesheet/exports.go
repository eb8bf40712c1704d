package timesheet

import (
	"context"
	"fmt"
	"net/http"
)

// ExportRequest describes a document to generate from an export template.
type ExportRequest struct {
	TemplateID string `json:"templateId"`
	StartDate  string `json:"startDate,omitempty"`
	EndDate    string `json:"endDate,omitempty"`
	ProjectID  string `json:"projectId,omitempty"`
}

// ListExportTemplates returns all saved export templates.
func (c *Client) ListExportTemplates(ctx context.Context) ([]ExportTemplate, error) {
	var page Page[ExportTemplate]
	if err := c.do(ctx, http.MethodGet, "/v1/export/templates", nil, &page); err != nil {
		return nil, err
	}
	return page.Items, nil
}

// CreateExportTemplate creates a new export template.
func (c *Client) CreateExportTemplate(ctx context.Context, template ExportTemplate) (*ExportTemplate, error) {
	var created ExportTemplate
	if err := c.do(ctx, http.MethodPost, "/v1/export/templates", template, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateExportTemplate updates an existing export template.
func (c *Client) UpdateExportTemplate(ctx context.Context, id string, template ExportTemplate) (*ExportTemplate, error) {
	var updated ExportTemplate
	if err := c.do(ctx, http.MethodPut, "/v1/export/templates/"+id, template, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteExportTemplate deletes an export template.
func (c *Client) DeleteExportTemplate(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("template id is required")
	}
	return c.do(ctx, http.MethodDelete, "/v1/export/templates/"+id, nil, nil)
}

// DownloadExport generates a document from a template for a date range.
func (c *Client) DownloadExport(ctx context.Context, request ExportRequest) (*Export, error) {
	var export Export
	if err := c.do(ctx, http.MethodPost, "/v1/export/download", request, &export); err != nil {
		return nil, err
	}
	return &export, nil
}
