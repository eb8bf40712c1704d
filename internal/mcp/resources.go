package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// registerResources exposes every bundled widget as a read-only ui://
// resource. Reading a URI outside the registry fails as an invalid request.
func registerResources(server *mcp.Server, registry *widgets.Registry) {
	if registry == nil {
		return
	}
	for _, widget := range registry.All() {
		server.AddResource(&mcp.Resource{
			URI:         widget.URI(),
			Name:        widget.Name,
			Description: widget.Description,
			MIMEType:    widgets.MIMEType,
		}, widgetResourceHandler(registry))
	}
}

// widgetResourceHandler serves the embedded HTML bundle for a widget URI.
func widgetResourceHandler(registry *widgets.Registry) mcp.ResourceHandler {
	return func(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		widget, err := registry.ByURI(req.Params.URI)
		if err != nil {
			return nil, err
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      widget.URI(),
				MIMEType: widgets.MIMEType,
				Text:     widget.HTML,
			}},
		}, nil
	}
}
