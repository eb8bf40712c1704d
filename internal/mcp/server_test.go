package mcp

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// connect spins up a server over in-memory transports and returns a client
// session bound to it.
func connect(t *testing.T, deps *toolDeps) *mcp.ClientSession {
	t.Helper()
	server := NewServer("test", deps.client, deps.widgets, deps.opts)

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("connecting server: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connecting client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestServerListsAllTools(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{})
	session := connect(t, deps)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}

	want := []string{
		"timer_status", "timer_start", "timer_stop", "timer_pause", "timer_resume", "timer_update",
		"task_list", "task_create", "task_update", "task_delete",
		"task_add_note", "task_add_expense", "task_add_pause",
		"project_list", "project_create", "project_update", "project_delete",
		"team_list",
		"export_template_list", "export_template_create", "export_template_update", "export_template_delete",
		"export_download",
		"stats_get",
	}
	if len(result.Tools) != len(want) {
		t.Errorf("ListTools returned %d tools, want %d", len(result.Tools), len(want))
	}

	byName := make(map[string]*mcp.Tool, len(result.Tools))
	for _, tool := range result.Tools {
		byName[tool.Name] = tool
	}
	for _, name := range want {
		if _, ok := byName[name]; !ok {
			t.Errorf("tool %q not registered", name)
		}
	}

	if tool := byName["timer_status"]; tool != nil {
		if tool.Annotations == nil || !tool.Annotations.ReadOnlyHint {
			t.Error("timer_status should carry a read-only hint")
		}
	}
	if tool := byName["task_delete"]; tool != nil {
		if tool.Annotations == nil || tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint {
			t.Error("task_delete should carry a destructive hint")
		}
	}
}

func TestServerUnknownToolErrors(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{})
	session := connect(t, deps)

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "timer_launch"})
	if err == nil {
		t.Fatal("calling an unknown tool should fail")
	}
}

func TestServerCallToolOverSession(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/timer":
			_, _ = w.Write([]byte(`{"status":"stopped"}`))
		default:
			_, _ = w.Write([]byte(`{}`))
		}
	}, Options{})
	session := connect(t, deps)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "timer_status",
		Arguments: map[string]any{},
	})
	if err != nil {
		t.Fatalf("CallTool: %v", err)
	}
	if result.IsError {
		t.Fatal("timer_status returned an error result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || !strings.Contains(text.Text, "stopped") {
		t.Errorf("content = %#v, want text mentioning stopped", result.Content[0])
	}
}

func TestServerListsWidgetResources(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{})
	session := connect(t, deps)

	result, err := session.ListResources(context.Background(), &mcp.ListResourcesParams{})
	if err != nil {
		t.Fatalf("ListResources: %v", err)
	}
	if len(result.Resources) != len(deps.widgets.All()) {
		t.Errorf("ListResources returned %d resources, want %d",
			len(result.Resources), len(deps.widgets.All()))
	}
	for _, resource := range result.Resources {
		if resource.MIMEType != widgets.MIMEType {
			t.Errorf("resource %s MIME type = %q, want %q",
				resource.URI, resource.MIMEType, widgets.MIMEType)
		}
		if !strings.HasPrefix(resource.URI, widgets.URIPrefix) {
			t.Errorf("resource URI %q lacks prefix %q", resource.URI, widgets.URIPrefix)
		}
	}
}

func TestServerReadsWidgetResource(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{})
	session := connect(t, deps)

	result, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "ui://widget/TimerStatus.html",
	})
	if err != nil {
		t.Fatalf("ReadResource: %v", err)
	}
	if len(result.Contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(result.Contents))
	}
	content := result.Contents[0]
	if content.MIMEType != widgets.MIMEType {
		t.Errorf("MIME type = %q, want %q", content.MIMEType, widgets.MIMEType)
	}
	if !strings.Contains(content.Text, "<html") {
		t.Error("resource text does not look like an HTML document")
	}
	if !strings.Contains(content.Text, "window.openai") {
		t.Error("widget bundle does not read window.openai")
	}
}

func TestServerReadUnknownResourceErrors(t *testing.T) {
	deps := makeDeps(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, Options{})
	session := connect(t, deps)

	_, err := session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "ui://widget/Nonexistent.html",
	})
	if err == nil {
		t.Fatal("reading an unknown resource should fail")
	}
}
