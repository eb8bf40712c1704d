package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestListTools(t *testing.T) {
	tools, err := listTools(context.Background())
	if err != nil {
		t.Fatalf("listTools() error = %v", err)
	}
	if len(tools) == 0 {
		t.Fatal("no tools listed")
	}

	names := make(map[string]bool, len(tools))
	for _, tool := range tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"timer_status", "stats_get", "project_list"} {
		if !names[want] {
			t.Errorf("tool %q not listed", want)
		}
	}
}

func TestToolsCommand_Table(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "timer_status") || !strings.Contains(out, "read-only") {
		t.Errorf("table output missing expected rows: %q", out)
	}
}

func TestToolsCommand_JSON(t *testing.T) {
	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"tools", "--json"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var tools []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(buf.Bytes(), &tools); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(tools) == 0 {
		t.Fatal("no tools in JSON output")
	}
}
