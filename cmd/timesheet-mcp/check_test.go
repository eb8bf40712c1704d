package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hourstack/timesheet-mcp/internal/output"
)

func TestCheck_AllPassing(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/profile" {
			t.Errorf("unexpected request %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":"u1","email":"dev@example.com"}`))
	}))
	t.Cleanup(upstream.Close)

	t.Setenv("TIMESHEET_CONFIG_HOME", t.TempDir())
	t.Setenv("TIMESHEET_API_TOKEN", "tok")
	t.Setenv("TIMESHEET_API_URL", upstream.URL)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\noutput: %s", err, buf.String())
	}
	out := buf.String()
	if !strings.Contains(out, "dev@example.com") {
		t.Errorf("output should name the authenticated user: %q", out)
	}
}

func TestCheck_BadTokenFails(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"invalid token"}`))
	}))
	t.Cleanup(upstream.Close)

	t.Setenv("TIMESHEET_CONFIG_HOME", t.TempDir())
	t.Setenv("TIMESHEET_API_TOKEN", "bad")
	t.Setenv("TIMESHEET_API_URL", upstream.URL)

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check"})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("check should fail with a rejected token")
	}
	if output.GetExitCode(err) != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d", output.GetExitCode(err), output.ExitSystemError)
	}
	if !strings.Contains(buf.String(), "hint") {
		t.Errorf("auth failure should print a hint: %q", buf.String())
	}
}

func TestCheck_JSONOutput(t *testing.T) {
	t.Setenv("TIMESHEET_CONFIG_HOME", t.TempDir())
	t.Setenv("TIMESHEET_API_TOKEN", "")
	t.Setenv("TIMESHEET_API_URL", "")

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"check", "--json"})

	// No token: API check is a warn, not a fail, so the command succeeds.
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\noutput: %s", err, buf.String())
	}

	var report checkReport
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if report.Failed != 0 {
		t.Errorf("Failed = %d, want 0", report.Failed)
	}
	if len(report.Checks) == 0 {
		t.Fatal("report has no checks")
	}

	var sawTokenWarn bool
	for _, check := range report.Checks {
		if check.Name == "api token" && check.Status == checkWarn {
			sawTokenWarn = true
		}
	}
	if !sawTokenWarn {
		t.Error("missing token should produce a warn check")
	}
}
