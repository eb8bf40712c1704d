package timesheet

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("test-token", WithBaseURL(server.URL))
}

func TestCurrentTimerSendsBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"running","task":{"id":"t1","duration":60,"billable":true}}`))
	})

	timer, err := client.CurrentTimer(context.Background())
	if err != nil {
		t.Fatalf("CurrentTimer: %v", err)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want Bearer test-token", gotAuth)
	}
	if timer.Status != TimerRunning {
		t.Errorf("status = %q, want running", timer.Status)
	}
	if timer.Task == nil || timer.Task.ID != "t1" {
		t.Errorf("task = %+v, want id t1", timer.Task)
	}
}

func TestCurrentTimerDefaultsToStopped(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	timer, err := client.CurrentTimer(context.Background())
	if err != nil {
		t.Fatalf("CurrentTimer: %v", err)
	}
	if timer.Status != TimerStopped {
		t.Errorf("status = %q, want stopped", timer.Status)
	}
}

func TestDoRejectsMissingToken(t *testing.T) {
	client := New("")
	_, err := client.CurrentTimer(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
}

func TestAPIErrorDecoding(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"json message field", http.StatusBadRequest, `{"message":"projectId is invalid"}`, "projectId is invalid"},
		{"json error field", http.StatusNotFound, `{"error":"task not found"}`, "task not found"},
		{"plain text body", http.StatusBadGateway, "upstream down", "upstream down"},
		{"empty body falls back to status text", http.StatusServiceUnavailable, "", "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.CurrentTimer(context.Background())
			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("err = %v, want *APIError", err)
			}
			if apiErr.Status != tt.status {
				t.Errorf("status = %d, want %d", apiErr.Status, tt.status)
			}
			if apiErr.Message != tt.wantMessage {
				t.Errorf("message = %q, want %q", apiErr.Message, tt.wantMessage)
			}
		})
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"no token sentinel", ErrNoToken, true},
		{"401 api error", &APIError{Status: 401, Message: "bad credentials"}, true},
		{"403 api error", &APIError{Status: 403, Message: "forbidden"}, true},
		{"500 api error", &APIError{Status: 500, Message: "boom"}, false},
		{"keyword match", errors.New("request failed: Invalid token supplied"), true},
		{"unrelated error", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestSearchTasksPostsFilters(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/tasks/search" {
			t.Errorf("got %s %s, want POST /v1/tasks/search", r.Method, r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"items":[{"id":"t1","duration":3600,"billable":true}],"total":1}`))
	})

	page, err := client.SearchTasks(context.Background(), TaskSearch{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-31",
		Limit:     100,
		Page:      1,
	})
	if err != nil {
		t.Fatalf("SearchTasks: %v", err)
	}
	if len(page.Items) != 1 || page.Total != 1 {
		t.Errorf("page = %+v, want 1 item, total 1", page)
	}
}

func TestDeleteTaskRequiresID(t *testing.T) {
	client := New("token")
	if err := client.DeleteTask(context.Background(), ""); err == nil {
		t.Fatal("DeleteTask with empty id should fail")
	}
}
