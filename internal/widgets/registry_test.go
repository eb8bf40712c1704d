package widgets

import (
	"strings"
	"testing"
)

func TestLoadRegistersAllManifestWidgets(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantNames := []string{"ExportTemplates", "ProjectList", "StatsDashboard", "TaskList", "TimerStatus"}
	all := registry.All()
	if len(all) != len(wantNames) {
		t.Fatalf("loaded %d widgets, want %d", len(all), len(wantNames))
	}
	for i, want := range wantNames {
		if all[i].Name != want {
			t.Errorf("widget[%d] = %s, want %s", i, all[i].Name, want)
		}
	}
}

func TestWidgetBundlesAreSelfContained(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, widget := range registry.All() {
		if !strings.HasPrefix(widget.HTML, "<!DOCTYPE html>") {
			t.Errorf("%s: bundle does not start with doctype", widget.Name)
		}
		// Self-contained means no external fetches baked into the markup.
		for _, forbidden := range []string{"src=\"http", "href=\"http", "@import"} {
			if strings.Contains(widget.HTML, forbidden) {
				t.Errorf("%s: bundle contains external reference %q", widget.Name, forbidden)
			}
		}
		if widget.Visibility == "" {
			t.Errorf("%s: missing visibility", widget.Name)
		}
		if widget.Description == "" {
			t.Errorf("%s: missing description", widget.Name)
		}
	}
}

func TestWithAssetOrigin(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := registry.WithAssetOrigin(""); got != registry {
		t.Error("empty origin should return the registry unchanged")
	}

	const origin = "https://dev.ngrok.app"
	dev := registry.WithAssetOrigin(origin)
	for _, widget := range dev.All() {
		if !containsString(widget.CSP.ConnectDomains, origin) {
			t.Errorf("%s: connect domains missing %s", widget.Name, origin)
		}
		if !containsString(widget.CSP.ResourceDomains, origin) {
			t.Errorf("%s: resource domains missing %s", widget.Name, origin)
		}
	}

	// The base registry must stay untouched.
	for _, widget := range registry.All() {
		if containsString(widget.CSP.ConnectDomains, origin) {
			t.Errorf("%s: base registry was mutated", widget.Name)
		}
	}
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestByURI(t *testing.T) {
	registry, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tests := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{"known widget", "ui://widget/TimerStatus.html", false},
		{"unknown widget", "ui://widget/Nope.html", true},
		{"wrong scheme", "file://widget/TimerStatus.html", true},
		{"missing extension", "ui://widget/TimerStatus", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			widget, err := registry.ByURI(tt.uri)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ByURI(%q) should fail", tt.uri)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByURI(%q): %v", tt.uri, err)
			}
			if widget.URI() != tt.uri {
				t.Errorf("URI roundtrip = %q, want %q", widget.URI(), tt.uri)
			}
		})
	}
}
