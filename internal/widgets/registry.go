package widgets

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// MIMEType marks a resource as an embeddable UI fragment.
const MIMEType = "text/html+skybridge"

// URIPrefix is the scheme and namespace for widget resource URIs.
const URIPrefix = "ui://widget/"

//go:embed assets/*.html assets/manifest.yaml
var assetsFS embed.FS

// Widget is one bundled UI component.
type Widget struct {
	Name        string
	Description string
	CSP         CSP
	Visibility  string
	HTML        string
}

// CSP is the content security policy a host should apply to the widget frame.
type CSP struct {
	ConnectDomains  []string `yaml:"connect_domains"`
	ResourceDomains []string `yaml:"resource_domains"`
}

// URI returns the ui:// resource URI for the widget.
func (w Widget) URI() string {
	return URIPrefix + w.Name + ".html"
}

// manifest is the YAML descriptor embedded alongside the HTML bundles.
type manifest struct {
	Widgets []struct {
		Name        string `yaml:"name"`
		Description string `yaml:"description"`
		CSP         CSP    `yaml:"csp"`
		Visibility  string `yaml:"visibility"`
	} `yaml:"widgets"`
}

// Registry holds the loaded widgets keyed by component name.
type Registry struct {
	widgets map[string]Widget
}

// Load parses the embedded manifest and HTML bundles.
func Load() (*Registry, error) {
	raw, err := assetsFS.ReadFile("assets/manifest.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading widget manifest: %w", err)
	}

	var m manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parsing widget manifest: %w", err)
	}

	registry := &Registry{widgets: make(map[string]Widget, len(m.Widgets))}
	for _, entry := range m.Widgets {
		html, err := assetsFS.ReadFile("assets/" + entry.Name + ".html")
		if err != nil {
			return nil, fmt.Errorf("reading widget bundle %s: %w", entry.Name, err)
		}
		visibility := entry.Visibility
		if visibility == "" {
			visibility = "visible"
		}
		registry.widgets[entry.Name] = Widget{
			Name:        entry.Name,
			Description: entry.Description,
			CSP:         entry.CSP,
			Visibility:  visibility,
			HTML:        string(html),
		}
	}
	return registry, nil
}

// Get returns the widget for a component name.
func (r *Registry) Get(name string) (Widget, bool) {
	widget, ok := r.widgets[name]
	return widget, ok
}

// ByURI resolves a ui:// resource URI to its widget.
func (r *Registry) ByURI(uri string) (Widget, error) {
	name, ok := strings.CutPrefix(uri, URIPrefix)
	if !ok {
		return Widget{}, fmt.Errorf("unsupported resource URI %q", uri)
	}
	name, ok = strings.CutSuffix(name, ".html")
	if !ok {
		return Widget{}, fmt.Errorf("unsupported resource URI %q", uri)
	}
	widget, found := r.widgets[name]
	if !found {
		return Widget{}, fmt.Errorf("unknown widget component %q", name)
	}
	return widget, nil
}

// WithAssetOrigin returns a copy of the registry whose widget CSPs also
// allow the given origin. Used in development to load assets from a tunnel
// or local server. An empty origin returns the registry unchanged.
func (r *Registry) WithAssetOrigin(origin string) *Registry {
	if origin == "" {
		return r
	}
	out := &Registry{widgets: make(map[string]Widget, len(r.widgets))}
	for name, widget := range r.widgets {
		widget.CSP.ConnectDomains = append(append([]string{}, widget.CSP.ConnectDomains...), origin)
		widget.CSP.ResourceDomains = append(append([]string{}, widget.CSP.ResourceDomains...), origin)
		out.widgets[name] = widget
	}
	return out
}

// All returns the widgets sorted by name.
func (r *Registry) All() []Widget {
	all := make([]Widget, 0, len(r.widgets))
	for _, widget := range r.widgets {
		all = append(all, widget)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}
