// Package widgets serves the bundled UI components rendered by
// widget-capable MCP hosts.
//
// Each widget is a single self-contained HTML document (inlined CSS and JS,
// no external requests) embedded into the binary, addressed as
// ui://widget/<ComponentName>.html. A YAML manifest describes the metadata
// a host needs to render the component: description, content security
// policy, and visibility.
package widgets
