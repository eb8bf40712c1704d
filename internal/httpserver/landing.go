package httpserver

import (
	"html/template"
	"net/http"
)

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Timesheet MCP</title>
<style>
  body { font-family: -apple-system, "Segoe UI", sans-serif; margin: 0;
         background: #f6f7f9; color: #1f2430; }
  main { max-width: 640px; margin: 4rem auto; padding: 0 1.5rem; }
  h1 { font-size: 1.6rem; }
  code, pre { background: #e9ecf1; border-radius: 6px; }
  code { padding: 0.15rem 0.4rem; }
  pre { padding: 1rem; overflow-x: auto; }
  .muted { color: #5b6472; }
</style>
</head>
<body>
<main>
  <h1>Timesheet MCP server</h1>
  <p class="muted">Version {{.Version}}</p>
  <p>This is a Model Context Protocol endpoint for the Timesheet time
  tracking API. It speaks JSON-RPC over POST; there is nothing to browse
  here.</p>
  <p>Point an MCP client at:</p>
  <pre>{{.Endpoint}}</pre>
  <p>Authenticate with a Timesheet API token as a bearer token:</p>
  <pre>Authorization: Bearer &lt;your API token&gt;</pre>
  <p class="muted">Health check at <code>/health</code>. OAuth discovery at
  <code>/.well-known/oauth-protected-resource</code>.</p>
</main>
</body>
</html>
`))

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := landingTemplate.Execute(w, struct {
		Version  string
		Endpoint string
	}{
		Version:  s.version,
		Endpoint: s.baseURL(r) + s.cfg.EndpointPath,
	})
	if err != nil {
		s.logger.Error("rendering landing page", "error", err)
	}
}
