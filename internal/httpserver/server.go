// Package httpserver exposes the MCP server over a stateless streamable
// HTTP transport, alongside the landing page, health check, and OAuth
// discovery documents remote MCP clients expect.
package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hourstack/timesheet-mcp/internal/config"
	mcpserver "github.com/hourstack/timesheet-mcp/internal/mcp"
	"github.com/hourstack/timesheet-mcp/internal/timesheet"
	"github.com/hourstack/timesheet-mcp/internal/widgets"
)

// Server is the HTTP front of the MCP server. Every protocol request gets a
// fresh mcp.Server bound to a fresh API client, so no session state survives
// between requests and each request runs under its own credential.
type Server struct {
	cfg      *config.Config
	version  string
	registry *widgets.Registry
	logger   *slog.Logger
	stream   http.Handler
}

// New builds the HTTP server. The logger must not be nil.
func New(cfg *config.Config, version string, registry *widgets.Registry, logger *slog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		version:  version,
		registry: registry.WithAssetOrigin(cfg.ComponentBaseURL),
		logger:   logger,
	}
	s.stream = mcp.NewStreamableHTTPHandler(s.serverForRequest, &mcp.StreamableHTTPOptions{
		Stateless: true,
	})
	return s
}

// serverForRequest builds the per-request MCP server. The request's bearer
// token wins over the configured fallback token.
func (s *Server) serverForRequest(r *http.Request) *mcp.Server {
	token := bearerToken(r)
	if token == "" {
		token = s.cfg.APIToken
	}

	opts := []timesheet.Option{timesheet.WithLogger(s.logger)}
	if s.cfg.APIURL != "" {
		opts = append(opts, timesheet.WithBaseURL(s.cfg.APIURL))
	}
	client := timesheet.New(token, opts...)

	return mcpserver.NewServer(s.version, client, s.registry, mcpserver.Options{
		StatsMaxPages: s.cfg.StatsMaxPages,
	})
}

// Handler returns the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	endpoint := s.cfg.EndpointPath
	mux.HandleFunc(endpoint, s.handleMCP)

	mux.HandleFunc("/health", s.handleHealth)

	// Discovery documents are served both bare and with the resource path
	// appended, since clients derive the path-aware variant from the
	// endpoint they were given.
	mux.HandleFunc(protectedResourcePath, s.handleProtectedResource)
	mux.HandleFunc(authServerMetadataPath, s.handleAuthServerMetadata)
	if endpoint != "/" {
		mux.HandleFunc(protectedResourcePath+endpoint, s.handleProtectedResource)
		mux.HandleFunc(authServerMetadataPath+endpoint, s.handleAuthServerMetadata)
	}

	return mux
}

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	// The root endpoint doubles as the landing page for browsers.
	if s.cfg.EndpointPath == "/" && r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodPost:
		if bearerToken(r) == "" && s.cfg.APIToken == "" {
			s.unauthorized(w, r)
			return
		}
		s.stream.ServeHTTP(w, r)

	case http.MethodGet:
		if wantsHTML(r) {
			s.handleLanding(w, r)
			return
		}
		// Stateless transport: there is no SSE stream to resume.
		writeJSONRPCError(w, http.StatusMethodNotAllowed,
			"Method not allowed. Connect with an MCP client via POST.")

	case http.MethodDelete:
		// Session termination is a no-op without sessions; acknowledge it.
		w.WriteHeader(http.StatusOK)

	default:
		writeJSONRPCError(w, http.StatusMethodNotAllowed, "Method not allowed.")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"server":  mcpserver.ServerName,
		"version": s.version,
	})
}

// unauthorized answers an unauthenticated protocol request with the
// discovery pointer OAuth-capable clients follow.
func (s *Server) unauthorized(w http.ResponseWriter, r *http.Request) {
	base := s.baseURL(r)
	w.Header().Set("WWW-Authenticate",
		`Bearer realm="timesheet-mcp", resource_metadata="`+base+protectedResourcePath+`"`)
	writeJSONRPCError(w, http.StatusUnauthorized,
		"Authentication required. Provide a Timesheet API token as a bearer token.")
}

// baseURL is the public identity of this server: the configured URL when
// set, otherwise derived from the request.
func (s *Server) baseURL(r *http.Request) string {
	if s.cfg.ServerURL != "" {
		return strings.TrimRight(s.cfg.ServerURL, "/")
	}
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) > len(prefix) && strings.EqualFold(auth[:len(prefix)], prefix) {
		return strings.TrimSpace(auth[len(prefix):])
	}
	return ""
}

// wantsHTML reports whether the request looks like a browser navigation
// rather than an MCP client probe.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html") ||
		strings.Contains(r.Header.Get("User-Agent"), "Mozilla")
}

func writeJSONRPCError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      nil,
		"error": map[string]any{
			"code":    -32000,
			"message": message,
		},
	})
}
