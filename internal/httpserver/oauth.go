package httpserver

import (
	"encoding/json"
	"net/http"
)

// Well-known paths for OAuth discovery (RFC 9728 and RFC 8414).
const (
	protectedResourcePath  = "/.well-known/oauth-protected-resource"
	authServerMetadataPath = "/.well-known/oauth-authorization-server"
)

// handleProtectedResource serves the RFC 9728 protected resource metadata.
// The server advertises itself as its own authorization server so clients
// know where to continue discovery.
func (s *Server) handleProtectedResource(w http.ResponseWriter, r *http.Request) {
	base := s.baseURL(r)
	writeMetadata(w, map[string]any{
		"resource":                 base,
		"authorization_servers":    []string{base},
		"bearer_methods_supported": []string{"header"},
		"scopes_supported":         []string{"timesheet"},
	})
}

// handleAuthServerMetadata serves the RFC 8414 authorization server
// metadata. PKCE with S256 is mandatory for MCP clients.
func (s *Server) handleAuthServerMetadata(w http.ResponseWriter, r *http.Request) {
	base := s.baseURL(r)
	writeMetadata(w, map[string]any{
		"issuer":                                base,
		"authorization_endpoint":                base + "/authorize",
		"token_endpoint":                        base + "/token",
		"registration_endpoint":                 base + "/register",
		"response_types_supported":              []string{"code"},
		"grant_types_supported":                 []string{"authorization_code", "refresh_token"},
		"code_challenge_methods_supported":      []string{"S256"},
		"token_endpoint_auth_methods_supported": []string{"none"},
	})
}

func writeMetadata(w http.ResponseWriter, doc map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_ = json.NewEncoder(w).Encode(doc)
}
