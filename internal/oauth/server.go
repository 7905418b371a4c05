// Package oauth implements the discovery and pseudo-auth surface that
// OAuth-aware MCP clients probe before attempting tool calls. Every endpoint
// is stateless: metadata documents are fixed, registration echoes what it was
// given, and codes/tokens are issued freely and never validated afterwards.
// It provides protocol compatibility, not access control; a deployment that
// needs real authentication must put one in front of the server.
package oauth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/greghughespdx/brain-mcp-server/internal/logging"
)

const clientIDPrefix = "brain-mcp-client-"

// Server serves the six fixed discovery/auth paths. baseURL is the externally
// visible URL advertised in the discovery documents.
type Server struct {
	baseURL string
	log     logging.Logger
}

func NewServer(baseURL string, log logging.Logger) *Server {
	return &Server{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log.WithName("oauth"),
	}
}

// Register installs the discovery and auth handlers on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/.well-known/oauth-protected-resource", s.handleProtectedResourceMetadata)
	mux.HandleFunc("/.well-known/oauth-authorization-server", s.handleAuthServerMetadata)
	mux.HandleFunc("/.well-known/openid-configuration", s.handleAuthServerMetadata)
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/authorize", s.handleAuthorize)
	mux.HandleFunc("/token", s.handleToken)
}

func (s *Server) handleProtectedResourceMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"resource":                 s.baseURL,
		"authorization_servers":    []string{s.baseURL},
		"scopes_supported":         []string{"read", "write"},
		"bearer_methods_supported": []string{"header"},
	})
}

// handleAuthServerMetadata serves both the OAuth authorization-server
// metadata and the OpenID discovery path; the two specs overlap and clients
// accept the same document at either location.
func (s *Server) handleAuthServerMetadata(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"issuer":                                s.baseURL,
		"authorization_endpoint":                s.baseURL + "/authorize",
		"token_endpoint":                        s.baseURL + "/token",
		"registration_endpoint":                 s.baseURL + "/register",
		"response_types_supported":              []string{"code"},
		"grant_types_supported":                 []string{"authorization_code"},
		"code_challenge_methods_supported":      []string{"S256"},
		"token_endpoint_auth_methods_supported": []string{"none"},
	})
}

// handleRegister implements dynamic client registration. Registrations are
// not stored; client IDs are not stable across restarts. A client that
// declares an http(s) URL as its identity keeps it, everyone else gets a
// generated one.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var metadata map[string]any
	if err := json.NewDecoder(r.Body).Decode(&metadata); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "invalid_client_metadata",
			"error_description": "request body must be a JSON object",
		})
		return
	}

	clientID := ""
	if submitted, ok := metadata["client_id"].(string); ok && isHTTPURL(submitted) {
		clientID = submitted
	}
	if clientID == "" {
		clientID = clientIDPrefix + randomHex(8)
	}

	response := make(map[string]any, len(metadata)+2)
	for k, v := range metadata {
		response[k] = v
	}
	response["client_id"] = clientID
	response["client_id_issued_at"] = time.Now().Unix()

	s.log.Info("registered client", "client_id", clientID)
	writeJSON(w, http.StatusCreated, response)
}

// handleAuthorize approves every request unconditionally. There is no consent
// screen and no client validation; the generated code is a stand-in that the
// token endpoint will not check.
func (s *Server) handleAuthorize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "invalid_request",
			"error_description": "malformed authorization request",
		})
		return
	}

	code := uuid.NewString()
	state := r.Form.Get("state")

	if redirectURI := r.Form.Get("redirect_uri"); redirectURI != "" {
		target, err := url.Parse(redirectURI)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":             "invalid_request",
				"error_description": "redirect_uri is not a valid URL",
			})
			return
		}
		query := target.Query()
		query.Set("code", code)
		if state != "" {
			query.Set("state", state)
		}
		target.RawQuery = query.Encode()
		http.Redirect(w, r, target.String(), http.StatusFound)
		return
	}

	body := map[string]any{"code": code}
	if state != "" {
		body["state"] = state
	}
	writeJSON(w, http.StatusOK, body)
}

// handleToken issues a fresh bearer token for any authorization_code grant.
// The supplied code and PKCE verifier are not validated; see DESIGN.md for
// the integrator decision this defers.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "invalid_request",
			"error_description": "request body must be form-encoded",
		})
		return
	}

	if grantType := r.PostForm.Get("grant_type"); grantType != "authorization_code" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":             "unsupported_grant_type",
			"error_description": "only authorization_code is supported",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": uuid.NewString(),
		"token_type":   "Bearer",
		"expires_in":   3600,
		"scope":        "read write",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
