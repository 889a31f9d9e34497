// Package auth guards state-changing endpoints with a static bearer token.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// Config holds authentication configuration.
type Config struct {
	Enabled bool
	Token   string
}

// publicPaths are read-only computations and probes, always open.
var publicPaths = map[string]bool{
	"/healthz":                   true,
	"/readyz":                    true,
	"/metrics":                   true,
	"/api/v1/time/convert":       true,
	"/api/v1/eop/metadata":       true,
	"/api/v1/frames/transform":   true,
	"/api/v1/propagate":          true,
	"/api/v1/propagate/snapshot": true,
	"/api/v1/passes":             true,
}

// IsPublic reports whether path is served without a token.
func IsPublic(path string) bool {
	return publicPaths[path]
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="lox"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}

// Middleware returns an HTTP middleware that enforces Bearer token auth
// on non-public paths when auth is enabled. An enabled config with an empty
// token rejects every protected request.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled || IsPublic(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || cfg.Token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) != 1 {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
