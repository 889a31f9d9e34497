package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	enabled := Middleware(Config{Enabled: true, Token: "s3cret"})(ok)
	disabled := Middleware(Config{})(ok)
	noToken := Middleware(Config{Enabled: true})(ok)

	tests := []struct {
		name    string
		handler http.Handler
		method  string
		path    string
		header  string
		want    int
	}{
		{"public probe", enabled, http.MethodGet, "/readyz", "", http.StatusNoContent},
		{"public conversion", enabled, http.MethodGet, "/api/v1/time/convert", "", http.StatusNoContent},
		{"public propagate", enabled, http.MethodPost, "/api/v1/propagate", "", http.StatusNoContent},
		{"fetch without token", enabled, http.MethodPost, "/api/v1/eop/fetch", "", http.StatusUnauthorized},
		{"fetch wrong token", enabled, http.MethodPost, "/api/v1/eop/fetch", "Bearer nope", http.StatusUnauthorized},
		{"fetch wrong scheme", enabled, http.MethodPost, "/api/v1/eop/fetch", "Basic s3cret", http.StatusUnauthorized},
		{"fetch with token", enabled, http.MethodPost, "/api/v1/eop/fetch", "Bearer s3cret", http.StatusNoContent},
		{"auth disabled", disabled, http.MethodPost, "/api/v1/eop/fetch", "", http.StatusNoContent},
		{"empty configured token", noToken, http.MethodPost, "/api/v1/eop/fetch", "Bearer ", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			tt.handler.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if rec.Code == http.StatusUnauthorized && rec.Header().Get("WWW-Authenticate") == "" {
				t.Error("401 without WWW-Authenticate")
			}
		})
	}
}
