package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/lox-space/lox-go/internal/auth"
	"github.com/lox-space/lox-go/internal/eop"
	"github.com/lox-space/lox-go/internal/health"
	"github.com/lox-space/lox-go/internal/httputil"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/passes"
	"github.com/lox-space/lox-go/internal/propagation"
	"github.com/lox-space/lox-go/internal/utc"
)

// Deps are the components the handlers serve.
type Deps struct {
	EOP *eop.Store
	// Refresher is nil when fetching is disabled.
	Refresher  *eop.Refresher
	Propagator *propagation.Propagator
	Passes     *passes.Predictor
	// Leap is the leap-second provider; nil selects the built-in table.
	Leap       utc.LeapSecondsProvider
	TrustProxy bool
	// RequireEOP makes /readyz fail until an EOP dataset is loaded.
	RequireEOP bool
}

// Server holds the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

type handlers struct {
	deps   Deps
	logger *slog.Logger
}

// NewServer creates a configured HTTP server.
func NewServer(addr string, logger *slog.Logger, authCfg auth.Config, deps Deps) *Server {
	h := &handlers{deps: deps, logger: logger.With("component", "api")}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.HandleFunc("GET /readyz", health.Readyz(h.ready))
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /api/v1/time/convert", h.convertTime)
	mux.HandleFunc("GET /api/v1/eop/metadata", h.eopMetadata)
	mux.HandleFunc("POST /api/v1/eop/fetch", h.eopFetch)
	mux.HandleFunc("POST /api/v1/frames/transform", h.transformFrame)
	mux.HandleFunc("POST /api/v1/propagate", h.propagate)
	mux.HandleFunc("POST /api/v1/propagate/snapshot", h.snapshot)
	mux.HandleFunc("POST /api/v1/passes", h.predictPasses)

	// Build middleware chain: metrics -> request ID -> logging -> auth -> mux.
	var handler http.Handler = mux
	handler = auth.Middleware(authCfg)(handler)
	handler = loggingMiddleware(logger, deps.TrustProxy)(handler)
	handler = requestIDMiddleware(handler)
	handler = metrics.Middleware(handler)

	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       10 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		logger: logger,
	}
}

// HTTPServer returns the underlying *http.Server for external control (e.g. shutdown).
func (s *Server) HTTPServer() *http.Server {
	return s.httpServer
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (h *handlers) ready() error {
	if h.deps.RequireEOP && (h.deps.EOP == nil || h.deps.EOP.Get() == nil) {
		return eop.ErrNoData
	}
	return nil
}

// probePath returns true for health/readiness probe paths that should not log at INFO.
func probePath(path string) bool {
	return path == "/healthz" || path == "/readyz"
}

type requestIDKey struct{}

const requestIDHeader = "X-Request-ID"

// requestIDMiddleware tags each request with a UUID, reusing a well-formed
// incoming X-Request-ID.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.FromString(r.Header.Get(requestIDHeader))
		if err != nil {
			if id, err = uuid.NewV4(); err != nil {
				id = uuid.Nil
			}
		}
		w.Header().Set(requestIDHeader, id.String())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

// RequestID returns the request ID stored in ctx.
func RequestID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(requestIDKey{}).(uuid.UUID)
	return id, ok
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *slog.Logger, trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sr := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(sr, r)

			duration := time.Since(start)
			level := slog.LevelInfo
			if probePath(r.URL.Path) {
				level = slog.LevelDebug
			}

			id, _ := RequestID(r.Context())
			logger.Log(r.Context(), level, "request",
				"component", "api",
				"request_id", id.String(),
				"method", r.Method,
				"path", r.URL.Path,
				"status", strconv.Itoa(sr.statusCode),
				"duration_ms", duration.Milliseconds(),
				"remote_ip", httputil.ClientIP(r, trustProxy),
			)
		})
	}
}
