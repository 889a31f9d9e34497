package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lox_http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"path", "method", "code"},
	)

	httpDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lox_http_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	conversionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lox_conversions_total",
			Help: "Total number of time scale and frame conversions by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	propagationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "lox_propagation_duration_seconds",
			Help:    "Duration of SGP4 propagation batches in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
		},
	)

	propagationStatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lox_propagation_states_total",
			Help: "Total number of propagated states by outcome.",
		},
		[]string{"outcome"},
	)

	passPredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lox_pass_predictions_total",
			Help: "Total number of per-satellite pass predictions by outcome.",
		},
		[]string{"outcome"},
	)

	eopDatasetAgeSeconds = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "lox_eop_dataset_age_seconds",
			Help: "Age of the loaded Earth orientation dataset in seconds, -1 if none is loaded.",
		},
	)

	eopFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lox_eop_fetches_total",
			Help: "Total number of Earth orientation data fetches by outcome.",
		},
		[]string{"outcome"},
	)
)

// Conversion outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeExtrapolated = "extrapolated"
	OutcomeError        = "error"
)

func init() {
	prometheus.MustRegister(
		httpRequestsTotal,
		httpDurationSeconds,
		conversionsTotal,
		propagationDurationSeconds,
		propagationStatesTotal,
		passPredictionsTotal,
		eopDatasetAgeSeconds,
		eopFetchesTotal,
	)
	eopDatasetAgeSeconds.Set(-1)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordConversion counts one conversion of the given kind ("time", "frame").
func RecordConversion(kind, outcome string) {
	conversionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordPropagation records the duration and outcome counts of a batch.
func RecordPropagation(d time.Duration, success, errors int) {
	propagationDurationSeconds.Observe(d.Seconds())
	propagationStatesTotal.WithLabelValues(OutcomeOK).Add(float64(success))
	propagationStatesTotal.WithLabelValues(OutcomeError).Add(float64(errors))
}

// RecordPassPrediction counts one satellite's pass prediction.
func RecordPassPrediction(err error) {
	if err != nil {
		passPredictionsTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	passPredictionsTotal.WithLabelValues(OutcomeOK).Inc()
}

// SetEOPAge publishes the age of the loaded EOP dataset.
func SetEOPAge(seconds float64) {
	eopDatasetAgeSeconds.Set(seconds)
}

// RecordEOPFetch counts one fetch attempt.
func RecordEOPFetch(err error) {
	if err != nil {
		eopFetchesTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	eopFetchesTotal.WithLabelValues(OutcomeOK).Inc()
}

var knownRoutes = map[string]bool{
	"/":                          true,
	"/healthz":                   true,
	"/readyz":                    true,
	"/metrics":                   true,
	"/api/v1/time/convert":       true,
	"/api/v1/eop/metadata":       true,
	"/api/v1/eop/fetch":          true,
	"/api/v1/frames/transform":   true,
	"/api/v1/propagate":          true,
	"/api/v1/propagate/snapshot": true,
	"/api/v1/passes":             true,
}

// normalizeRoute maps request paths to a bounded set of labels.
func normalizeRoute(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware records request count and duration for each request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		code := strconv.Itoa(rw.statusCode)
		route := normalizeRoute(r.URL.Path)

		httpRequestsTotal.WithLabelValues(route, r.Method, code).Inc()
		httpDurationSeconds.WithLabelValues(route, r.Method).Observe(duration)
	})
}
