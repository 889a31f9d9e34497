package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// Known exact routes.
		{"/healthz", "/healthz"},
		{"/readyz", "/readyz"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/api/v1/time/convert", "/api/v1/time/convert"},
		{"/api/v1/eop/metadata", "/api/v1/eop/metadata"},
		{"/api/v1/eop/fetch", "/api/v1/eop/fetch"},
		{"/api/v1/frames/transform", "/api/v1/frames/transform"},
		{"/api/v1/propagate", "/api/v1/propagate"},
		{"/api/v1/propagate/snapshot", "/api/v1/propagate/snapshot"},

		// Unknown/bot paths collapse to "other".
		{"/wp-admin", "other"},
		{"/robots.txt", "other"},
		{"/.env", "other"},
		{"/api/v2/something", "other"},
		{"/api/v1/propagate/25544", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := normalizeRoute(tt.path)
			if got != tt.want {
				t.Errorf("normalizeRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestMiddlewareCardinality verifies that 100 unknown paths produce a
// single path label.
func TestMiddlewareCardinality(t *testing.T) {
	h := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", http.MethodGet, "404"))
	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/scan/"+strings.Repeat("x", i), nil)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("other", http.MethodGet, "404"))
	if after-before != 100 {
		t.Errorf("other/GET/404 counter grew by %v, want 100", after-before)
	}
}

func TestRecorders(t *testing.T) {
	before := testutil.ToFloat64(conversionsTotal.WithLabelValues("frame", OutcomeExtrapolated))
	RecordConversion("frame", OutcomeExtrapolated)
	if got := testutil.ToFloat64(conversionsTotal.WithLabelValues("frame", OutcomeExtrapolated)); got != before+1 {
		t.Errorf("conversion counter = %v, want %v", got, before+1)
	}

	okBefore := testutil.ToFloat64(propagationStatesTotal.WithLabelValues(OutcomeOK))
	RecordPropagation(3*time.Millisecond, 5, 2)
	if got := testutil.ToFloat64(propagationStatesTotal.WithLabelValues(OutcomeOK)); got != okBefore+5 {
		t.Errorf("propagated states = %v, want %v", got, okBefore+5)
	}

	SetEOPAge(120)
	if got := testutil.ToFloat64(eopDatasetAgeSeconds); got != 120 {
		t.Errorf("EOP age gauge = %v, want 120", got)
	}

	errBefore := testutil.ToFloat64(eopFetchesTotal.WithLabelValues(OutcomeError))
	RecordEOPFetch(errors.New("boom"))
	if got := testutil.ToFloat64(eopFetchesTotal.WithLabelValues(OutcomeError)); got != errBefore+1 {
		t.Errorf("failed fetches = %v, want %v", got, errBefore+1)
	}
}
