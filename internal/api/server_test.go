package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/lox-space/lox-go/internal/auth"
	"github.com/lox-space/lox-go/internal/eop"
	"github.com/lox-space/lox-go/internal/passes"
	"github.com/lox-space/lox-go/internal/propagation"
)

const (
	issLine1      = "1 25544U 98067A   24100.50000000  .00016717  00000-0  10270-3 0  9005"
	issLine2      = "2 25544  51.6400 100.0000 0001000   0.0000   0.0000 15.50000000    09"
	starlinkLine1 = "1 44713U 19074A   24100.50000000  .00001000  00000-0  10000-4 0  9995"
	starlinkLine2 = "2 44713  53.0000 200.0000 0001500  90.0000 270.0000 15.06000000    05"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// finalsCSV covers MJD 60405-60414 (April 2024), around the TLE epochs.
func finalsCSV() string {
	var b strings.Builder
	b.WriteString("MJD;x_pole;y_pole;UT1-UTC;dX;dY\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%d;%.6f;%.6f;%.7f;0.100;-0.050\n", 60405+i, 0.02+0.001*float64(i), 0.35-0.001*float64(i), -0.01-0.0002*float64(i))
	}
	return b.String()
}

type testServer struct {
	handler http.Handler
	store   *eop.Store
}

func newTestServer(t *testing.T, withEOP bool, authCfg auth.Config, mutate func(*Deps)) *testServer {
	t.Helper()
	logger := testLogger()
	store := eop.NewStore()
	if withEOP {
		ds, err := eop.Load([]byte(finalsCSV()), "test", time.Now(), nil, logger)
		if err != nil {
			t.Fatalf("eop.Load: %v", err)
		}
		store.Set(ds)
	}
	deps := Deps{
		EOP:        store,
		Propagator: propagation.NewPropagator(store, nil, propagation.Config{Workers: 2, MaxStates: 100}, logger),
	}
	if mutate != nil {
		mutate(&deps)
	}
	srv := NewServer(":0", logger, authCfg, deps)
	return &testServer{handler: srv.HTTPServer().Handler, store: store}
}

func (s *testServer) do(t *testing.T, method, target string, body io.Reader, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func postJSON(t *testing.T, s *testServer, target string, v any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	return s.do(t, http.MethodPost, target, bytes.NewReader(body), "Content-Type", "application/json")
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rec.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return v
}

func convertURL(params ...string) string {
	q := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		q.Set(params[i], params[i+1])
	}
	return "/api/v1/time/convert?" + q.Encode()
}

func TestConvertTime(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	rec := s.do(t, http.MethodGet, convertURL("time", "2000-01-01T11:58:55.816Z", "to", "TT"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[timeResponse](t, rec)
	if resp.From != "UTC" || resp.To != "TT" {
		t.Errorf("from/to = %s/%s, want UTC/TT", resp.From, resp.To)
	}
	if resp.Time != "2000-01-01T12:00:00.000000000 TT" {
		t.Errorf("time = %q", resp.Time)
	}
	if resp.JulianDate == nil || math.Abs(*resp.JulianDate-2451545.0) > 1e-9 {
		t.Errorf("julian_date = %v, want 2451545", resp.JulianDate)
	}
	if resp.ModifiedJulianDate == nil || math.Abs(*resp.ModifiedJulianDate-51544.5) > 1e-9 {
		t.Errorf("mjd = %v, want 51544.5", resp.ModifiedJulianDate)
	}
	if !strings.HasPrefix(resp.TAI64N, "@4000") {
		t.Errorf("tai64n = %q", resp.TAI64N)
	}
}

func TestConvertTimeToUTC(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	rec := s.do(t, http.MethodGet, convertURL("time", "2000-01-01T12:00:00.000 TT", "to", "UTC"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[timeResponse](t, rec)
	if resp.From != "TT" {
		t.Errorf("from = %q, want TT", resp.From)
	}
	if resp.Time != "2000-01-01T11:58:55.816000000 UTC" {
		t.Errorf("time = %q", resp.Time)
	}
	if resp.JulianDate != nil {
		t.Error("UTC output carries a Julian date")
	}
}

func TestConvertTimeErrors(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"missing time", convertURL("to", "TT"), http.StatusBadRequest},
		{"unknown target", convertURL("time", "2000-01-01T12:00:00Z", "to", "GPS2"), http.StatusBadRequest},
		{"unknown source", convertURL("time", "2000-01-01T12:00:00", "from", "XYZ"), http.StatusBadRequest},
		{"bad date", convertURL("time", "2000-02-30T12:00:00Z"), http.StatusBadRequest},
		{"UT1 without EOP", convertURL("time", "2000-01-01T12:00:00Z", "to", "UT1"), http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, http.MethodGet, tt.target, nil)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
			if resp := decode[errorResponse](t, rec); resp.Error == "" {
				t.Error("error body is empty")
			}
		})
	}
}

func TestConvertTimeUT1WithEOP(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, nil)

	rec := s.do(t, http.MethodGet, convertURL("time", "2024-04-10T00:00:00Z", "to", "UT1"), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[timeResponse](t, rec)
	if resp.Warning != "" {
		t.Errorf("unexpected warning %q inside the dataset", resp.Warning)
	}
	if !strings.HasPrefix(resp.Time, "2024-04-09T23:59:59.98") {
		t.Errorf("time = %q, want UT1 about 10 ms behind UTC", resp.Time)
	}
}

func TestEOPMetadata(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)
	if rec := s.do(t, http.MethodGet, "/api/v1/eop/metadata", nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("empty store: status = %d, want 503", rec.Code)
	}

	s = newTestServer(t, true, auth.Config{}, nil)
	rec := s.do(t, http.MethodGet, "/api/v1/eop/metadata", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[eopMetadataResponse](t, rec)
	if resp.Source != "test" || resp.Rows != 10 || resp.FirstMJD != 60405 || resp.LastMJD != 60414 {
		t.Errorf("metadata = %+v", resp)
	}
}

func TestEOPFetch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, finalsCSV())
	}))
	defer upstream.Close()

	authCfg := auth.Config{Enabled: true, Token: "t0ken"}
	s := newTestServer(t, false, authCfg, func(d *Deps) {
		fetcher := eop.NewFetcher(upstream.URL, testLogger())
		d.Refresher = eop.NewRefresher(d.EOP, fetcher, nil, nil, time.Hour, testLogger())
	})

	if rec := s.do(t, http.MethodPost, "/api/v1/eop/fetch", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("without token: status = %d, want 401", rec.Code)
	}
	rec := s.do(t, http.MethodPost, "/api/v1/eop/fetch", nil, "Authorization", "Bearer t0ken")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if resp := decode[eopMetadataResponse](t, rec); resp.Rows != 10 || resp.Source != upstream.URL {
		t.Errorf("metadata = %+v", resp)
	}
	if s.store.Get() == nil {
		t.Error("store not updated by fetch")
	}
}

func TestEOPFetchDisabled(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)
	if rec := s.do(t, http.MethodPost, "/api/v1/eop/fetch", nil); rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestTransformFrame(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	pos := [3]float64{7000, 100, -300}
	vel := [3]float64{0.1, 7.5, 1.2}
	rec := postJSON(t, s, "/api/v1/frames/transform", transformRequest{
		Time: "2024-04-10T00:00:00 TDB", From: "ICRF", To: "TEME", Position: pos, Velocity: vel,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[transformResponse](t, rec)
	if resp.From != "ICRF" || resp.To != "TEME" {
		t.Errorf("frames = %s -> %s", resp.From, resp.To)
	}
	norm := func(v [3]float64) float64 { return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2]) }
	if d := math.Abs(norm(resp.Position) - norm(pos)); d > 1e-6 {
		t.Errorf("rotation changed |r| by %g km", d)
	}
	if resp.Position == pos {
		t.Error("ICRF and TEME coincide, precession missing")
	}
}

func TestTransformFrameErrors(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	tests := []struct {
		name string
		body any
		want int
	}{
		{"unknown frame", transformRequest{Time: "2024-04-10T00:00:00Z", From: "ICRF", To: "GALACTIC"}, http.StatusBadRequest},
		{"missing time", transformRequest{From: "ICRF", To: "TEME"}, http.StatusBadRequest},
		{"unknown field", map[string]any{"time": "2024-04-10T00:00:00Z", "from": "ICRF", "to": "TEME", "epoch": 1}, http.StatusBadRequest},
		{"terrestrial without EOP", transformRequest{Time: "2024-04-10T00:00:00Z", From: "ICRF", To: "ITRF"}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postJSON(t, s, "/api/v1/frames/transform", tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestPropagate(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, nil)

	rec := postJSON(t, s, "/api/v1/propagate", propagateRequest{
		Name: "ISS", Line1: issLine1, Line2: issLine2,
		Start: "2024-04-10T00:00:00Z", StepSeconds: 60, Count: 3, Frame: "ITRF",
		Observer: &observerRequest{LatDeg: 48.1, LonDeg: 11.6, AltKm: 0.5},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[propagateResponse](t, rec)
	if resp.NORADID != 25544 || resp.Name != "ISS" || resp.Frame != "ITRF" {
		t.Errorf("header = %d %q %q", resp.NORADID, resp.Name, resp.Frame)
	}
	if len(resp.States) != 3 {
		t.Fatalf("got %d states, want 3", len(resp.States))
	}
	wantTimes := []string{"2024-04-10T00:00:00.000 UTC", "2024-04-10T00:01:00.000 UTC", "2024-04-10T00:02:00.000 UTC"}
	for i, st := range resp.States {
		if st.Time != wantTimes[i] {
			t.Errorf("state %d time = %q, want %q", i, st.Time, wantTimes[i])
		}
		if st.Geodetic == nil || st.Geodetic.AltKm < 300 || st.Geodetic.AltKm > 500 {
			t.Errorf("state %d geodetic = %+v", i, st.Geodetic)
		}
		if st.Look == nil || st.Look.ElevationDeg < -90 || st.Look.ElevationDeg > 90 || st.Look.RangeKm <= 0 {
			t.Errorf("state %d look angles = %+v", i, st.Look)
		}
	}
}

func TestPropagateErrors(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, nil)

	base := func() propagateRequest {
		return propagateRequest{Line1: issLine1, Line2: issLine2, Start: "2024-04-10T00:00:00Z", StepSeconds: 60, Count: 2}
	}
	tests := []struct {
		name   string
		mutate func(*propagateRequest)
		want   int
	}{
		{"bad TLE", func(r *propagateRequest) { r.Line2 = "garbage" }, http.StatusBadRequest},
		{"observer needs ITRF", func(r *propagateRequest) { r.Frame = "TEME"; r.Observer = &observerRequest{} }, http.StatusBadRequest},
		{"too many states", func(r *propagateRequest) { r.Count = 101 }, http.StatusBadRequest},
		{"zero step", func(r *propagateRequest) { r.StepSeconds = 0 }, http.StatusBadRequest},
		{"unknown frame", func(r *propagateRequest) { r.Frame = "J2000X" }, http.StatusBadRequest},
		{"bad start", func(r *propagateRequest) { r.Start = "yesterday" }, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(&req)
			if rec := postJSON(t, s, "/api/v1/propagate", req); rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestSnapshot(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, nil)

	catalogue := strings.Join([]string{
		"ISS (ZARYA)", issLine1, issLine2,
		"STARLINK-1007", starlinkLine1, starlinkLine2,
		"BROKEN", "1 garbage", "2 garbage",
	}, "\n")
	target := "/api/v1/propagate/snapshot?" + url.Values{"time": {"2024-04-10T06:00:00Z"}, "frame": {"ITRF"}}.Encode()
	rec := s.do(t, http.MethodPost, target, strings.NewReader(catalogue), "Content-Type", "text/plain")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[snapshotResponse](t, rec)
	if len(resp.Satellites) != 2 {
		t.Fatalf("got %d satellites, want 2", len(resp.Satellites))
	}
	if resp.Time != "2024-04-10T06:00:00.000 UTC" || resp.Frame != "ITRF" {
		t.Errorf("time/frame = %q/%q", resp.Time, resp.Frame)
	}
	if resp.EpochMin == "" || resp.EpochMin != resp.EpochMax {
		t.Errorf("epoch range = %q..%q", resp.EpochMin, resp.EpochMax)
	}
	for _, sat := range resp.Satellites {
		if sat.Geodetic == nil {
			t.Errorf("%s: missing geodetic position", sat.Name)
		}
	}
}

func TestSnapshotEmptyCatalogue(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, nil)
	rec := s.do(t, http.MethodPost, "/api/v1/propagate/snapshot", strings.NewReader("nothing here\n"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestReadyz(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, func(d *Deps) { d.RequireEOP = true })
	if rec := s.do(t, http.MethodGet, "/readyz", nil); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("without EOP: status = %d, want 503", rec.Code)
	}

	s = newTestServer(t, true, auth.Config{}, func(d *Deps) { d.RequireEOP = true })
	if rec := s.do(t, http.MethodGet, "/readyz", nil); rec.Code != http.StatusOK {
		t.Errorf("with EOP: status = %d, want 200", rec.Code)
	}
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, nil)

	rec := s.do(t, http.MethodGet, "/healthz", nil)
	if id := rec.Header().Get(requestIDHeader); len(id) != 36 {
		t.Errorf("generated request ID %q is not a UUID", id)
	}

	const incoming = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	rec = s.do(t, http.MethodGet, "/healthz", nil, requestIDHeader, incoming)
	if got := rec.Header().Get(requestIDHeader); got != incoming {
		t.Errorf("request ID = %q, want %q echoed", got, incoming)
	}

	rec = s.do(t, http.MethodGet, "/healthz", nil, requestIDHeader, "not-a-uuid")
	if got := rec.Header().Get(requestIDHeader); got == "not-a-uuid" {
		t.Error("malformed request ID was echoed")
	}
}

func TestPredictPasses(t *testing.T) {
	s := newTestServer(t, true, auth.Config{}, func(d *Deps) {
		d.Passes = passes.NewPredictor(d.EOP, nil, 2, testLogger())
	})

	rec := postJSON(t, s, "/api/v1/passes", passesRequest{
		Observer: observerRequest{LatDeg: 40.7128, LonDeg: -74.006, AltKm: 0.01},
		TLEs:     []tleRequest{{Name: "ISS", Line1: issLine1, Line2: issLine2}},
		Start:    "2024-04-10T00:00:00Z",
		Hours:    24,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[passesResponse](t, rec)
	if len(resp.Satellites) != 1 || resp.Satellites[0].Error != "" {
		t.Fatalf("satellites = %+v", resp.Satellites)
	}
	sat := resp.Satellites[0]
	if len(sat.Passes) == 0 {
		t.Fatal("no ISS passes over New York in 24 h")
	}
	for i, p := range sat.Passes {
		if p.MaxElevationDeg <= 0 || p.DurationSeconds < 10 || len(p.GroundTrack) == 0 {
			t.Errorf("pass %d = %+v", i, p)
		}
	}
}

func TestPredictPassesErrors(t *testing.T) {
	s := newTestServer(t, false, auth.Config{}, func(d *Deps) {
		d.Passes = passes.NewPredictor(d.EOP, nil, 1, testLogger())
	})
	iss := []tleRequest{{Line1: issLine1, Line2: issLine2}}

	tests := []struct {
		name string
		req  passesRequest
		want int
	}{
		{"no tles", passesRequest{Hours: 1}, http.StatusBadRequest},
		{"bad latitude", passesRequest{TLEs: iss, Observer: observerRequest{LatDeg: 91}}, http.StatusBadRequest},
		{"horizon too long", passesRequest{TLEs: iss, Hours: 24 * 8}, http.StatusBadRequest},
		{"bad tle", passesRequest{TLEs: []tleRequest{{Line1: "1 x", Line2: "2 y"}}}, http.StatusBadRequest},
		{"no EOP", passesRequest{TLEs: iss, Hours: 1}, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := postJSON(t, s, "/api/v1/passes", tt.req); rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
