package eop

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/units"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

const (
	baseMJD = 59000 // 2020-05-31, TAI-UTC = 37 s
	rows    = 10
)

func ut1UTC(d float64) float64 { return -0.2 + 0.001*d }
func xPole(d float64) float64  { return 0.1 + 0.002*d }
func yPole(d float64) float64  { return 0.4 - 0.001*d }

// sampleCSV builds a finals2000A-style file whose series are linear in time,
// so the spline reproduces them exactly. The trailing Bulletin B block holds
// values that must be ignored.
func sampleCSV() string {
	var b strings.Builder
	b.WriteString("MJD;Year;Month;Day;Type;x_pole;sigma_x_pole;y_pole;sigma_y_pole;Type;UT1-UTC;sigma_UT1-UTC;dX;sigma_dX;dY;sigma_dY;x_pole;y_pole;UT1-UTC;dX;dY\n")
	for i := 0; i < rows; i++ {
		d := float64(i)
		fmt.Fprintf(&b, "%d;2020;6;%d;final;%.6f;0.00003;%.6f;0.00003;final;%.7f;0.00001;0.100;0.06;-0.050;0.06;9.9;9.9;9.9;9.9;9.9\n",
			baseMJD+i, i+1, xPole(d), yPole(d), ut1UTC(d))
	}
	// Predictions past the end of the pole series.
	fmt.Fprintf(&b, "%d;2020;6;11;;;;;;;;;;;;;;;;;\n", baseMJD+rows)
	return b.String()
}

func mustProvider(t *testing.T) *Provider {
	t.Helper()
	records, err := Parse(strings.NewReader(sampleCSV()), testLogger)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := NewProvider(records, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	return p
}

func atMJD(scale timescale.Scale, mjd float64) timescale.Time {
	return timescale.FromDelta(scale, deltas.Float(secondsSinceJ2000(mjd)))
}

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sampleCSV()), testLogger)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != rows {
		t.Fatalf("got %d records, want %d", len(records), rows)
	}
	r := records[3]
	if r.MJD != baseMJD+3 {
		t.Errorf("MJD = %v, want %v", r.MJD, baseMJD+3)
	}
	if math.Abs(r.XP-xPole(3)) > 1e-12 || math.Abs(r.YP-yPole(3)) > 1e-12 {
		t.Errorf("pole = (%v, %v), want (%v, %v)", r.XP, r.YP, xPole(3), yPole(3))
	}
	if math.Abs(r.UT1MinusUTC-ut1UTC(3)) > 1e-12 {
		t.Errorf("UT1-UTC = %v, want %v", r.UT1MinusUTC, ut1UTC(3))
	}
	if r.DX != 0.1 || r.DY != -0.05 {
		t.Errorf("dX, dY = %v, %v; want 0.1, -0.05", r.DX, r.DY)
	}
}

func TestParseSkipsBadValues(t *testing.T) {
	in := "MJD;x_pole;y_pole;UT1-UTC\n" +
		"59000;0.1;0.2;-0.1\n" +
		"59001;oops;0.2;-0.1\n" +
		"59002;0.1;0.2;\n"
	records, err := Parse(strings.NewReader(in), testLogger)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if !math.IsNaN(records[1].UT1MinusUTC) {
		t.Errorf("missing UT1-UTC = %v, want NaN", records[1].UT1MinusUTC)
	}
	if !math.IsNaN(records[0].DX) {
		t.Errorf("missing dX = %v, want NaN", records[0].DX)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse(strings.NewReader(""), testLogger); !errors.Is(err, ErrNoData) {
		t.Errorf("empty input: got %v, want ErrNoData", err)
	}
	if _, err := Parse(strings.NewReader("MJD;x_pole\n59000;0.1\n"), testLogger); err == nil {
		t.Error("missing y_pole column: expected error")
	}
	if _, err := Parse(strings.NewReader("MJD;x_pole;y_pole\n"), testLogger); !errors.Is(err, ErrNoData) {
		t.Errorf("header only: got %v, want ErrNoData", err)
	}
}

func TestNewProviderTooFewRows(t *testing.T) {
	records := []Record{
		{MJD: 59000, XP: 0.1, YP: 0.2, UT1MinusUTC: -0.1, DX: math.NaN(), DY: math.NaN()},
		{MJD: 59001, XP: 0.1, YP: 0.2, UT1MinusUTC: -0.1, DX: math.NaN(), DY: math.NaN()},
	}
	if _, err := NewProvider(records, nil); !errors.Is(err, ErrNoData) {
		t.Errorf("got %v, want ErrNoData", err)
	}
}

func TestProviderRange(t *testing.T) {
	r := mustProvider(t).Range()
	if r.First != baseMJD || r.Last != baseMJD+rows-1 {
		t.Errorf("range = %+v, want [%d, %d]", r, baseMJD, baseMJD+rows-1)
	}
}

func TestDeltaUT1TAI(t *testing.T) {
	p := mustProvider(t)

	got, err := p.DeltaUT1TAI(atMJD(timescale.TAI, baseMJD+4.5))
	if err != nil {
		t.Fatalf("DeltaUT1TAI: %v", err)
	}
	want := ut1UTC(4.5) - 37
	if math.Abs(got.ToDecimalSeconds()-want) > 1e-9 {
		t.Errorf("UT1-TAI = %.12f, want %.12f", got.ToDecimalSeconds(), want)
	}

	got, err = p.DeltaUT1TAI(atMJD(timescale.TAI, baseMJD+20))
	var extrapolated *timescale.ExtrapolatedError
	if !errors.As(err, &extrapolated) {
		t.Fatalf("got %v, want *timescale.ExtrapolatedError", err)
	}
	want = ut1UTC(20) - 37
	if math.Abs(got.ToDecimalSeconds()-want) > 1e-9 {
		t.Errorf("extrapolated UT1-TAI = %.12f, want %.12f", got.ToDecimalSeconds(), want)
	}
	if math.Abs(extrapolated.Value.ToDecimalSeconds()-want) > 1e-9 {
		t.Errorf("error value = %v, want %v", extrapolated.Value.ToDecimalSeconds(), want)
	}
}

func TestDeltaTAIUT1Inverse(t *testing.T) {
	p := mustProvider(t)
	ut1 := atMJD(timescale.UT1, baseMJD+2.25)
	d, err := p.DeltaTAIUT1(ut1)
	if err != nil {
		t.Fatalf("DeltaTAIUT1: %v", err)
	}
	tai := timescale.FromDelta(timescale.TAI, deltas.Float(ut1.SecondsSinceJ2000()+d.ToDecimalSeconds()))
	back, err := p.DeltaUT1TAI(tai)
	if err != nil {
		t.Fatalf("DeltaUT1TAI: %v", err)
	}
	if diff := back.ToDecimalSeconds() + d.ToDecimalSeconds(); math.Abs(diff) > 1e-9 {
		t.Errorf("round trip residual %g s", diff)
	}
}

func TestPolarMotion(t *testing.T) {
	p := mustProvider(t)
	pole, err := p.PolarMotion(atMJD(timescale.TT, baseMJD+6))
	if err != nil {
		t.Fatalf("PolarMotion: %v", err)
	}
	if d := math.Abs(pole.XP.Rad() - units.Arcseconds(xPole(6)).Rad()); d > 1e-15 {
		t.Errorf("xp off by %g rad", d)
	}
	if d := math.Abs(pole.YP.Rad() - units.Arcseconds(yPole(6)).Rad()); d > 1e-15 {
		t.Errorf("yp off by %g rad", d)
	}

	_, err = p.PolarMotion(atMJD(timescale.TT, baseMJD-5))
	if !errors.Is(err, frames.ErrExtrapolated) {
		t.Errorf("got %v, want ErrExtrapolated", err)
	}
}

func TestCIPCorrections(t *testing.T) {
	p := mustProvider(t)
	cip, err := p.CIPCorrections(atMJD(timescale.TT, baseMJD+1.5))
	if err != nil {
		t.Fatalf("CIPCorrections: %v", err)
	}
	if d := math.Abs(cip.X - units.Milliarcseconds(0.1).Rad()); d > 1e-18 {
		t.Errorf("dX off by %g rad", d)
	}
	if d := math.Abs(cip.Y - units.Milliarcseconds(-0.05).Rad()); d > 1e-18 {
		t.Errorf("dY off by %g rad", d)
	}

	in := "MJD;x_pole;y_pole;UT1-UTC\n59000;0.1;0.2;-0.1\n59001;0.1;0.2;-0.1\n59002;0.1;0.2;-0.1\n"
	records, err := Parse(strings.NewReader(in), testLogger)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bare, err := NewProvider(records, nil)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	cip, err = bare.CIPCorrections(atMJD(timescale.TT, 59001))
	if err != nil || cip.X != 0 || cip.Y != 0 {
		t.Errorf("without offsets got %+v, %v; want zero", cip, err)
	}
}

func TestRotateWithProvider(t *testing.T) {
	p := mustProvider(t)
	tt := atMJD(timescale.TT, baseMJD+3)
	if _, err := frames.Rotate(frames.ICRF, frames.ITRF, tt, p); err != nil {
		t.Errorf("in range: unexpected error %v", err)
	}
	m, err := frames.Rotate(frames.ICRF, frames.ITRF, atMJD(timescale.TT, baseMJD+30), p)
	if err == nil {
		t.Fatal("out of range: expected a warning")
	}
	if m.Matrix().MaxAbsDiff(rotation.Identity()) < 1e-3 {
		t.Error("rotation not returned alongside the warning")
	}
}

func TestFetcherBodyLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		chunk := strings.Repeat("0", 1<<20)
		for i := 0; i < 66; i++ {
			if _, err := w.Write([]byte(chunk)); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	_, err := NewFetcher(server.URL, testLogger).Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for oversized response, got nil")
	}
	if !strings.Contains(err.Error(), "byte limit") {
		t.Errorf("expected body limit error, got: %v", err)
	}
}

func TestFetcherHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := NewFetcher(server.URL, testLogger).Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 503 response, got nil")
	}
}

func TestFetcherDefaultURL(t *testing.T) {
	if got := NewFetcher("", testLogger).SourceURL(); got != DefaultSourceURL {
		t.Errorf("SourceURL = %q, want %q", got, DefaultSourceURL)
	}
}

func TestCachePrune(t *testing.T) {
	dir := t.TempDir()
	c := NewCache(dir, 3)
	base := time.Unix(1_700_000_000, 0)
	for i := 0; i < 6; i++ {
		if err := c.Write([]byte(fmt.Sprintf("file %d", i)), base.Add(time.Duration(i)*time.Hour)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d cached files, want 3", len(entries))
	}

	data, ts, err := c.LoadLatest()
	if err != nil {
		t.Fatalf("LoadLatest: %v", err)
	}
	if string(data) != "file 5" {
		t.Errorf("latest = %q, want %q", data, "file 5")
	}
	if !ts.Equal(base.Add(5 * time.Hour)) {
		t.Errorf("latest timestamp = %v", ts)
	}
}

func TestCacheEmpty(t *testing.T) {
	c := NewCache(t.TempDir()+"/missing", 0)
	if _, _, err := c.LoadLatest(); !errors.Is(err, ErrCacheEmpty) {
		t.Errorf("got %v, want ErrCacheEmpty", err)
	}
}

func TestRefresher(t *testing.T) {
	body := sampleCSV()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, body)
	}))
	defer server.Close()

	dir := t.TempDir()
	store := NewStore()
	if store.AgeSeconds() != -1 || store.Provider() != nil {
		t.Fatal("new store should be empty")
	}

	r := NewRefresher(store, NewFetcher(server.URL, testLogger), NewCache(dir, 2), nil, time.Hour, testLogger)
	ds, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if ds.Rows != rows || ds.Source != server.URL {
		t.Errorf("dataset = %d rows from %q", ds.Rows, ds.Source)
	}
	if store.Get() != ds || store.Provider() == nil {
		t.Error("store not updated")
	}
	if age := store.AgeSeconds(); age < 0 || age > 60 {
		t.Errorf("age = %v s", age)
	}

	cold := NewStore()
	if err := NewRefresher(cold, NewFetcher(server.URL, testLogger), NewCache(dir, 2), nil, time.Hour, testLogger).LoadCache(); err != nil {
		t.Fatalf("LoadCache: %v", err)
	}
	if got := cold.Get(); got == nil || got.Rows != rows || got.Source != "cache" {
		t.Errorf("cached dataset = %+v", got)
	}
}

func TestRefresherRunStopsOnCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, sampleCSV())
	}))
	defer server.Close()

	store := NewStore()
	r := NewRefresher(store, NewFetcher(server.URL, testLogger), nil, nil, time.Hour, testLogger)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, time.Hour)
		close(done)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for store.Get() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	cancel()
	<-done
	if store.Get() == nil {
		t.Fatal("Run did not perform the initial refresh")
	}
}
