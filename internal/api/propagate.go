package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/propagation"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/transform"
	"github.com/lox-space/lox-go/internal/units"
	"github.com/lox-space/lox-go/internal/utc"
)

const (
	maxCatalogueBody = 8 << 20
	defaultFrame     = "TEME"
)

type observerRequest struct {
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
	AltKm  float64 `json:"alt_km"`
}

type propagateRequest struct {
	Name        string           `json:"name"`
	Line1       string           `json:"line1"`
	Line2       string           `json:"line2"`
	Start       string           `json:"start"`
	Scale       string           `json:"scale"`
	StepSeconds float64          `json:"step_seconds"`
	Count       int              `json:"count"`
	Frame       string           `json:"frame"`
	Observer    *observerRequest `json:"observer,omitempty"`
}

type geodeticJSON struct {
	LatDeg float64 `json:"lat_deg"`
	LonDeg float64 `json:"lon_deg"`
	AltKm  float64 `json:"alt_km"`
}

type lookJSON struct {
	AzimuthDeg   float64 `json:"azimuth_deg"`
	ElevationDeg float64 `json:"elevation_deg"`
	RangeKm      float64 `json:"range_km"`
	RangeRateKmS float64 `json:"range_rate_km_s"`
}

type stateJSON struct {
	Time     string        `json:"time"`
	Position [3]float64    `json:"position_km"`
	Velocity [3]float64    `json:"velocity_km_s"`
	Geodetic *geodeticJSON `json:"geodetic,omitempty"`
	Look     *lookJSON     `json:"look,omitempty"`
}

type propagateResponse struct {
	NORADID int         `json:"norad_id"`
	Name    string      `json:"name"`
	Epoch   string      `json:"tle_epoch"`
	Frame   string      `json:"frame"`
	States  []stateJSON `json:"states"`
	Warning string      `json:"warning,omitempty"`
}

type snapshotSatellite struct {
	NORADID  int           `json:"norad_id"`
	Name     string        `json:"name"`
	Position [3]float64    `json:"position_km"`
	Velocity [3]float64    `json:"velocity_km_s"`
	Geodetic *geodeticJSON `json:"geodetic,omitempty"`
}

type snapshotResponse struct {
	Time       string              `json:"time"`
	Frame      string              `json:"frame"`
	EpochMin   string              `json:"tle_epoch_min,omitempty"`
	EpochMax   string              `json:"tle_epoch_max,omitempty"`
	Failed     int                 `json:"failed"`
	Satellites []snapshotSatellite `json:"satellites"`
	Warning    string              `json:"warning,omitempty"`
}

// propagationStatus maps propagation failures to HTTP status codes.
func propagationStatus(err error) int {
	switch {
	case errors.Is(err, propagation.ErrTooManyStates), errors.Is(err, timescale.ErrInvalidStep):
		return http.StatusBadRequest
	case errors.Is(err, frames.ErrEOPRequired), errors.Is(err, timescale.ErrMissingUT1Provider):
		return http.StatusServiceUnavailable
	}
	return http.StatusUnprocessableEntity
}

func geodetic(pos r3.Vec) *geodeticJSON {
	g := transform.ToGeodetic(pos)
	return &geodeticJSON{LatDeg: g.Latitude.Deg(), LonDeg: g.Longitude.Deg(), AltKm: g.Altitude.Km()}
}

func parseFrame(s string) (frames.Frame, error) {
	if strings.TrimSpace(s) == "" {
		s = defaultFrame
	}
	return frames.Parse(s)
}

// ephemerisTimes lays count instants step apart from start on TAI, so that
// leap seconds inside the span keep the spacing uniform.
func (h *handlers) ephemerisTimes(start timescale.Time, step deltas.TimeDelta, count int) ([]utc.UTC, error) {
	tai, err := start.To(timescale.TAI, h.eopProvider())
	if err != nil && !isExtrapolation(err) {
		return nil, err
	}
	grid, err := timescale.Series(tai, tai.Add(step.Mul(int64(count-1))), step)
	if err != nil {
		return nil, err
	}
	out := make([]utc.UTC, len(grid))
	for i, t := range grid {
		if out[i], err = utc.FromTAI(t, h.deps.Leap); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// propagate handles POST /api/v1/propagate.
func (h *handlers) propagate(w http.ResponseWriter, r *http.Request) {
	if h.deps.Propagator == nil {
		writeError(w, http.StatusServiceUnavailable, "propagation is not available")
		return
	}
	var req propagateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entry, err := tle.ParseLines(req.Name, req.Line1, req.Line2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	frame, err := parseFrame(req.Frame)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Observer != nil && frame != frames.ITRF {
		writeError(w, http.StatusBadRequest, "observer look angles require frame ITRF")
		return
	}
	if req.Count < 1 {
		req.Count = 1
	}
	if req.Count > timescale.MaxSeriesLength {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("count exceeds %d", timescale.MaxSeriesLength))
		return
	}
	step, err := deltas.FromDecimalSeconds(req.StepSeconds)
	if err != nil || (req.Count > 1 && !step.IsPositive()) {
		writeError(w, http.StatusBadRequest, "step_seconds must be a positive number")
		return
	}
	if req.Count == 1 {
		step = deltas.FromSeconds(1)
	}

	var start timescale.Time
	if req.Start == "" {
		start, err = utc.FromGoTime(time.Now()).ToTAI(h.deps.Leap)
	} else {
		start, _, err = h.parseInstant(req.Start, req.Scale)
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	times, err := h.ephemerisTimes(start, step, req.Count)
	if err != nil {
		writeError(w, propagationStatus(err), err.Error())
		return
	}

	eph, err := h.deps.Propagator.Ephemeris(r.Context(), entry, times, frame)
	if err != nil {
		h.logger.Warn("propagation failed", "norad_id", entry.NORADID, "error", err)
		writeError(w, propagationStatus(err), err.Error())
		return
	}

	var observer *transform.Observer
	if req.Observer != nil {
		o := transform.NewObserver(transform.Geodetic{
			Latitude:  units.Degrees(req.Observer.LatDeg),
			Longitude: units.Degrees(req.Observer.LonDeg),
			Altitude:  units.Kilometers(req.Observer.AltKm),
		})
		observer = &o
	}

	resp := propagateResponse{
		NORADID: eph.NORADID,
		Name:    eph.Name,
		Epoch:   entry.Epoch.Format(6),
		Frame:   frame.Abbreviation(),
		States:  make([]stateJSON, len(eph.States)),
		Warning: warningText(eph.Warning),
	}
	for i, s := range eph.States {
		st := stateJSON{
			Time:     s.Time.Format(3),
			Position: array(s.Position),
			Velocity: array(s.Velocity),
		}
		if frame == frames.ITRF {
			st.Geodetic = geodetic(s.Position)
		}
		if observer != nil {
			la := observer.LookAngles(s.Position, s.Velocity)
			st.Look = &lookJSON{
				AzimuthDeg:   la.Azimuth.Deg(),
				ElevationDeg: la.Elevation.Deg(),
				RangeKm:      la.Range.Km(),
				RangeRateKmS: la.RangeRate.KPS(),
			}
		}
		resp.States[i] = st
	}
	writeJSON(w, http.StatusOK, resp)
}

// snapshot handles POST /api/v1/propagate/snapshot?time=&frame= with a TLE
// catalogue as the request body.
func (h *handlers) snapshot(w http.ResponseWriter, r *http.Request) {
	if h.deps.Propagator == nil {
		writeError(w, http.StatusServiceUnavailable, "propagation is not available")
		return
	}
	q := r.URL.Query()
	frame, err := parseFrame(q.Get("frame"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	at := utc.FromGoTime(time.Now())
	if s := q.Get("time"); s != "" {
		t, _, err := h.parseInstant(s, q.Get("scale"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		tai, err := t.To(timescale.TAI, h.eopProvider())
		if err != nil && !isExtrapolation(err) {
			writeError(w, propagationStatus(err), err.Error())
			return
		}
		if at, err = utc.FromTAI(tai, h.deps.Leap); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	entries, err := tle.Parse(http.MaxBytesReader(w, r.Body, maxCatalogueBody), h.logger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(entries) == 0 {
		writeError(w, http.StatusBadRequest, "no valid TLE entries in request body")
		return
	}

	snap, err := h.deps.Propagator.Snapshot(r.Context(), entries, at, frame)
	if err != nil {
		h.logger.Warn("snapshot failed", "satellites", len(entries), "error", err)
		writeError(w, propagationStatus(err), err.Error())
		return
	}

	resp := snapshotResponse{
		Time:       snap.Time.Format(3),
		Frame:      frame.Abbreviation(),
		Failed:     snap.Failed,
		Satellites: make([]snapshotSatellite, len(snap.Satellites)),
		Warning:    warningText(snap.Warning),
	}
	if rng, ok := tle.Epochs(entries); ok {
		resp.EpochMin = rng.Min.Format(3)
		resp.EpochMax = rng.Max.Format(3)
	}
	for i, s := range snap.Satellites {
		sat := snapshotSatellite{
			NORADID:  s.NORADID,
			Name:     s.Name,
			Position: array(s.Position),
			Velocity: array(s.Velocity),
		}
		if frame == frames.ITRF {
			sat.Geodetic = geodetic(s.Position)
		}
		resp.Satellites[i] = sat
	}
	writeJSON(w, http.StatusOK, resp)
}
