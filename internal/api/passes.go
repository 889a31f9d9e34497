package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/passes"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/transform"
	"github.com/lox-space/lox-go/internal/units"
	"github.com/lox-space/lox-go/internal/utc"
)

const maxPassEntries = 500

type tleRequest struct {
	Name  string `json:"name"`
	Line1 string `json:"line1"`
	Line2 string `json:"line2"`
}

type passesRequest struct {
	Observer        observerRequest `json:"observer"`
	TLEs            []tleRequest    `json:"tles"`
	Start           string          `json:"start"`
	Scale           string          `json:"scale"`
	Hours           float64         `json:"hours"`
	MinElevationDeg float64         `json:"min_elevation_deg"`
	MaxPasses       int             `json:"max_passes"`
}

type trackPointJSON struct {
	Time         string  `json:"time"`
	LatDeg       float64 `json:"lat_deg"`
	LonDeg       float64 `json:"lon_deg"`
	AltKm        float64 `json:"alt_km"`
	ElevationDeg float64 `json:"elevation_deg"`
}

type passJSON struct {
	Rise                  string           `json:"rise"`
	Culmination           string           `json:"culmination"`
	Set                   string           `json:"set"`
	DurationSeconds       float64          `json:"duration_seconds"`
	MaxElevationDeg       float64          `json:"max_elevation_deg"`
	RiseAzimuthDeg        float64          `json:"rise_azimuth_deg"`
	CulminationAzimuthDeg float64          `json:"culmination_azimuth_deg"`
	SetAzimuthDeg         float64          `json:"set_azimuth_deg"`
	GroundTrack           []trackPointJSON `json:"ground_track"`
}

type satellitePassesJSON struct {
	NORADID int        `json:"norad_id"`
	Name    string     `json:"name"`
	Passes  []passJSON `json:"passes"`
	Error   string     `json:"error,omitempty"`
}

type passesResponse struct {
	Start      string                `json:"start"`
	Satellites []satellitePassesJSON `json:"satellites"`
	Warning    string                `json:"warning,omitempty"`
}

func passToJSON(p passes.Pass) passJSON {
	out := passJSON{
		Rise:                  p.Rise.Format(3),
		Culmination:           p.Culmination.Format(3),
		Set:                   p.Set.Format(3),
		DurationSeconds:       p.Duration.Seconds(),
		MaxElevationDeg:       p.MaxElevation.Deg(),
		RiseAzimuthDeg:        p.RiseAzimuth.Deg(),
		CulminationAzimuthDeg: p.CulminationAzimuth.Deg(),
		SetAzimuthDeg:         p.SetAzimuth.Deg(),
		GroundTrack:           make([]trackPointJSON, len(p.GroundTrack)),
	}
	for i, gt := range p.GroundTrack {
		out.GroundTrack[i] = trackPointJSON{
			Time:         gt.Time.Format(3),
			LatDeg:       gt.Geodetic.Latitude.Deg(),
			LonDeg:       gt.Geodetic.Longitude.Deg(),
			AltKm:        gt.Geodetic.Altitude.Km(),
			ElevationDeg: gt.Elevation.Deg(),
		}
	}
	return out
}

// predictPasses handles POST /api/v1/passes.
func (h *handlers) predictPasses(w http.ResponseWriter, r *http.Request) {
	if h.deps.Passes == nil {
		writeError(w, http.StatusServiceUnavailable, "pass prediction is not available")
		return
	}
	var req passesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.TLEs) == 0 || len(req.TLEs) > maxPassEntries {
		writeError(w, http.StatusBadRequest, "tles must hold between 1 and 500 element sets")
		return
	}
	if req.Observer.LatDeg < -90 || req.Observer.LatDeg > 90 {
		writeError(w, http.StatusBadRequest, "observer latitude out of range")
		return
	}
	entries := make([]tle.TLEEntry, len(req.TLEs))
	for i, t := range req.TLEs {
		e, err := tle.ParseLines(t.Name, t.Line1, t.Line2)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		entries[i] = e
	}
	if req.Hours == 0 {
		req.Hours = 24
	}
	if req.Hours < 0 || req.Hours > passes.MaxHorizon.Hours() {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("hours must be within (0, %g]", passes.MaxHorizon.Hours()))
		return
	}

	start := utc.FromGoTime(time.Now())
	if req.Start != "" {
		t, _, err := h.parseInstant(req.Start, req.Scale)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		tai, err := t.To(timescale.TAI, h.eopProvider())
		if err != nil && !isExtrapolation(err) {
			writeError(w, propagationStatus(err), err.Error())
			return
		}
		if start, err = utc.FromTAI(tai, h.deps.Leap); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	res, err := h.deps.Passes.Predict(r.Context(), passes.Request{
		Observer: transform.NewObserver(transform.Geodetic{
			Latitude:  units.Degrees(req.Observer.LatDeg),
			Longitude: units.Degrees(req.Observer.LonDeg),
			Altitude:  units.Kilometers(req.Observer.AltKm),
		}),
		Entries:      entries,
		Start:        start,
		Horizon:      time.Duration(req.Hours * float64(time.Hour)),
		MinElevation: units.Degrees(req.MinElevationDeg),
		MaxPasses:    req.MaxPasses,
	})
	switch {
	case errors.Is(err, passes.ErrHorizon):
		writeError(w, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, frames.ErrEOPRequired):
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	case err != nil:
		h.logger.Warn("pass prediction failed", "satellites", len(entries), "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	resp := passesResponse{
		Start:      start.Format(3),
		Satellites: make([]satellitePassesJSON, len(res.Satellites)),
		Warning:    warningText(res.Warning),
	}
	for i, sat := range res.Satellites {
		out := satellitePassesJSON{
			NORADID: sat.NORADID,
			Name:    sat.Name,
			Passes:  make([]passJSON, len(sat.Passes)),
			Error:   warningText(sat.Err),
		}
		for j, p := range sat.Passes {
			out.Passes[j] = passToJSON(p)
		}
		resp.Satellites[i] = out
	}
	writeJSON(w, http.StatusOK, resp)
}
