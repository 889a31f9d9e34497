package api

import (
	"errors"
	"net/http"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/timescale"
)

type transformRequest struct {
	Time     string     `json:"time"`
	Scale    string     `json:"scale"`
	From     string     `json:"from"`
	To       string     `json:"to"`
	Position [3]float64 `json:"position"`
	Velocity [3]float64 `json:"velocity"`
}

type transformResponse struct {
	Time     string          `json:"time"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Position [3]float64      `json:"position"`
	Velocity [3]float64      `json:"velocity"`
	Rotation rotation.Matrix `json:"rotation"`
	Warning  string          `json:"warning,omitempty"`
}

func vec(a [3]float64) r3.Vec { return r3.Vec{X: a[0], Y: a[1], Z: a[2]} }
func array(v r3.Vec) [3]float64 { return [3]float64{v.X, v.Y, v.Z} }

// transformStatus maps rotation failures to HTTP status codes.
func transformStatus(err error) int {
	switch {
	case errors.Is(err, frames.ErrEOPRequired), errors.Is(err, timescale.ErrMissingUT1Provider):
		return http.StatusServiceUnavailable
	case errors.Is(err, frames.ErrUnknownFrame):
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

// transformFrame handles POST /api/v1/frames/transform. Position and
// velocity share whatever length unit the caller uses.
func (h *handlers) transformFrame(w http.ResponseWriter, r *http.Request) {
	var req transformRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Time == "" || req.From == "" || req.To == "" {
		writeError(w, http.StatusBadRequest, "time, from and to are required")
		return
	}
	from, err := frames.Parse(req.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := frames.Parse(req.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t, _, err := h.parseInstant(req.Time, req.Scale)
	if err != nil {
		metrics.RecordConversion("frame", metrics.OutcomeError)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rot, warn := frames.Rotate(from, to, t, h.eopProvider())
	if warn != nil && !isExtrapolation(warn) {
		metrics.RecordConversion("frame", metrics.OutcomeError)
		writeError(w, transformStatus(warn), warn.Error())
		return
	}
	outcome := metrics.OutcomeOK
	if warn != nil {
		outcome = metrics.OutcomeExtrapolated
	}
	metrics.RecordConversion("frame", outcome)

	pos, vel := rot.ApplyState(vec(req.Position), vec(req.Velocity))
	writeJSON(w, http.StatusOK, transformResponse{
		Time:     t.Format(9),
		From:     from.Abbreviation(),
		To:       to.Abbreviation(),
		Position: array(pos),
		Velocity: array(vel),
		Rotation: rot.Matrix(),
		Warning:  warningText(warn),
	})
}
