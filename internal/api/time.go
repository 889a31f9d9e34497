package api

import (
	"errors"
	"net/http"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/utc"
)

type timeResponse struct {
	Input string `json:"input"`
	From  string `json:"from"`
	To    string `json:"to"`
	Time  string `json:"time"`
	// Julian dates are omitted for UTC, which is not a continuous scale.
	JulianDate         *float64    `json:"julian_date,omitempty"`
	JulianDateParts    *[2]float64 `json:"julian_date_parts,omitempty"`
	ModifiedJulianDate *float64    `json:"mjd,omitempty"`
	SecondsSinceJ2000  *float64    `json:"seconds_since_j2000,omitempty"`
	TAI64N             string      `json:"tai64n,omitempty"`
	Warning            string      `json:"warning,omitempty"`
}

// conversionStatus maps conversion failures to HTTP status codes.
func conversionStatus(err error) int {
	switch {
	case errors.Is(err, timescale.ErrMissingUT1Provider):
		return http.StatusServiceUnavailable
	case errors.Is(err, timescale.ErrUnknownScale):
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

// convertTime handles GET /api/v1/time/convert?time=&from=&to=.
func (h *handlers) convertTime(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := q.Get("time")
	if input == "" {
		writeError(w, http.StatusBadRequest, "missing time parameter")
		return
	}
	to := q.Get("to")
	if to == "" {
		to = timescale.TAI.String()
	}

	t, from, err := h.parseInstant(input, q.Get("from"))
	if err != nil {
		metrics.RecordConversion("time", metrics.OutcomeError)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.convert(t, to)
	if err != nil && resp == nil {
		metrics.RecordConversion("time", metrics.OutcomeError)
		writeError(w, conversionStatus(err), err.Error())
		return
	}
	outcome := metrics.OutcomeOK
	if err != nil {
		outcome = metrics.OutcomeExtrapolated
		resp.Warning = err.Error()
	}
	metrics.RecordConversion("time", outcome)

	resp.Input = input
	resp.From = from
	writeJSON(w, http.StatusOK, resp)
}

// convert renders t on the target scale. A non-nil response with an error
// carries an extrapolation warning.
func (h *handlers) convert(t timescale.Time, to string) (*timeResponse, error) {
	ut1 := h.eopProvider()

	tai, warn := t.To(timescale.TAI, ut1)
	if warn != nil && !isExtrapolation(warn) {
		return nil, warn
	}
	resp := &timeResponse{}
	if label, err := tai.ToTAI64N(); err == nil {
		resp.TAI64N = timescale.TAI64NLabel(label)
	}

	if isUTC(to) {
		u, err := utc.FromTAI(tai, h.deps.Leap)
		if err != nil {
			return nil, err
		}
		resp.To = scaleUTC
		resp.Time = u.Format(9)
		return resp, warn
	}

	scale, err := timescale.ParseScale(to)
	if err != nil {
		return nil, err
	}
	out, err := t.To(scale, ut1)
	if err != nil {
		if !isExtrapolation(err) {
			return nil, err
		}
		if warn == nil {
			warn = err
		}
	}

	jd := out.JulianDate(deltas.JulianEpoch, deltas.Days)
	mjd := out.JulianDate(deltas.ModifiedJulianEpoch, deltas.Days)
	jd1, jd2 := out.TwoPartJulianDate()
	secs := out.SecondsSinceJ2000()

	resp.To = scale.String()
	resp.Time = out.Format(9)
	resp.JulianDate = &jd
	resp.JulianDateParts = &[2]float64{jd1, jd2}
	resp.ModifiedJulianDate = &mjd
	resp.SecondsSinceJ2000 = &secs
	return resp, warn
}
