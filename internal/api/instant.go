package api

import (
	"strings"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/utc"
)

const scaleUTC = "UTC"

func isUTC(scale string) bool { return strings.EqualFold(strings.TrimSpace(scale), scaleUTC) }

// parseInstant reads an ISO 8601 time on the named scale. Without a scale
// name a trailing abbreviation ("... TDB") selects it, and plain readings
// or a "Z" suffix are UTC. UTC readings are returned as TAI. The name of the
// scale the reading was taken on is returned with the time.
func (h *handlers) parseInstant(iso, scale string) (timescale.Time, string, error) {
	iso = strings.TrimSpace(iso)
	if scale == "" {
		switch {
		case strings.HasSuffix(iso, "Z"), strings.HasSuffix(iso, " "+scaleUTC), !strings.Contains(iso, " "):
			scale = scaleUTC
		default:
			t, err := timescale.ParseWithScale(iso)
			return t, t.Scale().String(), err
		}
	}
	if isUTC(scale) {
		u, err := utc.Parse(iso, h.deps.Leap)
		if err != nil {
			return timescale.Time{}, "", err
		}
		t, err := u.ToTAI(h.deps.Leap)
		return t, scaleUTC, err
	}
	s, err := timescale.ParseScale(scale)
	if err != nil {
		return timescale.Time{}, "", err
	}
	t, err := timescale.Parse(s, iso)
	return t, s.String(), err
}

var isExtrapolation = frames.IsExtrapolation

// eopProvider returns the loaded EOP provider or a nil interface.
func (h *handlers) eopProvider() frames.Provider {
	if h.deps.EOP == nil {
		return nil
	}
	return h.deps.EOP.Current()
}
