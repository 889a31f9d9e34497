// Package timescale represents instants on the continuous astronomical time
// scales and converts between them.
//
// A Time is a scale tag plus the TimeDelta elapsed since J2000 on that scale.
// Conversions walk a small graph of analytical offsets rooted at TAI; only
// the TAI-UT1 edge needs external data, supplied by a DeltaUT1Provider.
// UTC is not a scale here: it lives in package utc as a calendar
// representation of TAI.
package timescale

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScale is returned when parsing an unrecognized scale name.
var ErrUnknownScale = errors.New("unknown time scale")

// Scale identifies a continuous time scale.
type Scale int

const (
	TAI Scale = iota
	TCB
	TCG
	TDB
	TT
	UT1
)

// Scales lists every supported scale in declaration order.
var Scales = [...]Scale{TAI, TCB, TCG, TDB, TT, UT1}

var scaleInfo = [...]struct{ abbr, name string }{
	TAI: {"TAI", "International Atomic Time"},
	TCB: {"TCB", "Barycentric Coordinate Time"},
	TCG: {"TCG", "Geocentric Coordinate Time"},
	TDB: {"TDB", "Barycentric Dynamical Time"},
	TT:  {"TT", "Terrestrial Time"},
	UT1: {"UT1", "Universal Time"},
}

func (s Scale) valid() bool { return s >= TAI && s <= UT1 }

// String returns the abbreviation, e.g. "TDB".
func (s Scale) String() string {
	if !s.valid() {
		return fmt.Sprintf("Scale(%d)", int(s))
	}
	return scaleInfo[s].abbr
}

// Name returns the full name of the scale.
func (s Scale) Name() string {
	if !s.valid() {
		return s.String()
	}
	return scaleInfo[s].name
}

// ParseScale accepts an abbreviation in any letter case.
func ParseScale(name string) (Scale, error) {
	for _, s := range Scales {
		if strings.EqualFold(name, scaleInfo[s].abbr) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScale, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Scale) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownScale, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scale) UnmarshalText(b []byte) error {
	v, err := ParseScale(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
