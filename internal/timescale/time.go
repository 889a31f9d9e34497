package timescale

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
)

// ErrLeapSecondOutsideUTC is returned when a clock reading with second 60 is
// used on a continuous scale.
var ErrLeapSecondOutsideUTC = errors.New("leap seconds exist only in UTC")

// Time is an instant on a continuous scale, stored as the delta from J2000
// (2000-01-01T12:00:00) on that scale.
type Time struct {
	scale Scale
	delta deltas.TimeDelta
}

// New builds a time from whole seconds and a fraction since J2000.
func New(scale Scale, seconds int64, subsecond deltas.Subsecond) Time {
	return Time{scale: scale, delta: deltas.New(seconds, subsecond)}
}

// FromDelta builds a time lying delta after J2000 on scale.
func FromDelta(scale Scale, delta deltas.TimeDelta) Time {
	return Time{scale: scale, delta: delta}
}

// J2000 returns the reference epoch on scale.
func J2000(scale Scale) Time { return Time{scale: scale} }

// FromDateTime combines a calendar date and a clock reading on scale.
func FromDateTime(scale Scale, date calendar.Date, tod calendar.TimeOfDay) (Time, error) {
	if tod.IsLeapSecond() {
		return Time{}, fmt.Errorf("%w: %v %v %v", ErrLeapSecondOutsideUTC, date, tod.Format(0), scale)
	}
	seconds := date.SecondsSinceJ2000() + tod.SecondOfDay()
	return New(scale, seconds, tod.Subsecond()), nil
}

// FromJulianDate builds a time from a Julian date in days measured from epoch.
func FromJulianDate(scale Scale, jd float64, epoch deltas.Epoch) (Time, error) {
	d, err := deltas.FromDays(jd)
	if err != nil {
		return Time{}, err
	}
	return FromDelta(scale, d.Sub(deltas.FromSeconds(epoch.Offset()))), nil
}

// FromTwoPartJulianDate builds a time from a Julian date split into two parts
// whose sum is the date; the split preserves precision.
func FromTwoPartJulianDate(scale Scale, jd1, jd2 float64) (Time, error) {
	d1, err := deltas.FromDays(jd1)
	if err != nil {
		return Time{}, err
	}
	d2, err := deltas.FromDays(jd2)
	if err != nil {
		return Time{}, err
	}
	return FromDelta(scale, d1.Add(d2).Sub(deltas.FromSeconds(deltas.SecondsBetweenJDAndJ2000))), nil
}

// Parse reads "YYYY-MM-DDTHH:MM:SS[.fff]" on scale. A trailing scale
// abbreviation, if present, must match scale.
func Parse(scale Scale, iso string) (Time, error) {
	body, suffix, found := strings.Cut(strings.TrimSpace(iso), " ")
	if found {
		s, err := ParseScale(strings.TrimSpace(suffix))
		if err != nil {
			return Time{}, err
		}
		if s != scale {
			return Time{}, fmt.Errorf("%w: %q is on %v, not %v", ErrUnknownScale, iso, s, scale)
		}
	}
	date, tod, err := ParseDateTime(body)
	if err != nil {
		return Time{}, err
	}
	return FromDateTime(scale, date, tod)
}

// ParseWithScale reads an ISO string whose scale is given as a trailing
// abbreviation, e.g. "2000-01-01T12:00:00 TDB".
func ParseWithScale(iso string) (Time, error) {
	body, suffix, found := strings.Cut(strings.TrimSpace(iso), " ")
	if !found {
		return Time{}, fmt.Errorf("%w: no scale in %q", ErrUnknownScale, iso)
	}
	scale, err := ParseScale(strings.TrimSpace(suffix))
	if err != nil {
		return Time{}, err
	}
	return Parse(scale, body)
}

// ParseDateTime splits an ISO 8601 date-time into its calendar parts. A bare
// date reads as midnight.
func ParseDateTime(iso string) (calendar.Date, calendar.TimeOfDay, error) {
	datePart, timePart, hasTime := strings.Cut(iso, "T")
	date, err := calendar.ParseDate(datePart)
	if err != nil {
		return calendar.Date{}, calendar.TimeOfDay{}, err
	}
	if !hasTime {
		return date, calendar.Midnight, nil
	}
	tod, err := calendar.ParseTimeOfDay(strings.TrimSuffix(timePart, "Z"))
	if err != nil {
		return calendar.Date{}, calendar.TimeOfDay{}, err
	}
	return date, tod, nil
}

// Scale returns the scale t is expressed on.
func (t Time) Scale() Scale { return t.scale }

// Delta returns the time elapsed since J2000 on t's scale.
func (t Time) Delta() deltas.TimeDelta { return t.delta }

func (t Time) Seconds() int64              { return t.delta.Seconds() }
func (t Time) Subsecond() deltas.Subsecond { return t.delta.Subsecond() }
func (t Time) IsNaN() bool                 { return t.delta.IsNaN() }

// Add shifts t by d on its own scale.
func (t Time) Add(d deltas.TimeDelta) Time {
	return Time{scale: t.scale, delta: t.delta.Add(d)}
}

// Sub returns t shifted backwards by d.
func (t Time) Sub(d deltas.TimeDelta) Time {
	return Time{scale: t.scale, delta: t.delta.Sub(d)}
}

// Since returns t - o. Both must be on the same scale; otherwise the result
// is the NaN delta.
func (t Time) Since(o Time) deltas.TimeDelta {
	if t.scale != o.scale {
		return deltas.NaN
	}
	return t.delta.Sub(o.delta)
}

// Equal reports whether t and o are the same reading on the same scale.
func (t Time) Equal(o Time) bool { return t.scale == o.scale && t.delta.Equal(o.delta) }

// Before orders times on the same scale.
func (t Time) Before(o Time) bool { return t.scale == o.scale && t.delta.Less(o.delta) }

// After orders times on the same scale.
func (t Time) After(o Time) bool { return t.scale == o.scale && o.delta.Less(t.delta) }

// JulianDate projects t onto epoch in unit.
func (t Time) JulianDate(epoch deltas.Epoch, unit deltas.Unit) float64 {
	return t.delta.JulianDate(epoch, unit)
}

// TwoPartJulianDate returns whole days and the fraction of a day.
func (t Time) TwoPartJulianDate() (float64, float64) { return t.delta.TwoPartJulianDate() }

func (t Time) SecondsSinceJ2000() float64   { return t.delta.SecondsSinceJ2000() }
func (t Time) DaysSinceJ2000() float64      { return t.delta.DaysSinceJ2000() }
func (t Time) CenturiesSinceJ2000() float64 { return t.delta.CenturiesSinceJ2000() }

// Date returns the calendar date of t on its own scale.
func (t Time) Date() calendar.Date { return calendar.DateFromSecondsSinceJ2000(t.delta.Seconds()) }

// TimeOfDay returns the clock reading of t on its own scale.
func (t Time) TimeOfDay() calendar.TimeOfDay {
	return calendar.TimeOfDayFromSecondsSinceJ2000(t.delta.Seconds()).WithSubsecond(t.delta.Subsecond())
}

// Format renders "YYYY-MM-DDTHH:MM:SS.fff SCALE" with precision fractional
// digits.
func (t Time) Format(precision int) string {
	if t.IsNaN() {
		return "NaN " + t.scale.String()
	}
	return fmt.Sprintf("%vT%s %v", t.Date(), t.TimeOfDay().Format(precision), t.scale)
}

func (t Time) String() string { return t.Format(3) }
