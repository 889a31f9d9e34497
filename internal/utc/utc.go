// Package utc converts between Coordinated Universal Time and the continuous
// scales.
//
// UTC is a calendar representation of TAI rather than a scale in its own
// right: from 1972 it differs from TAI by an integer number of leap seconds,
// and between 1960 and 1972 by a piecewise-linear drift. Readings before
// 1960 are undefined.
package utc

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/timescale"
)

var (
	// ErrNonLeapSecondDate is returned for 23:59:60 on a day without a leap second.
	ErrNonLeapSecondDate = errors.New("no leap second on this date")
	// ErrUndefined is returned for UTC readings before 1960-01-01.
	ErrUndefined = errors.New("UTC is undefined before 1960-01-01")
)

// UTC is a civil date and clock reading. Second 60 is valid only on dates the
// leap-second provider approves.
type UTC struct {
	date calendar.Date
	tod  calendar.TimeOfDay
}

func providerOrBuiltin(p LeapSecondsProvider) LeapSecondsProvider {
	if p == nil {
		return builtin
	}
	return p
}

// New validates a UTC reading. A nil provider means the built-in table.
func New(date calendar.Date, tod calendar.TimeOfDay, p LeapSecondsProvider) (UTC, error) {
	if tod.IsLeapSecond() && !providerOrBuiltin(p).IsLeapSecondDate(date) {
		return UTC{}, fmt.Errorf("%w: %v", ErrNonLeapSecondDate, date)
	}
	return UTC{date: date, tod: tod}, nil
}

// Parse reads an ISO 8601 UTC reading with an optional "Z" or " UTC" suffix.
func Parse(iso string, p LeapSecondsProvider) (UTC, error) {
	body := strings.TrimSpace(iso)
	body = strings.TrimSuffix(body, " UTC")
	body = strings.TrimSuffix(body, "Z")
	date, tod, err := timescale.ParseDateTime(body)
	if err != nil {
		return UTC{}, err
	}
	return New(date, tod, p)
}

func (u UTC) Date() calendar.Date           { return u.date }
func (u UTC) TimeOfDay() calendar.TimeOfDay { return u.tod }

// Equal reports whether both readings are identical.
func (u UTC) Equal(o UTC) bool { return u == o }

// secondsSinceJ2000 counts 23:59:60 as the following midnight.
func (u UTC) secondsSinceJ2000() int64 {
	return u.date.SecondsSinceJ2000() + u.tod.SecondOfDay()
}

func (u UTC) delta() deltas.TimeDelta {
	return deltas.New(u.secondsSinceJ2000(), u.tod.Subsecond())
}

// Format renders "YYYY-MM-DDTHH:MM:SS.fff UTC".
func (u UTC) Format(precision int) string {
	return fmt.Sprintf("%vT%s UTC", u.date, u.tod.Format(precision))
}

func (u UTC) String() string { return u.Format(3) }

// ToTAI converts to TAI. A nil provider means the built-in table.
func (u UTC) ToTAI(p LeapSecondsProvider) (timescale.Time, error) {
	p = providerOrBuiltin(p)
	d := u.delta()
	if offset, ok := p.DeltaUTCTAI(u); ok {
		return timescale.FromDelta(timescale.TAI, d.Sub(offset)), nil
	}
	m := mjd(float64(u.secondsSinceJ2000()))
	if m >= leapSecondEraMJD {
		return timescale.Time{}, fmt.Errorf("leap-second table does not cover %v", u)
	}
	raw, err := driftTAIMinusUTC(m + u.tod.Subsecond().Float64()/deltas.SecondsPerDay)
	if err != nil {
		return timescale.Time{}, err
	}
	return timescale.FromDelta(timescale.TAI, d.Add(deltas.Float(raw))), nil
}

// To converts u to any continuous scale. ut1 is needed only for UT1.
func (u UTC) To(scale timescale.Scale, p LeapSecondsProvider, ut1 timescale.DeltaUT1Provider) (timescale.Time, error) {
	tai, err := u.ToTAI(p)
	if err != nil {
		return timescale.Time{}, err
	}
	return tai.To(scale, ut1)
}

// FromTAI converts a TAI instant to UTC, producing 23:59:60 inside a leap
// second. A nil provider means the built-in table.
func FromTAI(tai timescale.Time, p LeapSecondsProvider) (UTC, error) {
	if tai.Scale() != timescale.TAI {
		return UTC{}, fmt.Errorf("FromTAI called with a %v time", tai.Scale())
	}
	p = providerOrBuiltin(p)
	var d deltas.TimeDelta
	if offset, ok := p.DeltaTAIUTC(tai); ok {
		d = tai.Delta().Sub(offset)
	} else {
		raw, err := driftTAIMinusUTCAtTAI(mjd(tai.Delta().ToDecimalSeconds()))
		if err != nil {
			return UTC{}, err
		}
		d = tai.Delta().Sub(deltas.Float(raw))
	}
	if d.IsNaN() {
		return UTC{}, fmt.Errorf("%w: NaN instant", ErrUndefined)
	}
	date := calendar.DateFromSecondsSinceJ2000(d.Seconds())
	tod := calendar.TimeOfDayFromSecondsSinceJ2000(d.Seconds()).WithSubsecond(d.Subsecond())
	if p.IsLeapSecond(tai) {
		leap, err := calendar.NewTimeOfDay(tod.Hour(), tod.Minute(), 60)
		if err != nil {
			return UTC{}, err
		}
		tod = leap.WithSubsecond(d.Subsecond())
	}
	return UTC{date: date, tod: tod}, nil
}

// FromTime converts an instant on any continuous scale to UTC.
func FromTime(t timescale.Time, p LeapSecondsProvider, ut1 timescale.DeltaUT1Provider) (UTC, error) {
	tai, err := t.To(timescale.TAI, ut1)
	if err != nil {
		return UTC{}, err
	}
	return FromTAI(tai, p)
}

// GoTime converts to a time.Time in the UTC location. time.Time cannot hold
// a leap second, so 23:59:60 maps to 23:59:59.999999999.
func (u UTC) GoTime() time.Time {
	sec, nsec := u.tod.Second(), int(u.tod.Subsecond().Nanoseconds())
	if u.tod.IsLeapSecond() {
		sec, nsec = 59, 999_999_999
	}
	return time.Date(int(u.date.Year()), time.Month(u.date.Month()), u.date.Day(),
		u.tod.Hour(), u.tod.Minute(), sec, nsec, time.UTC)
}

// FromGoTime converts a time.Time, taken in UTC.
func FromGoTime(t time.Time) UTC {
	t = t.UTC()
	date, err := calendar.NewDate(int64(t.Year()), int(t.Month()), t.Day())
	if err != nil {
		panic(fmt.Sprintf("time.Time produced an invalid date: %v", err))
	}
	sub := deltas.Subsecond(int64(t.Nanosecond()) * 1_000_000_000)
	tod, err := calendar.NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
	if err != nil {
		panic(fmt.Sprintf("time.Time produced an invalid clock reading: %v", err))
	}
	return UTC{date: date, tod: tod.WithSubsecond(sub)}
}
