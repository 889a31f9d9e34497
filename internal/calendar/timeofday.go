package calendar

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lox-space/lox-go/internal/deltas"
)

var isoTime = regexp.MustCompile(`(\d{2}):(\d{2}):(\d{2})(?:\.(\d+))?`)

// TimeOfDay is a clock reading within one day. Second 60 is accepted here;
// deciding whether a given date may carry it is up to the UTC layer.
type TimeOfDay struct {
	hour      int
	minute    int
	second    int
	subsecond deltas.Subsecond
}

// Midnight is 00:00:00.
var Midnight = TimeOfDay{}

// Noon is 12:00:00.
var Noon = TimeOfDay{hour: 12}

// NewTimeOfDay validates an hour, minute and whole second.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	switch {
	case hour < 0 || hour > 23:
		return TimeOfDay{}, fmt.Errorf("%w: hour %d", ErrInvalidTimeOfDay, hour)
	case minute < 0 || minute > 59:
		return TimeOfDay{}, fmt.Errorf("%w: minute %d", ErrInvalidTimeOfDay, minute)
	case second < 0 || second > 60:
		return TimeOfDay{}, fmt.Errorf("%w: second %d", ErrInvalidTimeOfDay, second)
	}
	return TimeOfDay{hour: hour, minute: minute, second: second}, nil
}

// TimeOfDayFromHMS accepts a real-valued second in [0, 61).
func TimeOfDayFromHMS(hour, minute int, seconds float64) (TimeOfDay, error) {
	if !(seconds >= 0 && seconds < 61) {
		return TimeOfDay{}, fmt.Errorf("%w: seconds %v", ErrInvalidTimeOfDay, seconds)
	}
	whole := math.Floor(seconds)
	t, err := NewTimeOfDay(hour, minute, int(whole))
	if err != nil {
		return TimeOfDay{}, err
	}
	sub, err := deltas.NewSubsecond(seconds - whole)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidTimeOfDay, err)
	}
	return t.WithSubsecond(sub), nil
}

// TimeOfDayFromSecondOfDay maps [0, 86400] onto a clock reading. 86400 is
// the leap second 23:59:60.
func TimeOfDayFromSecondOfDay(second int64) (TimeOfDay, error) {
	if second < 0 || second > deltas.SecondsPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: second of day %d", ErrInvalidTimeOfDay, second)
	}
	if second == deltas.SecondsPerDay {
		return TimeOfDay{hour: 23, minute: 59, second: 60}, nil
	}
	return TimeOfDay{
		hour:   int(second / deltas.SecondsPerHour),
		minute: int(second % deltas.SecondsPerHour / deltas.SecondsPerMinute),
		second: int(second % deltas.SecondsPerMinute),
	}, nil
}

// TimeOfDayFromSecondsSinceJ2000 returns the clock reading of the instant that
// lies seconds after J2000 (which is noon).
func TimeOfDayFromSecondsSinceJ2000(seconds int64) TimeOfDay {
	s := (seconds + deltas.SecondsPerHalfDay) % deltas.SecondsPerDay
	if s < 0 {
		s += deltas.SecondsPerDay
	}
	t, _ := TimeOfDayFromSecondOfDay(s)
	return t
}

// ParseTimeOfDay reads HH:MM:SS[.fff...] from an ISO 8601 string. Fractional
// digits beyond attosecond resolution are truncated.
func ParseTimeOfDay(iso string) (TimeOfDay, error) {
	m := isoTime.FindStringSubmatch(iso)
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("%w: invalid ISO string %q", ErrInvalidTimeOfDay, iso)
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	second, _ := strconv.Atoi(m[3])
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		return TimeOfDay{}, err
	}
	if m[4] == "" {
		return t, nil
	}
	sub, err := parseFraction(m[4])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %v", ErrInvalidTimeOfDay, err)
	}
	return t.WithSubsecond(sub), nil
}

func parseFraction(digits string) (deltas.Subsecond, error) {
	if len(digits) > 18 {
		digits = digits[:18]
	}
	digits += strings.Repeat("0", 18-len(digits))
	atto, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, err
	}
	return deltas.SubsecondFromAttoseconds(atto)
}

// WithSubsecond returns t with its fraction replaced.
func (t TimeOfDay) WithSubsecond(s deltas.Subsecond) TimeOfDay {
	t.subsecond = s
	return t
}

func (t TimeOfDay) Hour() int                   { return t.hour }
func (t TimeOfDay) Minute() int                 { return t.minute }
func (t TimeOfDay) Second() int                 { return t.second }
func (t TimeOfDay) Subsecond() deltas.Subsecond { return t.subsecond }

// SecondOfDay returns the whole seconds since midnight.
func (t TimeOfDay) SecondOfDay() int64 {
	return int64(t.hour)*deltas.SecondsPerHour + int64(t.minute)*deltas.SecondsPerMinute + int64(t.second)
}

// IsLeapSecond reports whether t reads second 60.
func (t TimeOfDay) IsLeapSecond() bool { return t.second == 60 }

// Format renders HH:MM:SS with precision fractional digits.
func (t TimeOfDay) Format(precision int) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	if precision > 0 {
		s += "." + t.subsecond.Digits(precision)
	}
	return s
}

func (t TimeOfDay) String() string { return t.Format(3) }
