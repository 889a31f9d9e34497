package deltas

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// AttosecondsPerSecond is the resolution of Subsecond.
const AttosecondsPerSecond int64 = 1_000_000_000_000_000_000

// ErrInvalidSubsecond is returned for fractions outside [0, 1).
var ErrInvalidSubsecond = errors.New("subsecond must be within [0, 1)")

// Subsecond is a non-negative fraction of a second stored as an integer
// number of attoseconds in [0, 1e18).
type Subsecond int64

// NewSubsecond converts a fraction of a second. Precision beyond the float64
// significand is lost; use SubsecondFromParts for exact values.
func NewSubsecond(f float64) (Subsecond, error) {
	if !(f >= 0 && f < 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSubsecond, f)
	}
	atto := int64(math.Round(f * 1e18))
	if atto >= AttosecondsPerSecond {
		atto = AttosecondsPerSecond - 1
	}
	return Subsecond(atto), nil
}

// SubsecondFromAttoseconds validates an attosecond count.
func SubsecondFromAttoseconds(atto int64) (Subsecond, error) {
	if atto < 0 || atto >= AttosecondsPerSecond {
		return 0, fmt.Errorf("%w: %d as", ErrInvalidSubsecond, atto)
	}
	return Subsecond(atto), nil
}

// SubsecondFromParts builds a subsecond from its decimal groups. Each group
// must lie in [0, 999].
func SubsecondFromParts(milli, micro, nano, pico, femto, atto int64) (Subsecond, error) {
	parts := [...]int64{milli, micro, nano, pico, femto, atto}
	var total int64
	for _, p := range parts {
		if p < 0 || p > 999 {
			return 0, fmt.Errorf("%w: group %d out of range", ErrInvalidSubsecond, p)
		}
		total = total*1000 + p
	}
	return Subsecond(total), nil
}

// Float64 returns the fraction of a second.
func (s Subsecond) Float64() float64 { return float64(s) / 1e18 }

// Attoseconds returns the total attosecond count.
func (s Subsecond) Attoseconds() int64 { return int64(s) }

// Millisecond returns the whole milliseconds.
func (s Subsecond) Millisecond() int64 { return int64(s) / 1_000_000_000_000_000 }

// Microsecond returns the microseconds since the last millisecond.
func (s Subsecond) Microsecond() int64 { return int64(s) / 1_000_000_000_000 % 1000 }

// Nanosecond returns the nanoseconds since the last microsecond.
func (s Subsecond) Nanosecond() int64 { return int64(s) / 1_000_000_000 % 1000 }

// Picosecond returns the picoseconds since the last nanosecond.
func (s Subsecond) Picosecond() int64 { return int64(s) / 1_000_000 % 1000 }

// Femtosecond returns the femtoseconds since the last picosecond.
func (s Subsecond) Femtosecond() int64 { return int64(s) / 1000 % 1000 }

// Attosecond returns the attoseconds since the last femtosecond.
func (s Subsecond) Attosecond() int64 { return int64(s) % 1000 }

// Nanoseconds returns the subsecond truncated to whole nanoseconds.
func (s Subsecond) Nanoseconds() int64 { return int64(s) / 1_000_000_000 }

// Digits formats the fraction with n decimal digits (truncated), without the
// leading "0.". n is clamped to [0, 18].
func (s Subsecond) Digits(n int) string {
	if n <= 0 {
		return ""
	}
	if n > 18 {
		n = 18
	}
	return fmt.Sprintf("%018d", int64(s))[:n]
}

func (s Subsecond) String() string {
	d := strings.TrimRight(s.Digits(18), "0")
	if d == "" {
		d = "0"
	}
	return "0." + d
}
