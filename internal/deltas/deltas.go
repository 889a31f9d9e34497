// Package deltas implements TimeDelta, a signed duration with attosecond
// resolution: whole seconds plus a non-negative Subsecond.
//
// Arithmetic never fails. Results that cannot be represented collapse to the
// NaN delta, which poisons every later operation and compares unequal to
// everything, itself included. Callers check IsNaN once at the boundary.
package deltas

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

const (
	SecondsPerMinute        = 60
	SecondsPerHour          = 3600
	SecondsPerDay           = 86400
	SecondsPerHalfDay       = 43200
	SecondsPerJulianYear    = 31557600
	SecondsPerJulianCentury = 3155760000
	DaysPerJulianCentury    = 36525.0
)

// ErrNonFinite is returned by constructors handed NaN or ±Inf, or values
// outside the int64 second range.
var ErrNonFinite = errors.New("time delta is not representable")

// TimeDelta is a signed duration. The zero value is a zero duration.
type TimeDelta struct {
	seconds   int64
	subsecond Subsecond
	nan       bool
}

// NaN is the distinguished unrepresentable delta.
var NaN = TimeDelta{nan: true}

// New builds a delta from whole seconds and a subsecond.
func New(seconds int64, subsecond Subsecond) TimeDelta {
	return TimeDelta{seconds: seconds, subsecond: subsecond}
}

// FromSeconds builds a delta of whole seconds.
func FromSeconds(seconds int64) TimeDelta {
	return TimeDelta{seconds: seconds}
}

// FromAttoseconds builds a delta from seconds and a signed attosecond count of
// any magnitude, normalizing the fraction into [0, 1 s).
func FromAttoseconds(seconds, atto int64) TimeDelta {
	carry := atto / AttosecondsPerSecond
	rem := atto % AttosecondsPerSecond
	if rem < 0 {
		rem += AttosecondsPerSecond
		carry--
	}
	return TimeDelta{seconds: seconds + carry, subsecond: Subsecond(rem)}
}

// FromDecimalSeconds converts a real number of seconds. Precision degrades as
// the magnitude grows.
func FromDecimalSeconds(value float64) (TimeDelta, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NaN, fmt.Errorf("%w: %v", ErrNonFinite, value)
	}
	if value >= math.MaxInt64 || value <= math.MinInt64 {
		return NaN, fmt.Errorf("%w: %v exceeds the int64 second range", ErrNonFinite, value)
	}
	whole := math.Floor(value)
	atto := int64(math.Round((value - whole) * 1e18))
	return FromAttoseconds(int64(whole), atto), nil
}

// Float converts a real number of seconds, returning NaN instead of an error.
func Float(value float64) TimeDelta {
	d, err := FromDecimalSeconds(value)
	if err != nil {
		return NaN
	}
	return d
}

func FromMinutes(v float64) (TimeDelta, error) { return FromDecimalSeconds(v * SecondsPerMinute) }
func FromHours(v float64) (TimeDelta, error) { return FromDecimalSeconds(v * SecondsPerHour) }
func FromDays(v float64) (TimeDelta, error) { return FromDecimalSeconds(v * SecondsPerDay) }

func FromJulianYears(v float64) (TimeDelta, error) {
	return FromDecimalSeconds(v * SecondsPerJulianYear)
}

func FromJulianCenturies(v float64) (TimeDelta, error) {
	return FromDecimalSeconds(v * SecondsPerJulianCentury)
}

// Seconds returns the whole-second component. For negative durations with a
// fraction this is one less than the truncated value.
func (d TimeDelta) Seconds() int64 { return d.seconds }

// Subsecond returns the non-negative fractional component.
func (d TimeDelta) Subsecond() Subsecond { return d.subsecond }

func (d TimeDelta) IsNaN() bool { return d.nan }

// ToDecimalSeconds returns the duration as a float64, NaN for the NaN delta.
func (d TimeDelta) ToDecimalSeconds() float64 {
	if d.nan {
		return math.NaN()
	}
	return float64(d.seconds) + d.subsecond.Float64()
}

func (d TimeDelta) IsZero() bool { return !d.nan && d.seconds == 0 && d.subsecond == 0 }
func (d TimeDelta) IsNegative() bool { return !d.nan && d.seconds < 0 }
func (d TimeDelta) IsPositive() bool {
	return !d.nan && (d.seconds > 0 || d.seconds == 0 && d.subsecond > 0)
}

// Neg returns -d.
func (d TimeDelta) Neg() TimeDelta {
	if d.nan {
		return NaN
	}
	if d.subsecond == 0 {
		if d.seconds == math.MinInt64 {
			return NaN
		}
		return TimeDelta{seconds: -d.seconds}
	}
	// -MinInt64 - 1 wraps to MaxInt64, which is exact.
	return TimeDelta{seconds: -d.seconds - 1, subsecond: Subsecond(AttosecondsPerSecond - int64(d.subsecond))}
}

// Add returns d + o.
func (d TimeDelta) Add(o TimeDelta) TimeDelta {
	if d.nan || o.nan {
		return NaN
	}
	s, overflow := addInt64(d.seconds, o.seconds)
	if overflow {
		return NaN
	}
	atto := int64(d.subsecond) + int64(o.subsecond)
	if atto >= AttosecondsPerSecond {
		atto -= AttosecondsPerSecond
		if s == math.MaxInt64 {
			return NaN
		}
		s++
	}
	return TimeDelta{seconds: s, subsecond: Subsecond(atto)}
}

// Sub returns d - o.
func (d TimeDelta) Sub(o TimeDelta) TimeDelta {
	if d.nan || o.nan {
		return NaN
	}
	if o.seconds == math.MinInt64 {
		return NaN
	}
	return d.Add(o.Neg())
}

// Mul returns d scaled by an integer factor, exactly.
func (d TimeDelta) Mul(n int64) TimeDelta {
	if d.nan {
		return NaN
	}
	total := d.totalAttoseconds()
	total.Mul(total, big.NewInt(n))
	return fromBigAttoseconds(total)
}

// Scale multiplies d by a real factor with possible loss of precision.
func (d TimeDelta) Scale(factor float64) TimeDelta {
	if d.nan || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return NaN
	}
	s := float64(d.seconds) * factor
	if s >= math.MaxInt64 || s <= math.MinInt64 {
		return NaN
	}
	whole := math.Floor(s)
	frac := d.subsecond.Float64()*factor + (s - whole)
	carry := math.Floor(frac)
	atto := int64(math.Round((frac - carry) * 1e18))
	return FromAttoseconds(int64(whole)+int64(carry), atto)
}

// Compare returns -1, 0 or +1 ordering lexicographically on
// (seconds, subsecond). NaN deltas compare as 0 with everything; use Equal
// and Less for NaN-aware comparisons.
func (d TimeDelta) Compare(o TimeDelta) int {
	if d.nan || o.nan {
		return 0
	}
	switch {
	case d.seconds < o.seconds:
		return -1
	case d.seconds > o.seconds:
		return 1
	case d.subsecond < o.subsecond:
		return -1
	case d.subsecond > o.subsecond:
		return 1
	}
	return 0
}

// Equal reports exact equality. NaN is unequal to everything.
func (d TimeDelta) Equal(o TimeDelta) bool {
	return !d.nan && !o.nan && d.seconds == o.seconds && d.subsecond == o.subsecond
}

// Less reports d < o. Always false when either side is NaN.
func (d TimeDelta) Less(o TimeDelta) bool {
	return !d.nan && !o.nan && d.Compare(o) < 0
}

func (d TimeDelta) String() string {
	if d.nan {
		return "NaN s"
	}
	return fmt.Sprintf("%v s", d.ToDecimalSeconds())
}

func (d TimeDelta) totalAttoseconds() *big.Int {
	total := big.NewInt(d.seconds)
	total.Mul(total, big.NewInt(AttosecondsPerSecond))
	return total.Add(total, big.NewInt(int64(d.subsecond)))
}

func fromBigAttoseconds(total *big.Int) TimeDelta {
	sec, rem := new(big.Int), new(big.Int)
	sec.DivMod(total, big.NewInt(AttosecondsPerSecond), rem)
	if !sec.IsInt64() {
		return NaN
	}
	return TimeDelta{seconds: sec.Int64(), subsecond: Subsecond(rem.Int64())}
}

func addInt64(a, b int64) (int64, bool) {
	s := a + b
	return s, (b > 0 && s < a) || (b < 0 && s > a)
}
