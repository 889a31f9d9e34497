package timescale

import (
	"errors"
	"fmt"
	"time"

	"github.com/vektra/tai64n"

	"github.com/lox-space/lox-go/internal/deltas"
)

// ErrTAI64NRange is returned for instants TAI64N cannot label.
var ErrTAI64NRange = errors.New("instant outside the TAI64N range")

const (
	tai64Base = uint64(1) << 62
	// 1970-01-01T00:00:00 TAI expressed in TAI seconds since J2000.
	unixEpochTAI int64 = -946728000
)

// tai64nOffset is the fixed number of seconds tai64n.FromTime adds on top of
// 2^62 for a Unix second count. TAI labels count seconds since 1970-01-01
// TAI, so the library's mapping is shifted back by this amount.
var tai64nOffset = tai64n.FromTime(time.Unix(0, 0)).Seconds - tai64Base

// ToTAI64N labels t with its TAI64N external timestamp. Fractions below a
// nanosecond are truncated.
func (t Time) ToTAI64N() (tai64n.TAI64N, error) {
	tai, err := t.To(TAI, nil)
	if err != nil {
		return tai64n.TAI64N{}, err
	}
	if tai.IsNaN() {
		return tai64n.TAI64N{}, ErrTAI64NRange
	}
	s := tai.Seconds() - unixEpochTAI
	if s < -int64(tai64Base) || s >= int64(tai64Base) {
		return tai64n.TAI64N{}, fmt.Errorf("%w: %v", ErrTAI64NRange, t)
	}
	label := tai64n.FromTime(time.Unix(s, tai.Subsecond().Nanoseconds()))
	label.Seconds -= tai64nOffset
	return *label, nil
}

// FromTAI64N converts a TAI64N label to a TAI time.
func FromTAI64N(label tai64n.TAI64N) (Time, error) {
	if label.Seconds >= 1<<63 || label.Nanoseconds >= 1e9 {
		return Time{}, fmt.Errorf("%w: %d.%09d", ErrTAI64NRange, label.Seconds, label.Nanoseconds)
	}
	label.Seconds += tai64nOffset
	g := label.Time()
	sub := deltas.Subsecond(int64(g.Nanosecond()) * 1_000_000_000)
	return New(TAI, g.Unix()+unixEpochTAI, sub), nil
}

// TAI64NLabel renders the conventional "@" hex form of a TAI64N label.
func TAI64NLabel(label tai64n.TAI64N) string {
	return label.Label()
}
