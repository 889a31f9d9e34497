package timescale

import (
	"errors"
	"fmt"

	"github.com/lox-space/lox-go/internal/deltas"
)

// MaxSeriesLength bounds the number of instants Series will allocate.
const MaxSeriesLength = 1_000_000

var (
	// ErrInvalidStep is returned for a zero step or one pointing away from end.
	ErrInvalidStep = errors.New("invalid series step")
	// ErrScaleMismatch is returned when two times that must share a scale do not.
	ErrScaleMismatch = errors.New("times are on different scales")
)

// Series returns start, start+step, ... up to and including end when it
// falls on the grid. Negative steps run backwards.
func Series(start, end Time, step deltas.TimeDelta) ([]Time, error) {
	if start.scale != end.scale {
		return nil, fmt.Errorf("%w: %v and %v", ErrScaleMismatch, start.scale, end.scale)
	}
	span := end.Since(start)
	if step.IsNaN() || span.IsNaN() || step.IsZero() || (span.IsNegative() && step.IsPositive()) || (span.IsPositive() && step.IsNegative()) {
		return nil, fmt.Errorf("%w: %v from %v to %v", ErrInvalidStep, step, start, end)
	}
	n := span.ToDecimalSeconds()/step.ToDecimalSeconds() + 1
	if n > MaxSeriesLength {
		return nil, fmt.Errorf("%w: %.0f instants exceeds %d", ErrInvalidStep, n, MaxSeriesLength)
	}
	out := make([]Time, 0, int(n))
	for i := int64(0); ; i++ {
		t := start.Add(step.Mul(i))
		if step.IsPositive() && end.Before(t) || step.IsNegative() && t.Before(end) {
			break
		}
		out = append(out, t)
	}
	return out, nil
}

// Interval is the closed span between two times on one scale.
type Interval struct {
	Start Time
	End   Time
}

// Duration returns End - Start.
func (i Interval) Duration() deltas.TimeDelta { return i.End.Since(i.Start) }

// IsEmpty reports whether the interval ends before it starts.
func (i Interval) IsEmpty() bool { return i.End.Before(i.Start) }

// Contains reports whether t lies within the interval.
func (i Interval) Contains(t Time) bool {
	return !t.Before(i.Start) && !i.End.Before(t) && t.scale == i.Start.scale
}

// Intersect returns the overlap, which is empty when there is none.
func (i Interval) Intersect(o Interval) Interval {
	out := i
	if out.Start.Before(o.Start) {
		out.Start = o.Start
	}
	if o.End.Before(out.End) {
		out.End = o.End
	}
	return out
}

// Overlaps reports whether the intervals share at least one instant.
func (i Interval) Overlaps(o Interval) bool { return !i.Intersect(o).IsEmpty() }

// To converts both ends to scale.
func (i Interval) To(scale Scale, p DeltaUT1Provider) (Interval, error) {
	start, err := i.Start.To(scale, p)
	if err != nil {
		return Interval{}, err
	}
	end, err := i.End.To(scale, p)
	if err != nil {
		return Interval{}, err
	}
	return Interval{Start: start, End: end}, nil
}
