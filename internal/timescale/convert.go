package timescale

import (
	"errors"
	"fmt"

	"github.com/lox-space/lox-go/internal/deltas"
)

// ErrUnreachable is returned when no chain of offsets joins two scales.
var ErrUnreachable = errors.New("time scale unreachable")

type offsetFunc func(dt deltas.TimeDelta) deltas.TimeDelta

type edge struct {
	to     Scale
	offset offsetFunc
}

// graph holds the analytical edges. The TAI-UT1 edge is special-cased in
// step because it needs a provider.
var graph = map[Scale][]edge{
	TAI: {{TT, offsetTAIToTT}, {UT1, nil}},
	TT:  {{TAI, offsetTTToTAI}, {TCG, offsetTTToTCG}, {TDB, offsetTTToTDB}},
	TCG: {{TT, offsetTCGToTT}},
	TDB: {{TT, offsetTDBToTT}, {TCB, offsetTDBToTCB}},
	TCB: {{TDB, offsetTCBToTDB}},
	UT1: {{TAI, nil}},
}

// paths caches the breadth-first route between every ordered pair.
var paths = buildPaths()

func buildPaths() map[[2]Scale][]Scale {
	out := make(map[[2]Scale][]Scale)
	for _, from := range Scales {
		prev := map[Scale]Scale{from: from}
		queue := []Scale{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, e := range graph[cur] {
				if _, seen := prev[e.to]; seen {
					continue
				}
				prev[e.to] = cur
				queue = append(queue, e.to)
			}
		}
		for to := range prev {
			var route []Scale
			for s := to; s != from; s = prev[s] {
				route = append([]Scale{s}, route...)
			}
			out[[2]Scale{from, to}] = append([]Scale{from}, route...)
		}
	}
	return out
}

// Path returns the scales visited when converting from one scale to
// another, both ends included.
func Path(from, to Scale) ([]Scale, error) {
	p, ok := paths[[2]Scale{from, to}]
	if !ok {
		return nil, fmt.Errorf("%w: %v to %v", ErrUnreachable, from, to)
	}
	return append([]Scale(nil), p...), nil
}

// Offset returns the delta that maps dt on scale from onto scale to, so that
// the converted reading is dt + offset. Only conversions touching UT1 need p.
//
// If p reports an ExtrapolatedError the offset is still computed with the
// extrapolated value and the error is returned alongside it.
func Offset(from, to Scale, dt deltas.TimeDelta, p DeltaUT1Provider) (deltas.TimeDelta, error) {
	route, err := Path(from, to)
	if err != nil {
		return deltas.NaN, err
	}
	var (
		total  deltas.TimeDelta
		warned error
	)
	for i := 0; i+1 < len(route); i++ {
		o, err := step(route[i], route[i+1], dt.Add(total), p)
		if err != nil {
			var ext *ExtrapolatedError
			if !errors.As(err, &ext) {
				return deltas.NaN, fmt.Errorf("converting %v to %v: %w", from, to, err)
			}
			warned = err
		}
		total = total.Add(o)
	}
	return total, warned
}

func step(from, to Scale, dt deltas.TimeDelta, p DeltaUT1Provider) (deltas.TimeDelta, error) {
	switch {
	case from == TAI && to == UT1:
		if p == nil {
			return deltas.NaN, ErrMissingUT1Provider
		}
		return p.DeltaUT1TAI(FromDelta(TAI, dt))
	case from == UT1 && to == TAI:
		if p == nil {
			return deltas.NaN, ErrMissingUT1Provider
		}
		return p.DeltaTAIUT1(FromDelta(UT1, dt))
	}
	for _, e := range graph[from] {
		if e.to == to {
			return e.offset(dt), nil
		}
	}
	return deltas.NaN, fmt.Errorf("%w: no edge %v to %v", ErrUnreachable, from, to)
}

// To converts t to scale. p may be nil unless UT1 is involved. On an
// ExtrapolatedError the returned Time holds the extrapolated result.
func (t Time) To(scale Scale, p DeltaUT1Provider) (Time, error) {
	if t.scale == scale {
		return t, nil
	}
	o, err := Offset(t.scale, scale, t.delta, p)
	var ext *ExtrapolatedError
	if err != nil && !errors.As(err, &ext) {
		return Time{}, err
	}
	return Time{scale: scale, delta: t.delta.Add(o)}, err
}

// MustTo converts between scales that need no provider. It panics if either
// side is UT1, and so do the ToXXX shorthands below.
func (t Time) MustTo(scale Scale) Time {
	out, err := t.To(scale, nil)
	if err != nil {
		panic(err)
	}
	return out
}

func (t Time) ToTAI() Time { return t.MustTo(TAI) }
func (t Time) ToTT() Time  { return t.MustTo(TT) }
func (t Time) ToTDB() Time { return t.MustTo(TDB) }
func (t Time) ToTCB() Time { return t.MustTo(TCB) }
func (t Time) ToTCG() Time { return t.MustTo(TCG) }
