// Package passes predicts when satellites rise above and set below an
// elevation mask seen from a ground observer.
package passes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/lox-space/lox-go/internal/deltas"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/propagation"
	"github.com/lox-space/lox-go/internal/timescale"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/transform"
	"github.com/lox-space/lox-go/internal/units"
	"github.com/lox-space/lox-go/internal/utc"
)

// MaxHorizon bounds the prediction window.
const MaxHorizon = 7 * 24 * time.Hour

// ErrHorizon is returned for a non-positive or too long prediction window.
var ErrHorizon = errors.New("invalid prediction horizon")

const (
	coarseStep      = 30 // seconds between coarse scan samples
	groundTrackStep = 10 // seconds between ground track samples
	minPassDuration = 10 * time.Second
)

// TrackPoint is a sub-satellite point sampled during a pass.
type TrackPoint struct {
	Time      utc.UTC
	Geodetic  transform.Geodetic
	Elevation units.Angle
}

// Pass is one interval during which a satellite stays above the mask.
// A pass in progress at the start or end of the window is clipped to it.
type Pass struct {
	Rise               utc.UTC
	Culmination        utc.UTC
	Set                utc.UTC
	Duration           time.Duration
	MaxElevation       units.Angle
	RiseAzimuth        units.Angle
	CulminationAzimuth units.Angle
	SetAzimuth         units.Angle
	GroundTrack        []TrackPoint
}

// SatellitePasses holds the predicted passes for one satellite. Err is set
// when the satellite could not be propagated over the window.
type SatellitePasses struct {
	NORADID int
	Name    string
	Passes  []Pass
	Err     error
}

// Request holds the parameters of a prediction.
type Request struct {
	Observer     transform.Observer
	Entries      []tle.TLEEntry
	Start        utc.UTC
	Horizon      time.Duration
	MinElevation units.Angle
	MaxPasses    int
}

// Result is the outcome of Predict.
type Result struct {
	Satellites []SatellitePasses
	// Warning is the first Earth orientation extrapolation warning met, or nil.
	Warning error
}

// Predictor runs pass predictions for many satellites concurrently.
type Predictor struct {
	eop     propagation.EOPSource
	leap    utc.LeapSecondsProvider
	workers int
	logger  *slog.Logger
}

// NewPredictor creates a predictor that draws Earth orientation data from
// src. A nil leap second provider selects the built-in table.
func NewPredictor(src propagation.EOPSource, leap utc.LeapSecondsProvider, workers int, logger *slog.Logger) *Predictor {
	if workers < 1 {
		workers = 1
	}
	return &Predictor{eop: src, leap: leap, workers: workers, logger: logger.With("component", "passes")}
}

// Predict computes the passes of every entry over the request window.
// Each satellite is processed in its own goroutine, bounded by a semaphore.
func (p *Predictor) Predict(ctx context.Context, req Request) (*Result, error) {
	if req.Horizon <= 0 || req.Horizon > MaxHorizon {
		return nil, fmt.Errorf("%w: %v not in (0, %v]", ErrHorizon, req.Horizon, MaxHorizon)
	}
	var eop frames.Provider
	if p.eop != nil {
		eop = p.eop.Current()
	}
	if eop == nil {
		return nil, frames.ErrEOPRequired
	}
	start, err := req.Start.ToTAI(p.leap)
	if err != nil {
		return nil, err
	}
	// SGP4 resolves whole seconds only.
	start = timescale.New(timescale.TAI, start.Seconds(), 0)
	if req.MaxPasses < 1 {
		req.MaxPasses = math.MaxInt
	}

	began := time.Now()
	results := make([]SatellitePasses, len(req.Entries))
	warnings := make([]error, len(req.Entries))
	sem := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for i, entry := range req.Entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = SatellitePasses{NORADID: entry.NORADID, Name: entry.Name}

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			tr, err := newTracker(entry, req.Observer, eop, p.leap, start, req.MinElevation)
			if err == nil {
				results[i].Passes, err = tr.passes(ctx, int64(req.Horizon/time.Second), req.MaxPasses)
				warnings[i] = tr.warn
			}
			metrics.RecordPassPrediction(err)
			if err != nil {
				p.logger.Debug("pass prediction failed", "norad_id", entry.NORADID, "error", err)
				results[i].Err = err
			}
		}()
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	res := &Result{Satellites: results}
	for _, w := range warnings {
		if w != nil {
			res.Warning = w
			break
		}
	}
	p.logger.Debug("passes predicted",
		"satellites", len(req.Entries),
		"horizon_hours", req.Horizon.Hours(),
		"duration_ms", time.Since(began).Milliseconds(),
	)
	return res, nil
}

// sample is the view of the satellite from the observer at start+offset.
type sample struct {
	offset int64
	time   utc.UTC
	pos    r3.Vec
	look   transform.LookAngles
}

// tracker evaluates one satellite's elevation at whole-second offsets from
// the window start.
type tracker struct {
	prop  *propagation.SGP4Propagator
	obs   transform.Observer
	eop   frames.Provider
	leap  utc.LeapSecondsProvider
	start timescale.Time
	mask  units.Angle
	warn  error
}

func newTracker(entry tle.TLEEntry, obs transform.Observer, eop frames.Provider, leap utc.LeapSecondsProvider, start timescale.Time, mask units.Angle) (*tracker, error) {
	prop, err := propagation.NewSGP4Propagator(entry.Line1, entry.Line2, entry.NORADID)
	if err != nil {
		return nil, fmt.Errorf("sgp4 init: %w", err)
	}
	return &tracker{prop: prop, obs: obs, eop: eop, leap: leap, start: start, mask: mask}, nil
}

func (tr *tracker) at(offset int64) (sample, error) {
	tai := tr.start.Add(deltas.FromSeconds(offset))
	u, err := utc.FromTAI(tai, tr.leap)
	if err != nil {
		return sample{}, err
	}
	pos, vel, err := tr.prop.Propagate(u)
	if err != nil {
		return sample{}, err
	}
	rot, err := frames.Rotate(frames.TEME, frames.ITRF, tai, tr.eop)
	if err != nil {
		if !frames.IsExtrapolation(err) {
			return sample{}, err
		}
		if tr.warn == nil {
			tr.warn = err
		}
	}
	pos, vel = rot.ApplyState(pos, vel)
	return sample{offset: offset, time: u, pos: pos, look: tr.obs.LookAngles(pos, vel)}, nil
}

func (tr *tracker) above(s sample) bool { return s.look.Elevation >= tr.mask }

// crossing narrows the mask crossing between offsets lo and hi, whose
// visibility differs, down to adjacent seconds and returns both samples.
func (tr *tracker) crossing(lo, hi sample) (sample, sample, error) {
	want := tr.above(hi)
	for hi.offset-lo.offset > 1 {
		mid, err := tr.at((lo.offset + hi.offset) / 2)
		if err != nil {
			return sample{}, sample{}, err
		}
		if tr.above(mid) == want {
			hi = mid
		} else {
			lo = mid
		}
	}
	return lo, hi, nil
}

// culmination finds the highest sample between rise and set, assuming the
// elevation has a single maximum in between.
func (tr *tracker) culmination(rise, set sample) (sample, error) {
	lo, hi := rise.offset, set.offset
	for hi-lo > 2 {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		s1, err := tr.at(m1)
		if err != nil {
			return sample{}, err
		}
		s2, err := tr.at(m2)
		if err != nil {
			return sample{}, err
		}
		if s1.look.Elevation < s2.look.Elevation {
			lo = m1
		} else {
			hi = m2
		}
	}
	best := rise
	for off := lo; off <= hi; off++ {
		s, err := tr.at(off)
		if err != nil {
			return sample{}, err
		}
		if s.look.Elevation > best.look.Elevation {
			best = s
		}
	}
	if set.look.Elevation > best.look.Elevation {
		best = set
	}
	return best, nil
}

func (tr *tracker) groundTrack(rise, set sample) ([]TrackPoint, error) {
	var points []TrackPoint
	add := func(s sample) {
		points = append(points, TrackPoint{Time: s.time, Geodetic: transform.ToGeodetic(s.pos), Elevation: s.look.Elevation})
	}
	add(rise)
	for off := rise.offset + groundTrackStep; off < set.offset; off += groundTrackStep {
		s, err := tr.at(off)
		if err != nil {
			return nil, err
		}
		add(s)
	}
	if set.offset > rise.offset {
		add(set)
	}
	return points, nil
}

func (tr *tracker) pass(rise, set sample) (Pass, error) {
	top, err := tr.culmination(rise, set)
	if err != nil {
		return Pass{}, err
	}
	track, err := tr.groundTrack(rise, set)
	if err != nil {
		return Pass{}, err
	}
	return Pass{
		Rise:               rise.time,
		Culmination:        top.time,
		Set:                set.time,
		Duration:           time.Duration(set.offset-rise.offset) * time.Second,
		MaxElevation:       top.look.Elevation,
		RiseAzimuth:        rise.look.Azimuth,
		CulminationAzimuth: top.look.Azimuth,
		SetAzimuth:         set.look.Azimuth,
		GroundTrack:        track,
	}, nil
}

// passes scans the window of the given length in seconds. Rise is the first
// second above the mask and set the last one.
func (tr *tracker) passes(ctx context.Context, length int64, maxPasses int) ([]Pass, error) {
	prev, err := tr.at(0)
	if err != nil {
		return nil, err
	}
	var (
		out    []Pass
		rise   sample
		rising = tr.above(prev)
	)
	if rising {
		rise = prev
	}
	for off := int64(0); off < length && len(out) < maxPasses; {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		off = min(off+coarseStep, length)
		cur, err := tr.at(off)
		if err != nil {
			return nil, err
		}
		switch {
		case !rising && tr.above(cur):
			_, hi, err := tr.crossing(prev, cur)
			if err != nil {
				return nil, err
			}
			rise, rising = hi, true
		case rising && !tr.above(cur):
			lo, _, err := tr.crossing(prev, cur)
			if err != nil {
				return nil, err
			}
			p, err := tr.closePass(rise, lo)
			if err != nil {
				return nil, err
			}
			if p != nil {
				out = append(out, *p)
			}
			rising = false
		}
		prev = cur
	}
	if rising && len(out) < maxPasses {
		p, err := tr.closePass(rise, prev)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

// closePass builds the pass from rise to set, dropping grazes shorter than
// minPassDuration.
func (tr *tracker) closePass(rise, set sample) (*Pass, error) {
	if time.Duration(set.offset-rise.offset)*time.Second < minPassDuration {
		return nil, nil
	}
	p, err := tr.pass(rise, set)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
