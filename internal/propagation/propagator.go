// Package propagation propagates two-line element sets with SGP4 and rotates
// the resulting TEME states into any frame the frames package knows.
package propagation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lox-space/lox-go/internal/calendar"
	"github.com/lox-space/lox-go/internal/eop"
	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/utc"
)

// ErrTooManyStates is returned when a request exceeds Config.MaxStates.
var ErrTooManyStates = errors.New("too many states requested")

const defaultMaxStates = 10000

// EOPSource yields the Earth orientation provider in effect, or nil.
// *eop.Store implements it.
type EOPSource interface {
	Current() frames.Provider
}

var _ EOPSource = (*eop.Store)(nil)

// Propagator runs SGP4 on the worker pool and rotates the states using the
// Earth orientation data currently held by its source.
type Propagator struct {
	eop    EOPSource
	leap   utc.LeapSecondsProvider
	pool   *WorkerPool
	config Config
	logger *slog.Logger
}

// NewPropagator creates a propagator. src may be nil, in which case only
// frames that need no Earth orientation data are available. A nil leap
// second provider selects the built-in table.
func NewPropagator(src EOPSource, leap utc.LeapSecondsProvider, config Config, logger *slog.Logger) *Propagator {
	if config.MaxStates <= 0 {
		config.MaxStates = defaultMaxStates
	}
	logger = logger.With("component", "propagator")
	return &Propagator{
		eop:    src,
		leap:   leap,
		pool:   NewWorkerPool(config.Workers, logger),
		config: config,
		logger: logger,
	}
}

func (p *Propagator) provider() frames.Provider {
	if p.eop == nil {
		return nil
	}
	return p.eop.Current()
}

func (p *Propagator) rotator(frame frames.Frame) rotator {
	prov := p.provider()
	return func(t utc.UTC) (rotation.Rotation, error) {
		tai, err := t.ToTAI(p.leap)
		if err != nil {
			return rotation.Rotation{}, err
		}
		return frames.Rotate(frames.TEME, frame, tai, prov)
	}
}

// wholeSecond drops the fraction of a second, which SGP4 cannot resolve.
func (p *Propagator) wholeSecond(t utc.UTC) (utc.UTC, error) {
	tod := t.TimeOfDay()
	whole, err := calendar.NewTimeOfDay(tod.Hour(), tod.Minute(), tod.Second())
	if err != nil {
		return utc.UTC{}, err
	}
	return utc.New(t.Date(), whole, p.leap)
}

// Ephemeris propagates one satellite to each of times and returns the states
// in frame. Any failed state fails the whole ephemeris.
func (p *Propagator) Ephemeris(ctx context.Context, entry tle.TLEEntry, times []utc.UTC, frame frames.Frame) (*Ephemeris, error) {
	if len(times) > p.config.MaxStates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyStates, len(times), p.config.MaxStates)
	}
	prop, err := NewSGP4Propagator(entry.Line1, entry.Line2, entry.NORADID)
	if err != nil {
		return nil, err
	}

	jobs := make([]propagateJob, len(times))
	for i, t := range times {
		whole, err := p.wholeSecond(t)
		if err != nil {
			return nil, fmt.Errorf("state %d: %w", i, err)
		}
		jobs[i] = propagateJob{index: i, entry: entry, prop: prop, t: whole}
	}

	start := time.Now()
	results, successCount, errorCount := p.pool.PropagateBatch(ctx, jobs, p.rotator(frame))
	metrics.RecordPropagation(time.Since(start), successCount, errorCount)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	eph := &Ephemeris{
		NORADID: entry.NORADID,
		Name:    entry.Name,
		Frame:   frame,
		States:  make([]State, 0, len(results)),
	}
	for _, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("state %d: %w", r.index, r.err)
		}
		if eph.Warning == nil {
			eph.Warning = r.warn
		}
		eph.States = append(eph.States, r.state)
	}

	p.logger.Debug("ephemeris propagated",
		"norad_id", entry.NORADID,
		"states", len(eph.States),
		"frame", frame.Name(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return eph, nil
}

// Snapshot propagates a catalogue to a single instant. Satellites that fail
// are logged, counted and skipped.
func (p *Propagator) Snapshot(ctx context.Context, entries []tle.TLEEntry, t utc.UTC, frame frames.Frame) (*Snapshot, error) {
	if len(entries) > p.config.MaxStates {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyStates, len(entries), p.config.MaxStates)
	}
	whole, err := p.wholeSecond(t)
	if err != nil {
		return nil, err
	}

	// The rotation is the same for every satellite.
	r, rerr := p.rotator(frame)(whole)
	if rerr != nil && !frames.IsExtrapolation(rerr) {
		return nil, rerr
	}
	fixed := func(utc.UTC) (rotation.Rotation, error) { return r, nil }

	jobs := make([]propagateJob, len(entries))
	for i, e := range entries {
		jobs[i] = propagateJob{index: i, entry: e, t: whole}
	}

	p.logger.Debug("propagating",
		"satellite_count", len(entries),
		"target_time", whole.String(),
		"workers", p.pool.workers,
	)

	start := time.Now()
	results, successCount, errorCount := p.pool.PropagateBatch(ctx, jobs, fixed)
	duration := time.Since(start)
	metrics.RecordPropagation(duration, successCount, errorCount)

	p.logger.Debug("propagation complete",
		"success", successCount,
		"errors", errorCount,
		"duration_ms", duration.Milliseconds(),
	)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	snap := &Snapshot{
		Time:       whole,
		Frame:      frame,
		Satellites: make([]SatelliteState, 0, successCount),
		Failed:     errorCount,
		Warning:    rerr,
	}
	for _, res := range results {
		if res.err != nil {
			continue
		}
		snap.Satellites = append(snap.Satellites, SatelliteState{
			NORADID:  res.noradID,
			Name:     entries[res.index].Name,
			Position: res.state.Position,
			Velocity: res.state.Velocity,
		})
	}
	return snap, nil
}
