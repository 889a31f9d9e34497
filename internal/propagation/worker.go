package propagation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/rotation"
	"github.com/lox-space/lox-go/internal/tle"
	"github.com/lox-space/lox-go/internal/utc"
)

// rotator returns the TEME-to-target rotation at t. An error accepted by
// frames.IsExtrapolation is a warning.
type rotator func(t utc.UTC) (rotation.Rotation, error)

// propagateJob is a unit of work for the worker pool.
type propagateJob struct {
	index int
	entry tle.TLEEntry
	// prop is built from entry when nil.
	prop *SGP4Propagator
	t    utc.UTC
}

// propagateResult is the output of a single propagation.
type propagateResult struct {
	index   int
	noradID int
	state   State
	err     error
	warn    error
}

// WorkerPool manages a fixed number of goroutines for parallel SGP4 propagation.
type WorkerPool struct {
	workers int
	logger  *slog.Logger
}

// NewWorkerPool creates a worker pool with the given number of workers.
func NewWorkerPool(workers int, logger *slog.Logger) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		workers: workers,
		logger:  logger,
	}
}

// PropagateBatch runs all jobs and returns the results in job order. Jobs
// still queued when ctx is done produce no result.
func (wp *WorkerPool) PropagateBatch(ctx context.Context, jobs []propagateJob, rotate rotator) ([]propagateResult, int, int) {
	if len(jobs) == 0 {
		return nil, 0, 0
	}

	queue := make(chan propagateJob, wp.workers*2)
	results := make(chan propagateResult, wp.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < wp.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range queue {
				result := propagateSingle(job, rotate)
				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, job := range jobs {
			select {
			case queue <- job:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	slots := make([]*propagateResult, len(jobs))
	var successCount, errorCount int
	for result := range results {
		if result.err != nil {
			errorCount++
			wp.logger.Warn("propagation failed",
				"norad_id", result.noradID,
				"error", result.err,
			)
		} else {
			successCount++
		}
		slots[result.index] = &result
	}

	ordered := make([]propagateResult, 0, successCount+errorCount)
	for _, r := range slots {
		if r != nil {
			ordered = append(ordered, *r)
		}
	}
	return ordered, successCount, errorCount
}

// propagateSingle performs SGP4 propagation and the TEME rotation for one job.
func propagateSingle(job propagateJob, rotate rotator) propagateResult {
	res := propagateResult{index: job.index, noradID: job.entry.NORADID}
	prop := job.prop
	if prop == nil {
		var err error
		prop, err = NewSGP4Propagator(job.entry.Line1, job.entry.Line2, job.entry.NORADID)
		if err != nil {
			res.err = err
			return res
		}
	}

	pos, vel, err := prop.Propagate(job.t)
	if err != nil {
		res.err = err
		return res
	}

	r, err := rotate(job.t)
	if err != nil {
		if !frames.IsExtrapolation(err) {
			res.err = err
			return res
		}
		res.warn = err
	}

	pos, vel = r.ApplyState(pos, vel)
	res.state = State{Time: job.t, Position: pos, Velocity: vel}
	return res
}
