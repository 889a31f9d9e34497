package eop

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lox-space/lox-go/internal/frames"
	"github.com/lox-space/lox-go/internal/utc"
)

// Store provides thread-safe access to the current EOP dataset.
type Store struct {
	dataset atomic.Pointer[Dataset]
	mu      sync.Mutex // serializes refreshes
}

// NewStore creates a new empty Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the current dataset, or nil if none has been loaded.
func (s *Store) Get() *Dataset {
	return s.dataset.Load()
}

// Set atomically replaces the current dataset.
func (s *Store) Set(ds *Dataset) {
	s.dataset.Store(ds)
}

// Provider returns the provider of the current dataset, or nil.
func (s *Store) Provider() *Provider {
	if ds := s.dataset.Load(); ds != nil {
		return ds.Provider
	}
	return nil
}

// Current returns the provider of the current dataset as a frames.Provider,
// or a nil interface if none is loaded.
func (s *Store) Current() frames.Provider {
	if p := s.Provider(); p != nil {
		return p
	}
	return nil
}

// AgeSeconds returns the age of the current dataset in seconds, or -1 if
// none is loaded.
func (s *Store) AgeSeconds() float64 {
	ds := s.dataset.Load()
	if ds == nil {
		return -1
	}
	return time.Since(ds.FetchedAt).Seconds()
}

// Load parses data and builds a dataset from it.
func Load(data []byte, source string, fetchedAt time.Time, ls utc.LeapSecondsProvider, logger *slog.Logger) (*Dataset, error) {
	records, err := Parse(bytes.NewReader(data), logger)
	if err != nil {
		return nil, err
	}
	p, err := NewProvider(records, ls)
	if err != nil {
		return nil, err
	}
	return &Dataset{
		Source:    source,
		FetchedAt: fetchedAt,
		Range:     p.Range(),
		Rows:      len(records),
		Provider:  p,
	}, nil
}

// Refresher keeps a Store current by fetching from a remote source and
// mirroring the files into a Cache.
type Refresher struct {
	store   *Store
	fetcher *Fetcher
	cache   *Cache
	leap    utc.LeapSecondsProvider
	maxAge  time.Duration
	logger  *slog.Logger
}

// NewRefresher wires a store to its fetcher and cache. cache may be nil.
func NewRefresher(store *Store, fetcher *Fetcher, cache *Cache, ls utc.LeapSecondsProvider, maxAge time.Duration, logger *slog.Logger) *Refresher {
	return &Refresher{
		store:   store,
		fetcher: fetcher,
		cache:   cache,
		leap:    ls,
		maxAge:  maxAge,
		logger:  logger.With("component", "eop_refresher"),
	}
}

// LoadCache loads the newest cached file into the store.
func (r *Refresher) LoadCache() error {
	if r.cache == nil {
		return ErrCacheEmpty
	}
	data, ts, err := r.cache.LoadLatest()
	if err != nil {
		return err
	}
	ds, err := Load(data, "cache", ts, r.leap, r.logger)
	if err != nil {
		return fmt.Errorf("loading cached EOP data: %w", err)
	}
	r.store.Set(ds)
	r.logger.Info("loaded EOP data from cache", "rows", ds.Rows, "cached_at", ts.Format(time.RFC3339))
	return nil
}

// Refresh fetches, parses and publishes a new dataset. Concurrent calls are
// serialized.
func (r *Refresher) Refresh(ctx context.Context) (*Dataset, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	data, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	ds, err := Load(data, r.fetcher.SourceURL(), now, r.leap, r.logger)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched EOP data: %w", err)
	}
	if r.cache != nil {
		if err := r.cache.Write(data, now); err != nil {
			r.logger.Warn("failed to cache EOP data", "error", err)
		}
	}
	r.store.Set(ds)
	r.logger.Info("refreshed EOP data", "rows", ds.Rows, "first_mjd", ds.Range.First, "last_mjd", ds.Range.Last)
	return ds, nil
}

// Run refreshes the store whenever its data is older than the maximum age,
// checking every interval until ctx is done.
func (r *Refresher) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if age := r.store.AgeSeconds(); age < 0 || age > r.maxAge.Seconds() {
			if _, err := r.Refresh(ctx); err != nil && ctx.Err() == nil {
				r.logger.Warn("EOP refresh failed", "error", err)
			}
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return
		}
	}
}
