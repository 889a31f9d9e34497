// Command lox serves time scale conversion, frame transformation and
// satellite propagation over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lox-space/lox-go/internal/api"
	"github.com/lox-space/lox-go/internal/eop"
	"github.com/lox-space/lox-go/internal/metrics"
	"github.com/lox-space/lox-go/internal/passes"
	"github.com/lox-space/lox-go/internal/propagation"
	"github.com/lox-space/lox-go/internal/utc"
)

const refreshInterval = time.Hour

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if l, err := parseLogLevel(cfg.LogLevel); err != nil {
		logger.Warn("invalid log level, using info", "value", cfg.LogLevel)
	} else {
		level.Set(l)
	}

	var leap utc.LeapSecondsProvider
	if cfg.LSKFile != "" {
		table, err := utc.LoadLSK(cfg.LSKFile)
		if err != nil {
			logger.Error("failed to load leap-seconds kernel", "path", cfg.LSKFile, "error", err)
			os.Exit(1)
		}
		leap = table
		logger.Info("loaded leap-seconds kernel", "path", cfg.LSKFile, "entries", table.Len(), "tai_minus_utc", table.Latest())
	}

	store := eop.NewStore()
	if cfg.EOP.File != "" {
		if err := loadEOPFile(store, cfg.EOP.File, leap, logger); err != nil {
			logger.Error("failed to load EOP file", "path", cfg.EOP.File, "error", err)
			os.Exit(1)
		}
	}

	var refresher *eop.Refresher
	if cfg.EOP.EnableFetch {
		fetcher := eop.NewFetcher(cfg.EOP.SourceURL, logger)
		cache := eop.NewCache(cfg.EOP.CacheDir, cfg.EOP.MaxFiles)
		refresher = eop.NewRefresher(store, fetcher, cache, leap, cfg.EOP.maxAge(), logger)
		if store.Get() == nil {
			if err := refresher.LoadCache(); err != nil {
				logger.Info("no EOP cache found, starting without EOP data", "error", err)
			}
		}
	}

	prop := propagation.NewPropagator(store, leap, propagation.Config{
		Workers:   cfg.Propagation.Workers,
		MaxStates: cfg.Propagation.MaxStates,
	}, logger)
	predictor := passes.NewPredictor(store, leap, cfg.Propagation.Workers, logger)

	srv := api.NewServer(cfg.HTTP.Addr, logger, cfg.Auth.auth(), api.Deps{
		EOP:        store,
		Refresher:  refresher,
		Propagator: prop,
		Passes:     predictor,
		Leap:       leap,
		TrustProxy: cfg.HTTP.TrustProxy,
		RequireEOP: cfg.EOP.EnableFetch,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if refresher != nil {
		go refresher.Run(ctx, refreshInterval)
	}

	// Background goroutine to update the EOP dataset age gauge.
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				metrics.SetEOPAge(store.AgeSeconds())
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		logger.Info("starting server", "addr", cfg.HTTP.Addr, "auth_enabled", cfg.Auth.Enabled, "eop_fetch_enabled", cfg.EOP.EnableFetch)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func loadEOPFile(store *eop.Store, path string, leap utc.LeapSecondsProvider, logger *slog.Logger) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ds, err := eop.Load(data, "file:"+path, info.ModTime(), leap, logger)
	if err != nil {
		return err
	}
	store.Set(ds)
	metrics.SetEOPAge(store.AgeSeconds())
	logger.Info("loaded EOP file", "path", path, "rows", ds.Rows, "first_mjd", ds.Range.First, "last_mjd", ds.Range.Last)
	return nil
}
