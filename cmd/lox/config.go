package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/naoina/toml"

	"github.com/lox-space/lox-go/internal/auth"
	"github.com/lox-space/lox-go/internal/eop"
)

// config is the service configuration. Defaults are overlaid by the TOML
// file named in LOX_CONFIG_FILE, then by LOX_* environment variables.
type config struct {
	HTTP        httpConfig        `toml:"http"`
	Auth        authConfig        `toml:"auth"`
	EOP         eopConfig         `toml:"eop"`
	Propagation propagationConfig `toml:"propagation"`
	// LSKFile is a NAIF leap-seconds kernel replacing the built-in table.
	LSKFile  string `toml:"lsk_file"`
	LogLevel string `toml:"log_level"`
}

type httpConfig struct {
	Addr       string `toml:"addr"`
	TrustProxy bool   `toml:"trust_proxy"`
}

type authConfig struct {
	Enabled bool   `toml:"enabled"`
	Token   string `toml:"token"`
}

type eopConfig struct {
	EnableFetch bool   `toml:"enable_fetch"`
	SourceURL   string `toml:"source_url"`
	CacheDir    string `toml:"cache_dir"`
	MaxFiles    int    `toml:"max_files"`
	// MaxAge is in seconds.
	MaxAge int `toml:"max_age"`
	// File is a local finals CSV loaded at startup.
	File string `toml:"file"`
}

type propagationConfig struct {
	Workers   int `toml:"workers"`
	MaxStates int `toml:"max_states"`
}

func defaultConfig() config {
	return config{
		HTTP: httpConfig{Addr: ":8080"},
		EOP: eopConfig{
			EnableFetch: true,
			SourceURL:   eop.DefaultSourceURL,
			CacheDir:    "/tmp/lox/eop",
			MaxFiles:    5,
			MaxAge:      int((24 * time.Hour).Seconds()),
		},
		Propagation: propagationConfig{
			Workers:   runtime.NumCPU(),
			MaxStates: 10000,
		},
		LogLevel: "info",
	}
}

func (c eopConfig) maxAge() time.Duration { return time.Duration(c.MaxAge) * time.Second }

// loadConfig builds the configuration from defaults, the optional file and
// the environment.
func loadConfig(logger *slog.Logger) (config, error) {
	cfg := defaultConfig()
	if path := os.Getenv("LOX_CONFIG_FILE"); path != "" {
		if err := loadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
		logger.Info("loaded config file", "path", path)
	}

	loadHTTPConfig(logger, &cfg.HTTP)
	if err := loadAuthConfig(logger, &cfg.Auth); err != nil {
		return cfg, err
	}
	loadEOPConfig(logger, &cfg.EOP)
	loadPropConfig(logger, &cfg.Propagation)
	if v := os.Getenv("LOX_LSK_FILE"); v != "" {
		cfg.LSKFile = v
	}
	if v := os.Getenv("LOX_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

func loadConfigFile(path string, cfg *config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func envBool(logger *slog.Logger, key string, dst *bool) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		logger.Warn("invalid "+key+" value, keeping "+strconv.FormatBool(*dst), "value", v)
		return
	}
	*dst = b
}

func envPositiveInt(logger *slog.Logger, key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		logger.Warn("invalid "+key+" value, using default", "value", v, "default", *dst)
		return
	}
	*dst = n
}

func loadHTTPConfig(logger *slog.Logger, cfg *httpConfig) {
	if v := os.Getenv("LOX_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}
	envBool(logger, "LOX_TRUST_PROXY", &cfg.TrustProxy)
}

func loadAuthConfig(logger *slog.Logger, cfg *authConfig) error {
	if v := os.Getenv("LOX_AUTH_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return errors.New("LOX_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}
	if v := os.Getenv("LOX_AUTH_TOKEN"); v != "" {
		cfg.Token = v
	}
	if cfg.Enabled {
		if cfg.Token == "" {
			return errors.New("LOX_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}
	return nil
}

func (c authConfig) auth() auth.Config { return auth.Config{Enabled: c.Enabled, Token: c.Token} }

func loadEOPConfig(logger *slog.Logger, cfg *eopConfig) {
	envBool(logger, "LOX_EOP_ENABLE_FETCH", &cfg.EnableFetch)
	if v := os.Getenv("LOX_EOP_SOURCE_URL"); v != "" {
		cfg.SourceURL = v
	}
	if v := os.Getenv("LOX_EOP_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	envPositiveInt(logger, "LOX_EOP_MAX_FILES", &cfg.MaxFiles)
	envPositiveInt(logger, "LOX_EOP_MAX_AGE", &cfg.MaxAge)
	if v := os.Getenv("LOX_EOP_FILE"); v != "" {
		cfg.File = v
	}

	logger.Info("EOP config",
		"enable_fetch", cfg.EnableFetch,
		"source_url", cfg.SourceURL,
		"cache_dir", cfg.CacheDir,
		"max_age_seconds", cfg.MaxAge,
		"file", cfg.File,
	)
}

func loadPropConfig(logger *slog.Logger, cfg *propagationConfig) {
	envPositiveInt(logger, "LOX_PROP_WORKERS", &cfg.Workers)
	envPositiveInt(logger, "LOX_PROP_MAX_STATES", &cfg.MaxStates)

	logger.Info("propagation config",
		"workers", cfg.Workers,
		"max_states", cfg.MaxStates,
	)
}

func parseLogLevel(s string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(s))
	return l, err
}
