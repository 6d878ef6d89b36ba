// Package config resolves runtime settings from the environment, after
// merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDB          = "IAMONIT_DB"
	EnvAddr        = "IAMONIT_ADDR"
	EnvCORSOrigins = "IAMONIT_CORS_ORIGINS"
	EnvTZ          = "IAMONIT_TZ"
	EnvLogLevel    = "IAMONIT_LOG_LEVEL"
	EnvLogFormat   = "IAMONIT_LOG_FORMAT"
	EnvLogUseCases = "IAMONIT_LOG_USE_CASES"
)

// Config holds every setting the binary reads at startup.
type Config struct {
	DBPath      string
	Addr        string
	CORSOrigins string
	Location    *time.Location
	LogLevel    slog.Level
	LogFormat   string
	LogUseCases bool
}

// DefaultConfig returns the settings used when nothing is set. DBPath is
// left empty and resolved against the home directory by Load.
func DefaultConfig() Config {
	return Config{
		Addr:        ":4000",
		CORSOrigins: "*",
		Location:    time.Local,
		LogLevel:    slog.LevelInfo,
		LogFormat:   "text",
	}
}

// LoadDotEnv merges the given .env files (default ".env") into the process
// environment without overriding variables already set. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads .env, then the environment, falling back to defaults for
// unset values.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv(EnvDB)
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".iamonit", "iamonit.db")
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvCORSOrigins); v != "" {
		cfg.CORSOrigins = v
	}
	if v := os.Getenv(EnvTZ); v != "" {
		loc, err := time.LoadLocation(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTZ, err)
		}
		cfg.Location = loc
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		v = strings.ToLower(v)
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("%s: want text or json, got %q", EnvLogFormat, v)
		}
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	return cfg, nil
}

// NewLogger returns a slog.Logger writing to w in the configured format and
// level.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Today returns the current time in the configured zone. Callers sample it
// once per request.
func (c Config) Today() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}
