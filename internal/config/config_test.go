package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDB, EnvAddr, EnvCORSOrigins, EnvTZ, EnvLogLevel, EnvLogFormat, EnvLogUseCases} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", "/home/student")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/student", ".iamonit", "iamonit.db"), cfg.DBPath)
	assert.Equal(t, ":4000", cfg.Addr)
	assert.Equal(t, "*", cfg.CORSOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.LogUseCases)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDB, "/tmp/x.db")
	t.Setenv(EnvAddr, "127.0.0.1:8080")
	t.Setenv(EnvCORSOrigins, "http://localhost:5173")
	t.Setenv(EnvTZ, "UTC")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFormat, "JSON")
	t.Setenv(EnvLogUseCases, "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr)
	assert.Equal(t, "http://localhost:5173", cfg.CORSOrigins)
	assert.Equal(t, "UTC", cfg.Location.String())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.LogUseCases)
}

func TestFromEnv_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		EnvTZ:        "Mars/Olympus",
		EnvLogLevel:  "loud",
		EnvLogFormat: "xml",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(EnvDB, "/tmp/x.db")
			t.Setenv(key, val)

			_, err := FromEnv()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestLoadDotEnv_MergesWithoutOverriding(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("IAMONIT_ADDR=:9999\nIAMONIT_LOG_FORMAT=json\n"), 0o644))
	t.Setenv(EnvLogFormat, "text")
	// t.Setenv("") leaves the key set; unset it so the file can supply it.
	require.NoError(t, os.Unsetenv(EnvAddr))

	require.NoError(t, LoadDotEnv(path))
	t.Cleanup(func() { os.Unsetenv(EnvAddr) })

	assert.Equal(t, ":9999", os.Getenv(EnvAddr))
	assert.Equal(t, "text", os.Getenv(EnvLogFormat), "existing variables win")
}

func TestLoadDotEnv_MissingFileIsFine(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogFormat = "json"

	cfg.NewLogger(&buf).Info("hello", "k", "v")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	cfg.LogFormat = "text"
	cfg.LogLevel = slog.LevelWarn
	cfg.NewLogger(&buf).Info("hidden")
	assert.Empty(t, buf.String())
}
