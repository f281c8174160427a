package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcat/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestLoad_MissingOptional(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), config.FileName), true)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Laws.Jobs)

	_, err = config.Load(filepath.Join(t.TempDir(), config.FileName), false)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_Overrides(t *testing.T) {
	path := write(t, `
[laws]
jobs = 3
scenarios = ["shapes", "diagrams-id"]

[output]
log_level = "debug"
`)
	cfg, err := config.Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Laws.Jobs)
	assert.Equal(t, []string{"shapes", "diagrams-id"}, cfg.Laws.Scenarios)
	assert.Equal(t, "auto", cfg.Output.Color)
	assert.Equal(t, "debug", cfg.Output.LogLevel)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(write(t, "[laws]\njobs = 0\n"), false)
	assert.ErrorIs(t, err, config.ErrInvalidJobs)

	_, err = config.Load(write(t, "[output]\ncolor = \"rainbow\"\n"), false)
	assert.ErrorIs(t, err, config.ErrInvalidColor)

	_, err = config.Load(write(t, "[output]\nlog_level = \"loud\"\n"), false)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)

	_, err = config.Load(write(t, "[laws]\nworkers = 2\n"), false)
	assert.ErrorContains(t, err, "unknown keys: laws.workers")

	_, err = config.Load(write(t, "[laws\n"), false)
	assert.ErrorContains(t, err, "failed to parse TOML")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for in, want := range cases {
		got, err := config.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
