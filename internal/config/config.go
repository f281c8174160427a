// SPDX-License-Identifier: MIT

// Package config loads the optional lvcat.toml used by the CLI.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "lvcat.toml"

var (
	// ErrInvalidJobs indicates [laws].jobs < 1.
	ErrInvalidJobs = errors.New("config: jobs must be positive")

	// ErrInvalidColor indicates an [output].color outside auto|on|off.
	ErrInvalidColor = errors.New("config: color must be auto, on or off")

	// ErrInvalidLogLevel indicates an unknown [output].log_level.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Config is the decoded lvcat.toml.
type Config struct {
	Laws   LawsConfig   `toml:"laws"`
	Output OutputConfig `toml:"output"`
}

// LawsConfig controls `lvcat laws`.
type LawsConfig struct {
	Jobs      int      `toml:"jobs"`
	Scenarios []string `toml:"scenarios"`
}

// OutputConfig controls terminal output and logging.
type OutputConfig struct {
	Color    string `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present:
// GOMAXPROCS jobs, all scenarios, auto color, info logging.
func Default() Config {
	return Config{
		Laws:   LawsConfig{Jobs: runtime.GOMAXPROCS(0)},
		Output: OutputConfig{Color: "auto", LogLevel: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// optional is true; keys absent from the file keep their default values.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Laws.Jobs < 1 {
		return fmt.Errorf("%d: %w", c.Laws.Jobs, ErrInvalidJobs)
	}
	switch c.Output.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("%q: %w", c.Output.Color, ErrInvalidColor)
	}
	if _, err := ParseLevel(c.Output.LogLevel); err != nil {
		return err
	}

	return nil
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%q: %w", s, ErrInvalidLogLevel)
	}
}
