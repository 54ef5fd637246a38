// Package config loads and watches trayshift settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultSecondaryMonitor = 1
	defaultPollIntervalMs   = 2000
)

// Settings is an immutable snapshot of the configuration surface. It is
// read at startup and replaced wholesale on change, never patched.
type Settings struct {
	// SecondaryMonitor is the 1-based index into the non-primary displays
	// the taskbar is moved to while a fullscreen application runs.
	SecondaryMonitor int `yaml:"secondaryMonitor"`
	// PollIntervalMs is the fullscreen detection cadence in milliseconds.
	PollIntervalMs int `yaml:"pollInterval"`
	// EnableLogging turns the diagnostic log sink on.
	EnableLogging bool `yaml:"enableLogging"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		SecondaryMonitor: defaultSecondaryMonitor,
		PollIntervalMs:   defaultPollIntervalMs,
	}
}

// PollInterval returns the poll cadence as a duration.
func (s Settings) PollInterval() time.Duration {
	return time.Duration(s.PollIntervalMs) * time.Millisecond
}

// Validate checks settings ranges.
func (s Settings) Validate() error {
	if s.SecondaryMonitor < 1 {
		return errors.New("secondaryMonitor must be >= 1")
	}
	if s.PollIntervalMs <= 0 {
		return errors.New("pollInterval must be > 0")
	}
	return nil
}

// Load reads settings from the YAML file at path and environment overrides.
// A missing file is not an error; defaults apply.
func Load(path string) (Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Settings{}, err
	}

	secondary, err := envInt("TRAYSHIFT_SECONDARY_MONITOR", cfg.SecondaryMonitor)
	if err != nil {
		return Settings{}, err
	}
	cfg.SecondaryMonitor = secondary

	interval, err := envInt("TRAYSHIFT_POLL_INTERVAL_MS", cfg.PollIntervalMs)
	if err != nil {
		return Settings{}, err
	}
	cfg.PollIntervalMs = interval

	cfg.EnableLogging = envBool("TRAYSHIFT_ENABLE_LOGGING", cfg.EnableLogging)

	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// envInt returns an int env override when present, otherwise a default.
func envInt(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return value, nil
}

// envBool returns a bool env override when present, otherwise a default.
func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	switch strings.ToLower(raw) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
