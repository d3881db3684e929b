// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/javiermolinar/freeslot/internal/clock"
)

// Config holds the application configuration.
type Config struct {
	Schedule ScheduleConfig `toml:"schedule"`
	UI       UIConfig       `toml:"ui"`
}

// ScheduleConfig holds the working day settings.
type ScheduleConfig struct {
	DayStart    string `toml:"day_start"`    // e.g., "09:00"
	DayEnd      string `toml:"day_end"`      // e.g., "17:00"
	SlotMinutes int    `toml:"slot_minutes"` // consultation length
}

// UIConfig holds CLI output settings.
type UIConfig struct {
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			DayStart:    "09:00",
			DayEnd:      "17:00",
			SlotMinutes: 60,
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "freeslot", "config.toml")
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FREESLOT_DAY_START"); v != "" {
		cfg.Schedule.DayStart = v
	}
	if v := os.Getenv("FREESLOT_DAY_END"); v != "" {
		cfg.Schedule.DayEnd = v
	}
	if v := os.Getenv("FREESLOT_SLOT_MINUTES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FREESLOT_SLOT_MINUTES must be an integer, got %q", v)
		}
		cfg.Schedule.SlotMinutes = n
	}
	if v := os.Getenv("FREESLOT_NO_COLOR"); v != "" {
		noColor, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("FREESLOT_NO_COLOR must be a boolean, got %q", v)
		}
		cfg.UI.Color = !noColor
	}
	return nil
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	start, err := clock.Parse(c.Schedule.DayStart)
	if err != nil {
		return fmt.Errorf("day_start: %w", err)
	}
	end, err := clock.Parse(c.Schedule.DayEnd)
	if err != nil {
		return fmt.Errorf("day_end: %w", err)
	}
	if start >= end {
		return errors.New("day_start must be before day_end")
	}
	if c.Schedule.SlotMinutes < 0 {
		return errors.New("slot_minutes must be non-negative")
	}
	return nil
}

// Window returns the working day as offsets from midnight.
// It must only be called on a validated config.
func (c *Config) Window() (start, end time.Duration) {
	start, _ = clock.Parse(c.Schedule.DayStart)
	end, _ = clock.Parse(c.Schedule.DayEnd)
	return start, end
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
