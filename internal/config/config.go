// Package config loads the settings of the english command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/govalues/english"
	"gopkg.in/yaml.v3"
)

// Config represents the complete english command configuration.
type Config struct {
	DefaultCurrency string         `yaml:"default_currency"` // Currency of amounts written without a symbol or name
	Duration        DurationConfig `yaml:"duration"`
	Output          OutputConfig   `yaml:"output"`
	Logging         LoggingConfig  `yaml:"logging"`
}

// DurationConfig holds duration formatting settings.
type DurationConfig struct {
	Accuracy   string `yaml:"accuracy"`    // Finest unit written by format (default: "milliseconds")
	ShowZeroes bool   `yaml:"show_zeroes"` // Write units with a zero count
}

// OutputConfig holds result printing settings.
type OutputConfig struct {
	GroupDigits bool `yaml:"group_digits"` // Print 1,400,000 instead of 1400000
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

var errInvalidConfig = errors.New("invalid configuration")

// Default returns a configuration with default values.
func Default() *Config {
	return &Config{
		DefaultCurrency: "USD",
		Duration: DurationConfig{
			Accuracy: english.DefaultDurationFormat.Accuracy.String(),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads the file at path over the defaults.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting has a known value.
func (c *Config) Validate() error {
	if c.DefaultCurrency != "" {
		if _, err := english.ParseCurr(c.DefaultCurrency); err != nil {
			return fmt.Errorf("%w: default_currency: %w", errInvalidConfig, err)
		}
	}
	if _, err := english.ParseUnit(c.Duration.Accuracy); err != nil {
		return fmt.Errorf("%w: duration.accuracy: %w", errInvalidConfig, err)
	}
	if _, err := parseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %w", errInvalidConfig, err)
	}
	return nil
}

// DurationFormat returns the duration format described by the configuration.
func (c *Config) DurationFormat() (english.DurationFormat, error) {
	u, err := english.ParseUnit(c.Duration.Accuracy)
	if err != nil {
		return english.DurationFormat{}, err
	}
	return english.DurationFormat{Accuracy: u, ShowZeroes: c.Duration.ShowZeroes}, nil
}

// SlogLevel returns the logging level, falling back to warn.
func (c *Config) SlogLevel() slog.Level {
	level, err := parseLevel(c.Logging.Level)
	if err != nil {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", s)
}
