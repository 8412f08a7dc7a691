// Package config loads settings for the seat tools from YAML files, a .env
// file and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"seat-ca/internal/logging"
	"seat-ca/internal/neighbor"
)

// Config contains all settings.
type Config struct {
	// Simulation selects the occupancy rule.
	Simulation SimulationConfig `yaml:"simulation"`

	// Logging configures operational output on stderr.
	Logging LoggingConfig `yaml:"logging"`

	// Display configures the interactive viewer.
	Display DisplayConfig `yaml:"display"`
}

// SimulationConfig selects the neighbor strategy and threshold.
type SimulationConfig struct {
	// Strategy is "adjacent" or "visible".
	Strategy string `yaml:"strategy"`

	// Threshold is the occupied-neighbor count that empties a seat.
	// Zero picks the strategy default (4 adjacent, 5 visible).
	Threshold int `yaml:"threshold"`

	// Workers splits each tick across goroutines; 0 or 1 is sequential.
	Workers int `yaml:"workers"`

	// MaxTicks aborts a run that has not converged; 0 is unbounded.
	MaxTicks int `yaml:"max_ticks"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	// Level is "info" (default), "debug" or "trace".
	Level string `yaml:"level"`
}

// DisplayConfig configures the viewer window.
type DisplayConfig struct {
	Scale int `yaml:"scale"`
	TPS   int `yaml:"tps"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Strategy: neighbor.Adjacent.String(),
			MaxTicks: 10000,
		},
		Logging: LoggingConfig{Level: "info"},
		Display: DisplayConfig{Scale: 8, TPS: 10},
	}
}

// Load builds the configuration in order: defaults, the YAML file at path
// (skipped when path is empty), a .env file in the working directory, then
// SEATS_* environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	applyEnvOverrides(cfg)

	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file on top of the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := neighbor.ParseStrategy(c.Simulation.Strategy); err != nil {
		return err
	}
	if c.Simulation.Threshold < 0 || c.Simulation.Threshold > 8 {
		return fmt.Errorf("threshold must be between 0 and 8, got %d", c.Simulation.Threshold)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Simulation.Workers)
	}
	if c.Simulation.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", c.Simulation.MaxTicks)
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	if c.Display.Scale <= 0 {
		return fmt.Errorf("display scale must be positive, got %d", c.Display.Scale)
	}
	if c.Display.TPS <= 0 {
		return fmt.Errorf("display tps must be positive, got %d", c.Display.TPS)
	}
	return nil
}

// ParsedStrategy returns the parsed neighbor strategy.
func (c SimulationConfig) ParsedStrategy() (neighbor.Strategy, error) {
	return neighbor.ParseStrategy(c.Strategy)
}

// EffectiveThreshold returns Threshold, or the strategy default when unset.
func (c SimulationConfig) EffectiveThreshold() int {
	if c.Threshold != 0 {
		return c.Threshold
	}
	s, err := c.ParsedStrategy()
	if err != nil {
		return neighbor.Adjacent.DefaultThreshold()
	}
	return s.DefaultThreshold()
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SEATS_STRATEGY"); v != "" {
		cfg.Simulation.Strategy = v
	}
	if v := os.Getenv("SEATS_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Threshold = n
		}
	}
	if v := os.Getenv("SEATS_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Workers = n
		}
	}
	if v := os.Getenv("SEATS_MAX_TICKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.MaxTicks = n
		}
	}
	if v := os.Getenv("SEATS_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
