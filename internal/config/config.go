package config

import (
	"fmt"

	"github.com/aescanero/dago-entries/internal/eval/cel"
	"github.com/aescanero/dago-entries/internal/render"
	"github.com/caarlos0/env/v10"
)

// Config holds all configuration for the entry demo
type Config struct {
	// JSON format used by template entries
	JSONFormat string `env:"JSON_FORMAT" envDefault:"prettyPrinted,sortedKeys"`

	// CEL expression selecting which entries are written; empty keeps all
	EntryFilter string `env:"ENTRY_FILTER" envDefault:""`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := c.JSONOptions(); err != nil {
		return err
	}

	if c.EntryFilter != "" {
		if err := cel.NewEvaluator().Validate(c.EntryFilter); err != nil {
			return fmt.Errorf("ENTRY_FILTER: %w", err)
		}
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// JSONOptions returns the parsed JSON_FORMAT flags
func (c *Config) JSONOptions() (render.Options, error) {
	opts, err := render.ParseOptions(c.JSONFormat)
	if err != nil {
		return 0, fmt.Errorf("JSON_FORMAT: %w", err)
	}
	return opts, nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{JSONFormat=%s, EntryFilter=%q, LogLevel=%s}",
		c.JSONFormat,
		c.EntryFilter,
		c.LogLevel,
	)
}
