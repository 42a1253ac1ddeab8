// Package config provides configuration loading and management for the
// algebra tools.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration.
type Config struct {
	Probe   ProbeConfig   `yaml:"probe"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// ProbeConfig configures capability probing.
type ProbeConfig struct {
	// Disable skips supplier probes during field resolution, so only
	// the declared category lattice decides. Undecidable structures
	// then resolve as non-fields.
	Disable bool `yaml:"disable"`
}

// CatalogConfig configures catalog population.
type CatalogConfig struct {
	// Paths are manifest files or glob patterns ("manifests/**/*.yaml")
	// loaded into the catalog at startup.
	Paths []string `yaml:"paths"`
}

// LogConfig configures logging output.
type LogConfig struct {
	// Level is the minimum level to emit: debug, info, warn or error.
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Probe: ProbeConfig{
			Disable: false,
		},
		Catalog: CatalogConfig{
			Paths: nil,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	for i, p := range c.Catalog.Paths {
		if p == "" {
			return fmt.Errorf("catalog.paths[%d] is empty", i)
		}
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for
// non-zero values).
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.Probe.Disable {
		c.Probe.Disable = true
	}

	if len(other.Catalog.Paths) > 0 {
		c.Catalog.Paths = other.Catalog.Paths
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// SlogLevel translates the configured level for slog handlers.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
