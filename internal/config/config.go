// Package config loads lvroute settings from an optional YAML file,
// environment variables and defaults, in that order of precedence
// (environment wins over the file).
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported search algorithm names.
const (
	AlgorithmDFS = "dfs"
	AlgorithmBFS = "bfs"
)

const (
	defaultDataPath      = "cities.csv"
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
)

// ErrInvalid is returned by Validate for unusable settings.
var ErrInvalid = errors.New("config: invalid configuration")

// Config aggregates application configuration values.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// DataConfig locates the city table.
type DataConfig struct {
	Path string `yaml:"path"`
}

// SearchConfig selects algorithms and frontier sizing.
type SearchConfig struct {
	Algorithms []string `yaml:"algorithms"`
	// Capacity overrides the N² frontier size when > 0.
	Capacity int `yaml:"capacity"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text|json
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Data:    DataConfig{Path: defaultDataPath},
		Search:  SearchConfig{Algorithms: []string{AlgorithmDFS, AlgorithmBFS}},
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
	}
}

// Load reads path (if non-empty) over the defaults, applies environment
// overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	cfg.Data.Path = valueOrDefault("LVROUTE_DATA", cfg.Data.Path)
	cfg.Logging.Level = valueOrDefault("LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LOG_FORMAT", cfg.Logging.Format)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks algorithm names, capacity and logging format.
func (c *Config) Validate() error {
	if len(c.Search.Algorithms) == 0 {
		return fmt.Errorf("%w: no algorithms selected", ErrInvalid)
	}
	for i, a := range c.Search.Algorithms {
		a = strings.ToLower(strings.TrimSpace(a))
		if a != AlgorithmDFS && a != AlgorithmBFS {
			return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Search.Algorithms[i])
		}
		c.Search.Algorithms[i] = a
	}
	if c.Search.Capacity < 0 {
		return fmt.Errorf("%w: capacity %d is negative", ErrInvalid, c.Search.Capacity)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format)
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}
