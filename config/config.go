// Package config loads editor settings from an optional YAML file with
// environment-variable overrides. Zero configuration works: every field has a
// usable default.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EphraimMeiri/sentence-trees/tree"
)

// Config holds all editor configuration.
type Config struct {
	// Listen is the web UI address, e.g. ":8080".
	Listen string `yaml:"listen"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Layout overrides the web canvas spacing. Zero fields keep defaults.
	Layout Layout `yaml:"layout"`
}

// Layout mirrors tree.Metrics for the YAML file.
type Layout struct {
	SideMargin     float64 `yaml:"side_margin"`
	TopMargin      float64 `yaml:"top_margin"`
	BaselineMargin float64 `yaml:"baseline_margin"`
	ParentGap      float64 `yaml:"parent_gap"`
	RootGap        float64 `yaml:"root_gap"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Listen:   ":8080",
		LogLevel: "info",
	}
}

// Load reads the config file at path if it exists, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("SENTENCE_TREES_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SENTENCE_TREES_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// Metrics converts the layout section to tree.Metrics, filling unset fields
// from the engine defaults.
func (c *Config) Metrics() tree.Metrics {
	m := tree.DefaultMetrics()
	if c.Layout.SideMargin > 0 {
		m.SideMargin = c.Layout.SideMargin
	}
	if c.Layout.TopMargin > 0 {
		m.TopMargin = c.Layout.TopMargin
	}
	if c.Layout.BaselineMargin > 0 {
		m.BaselineMargin = c.Layout.BaselineMargin
	}
	if c.Layout.ParentGap > 0 {
		m.ParentGap = c.Layout.ParentGap
	}
	if c.Layout.RootGap > 0 {
		m.RootGap = c.Layout.RootGap
	}
	return m
}
