// Package config loads and validates the YAML run configuration of the
// tecdetrend command.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a detrending run.
type Config struct {
	// Radius is the barrel half-width in samples.
	Radius int `yaml:"radius"`
	// Window, when set, is the barrel half-width in wall-clock time. It is
	// converted to a radius using the mean sampling interval of the input and
	// takes precedence over Radius.
	Window  time.Duration `yaml:"window,omitempty"`
	Workers int           `yaml:"workers"`

	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// InputConfig describes the CSV layout of the observations.
type InputConfig struct {
	ValueColumn string `yaml:"value_column"`
	DateColumn  string `yaml:"date_column,omitempty"`
	DateFormat  string `yaml:"date_format"`
	IDColumn    string `yaml:"id_column,omitempty"`
	IDFilter    string `yaml:"id_filter,omitempty"`
	Delimiter   string `yaml:"delimiter"`
	SkipRows    int    `yaml:"skip_rows,omitempty"`
	NoHeader    bool   `yaml:"no_header,omitempty"`
}

// OutputConfig selects the extra columns written next to the input values.
type OutputConfig struct {
	Gradient bool `yaml:"gradient"` // add |d detrended / dt| per hour
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Radius:  25,
		Workers: 1,
		Input: InputConfig{
			ValueColumn: "TEC",
			DateFormat:  "2006-01-02 15:04:05",
			Delimiter:   ",",
		},
		Output: OutputConfig{
			Gradient: true,
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks that all fields are within usable bounds.
func (c *Config) Validate() error {
	if c.Radius < 0 {
		return fmt.Errorf("radius (%d) cannot be negative", c.Radius)
	}
	if c.Window < 0 {
		return fmt.Errorf("window (%v) cannot be negative", c.Window)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1", c.Workers)
	}
	if c.Input.ValueColumn == "" && !c.Input.NoHeader {
		return errors.New("input.value_column is required")
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("input.delimiter must be a single character, got %q", c.Input.Delimiter)
	}
	if c.Input.SkipRows < 0 {
		return errors.New("input.skip_rows cannot be negative")
	}
	return nil
}

// DelimiterRune returns the configured field delimiter.
func (c *InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}
