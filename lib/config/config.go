// Copyright 2026 The Npytools Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for npytools commands.
//
// Configuration is loaded from a single file specified by:
//   - the --config flag passed to the command, or
//   - the NPY_CONFIG environment variable
//
// There is no automatic discovery. When neither is set the built-in
// defaults apply, so the tools work with no configuration at all.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the configuration for the npytools commands.
type Config struct {
	// Print configures array printing for the inspector.
	Print PrintConfig `yaml:"print"`

	// Plot configures the visualizer.
	Plot PlotConfig `yaml:"plot"`
}

// PrintConfig configures array rendering.
type PrintConfig struct {
	// Precision is the number of digits after the decimal point for
	// float elements.
	// Default: 4
	Precision int `yaml:"precision"`

	// Suppress keeps small floats in positional notation instead of
	// switching to scientific notation.
	// Default: true
	Suppress bool `yaml:"suppress"`

	// EdgeItems is the number of leading and trailing items shown per
	// summarized axis. The inspector's -n flag overrides it for one
	// invocation.
	// Default: 2
	EdgeItems int `yaml:"edge_items"`

	// Threshold is the element count above which arrays are
	// summarized.
	// Default: 50
	Threshold int `yaml:"threshold"`
}

// PlotConfig configures the visualizer.
type PlotConfig struct {
	// Theme selects the plot colors: "dark" or "light".
	// Default: dark
	Theme string `yaml:"theme"`

	// Width is the rendered chart width in pixels.
	// Default: 1024
	Width int `yaml:"width"`

	// Height is the rendered chart height in pixels.
	// Default: 640
	Height int `yaml:"height"`

	// Colormap selects the heatmap gradient: "viridis" or "gray".
	// Default: viridis
	Colormap string `yaml:"colormap"`
}

// Default returns the default configuration. The print values match
// the rendering defaults the inspector has always used.
func Default() *Config {
	return &Config{
		Print: PrintConfig{
			Precision: 4,
			Suppress:  true,
			EdgeItems: 2,
			Threshold: 50,
		},
		Plot: PlotConfig{
			Theme:    "dark",
			Width:    1024,
			Height:   640,
			Colormap: "viridis",
		},
	}
}

// Load loads configuration from the NPY_CONFIG environment variable.
// When the variable is not set the defaults are returned.
func Load() (*Config, error) {
	configPath := os.Getenv("NPY_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging it
// over the defaults. Fields the file does not mention keep their
// default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve loads and validates the configuration for one command
// invocation: from flagPath when the --config flag was given,
// otherwise from NPY_CONFIG, otherwise the defaults.
func Resolve(flagPath string) (*Config, error) {
	var cfg *Config
	var err error
	if flagPath != "" {
		cfg, err = LoadFile(flagPath)
	} else {
		cfg, err = Load()
	}
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Print.Precision < 0 {
		errs = append(errs, fmt.Errorf("print.precision must be non-negative"))
	}
	if c.Print.EdgeItems < 0 {
		errs = append(errs, fmt.Errorf("print.edge_items must be non-negative"))
	}
	if c.Print.Threshold < 0 {
		errs = append(errs, fmt.Errorf("print.threshold must be non-negative"))
	}

	themes := []string{"dark", "light"}
	if !contains(themes, c.Plot.Theme) {
		errs = append(errs, fmt.Errorf("plot.theme must be one of: %v", themes))
	}
	colormaps := []string{"viridis", "gray"}
	if !contains(colormaps, c.Plot.Colormap) {
		errs = append(errs, fmt.Errorf("plot.colormap must be one of: %v", colormaps))
	}
	if c.Plot.Width <= 0 {
		errs = append(errs, fmt.Errorf("plot.width must be positive"))
	}
	if c.Plot.Height <= 0 {
		errs = append(errs, fmt.Errorf("plot.height must be positive"))
	}

	return errors.Join(errs...)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
