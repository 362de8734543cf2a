// SPDX-License-Identifier: MIT

// Package config holds the gridcalc tool configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all gridcalc configuration.
type Config struct {
	// Output settings
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Demo drives the fixed mutation steps of the `run` command.
	Demo DemoConfig `yaml:"demo"`
}

// OutputConfig configures matrix printing.
type OutputConfig struct {
	// FieldWidth is the fixed column width for right-aligned elements.
	FieldWidth int `yaml:"field_width"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DemoConfig pins the clone-then-mutate steps of the reference flow.
type DemoConfig struct {
	SwapRows [2]int `yaml:"swap_rows"` // rows of A to exchange
	SwapCols [2]int `yaml:"swap_cols"` // columns of B to exchange
	Update   Update `yaml:"update"`    // single-element update applied to A
}

// Update names a single-element assignment.
type Update struct {
	Row   int `yaml:"row"`
	Col   int `yaml:"col"`
	Value int `yaml:"value"`
}

// Default returns the configuration used when no file is given: field width
// 6 and the mutation steps of the reference flow (swap rows 0,1 of A, swap
// cols 1,2 of B, set A[2][2]=99).
func Default() *Config {
	return &Config{
		Output:  OutputConfig{FieldWidth: 6},
		Logging: LoggingConfig{Level: "info"},
		Demo: DemoConfig{
			SwapRows: [2]int{0, 1},
			SwapCols: [2]int{1, 2},
			Update:   Update{Row: 2, Col: 2, Value: 99},
		},
	}
}

// Load reads a yaml config from path, filling unset fields from Default.
// An empty path returns Default unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	// Zero width would collapse the grid; treat it as "not configured".
	if cfg.Output.FieldWidth <= 0 {
		cfg.Output.FieldWidth = Default().Output.FieldWidth
	}

	return cfg, nil
}
