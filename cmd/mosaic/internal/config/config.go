// Package config loads the optional mosaic.yaml tuning file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	mosaicerrors "github.com/go-mosaic/mosaic/pkg/errors"
)

// Config represents the optional mosaic.yaml configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Leading LeadingConfig `yaml:"leading"`
	Probe   ProbeConfig   `yaml:"probe"`
}

// GridConfig tunes the packed grid geometry.
type GridConfig struct {
	RowExtent    float64 `yaml:"rowExtent,omitempty"`
	ColumnExtent float64 `yaml:"columnExtent,omitempty"`
	BufferRows   int     `yaml:"bufferRows,omitempty"`
}

// LeadingConfig tunes the leading block.
type LeadingConfig struct {
	RowExtent float64 `yaml:"rowExtent,omitempty"`
}

// ProbeConfig tunes the collaborator-side shape probe.
type ProbeConfig struct {
	// WideAspectThreshold is the width/height ratio above which a loaded
	// thumbnail is reported wide.
	WideAspectThreshold float64 `yaml:"wideAspectThreshold,omitempty"`
}

// Default returns the configuration used when mosaic.yaml is absent.
func Default() *Config {
	return &Config{
		Grid:    GridConfig{RowExtent: 420, ColumnExtent: 300, BufferRows: 1},
		Leading: LeadingConfig{RowExtent: 48},
		Probe:   ProbeConfig{WideAspectThreshold: 1.15},
	}
}

// LoadOptional reads mosaic.yaml from dir if present, filling absent fields
// from the defaults.
func LoadOptional(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, "mosaic.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read mosaic.yaml: %w", err))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to parse mosaic.yaml: %w", err))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects geometry that the engine would only silently clamp.
func (c *Config) Validate() error {
	if c.Grid.RowExtent <= 0 {
		return configError("config.Validate", fmt.Errorf("grid.rowExtent must be positive (got %v)", c.Grid.RowExtent))
	}
	if c.Grid.ColumnExtent <= 0 {
		return configError("config.Validate", fmt.Errorf("grid.columnExtent must be positive (got %v)", c.Grid.ColumnExtent))
	}
	if c.Grid.BufferRows < 0 {
		return configError("config.Validate", fmt.Errorf("grid.bufferRows cannot be negative (got %d)", c.Grid.BufferRows))
	}
	if c.Leading.RowExtent <= 0 {
		return configError("config.Validate", fmt.Errorf("leading.rowExtent must be positive (got %v)", c.Leading.RowExtent))
	}
	if c.Probe.WideAspectThreshold <= 0 {
		return configError("config.Validate", fmt.Errorf("probe.wideAspectThreshold must be positive (got %v)", c.Probe.WideAspectThreshold))
	}
	return nil
}

func configError(op string, err error) error {
	return &mosaicerrors.MosaicError{Op: op, Kind: mosaicerrors.KindConfig, Err: err}
}
