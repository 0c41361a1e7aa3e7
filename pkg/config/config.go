// Package config loads the optional TOML configuration file.
//
// Every field has a default reproducing the built-in behavior, so the tool
// runs with no configuration at all; a config file only overrides what it
// sets.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/utkloud/archdiagrams/pkg/diagram"
	"github.com/utkloud/archdiagrams/pkg/topology"
)

// Config holds the user-tunable generation settings.
type Config struct {
	// OutputDir is where diagram files are written.
	OutputDir string `toml:"output_dir"`

	// Formats are the formats produced per topology.
	Formats []string `toml:"formats"`

	// Converter overrides the Draw.io conversion executable.
	Converter string `toml:"converter"`

	// GraphAttrs override individual graph-level Graphviz attributes.
	GraphAttrs map[string]string `toml:"graph_attrs"`

	// Palette overrides tier cluster background colors by tier name
	// (frontend, backend, data, firewall, monitoring).
	Palette map[string]string `toml:"palette"`
}

// Default returns the configuration matching the built-in behavior:
// PNG and DOT under diagrams/, converted with graphviz2drawio.
func Default() Config {
	return Config{
		OutputDir: "diagrams",
		Formats:   []string{diagram.FormatPNG, diagram.FormatDOT},
	}
}

// Load reads a TOML config file and applies it on top of [Default].
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for unsupported values.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if err := topology.Palette(c.Palette).Validate(); err != nil {
		return err
	}
	return diagram.ValidateFormats(c.Formats)
}

// Apply overlays the configured graph attributes onto a diagram.
func (c Config) Apply(d *diagram.Diagram) {
	for k, v := range c.GraphAttrs {
		d.Attrs[k] = v
	}
}
