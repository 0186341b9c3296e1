/*
Copyright 2026 Bea Steers. All rights reserved.
Use of this source code is governed by the MIT
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for the pformat CLI.
package config

import (
	"pformat.dev/pformat/template"
)

// Config represents the pformat configuration.
type Config struct {
	// Mode is the default resolution mode: "partial", "glob", or "default".
	Mode string `yaml:"mode" json:"mode"`

	// Wildcard overrides the glob-mode wildcard marker.
	Wildcard string `yaml:"wildcard" json:"wildcard"`

	// Bindings lists bindings files to load before rendering.
	// Entries may contain globs, including **.
	Bindings []string `yaml:"bindings" json:"bindings"`
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Mode:     template.Partial.String(),
		Wildcard: "*",
	}
}

// ResolutionMode returns the parsed mode from the Mode field.
// Returns template.Partial if the field is empty or invalid.
func (c *Config) ResolutionMode() template.Mode {
	if c.Mode == "" {
		return template.Partial
	}
	m, err := template.ModeFromString(c.Mode)
	if err != nil {
		return template.Partial
	}
	return m
}
