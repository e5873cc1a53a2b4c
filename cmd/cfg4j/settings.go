package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// settings holds the tool configuration. Values come from environment
// variables first and may be overridden by flags (flags win).
//
// Struct tags: env — environment variable name (caarlos0/env).
type settings struct {
	// RootDir is the directory holding the configuration tree.
	// Env: CFG4J_ROOT
	RootDir string `env:"CFG4J_ROOT"`

	// Files is the ordered list of configuration files to merge per
	// environment; later files override earlier ones. When empty, the
	// default single-file discovery is used.
	// Env: CFG4J_FILES (comma-separated)
	Files []string `env:"CFG4J_FILES" envSeparator:","`

	// Verbose enables debug logging to stderr.
	// Env: CFG4J_VERBOSE
	Verbose bool `env:"CFG4J_VERBOSE"`
}

// parseSettings loads settings from the process environment.
func parseSettings() (settings, error) {
	var s settings
	if err := env.Parse(&s); err != nil {
		return settings{}, fmt.Errorf("error getting env configs: %w", err)
	}

	return s, nil
}
