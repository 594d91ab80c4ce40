// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Defaults applied below every other configuration source.
const (
	DefaultBinary   = "hiera"
	DefaultTimeout  = 5 * time.Second
	DefaultArgStyle = "scoped"
	DefaultLogLevel = "info"
)

// StructuredConfig is the top-level configuration of the hiera-lookup
// command. It is populated by merging defaults, an optional settings file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Hiera holds everything needed to build the lookup client.
	Hiera Hiera `envPrefix:"HIERA_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// FilePath is the optional path to a JSON or YAML settings file.
	// Populated via the CONFIG environment variable or the --config flag.
	FilePath string `env:"CONFIG"`
}

// Hiera holds the settings of the lookup client.
type Hiera struct {
	// Binary is the hierarchy tool, a path or a name looked up on PATH.
	// Env: HIERA_BINARY
	Binary string `env:"BINARY"`

	// ConfigPath is the hierarchy definition handed to the tool.
	// Env: HIERA_CONFIG_PATH
	ConfigPath string `env:"CONFIG_PATH"`

	// Timeout bounds a single lookup (e.g. "5s").
	// Env: HIERA_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// ArgStyle selects the command-line layout: "scoped" or "hiera".
	// Env: HIERA_ARG_STYLE
	ArgStyle string `env:"ARG_STYLE"`

	// Vars are the default context variables.
	// Env: HIERA_VARS, e.g. "environment=dev,osfamily=Debian"
	Vars map[string]string `env:"VARS" envKeyValSeparator:"="`

	// NotFoundSentinels replaces the stdout values meaning "no value".
	// Env: HIERA_NOT_FOUND_SENTINELS, comma separated
	NotFoundSentinels []string `env:"NOT_FOUND_SENTINELS"`
}

// Log holds logger settings.
type Log struct {
	// Level is one of trace, debug, info, warn, error.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Hiera: Hiera{
			Binary:   DefaultBinary,
			Timeout:  DefaultTimeout,
			ArgStyle: DefaultArgStyle,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration in the
// following priority order (later sources override non-zero fields of
// earlier ones):
//  1. Defaults
//  2. Settings file (path resolved from sources 3 and 4)
//  3. Environment variables
//  4. Command-line flags registered on fs with [BindFlags]
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withFile().
		build()
}
