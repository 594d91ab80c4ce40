// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names registered by [BindFlags].
const (
	FlagHieraConfig = "hiera-config"
	FlagBinary      = "binary"
	FlagTimeout     = "timeout"
	FlagArgStyle    = "arg-style"
	FlagVar         = "var"
	FlagNotFound    = "not-found"
	FlagLogLevel    = "log-level"
	FlagConfig      = "config"
)

// BindFlags registers the configuration flags on fs.
//
// Flags:
//
//	--hiera-config   hierarchy definition file
//	--binary         hierarchy tool (default "hiera")
//	--timeout        per-lookup timeout (default 5s)
//	--arg-style      command-line layout: scoped or hiera
//	--var k=v        default context variable, repeatable
//	--not-found s    stdout value meaning "no value", repeatable
//	--log-level      trace, debug, info, warn, error
//	--config         JSON or YAML settings file
//
// Flag defaults are zero values so that only flags set by the user take
// part in the merge; the effective defaults live in [defaultConfig].
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagHieraConfig, "", "Hierarchy definition file passed to the tool")
	fs.String(FlagBinary, "", fmt.Sprintf("Hierarchy tool binary (default %q)", DefaultBinary))
	fs.Duration(FlagTimeout, 0, fmt.Sprintf("Per-lookup timeout (default %s)", DefaultTimeout))
	fs.String(FlagArgStyle, "", fmt.Sprintf("Command-line layout: scoped or hiera (default %q)", DefaultArgStyle))
	fs.StringToString(FlagVar, nil, "Default context variable name=value, repeatable")
	fs.StringSlice(FlagNotFound, nil, `Tool output meaning "no value", repeatable (default "nil")`)
	fs.String(FlagLogLevel, "", fmt.Sprintf("Log level (default %q)", DefaultLogLevel))
	fs.String(FlagConfig, "", "JSON or YAML settings file")
}

// parseFlags reads the flags registered by [BindFlags] back into a
// [StructuredConfig]. Flags that are not registered on fs are skipped.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var err error

	if cfg.Hiera.ConfigPath, err = lookupString(fs, FlagHieraConfig); err != nil {
		return nil, err
	}
	if cfg.Hiera.Binary, err = lookupString(fs, FlagBinary); err != nil {
		return nil, err
	}
	if cfg.Hiera.ArgStyle, err = lookupString(fs, FlagArgStyle); err != nil {
		return nil, err
	}
	if cfg.Log.Level, err = lookupString(fs, FlagLogLevel); err != nil {
		return nil, err
	}
	if cfg.FilePath, err = lookupString(fs, FlagConfig); err != nil {
		return nil, err
	}

	if fs.Lookup(FlagTimeout) != nil {
		if cfg.Hiera.Timeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagTimeout, err)
		}
	}
	if fs.Lookup(FlagVar) != nil {
		if cfg.Hiera.Vars, err = fs.GetStringToString(FlagVar); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagVar, err)
		}
	}
	if fs.Lookup(FlagNotFound) != nil {
		if cfg.Hiera.NotFoundSentinels, err = fs.GetStringSlice(FlagNotFound); err != nil {
			return nil, fmt.Errorf("error reading --%s: %w", FlagNotFound, err)
		}
	}

	return cfg, nil
}

func lookupString(fs *pflag.FlagSet, name string) (string, error) {
	if fs.Lookup(name) == nil {
		return "", nil
	}

	value, err := fs.GetString(name)
	if err != nil {
		return "", fmt.Errorf("error reading --%s: %w", name, err)
	}
	return value, nil
}
