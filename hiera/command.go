// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ArgStyle selects the command-line layout handed to the tool.
type ArgStyle string

const (
	// ArgStyleScoped lays the command out as
	//
	//	<tool> -c k1=v1 -c k2=v2 <config> <key>
	ArgStyleScoped ArgStyle = "scoped"
	// ArgStyleHiera lays the command out the way the hiera CLI expects
	// scope variables:
	//
	//	<tool> --config <config> <key> k1=v1 k2=v2
	ArgStyleHiera ArgStyle = "hiera"
)

// ParseArgStyle converts s into an [ArgStyle]. An empty string selects
// [ArgStyleScoped].
func ParseArgStyle(s string) (ArgStyle, error) {
	switch ArgStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", ArgStyleScoped:
		return ArgStyleScoped, nil
	case ArgStyleHiera:
		return ArgStyleHiera, nil
	default:
		return "", fmt.Errorf("unknown arg style %q", s)
	}
}

func (s ArgStyle) valid() bool {
	return s == ArgStyleScoped || s == ArgStyleHiera
}

// args builds the argument list of a lookup. Variables are emitted sorted by
// name so the same request always yields the same command line.
func (s ArgStyle) args(configPath, key string, vars map[string]string) []string {
	names := slices.Sorted(maps.Keys(vars))

	switch s {
	case ArgStyleHiera:
		args := make([]string, 0, 3+len(names))
		args = append(args, "--config", configPath, key)
		for _, name := range names {
			args = append(args, name+"="+vars[name])
		}
		return args
	default:
		args := make([]string, 0, 2*len(names)+2)
		for _, name := range names {
			args = append(args, "-c", name+"="+vars[name])
		}
		return append(args, configPath, key)
	}
}
