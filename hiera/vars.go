// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"maps"
	"strconv"
	"strings"
	"unicode"
)

// checkVarName returns a reason when name cannot be passed as name=value
// on the tool's command line, or "" when it can.
func checkVarName(name string) string {
	switch {
	case name == "":
		return "variable name is empty"
	case strings.Contains(name, "="):
		return "variable name " + strconv.Quote(name) + " contains '='"
	case strings.ContainsFunc(name, unicode.IsSpace):
		return "variable name " + strconv.Quote(name) + " contains whitespace"
	default:
		return ""
	}
}

func checkVars(vars map[string]string) string {
	for name := range vars {
		if reason := checkVarName(name); reason != "" {
			return reason
		}
	}
	return ""
}

func checkKey(key string) string {
	switch {
	case strings.TrimSpace(key) == "":
		return "key is empty"
	case strings.HasPrefix(key, "-"):
		return "key " + strconv.Quote(key) + " starts with '-'"
	default:
		return ""
	}
}

// mergeVars returns a fresh map with overrides applied on top of defaults.
// Neither input is modified.
func mergeVars(defaults, overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaults)+len(overrides))
	maps.Copy(merged, defaults)
	maps.Copy(merged, overrides)
	return merged
}
