// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// LookupRequest describes a single key resolution against a hierarchy.
// It is built by the client for every call and never reused.
type LookupRequest struct {
	// ID correlates log entries produced while serving the request.
	ID string
	// ConfigPath is the hierarchy definition file handed to the tool.
	ConfigPath string
	// Key is the lookup key, passed as the final positional argument.
	Key string
	// Variables holds client defaults with per-call overrides applied.
	Variables map[string]string
}

// LookupResult is the outcome of one key in a batch lookup: either a
// resolved Value or a non-nil Err.
type LookupResult struct {
	Key   string
	Value string
	Err   error
}

// OK reports whether the key was resolved.
func (r LookupResult) OK() bool {
	return r.Err == nil
}

// ProcessOutput is what the process boundary reports back for a finished
// child process. A non-zero ExitCode is data, not an error.
type ProcessOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}
