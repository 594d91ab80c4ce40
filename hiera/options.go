// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBinary is the tool looked up on PATH when no binary is set.
	DefaultBinary = "hiera"
	// DefaultTimeout bounds a single lookup when no timeout is set.
	DefaultTimeout = 5 * time.Second
)

var (
	defaultNotFoundSentinels = []string{"nil"}
	defaultNotFoundMarkers   = []string{"could not find a value for key"}
)

type options struct {
	binary            string
	timeout           time.Duration
	executor          Executor
	logger            zerolog.Logger
	argStyle          ArgStyle
	notFoundSentinels []string
	notFoundMarkers   []string
	checkConfigFile   bool
	stopOnError       bool
}

func defaultOptions() options {
	return options{
		binary:            DefaultBinary,
		timeout:           DefaultTimeout,
		executor:          ProcessExecutor{},
		logger:            zerolog.Nop(),
		argStyle:          ArgStyleScoped,
		notFoundSentinels: defaultNotFoundSentinels,
		notFoundMarkers:   defaultNotFoundMarkers,
	}
}

// Option customises a [Client] built by [New].
type Option func(*options)

// WithBinary sets the path or name of the hierarchy tool.
func WithBinary(binary string) Option {
	return func(o *options) {
		o.binary = binary
	}
}

// WithTimeout bounds every lookup. The child process is killed when the
// timeout elapses. Non-positive values are rejected by [New].
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithExecutor replaces the process boundary, e.g. with a mock in tests.
func WithExecutor(executor Executor) Option {
	return func(o *options) {
		o.executor = executor
	}
}

// WithLogger sets the logger used for per-lookup debug entries.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithArgStyle selects how the command line is laid out.
func WithArgStyle(style ArgStyle) Option {
	return func(o *options) {
		o.argStyle = style
	}
}

// WithNotFoundSentinels replaces the stdout values that mean "no value".
// Matching is exact on the trimmed output.
func WithNotFoundSentinels(sentinels ...string) Option {
	return func(o *options) {
		o.notFoundSentinels = sentinels
	}
}

// WithNotFoundMarkers replaces the stderr substrings that turn a non-zero
// exit into a [KeyNotFoundError]. Matching is case-insensitive.
func WithNotFoundMarkers(markers ...string) Option {
	return func(o *options) {
		o.notFoundMarkers = markers
	}
}

// WithConfigFileCheck makes [New] fail when the hierarchy config is not a
// readable regular file. By default the check is left to the tool.
func WithConfigFileCheck() Option {
	return func(o *options) {
		o.checkConfigFile = true
	}
}

// WithStopOnError makes [Client.GetAll] return at the first failed key.
func WithStopOnError() Option {
	return func(o *options) {
		o.stopOnError = true
	}
}
