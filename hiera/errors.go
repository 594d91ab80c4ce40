// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"errors"
	"fmt"
)

// Sentinel values matched by the typed errors below through [errors.Is].
// Callers that only care about the failure kind should compare against
// these instead of type-asserting.
var (
	// ErrConfiguration marks invalid client construction arguments.
	ErrConfiguration = errors.New("invalid client configuration")
	// ErrInvalidArgument marks an invalid key or override detected before
	// any process is spawned.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrExecution marks a tool process that could not be run to completion.
	ErrExecution = errors.New("hiera execution failed")
	// ErrTimeout marks a tool process killed because the lookup deadline
	// elapsed. It is always reported together with ErrExecution.
	ErrTimeout = errors.New("hiera lookup timed out")
	// ErrKeyNotFound marks a lookup for which the tool produced no value.
	ErrKeyNotFound = errors.New("key not found")
	// ErrLookup marks a tool process that exited with a non-zero status.
	ErrLookup = errors.New("hiera lookup failed")
)

// ConfigurationError is returned by [New] when the client cannot be built.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", ErrConfiguration, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrConfiguration, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

func (e *ConfigurationError) Unwrap() error { return e.Err }

// InvalidArgumentError is returned by lookups called with a bad key or bad
// override variables.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidArgument, e.Argument, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// ExecutionError is returned when the tool could not be spawned or was
// killed on timeout. Err holds the OS-level cause.
type ExecutionError struct {
	Key     string
	Binary  string
	Timeout bool
	Err     error
}

func (e *ExecutionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s: key %q: %s: %v", ErrTimeout, e.Key, e.Binary, e.Err)
	}
	return fmt.Sprintf("%s: key %q: %s: %v", ErrExecution, e.Key, e.Binary, e.Err)
}

func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecution || (e.Timeout && target == ErrTimeout)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// KeyNotFoundError is returned when the tool ran successfully but resolved
// no value for Key.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool { return target == ErrKeyNotFound }

// LookupError is returned when the tool exits with a non-zero status.
type LookupError struct {
	Key      string
	ExitCode int
	Stderr   string
}

func (e *LookupError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: key %q: exit code %d", ErrLookup, e.Key, e.ExitCode)
	}
	return fmt.Sprintf("%s: key %q: exit code %d: %s", ErrLookup, e.Key, e.ExitCode, e.Stderr)
}

func (e *LookupError) Is(target error) bool { return target == ErrLookup }
