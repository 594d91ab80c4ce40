// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-hiera-client/hiera"
)

// Process exit codes of hiera-lookup.
const (
	ExitOK            = 0
	ExitLookupFailure = 1
	ExitKeyNotFound   = 2
	ExitUsage         = 3
	ExitExecution     = 4
)

// errUsage marks command-line mistakes reported by cobra or by flag checks.
var errUsage = errors.New("invalid usage")

func usageError(err error) error {
	return fmt.Errorf("%w: %w", errUsage, err)
}

// ExitCode maps an error returned by a subcommand to a process exit code.
// Invalid arguments, client configuration errors, config loading errors and
// cobra's own usage errors all map to [ExitUsage].
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, hiera.ErrKeyNotFound):
		return ExitKeyNotFound
	case errors.Is(err, hiera.ErrLookup):
		return ExitLookupFailure
	case errors.Is(err, hiera.ErrExecution),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return ExitExecution
	default:
		return ExitUsage
	}
}
