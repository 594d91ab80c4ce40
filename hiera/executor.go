// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/MKhiriev/go-hiera-client/models"
)

// DefaultWaitDelay bounds how long [ProcessExecutor] waits for the output
// pipes to drain after the child has been killed.
const DefaultWaitDelay = time.Second

// ProcessExecutor is the default [Executor]. It runs the tool as a child
// process of the caller, inheriting the caller's environment unchanged.
type ProcessExecutor struct {
	// WaitDelay overrides [DefaultWaitDelay] when positive.
	WaitDelay time.Duration
}

// Execute implements [Executor].
func (e ProcessExecutor) Execute(ctx context.Context, name string, args []string) (models.ProcessOutput, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = e.waitDelay()

	started := time.Now()
	err := cmd.Run()

	out := models.ProcessOutput{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(started),
	}
	if cmd.ProcessState != nil {
		out.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err == nil {
		return out, nil
	}

	// the kill on cancellation surfaces as an ExitError, so ctx goes first
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return out, fmt.Errorf("%w: %w", ErrTimeout, ctxErr)
		}
		return out, fmt.Errorf("%w: %w", ErrExecution, ctxErr)
	}

	// a background process holding the pipes open does not undo a clean exit
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState != nil && cmd.ProcessState.Success() {
		return out, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// killed by a signal from outside, not an answer from the tool
		if !exitErr.Exited() {
			return out, fmt.Errorf("%w: %w", ErrExecution, err)
		}
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}

	return out, fmt.Errorf("%w: %w", ErrExecution, err)
}

func (e ProcessExecutor) waitDelay() time.Duration {
	if e.WaitDelay > 0 {
		return e.WaitDelay
	}
	return DefaultWaitDelay
}
