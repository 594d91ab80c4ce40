// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hiera

import (
	"context"

	"github.com/MKhiriev/go-hiera-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../internal/mock/executor_mock.go -package=mock

// Executor is the process boundary of the client. It runs name with args
// and reports how the process finished.
//
// Implementations must return a nil error for any process that ran to
// completion, whatever its exit status: a non-zero exit code is reported
// in [models.ProcessOutput.ExitCode]. A process that exits cleanly while a
// background child keeps its output open still counts as completed. A
// non-nil error means the process could not be started, was killed by a
// signal, or was killed because ctx was done; errors caused by an expired
// deadline should match [ErrTimeout].
//
// Swapping the Executor lets the client talk to a native binding or a
// remote service without touching callers.
type Executor interface {
	Execute(ctx context.Context, name string, args []string) (models.ProcessOutput, error)
}
