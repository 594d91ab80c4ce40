// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hiera is a client for the Hiera hierarchical configuration
// lookup tool.
//
// The client does not link the hierarchy engine. Every lookup runs the
// tool as a child process, passes the hierarchy config path, the context
// variables and the key on the command line, and turns the result into a
// value or a typed error:
//
//	client, err := hiera.New("/etc/hiera.yaml", map[string]string{"environment": "dev"})
//	if err != nil {
//		return err
//	}
//	host, err := client.Get(ctx, "db_host", nil)
//	switch {
//	case errors.Is(err, hiera.ErrKeyNotFound):
//		// no value in any level of the hierarchy
//	case err != nil:
//		return err
//	}
//
// Context variables are never passed through the environment, so
// concurrent lookups with different overrides cannot observe each other.
// The process boundary is the [Executor] interface; [ProcessExecutor] is
// the default implementation.
package hiera
