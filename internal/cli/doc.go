// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the hiera-lookup command on top of the hiera
// library.
//
// Subcommands:
//
//	get KEY            print the value of KEY
//	get-all KEY...     resolve several keys, one result per key
//	command KEY        print the command line a lookup would run
//	version            print build information
//
// Lookup values go to stdout; logs and error messages go to stderr. The
// process exit code reflects the error kind, see [ExitCode].
package cli
