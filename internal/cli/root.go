// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-hiera-client/hiera"
	"github.com/MKhiriev/go-hiera-client/internal/config"
	"github.com/MKhiriev/go-hiera-client/internal/logger"
	"github.com/MKhiriev/go-hiera-client/models"
)

const (
	appName = "hiera-lookup"

	// annotationSkipSetup marks subcommands that run without configuration.
	annotationSkipSetup = "skip-setup"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	info   models.BuildInfo
	stdout io.Writer
	stderr io.Writer

	// clientOpts are appended to the options derived from configuration.
	clientOpts []hiera.Option

	cfg *config.StructuredConfig
	log *logger.Logger
}

// NewRootCommand builds the hiera-lookup command tree. Values are written to
// stdout, logs and diagnostics to stderr. opts are applied after the
// options derived from configuration when a lookup client is built.
func NewRootCommand(info models.BuildInfo, stdout, stderr io.Writer, opts ...hiera.Option) *cobra.Command {
	a := &app{
		info:       info,
		stdout:     stdout,
		stderr:     stderr,
		clientOpts: opts,
	}

	root := &cobra.Command{
		Use:   appName,
		Short: "Look up keys in a Hiera hierarchy",
		Long: `hiera-lookup resolves keys against a Hiera hierarchy by running the hiera
tool once per lookup with the configured context variables.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	config.BindFlags(root.PersistentFlags())
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	root.AddCommand(
		a.newGetCommand(),
		a.newGetAllCommand(),
		a.newCommandCommand(),
		a.newVersionCommand(),
	)

	return root
}

// Execute runs hiera-lookup with args and returns the process exit code.
func Execute(ctx context.Context, args []string, info models.BuildInfo, stdout, stderr io.Writer) int {
	return run(ctx, NewRootCommand(info, stdout, stderr), args, stderr)
}

func run(ctx context.Context, root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", appName, err)
	}
	return ExitCode(err)
}

// setup loads configuration and the logger before a lookup subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Annotations[annotationSkipSetup] == "true" || cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logger.NewLogger(appName, cfg.Log.Level, a.stderr)
	a.log.Debug().Any("config", cfg).Msg("received configs")

	cmd.SetContext(a.log.WithContext(cmd.Context()))
	return nil
}

// newClient builds a lookup client from the loaded configuration.
func (a *app) newClient(extra ...hiera.Option) (*hiera.Client, error) {
	style, err := hiera.ParseArgStyle(a.cfg.Hiera.ArgStyle)
	if err != nil {
		return nil, &hiera.ConfigurationError{Reason: "invalid arg style", Err: err}
	}

	opts := []hiera.Option{
		hiera.WithBinary(a.cfg.Hiera.Binary),
		hiera.WithTimeout(a.cfg.Hiera.Timeout),
		hiera.WithArgStyle(style),
		hiera.WithLogger(a.log.GetChildLogger().Logger),
	}
	if len(a.cfg.Hiera.NotFoundSentinels) > 0 {
		opts = append(opts, hiera.WithNotFoundSentinels(a.cfg.Hiera.NotFoundSentinels...))
	}
	opts = append(opts, a.clientOpts...)
	opts = append(opts, extra...)

	return hiera.New(a.cfg.Hiera.ConfigPath, a.cfg.Hiera.Vars, opts...)
}
