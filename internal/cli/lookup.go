// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-hiera-client/hiera"
	"github.com/MKhiriev/go-hiera-client/internal/logger"
)

const (
	flagOverride    = "override"
	flagOutput      = "output"
	flagStopOnError = "stop-on-error"
)

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return usageError(err)
	}
	return nil
}

func bindOverrides(cmd *cobra.Command, overrides *map[string]string) {
	cmd.Flags().StringToStringVar(overrides, flagOverride, nil,
		"Context variable name=value for this lookup only, repeatable")
}

func (a *app) newGetCommand() *cobra.Command {
	var overrides map[string]string

	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Print the value of a key",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			value, err := client.Get(cmd.Context(), args[0], overrides)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, value)
			return err
		},
	}

	bindOverrides(cmd, &overrides)
	return cmd
}

func (a *app) newGetAllCommand() *cobra.Command {
	var (
		overrides   map[string]string
		output      string
		stopOnError bool
	)

	cmd := &cobra.Command{
		Use:   "get-all KEY...",
		Short: "Resolve several keys, one result per key",
		Long: `get-all resolves every key in order. A failed key is reported and the
remaining keys are still resolved, unless --stop-on-error is set. The exit
code is that of the first failed key.`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, keys []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			var extra []hiera.Option
			if stopOnError {
				extra = append(extra, hiera.WithStopOnError())
			}
			client, err := a.newClient(extra...)
			if err != nil {
				return err
			}

			log := logger.FromContext(cmd.Context())

			results, batchErr := client.GetAll(cmd.Context(), keys, overrides)

			views := make([]resultView, 0, len(results))
			seen := make(map[string]bool, len(results))
			var (
				firstErr error
				failed   int
			)
			for _, key := range keys {
				res, ok := results[key]
				if !ok || seen[key] {
					continue
				}
				seen[key] = true

				view := resultView{Key: key, Value: res.Value}
				if !res.OK() {
					failed++
					view.Error = res.Err.Error()
					if firstErr == nil {
						firstErr = res.Err
					}
					log.Debug().Str("key", key).Err(res.Err).Msg("key failed")
				}
				views = append(views, view)
			}

			if err := a.writeResults(format, views); err != nil {
				return err
			}

			if batchErr != nil {
				return batchErr
			}
			if firstErr != nil {
				return fmt.Errorf("%d of %d keys failed: %w", failed, len(views), firstErr)
			}
			return nil
		},
	}

	bindOverrides(cmd, &overrides)
	cmd.Flags().StringVar(&output, flagOutput, string(outputText), "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&stopOnError, flagStopOnError, false, "Stop at the first key that fails")
	return cmd
}

// writeResults prints one line per key in text mode: "key<TAB>value" on
// stdout for resolved keys, "key<TAB>error" on stderr for failed ones.
func (a *app) writeResults(format outputFormat, views []resultView) error {
	if format != outputText {
		return encode(a.stdout, format, views)
	}

	for _, v := range views {
		w, text := a.stdout, v.Value
		if v.Error != "" {
			w, text = a.stderr, v.Error
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\n", v.Key, text); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newCommandCommand() *cobra.Command {
	var overrides map[string]string

	cmd := &cobra.Command{
		Use:   "command KEY",
		Short: "Print the command line a lookup of KEY would run",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := a.newClient()
			if err != nil {
				return err
			}

			argv, err := client.Command(args[0], overrides)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(a.stdout, joinArgv(argv))
			return err
		},
	}

	bindOverrides(cmd, &overrides)
	return cmd
}

// joinArgv renders argv as a single line, quoting empty arguments and
// arguments containing whitespace or quotes.
func joinArgv(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		if arg == "" || strings.ContainsFunc(arg, func(r rune) bool {
			return unicode.IsSpace(r) || r == '"' || r == '\''
		}) {
			arg = strconv.Quote(arg)
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}
