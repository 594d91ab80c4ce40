// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) newVersionCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        noArgs,
		Annotations: map[string]string{annotationSkipSetup: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			if format == outputText {
				_, err = fmt.Fprint(a.stdout, a.info.String())
				return err
			}
			return encode(a.stdout, format, a.info)
		},
	}

	cmd.Flags().StringVar(&output, flagOutput, string(outputText), "Output format: text, json or yaml")
	return cmd
}
