// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/dial/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the interpreter's language version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.LanguageVersion)
			return nil
		},
	}
}
