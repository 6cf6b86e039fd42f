// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/dial/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the dial configuration system",
	}
	cmd.AddCommand(newConfigSchemaCmd())
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the generated JSON Schema for the config file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := config.GenerateSchema()
			if err != nil {
				return fmt.Errorf("generating schema: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(schema))
			return nil
		},
	}
}
