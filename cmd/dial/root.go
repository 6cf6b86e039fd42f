// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/holomush/dial/internal/config"
)

var configFile string

// NewRootCmd creates the root command for the dial CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dial",
		Short: "dial - a small Lisp interpreter",
		Long:  `dial reads, evaluates, and prints S-expressions against a lexically-scoped environment.`,
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().String("prompt", "", "REPL prompt (overrides config file)")
	cmd.PersistentFlags().String("log-format", "", "log format: json or text (overrides config file)")
	cmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (overrides config file)")
	cmd.PersistentFlags().String("metrics-addr", "", "Prometheus /metrics listen address (overrides config file)")

	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig loads the merged configuration for cmd, binding cmd's own
// persistent (root-inherited) flags through koanf's posflag provider.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	return config.Load(configFile, cmd.Flags())
}
