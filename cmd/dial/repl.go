// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/holomush/dial/internal/builtins"
	"github.com/holomush/dial/internal/logging"
	"github.com/holomush/dial/internal/metrics"
	"github.com/holomush/dial/internal/observability"
	"github.com/holomush/dial/internal/repl"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive read-eval-print loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger := logging.Setup("dial", "1.0.0", cfg.LogFormat, logging.ParseLevel(cfg.LogLevel), os.Stderr)

			var m *metrics.Metrics
			if cfg.MetricsAddr != "" {
				ready := true
				obsServer := observability.NewServer(cfg.MetricsAddr, func() bool { return ready })
				m = metrics.New(obsServer.Registry())

				errCh, startErr := obsServer.Start()
				if startErr != nil {
					return fmt.Errorf("starting observability server: %w", startErr)
				}
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = obsServer.Stop(ctx)
				}()
				go func() {
					if serveErr, ok := <-errCh; ok {
						logger.Error("observability server failed", "error", serveErr)
					}
				}()
			}

			repl.Loop(cmd.Context(), os.Stdin, os.Stdout, cfg.Prompt, builtins.NewGlobalEnv(), logger, m)
			return nil
		},
	}
}
