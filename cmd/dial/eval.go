// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/holomush/dial/internal/builtins"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/eval"
	"github.com/holomush/dial/internal/object"
	"github.com/holomush/dial/internal/reader"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Read and evaluate a single expression, printing its write form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, err := reader.Read(args[0])
			if err != nil {
				return fmt.Errorf("%s", errs.Display(err))
			}
			result, err := eval.Eval(cmd.Context(), expr, builtins.NewGlobalEnv())
			if err != nil {
				return fmt.Errorf("%s", errs.Display(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), object.Write(result))
			return nil
		},
	}
}
