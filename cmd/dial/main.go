// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package main is the entry point for the dial interpreter CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
