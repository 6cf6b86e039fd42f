// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package builtins

import (
	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/object"
)

// NewGlobalEnv constructs the seeded root Environment shared by the REPL
// and `dial eval`, binding every builtin host function. Additional
// builtins plug in through the same object.Procedure interface.
func NewGlobalEnv() *env.Environment {
	root := env.New(nil)
	root.Define("+", object.NewProcedure(plusBuiltin{}))
	root.Define("like?", object.NewProcedure(newLikeBuiltin()))
	return root
}
