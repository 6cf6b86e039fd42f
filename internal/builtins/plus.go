// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package builtins provides the host-function registry and the in-core
// builtins, seeding the global Environment the REPL and `dial eval` share.
package builtins

import (
	"context"

	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

// plusBuiltin is a host-provided object.Procedure implementing +: the sum
// of all operands, with an empty operand list yielding 0 and any
// non-Number operand failing TypeMismatch. Overflow wraps per
// object.Int128's defined two's-complement semantics.
type plusBuiltin struct{}

func (plusBuiltin) Write() string { return "proc" }

func (plusBuiltin) Apply(_ context.Context, args []*object.Object) (*object.Object, error) {
	sum := object.Int128{}
	for _, arg := range args {
		if arg.Kind != object.KindNumber {
			return nil, errs.TypeMismatch(object.KindNumber.String(), arg.Kind.String())
		}
		sum = sum.Add(arg.Num)
	}
	return object.NewNumber(sum), nil
}
