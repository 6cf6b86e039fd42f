// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package eval

import (
	"context"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

// evalQuote implements (quote X) -> X: return (cdr).car unevaluated.
// Only the first operand is taken; trailing operands are silently
// ignored (see DESIGN.md). Returning (cdr).car rather than the whole
// cdr keeps (quote 1) equal to 1 rather than the pair (1 . null).
func evalQuote(operands *object.Object) (*object.Object, error) {
	if operands.Kind != object.KindPair {
		return nil, errs.QuoteMalformed()
	}
	return operands.Car, nil
}

// evalIf implements (if P C A): evaluate the predicate; if truthy,
// evaluate the consequent, else the alternate. A two-armed if with a false
// predicate and no alternate is IfMalformed.
func evalIf(ctx context.Context, operands *object.Object, e *env.Environment) (*object.Object, error) {
	parts, err := object.ToSequence(operands)
	if err != nil {
		return nil, err
	}
	if len(parts) < 2 || len(parts) > 3 {
		return nil, errs.IfMalformed("if requires a predicate, consequent, and optional alternate")
	}

	pred, err := eval(ctx, parts[0], e)
	if err != nil {
		return nil, err
	}

	if object.IsTrue(pred) {
		return eval(ctx, parts[1], e)
	}
	if len(parts) == 3 {
		return eval(ctx, parts[2], e)
	}
	return nil, errs.IfMalformed("false predicate with no alternate")
}

// evalLambda constructs a closure from (params body...), capturing e by
// weak reference. No evaluation of params or body occurs here.
func evalLambda(operands *object.Object, e *env.Environment) (*object.Object, error) {
	if operands.Kind != object.KindPair {
		return nil, errs.LambdaMalformed("lambda requires a params list and a body")
	}
	params := operands.Car
	body := operands.Cdr

	if !object.IsProperList(params) {
		return nil, errs.LambdaMalformed("params must be a proper list")
	}
	if !object.IsProperList(body) {
		return nil, errs.LambdaMalformed("body must be a proper list")
	}

	lambda := newLambda(params, body, e)
	return object.NewProcedure(lambda), nil
}

// evalDefine implements (define SYMBOL EXPR): the first operand must be a
// Symbol; the second is evaluated in e and bound in e's frame only. Result
// is Unspecified.
func evalDefine(ctx context.Context, operands *object.Object, e *env.Environment) (*object.Object, error) {
	parts, err := object.ToSequence(operands)
	if err != nil {
		return nil, err
	}
	if len(parts) != 2 {
		return nil, errs.DefineMalformed("define requires exactly a symbol and a value expression")
	}
	if parts[0].Kind != object.KindSymbol {
		return nil, errs.DefineMalformed("first operand must be a symbol")
	}

	val, err := eval(ctx, parts[1], e)
	if err != nil {
		return nil, err
	}

	e.Define(parts[0].Str, val)
	return object.Unspecified(), nil
}
