// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package eval

import (
	"context"
	"weak"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

// lambda is a user-defined closure: it implements object.Procedure so
// Object's Proc field can hold it without object importing env or eval.
// It captures its defining environment by weak.Pointer: applying the
// lambda upgrades the pointer via Value() and fails ClosedOverScopeGone
// once the pointer has been cleared. Go's tracing garbage collector
// already reclaims reference cycles on its own, so a closure's captured
// scope can only go stale, never leak — but the visible contract (applying
// a closure fails once nothing else keeps its defining scope alive) is
// preserved by the weak pointer regardless.
type lambda struct {
	params      *object.Object // proper list of Symbols
	body        *object.Object // proper list of expressions
	capturedEnv weak.Pointer[env.Environment]
}

func newLambda(params, body *object.Object, captured *env.Environment) *lambda {
	return &lambda{
		params:      params,
		body:        body,
		capturedEnv: weak.Make(captured),
	}
}

// Write implements object.Procedure.
func (l *lambda) Write() string { return "proc" }

// Apply implements object.Procedure: upgrades the captured environment,
// creates a fresh activation frame, binds params to args, and evaluates
// the body sequentially, returning the value of the last expression.
func (l *lambda) Apply(ctx context.Context, args []*object.Object) (*object.Object, error) {
	captured := l.capturedEnv.Value()
	if captured == nil {
		return nil, errs.ClosedOverScopeGone()
	}

	paramNames, err := paramSymbolNames(l.params)
	if err != nil {
		return nil, err
	}
	if len(paramNames) != len(args) {
		return nil, errs.Arity(len(paramNames), len(args))
	}

	frame := env.New(captured)
	for i, name := range paramNames {
		frame.Define(name, args[i])
	}

	bodyExprs, err := object.ToSequence(l.body)
	if err != nil {
		return nil, err
	}
	if len(bodyExprs) == 0 {
		return object.Unspecified(), nil
	}

	var result *object.Object
	for _, expr := range bodyExprs {
		result, err = eval(ctx, expr, frame)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// paramSymbolNames flattens the lambda's params list to a sequence of
// symbol names, failing NotASymbol if any element isn't a Symbol. This is
// a runtime error at call time, not at lambda construction.
func paramSymbolNames(params *object.Object) ([]string, error) {
	elems, err := object.ToSequence(params)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(elems))
	for i, p := range elems {
		if p.Kind != object.KindSymbol {
			return nil, errs.NotASymbol(p.Kind.String())
		}
		names[i] = p.Str
	}
	return names, nil
}
