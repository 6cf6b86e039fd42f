// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package eval implements the tree-walking evaluator: Eval dispatches on
// expression shape, the same way a condition-tree evaluator dispatches on
// "which field of the node is non-nil" — here, which object.Kind the
// expression carries, and for Pairs, which Keyword the head holds.
package eval

import (
	"context"

	"go.opentelemetry.io/otel"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

var tracer = otel.Tracer("github.com/holomush/dial/internal/eval")

// Eval reduces expr against e, returning the resulting Object or the first
// error encountered. ctx carries only the OpenTelemetry span (the REPL's
// per-line correlation ID lives on its logger, not in ctx); evaluation defines
// no cancellation or timeout mechanism of its own, so ctx is never
// consulted for that purpose.
func Eval(ctx context.Context, expr *object.Object, e *env.Environment) (*object.Object, error) {
	ctx, span := tracer.Start(ctx, "dial.eval")
	defer span.End()

	result, err := eval(ctx, expr, e)
	if err != nil {
		span.RecordError(err)
	}
	return result, err
}

func eval(ctx context.Context, expr *object.Object, e *env.Environment) (*object.Object, error) {
	switch expr.Kind {
	case object.KindSymbol:
		val, ok := e.Lookup(expr.Str)
		if !ok {
			return nil, errs.UnboundSymbol(expr.Str)
		}
		return val, nil

	case object.KindPair:
		return evalPair(ctx, expr, e)

	default:
		if expr.Kind.IsSelfEvaluating() {
			return expr, nil
		}
		return nil, errs.NotEvaluable(expr.Kind.String())
	}
}

func evalPair(ctx context.Context, expr *object.Object, e *env.Environment) (*object.Object, error) {
	head := expr.Car
	if head.Kind == object.KindKeyword {
		switch head.Keyword {
		case object.KeywordQuote:
			return evalQuote(expr.Cdr)
		case object.KeywordIf:
			return evalIf(ctx, expr.Cdr, e)
		case object.KeywordLambda:
			return evalLambda(expr.Cdr, e)
		case object.KeywordDefine:
			return evalDefine(ctx, expr.Cdr, e)
		}
	}
	return evalApplication(ctx, expr, e)
}

// evalApplication evaluates the car to obtain a Procedure, evaluates each
// operand left-to-right (evlis), then invokes the procedure.
func evalApplication(ctx context.Context, expr *object.Object, e *env.Environment) (*object.Object, error) {
	proc, err := eval(ctx, expr.Car, e)
	if err != nil {
		return nil, err
	}
	if proc.Kind != object.KindProcedure {
		return nil, errs.NotAProcedure(proc.Kind.String())
	}

	operands, err := object.ToSequence(expr.Cdr)
	if err != nil {
		return nil, err
	}

	args, err := evlis(ctx, operands, e)
	if err != nil {
		return nil, err
	}

	return proc.Proc.Apply(ctx, args)
}

// evlis is a proper-list map: it evaluates each element in env in strict
// left-to-right order, short-circuiting on the first error.
func evlis(ctx context.Context, exprs []*object.Object, e *env.Environment) ([]*object.Object, error) {
	results := make([]*object.Object, len(exprs))
	for i, expr := range exprs {
		val, err := eval(ctx, expr, e)
		if err != nil {
			return nil, err
		}
		results[i] = val
	}
	return results, nil
}
