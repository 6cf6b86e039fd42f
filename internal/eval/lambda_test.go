// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package eval_test

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/eval"
	"github.com/holomush/dial/internal/object"
	"github.com/holomush/dial/internal/reader"
)

// ClosedOverScopeGone: once nothing else keeps a Lambda's captured
// environment alive, applying it fails rather than silently reviving the
// scope.
func TestClosedOverScopeGoneOnceEnvUnreachable(t *testing.T) {
	closure := makeClosureWithNoOtherStrongRef(t)

	// Force collection; env.Environment above is now unreachable from any
	// root, so the weak pointer backing the closure should clear.
	for i := 0; i < 10 && closureStillLive(closure); i++ {
		runtime.GC()
	}

	_, err := closure.Proc.Apply(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, errs.KindClosedOverScopeGone, errs.KindOf(err))
}

func closureStillLive(closure *object.Object) bool {
	_, err := closure.Proc.Apply(context.Background(), nil)
	return err == nil
}

// makeClosureWithNoOtherStrongRef builds a lambda whose captured
// environment is reachable only through the lambda's own weak pointer by
// the time this function returns.
func makeClosureWithNoOtherStrongRef(t *testing.T) *object.Object {
	t.Helper()
	scope := env.New(nil)
	scope.Define("v", object.NewNumber(object.Int128FromInt64(1)))

	expr, err := reader.Read("(lambda () v)")
	require.NoError(t, err)
	closure, err := eval.Eval(context.Background(), expr, scope)
	require.NoError(t, err)

	return closure
}
