// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package errs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/dial/internal/errs"
)

func TestKindOfRecoversConstructedErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind errs.Kind
	}{
		{"unclosed paren", errs.UnclosedParen(), errs.KindUnclosedParen},
		{"unexpected close", errs.UnexpectedClose(), errs.KindUnexpectedClose},
		{"unexpected eoi", errs.UnexpectedEOI(), errs.KindUnexpectedEOI},
		{"not a pair", errs.NotAPair("Number"), errs.KindNotAPair},
		{"malformed list", errs.MalformedList(), errs.KindMalformedList},
		{"unbound symbol", errs.UnboundSymbol("y"), errs.KindUnboundSymbol},
		{"arity", errs.Arity(1, 2), errs.KindArity},
		{"type mismatch", errs.TypeMismatch("Number", "Boolean"), errs.KindTypeMismatch},
		{"closed over scope gone", errs.ClosedOverScopeGone(), errs.KindClosedOverScopeGone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, errs.KindOf(tc.err))
		})
	}
}

func TestKindOfUnknownForForeignError(t *testing.T) {
	assert.Equal(t, errs.KindUnknown, errs.KindOf(errors.New("boom")))
	assert.Equal(t, errs.KindUnknown, errs.KindOf(nil))
}

func TestArityCarriesContext(t *testing.T) {
	err := errs.Arity(1, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want 1")
	assert.Contains(t, err.Error(), "got 2")
}

func TestDisplayRendersMessage(t *testing.T) {
	assert.Equal(t, "", errs.Display(nil))
	assert.Contains(t, errs.Display(errs.UnboundSymbol("y")), "unbound symbol: y")
}
