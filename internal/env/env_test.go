// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/dial/internal/env"
	"github.com/holomush/dial/internal/object"
)

func TestDefineLocalityFrameOnlyNotParent(t *testing.T) {
	root := env.New(nil)
	root.Define("x", object.NewNumber(object.Int128FromInt64(1)))

	child := env.New(root)
	child.Define("x", object.NewNumber(object.Int128FromInt64(2)))

	childVal, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "2", object.Write(childVal))

	rootVal, ok := root.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, "1", object.Write(rootVal))
}

func TestLookupFallsThroughToParent(t *testing.T) {
	root := env.New(nil)
	root.Define("y", object.NewSymbol("from-root"))

	child := env.New(root)
	val, ok := child.Lookup("y")
	require.True(t, ok)
	assert.Equal(t, "from-root", object.Write(val))
}

func TestLookupAbsentReturnsFalse(t *testing.T) {
	root := env.New(nil)
	_, ok := root.Lookup("missing")
	assert.False(t, ok)
}

func TestLookupNeverFallsThroughToSibling(t *testing.T) {
	root := env.New(nil)
	a := env.New(root)
	b := env.New(root)

	a.Define("only-in-a", object.NewBoolean(true))

	_, ok := b.Lookup("only-in-a")
	assert.False(t, ok, "sibling frame must not see a's binding")
}

func TestDepthCountsFramesFromRoot(t *testing.T) {
	root := env.New(nil)
	assert.Equal(t, 0, root.Depth())

	child := env.New(root)
	assert.Equal(t, 1, child.Depth())

	grandchild := env.New(child)
	assert.Equal(t, 2, grandchild.Depth())
}
