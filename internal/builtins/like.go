// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package builtins

import (
	"context"
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"github.com/holomush/dial/internal/errs"
	"github.com/holomush/dial/internal/object"
)

// maxGlobPatternLen is the maximum allowed length for a like? pattern.
const maxGlobPatternLen = 100

// maxGlobWildcards is the maximum number of wildcard characters (* or ?)
// allowed in a like? pattern.
const maxGlobWildcards = 5

// likeBuiltin is a two-operand builtin, (like? STRING PATTERN), showing
// that builtins plug into the evaluator's procedure interface the same
// way whether they're bare arithmetic or backed by a library. It applies
// glob pattern safety limits (max length, max wildcard count, reject
// '[' / '{' / '**') and answers #f for a pattern that breaks them.
type likeBuiltin struct {
	mu    sync.Mutex
	cache map[string]glob.Glob
}

func newLikeBuiltin() *likeBuiltin {
	return &likeBuiltin{cache: make(map[string]glob.Glob)}
}

func (b *likeBuiltin) Write() string { return "proc" }

func (b *likeBuiltin) Apply(_ context.Context, args []*object.Object) (*object.Object, error) {
	if len(args) != 2 {
		return nil, errs.Arity(2, len(args))
	}
	str, pattern := args[0], args[1]
	if str.Kind != object.KindString {
		return nil, errs.TypeMismatch(object.KindString.String(), str.Kind.String())
	}
	if pattern.Kind != object.KindString {
		return nil, errs.TypeMismatch(object.KindString.String(), pattern.Kind.String())
	}

	if !validGlobPattern(pattern.Str) {
		return object.NewBoolean(false), nil
	}

	compiled, err := b.compiled(pattern.Str)
	if err != nil {
		return object.NewBoolean(false), nil
	}

	return object.NewBoolean(compiled.Match(str.Str)), nil
}

func (b *likeBuiltin) compiled(pattern string) (glob.Glob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if g, ok := b.cache[pattern]; ok {
		return g, nil
	}
	g, err := glob.Compile(pattern, ':')
	if err != nil {
		return nil, err
	}
	b.cache[pattern] = g
	return g, nil
}

func validGlobPattern(pattern string) bool {
	if len(pattern) > maxGlobPatternLen {
		return false
	}
	if strings.Contains(pattern, "[") || strings.Contains(pattern, "{") || strings.Contains(pattern, "**") {
		return false
	}

	wildcards := 0
	for _, ch := range pattern {
		if ch == '*' || ch == '?' {
			wildcards++
		}
	}
	return wildcards <= maxGlobWildcards
}
