// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package object implements Object, the tagged union at the heart of the
// interpreter's value model: every runtime value (atoms, pair cells,
// procedures) is one Go struct carrying a Kind discriminant and the union
// of payload fields for that Kind, rather than an interface{}-typed
// union. That keeps
// quote a structural copy and keeps dispatch a switch on Kind instead of a
// type-switch proliferating through the evaluator.
package object

import (
	"context"
)

// Procedure is anything callable: a host-provided Builtin or a user-defined
// Lambda. It's an interface, not a struct embedded in Object, so that
// object has no dependency on the env package that owns captured
// environments, nor on the eval package that knows how to run a Lambda's
// body — accept an interface here, let eval (lambdas) and builtins (host
// functions) each provide their own concrete implementation.
type Procedure interface {
	// Apply invokes the procedure with an already-evaluated operand
	// sequence.
	Apply(ctx context.Context, args []*Object) (*Object, error)
	// Write returns the canonical external representation, always "proc"
	// since procedures carry no printable identity.
	Write() string
}

// Object is a single runtime value. Exactly the fields relevant to Kind
// are meaningful; the rest are zero. Pair children (Car/Cdr) are shared
// pointers: once constructed, an Object is never mutated in place, so
// structural sharing between multiple parents is always safe.
type Object struct {
	Kind Kind

	Bool    bool
	Char    rune
	Num     Int128
	Str     string // payload for String and Symbol
	Keyword Keyword
	Car     *Object
	Cdr     *Object
	Proc    Procedure
}

var (
	nullObj        = &Object{Kind: KindNull}
	unspecifiedObj = &Object{Kind: KindUnspecified}
	trueObj        = &Object{Kind: KindBoolean, Bool: true}
	falseObj       = &Object{Kind: KindBoolean, Bool: false}
)

// Null returns the single shared instance of the empty list ().
func Null() *Object { return nullObj }

// Unspecified returns the single shared instance of the side-effecting-form
// result value.
func Unspecified() *Object { return unspecifiedObj }

// NewBoolean returns the shared Boolean(true) or Boolean(false) instance.
func NewBoolean(b bool) *Object {
	if b {
		return trueObj
	}
	return falseObj
}

// NewChar constructs a Char Object.
func NewChar(c rune) *Object {
	return &Object{Kind: KindChar, Char: c}
}

// NewNumber constructs a Number Object.
func NewNumber(n Int128) *Object {
	return &Object{Kind: KindNumber, Num: n}
}

// NewString constructs a String Object.
func NewString(s string) *Object {
	return &Object{Kind: KindString, Str: s}
}

// NewSymbol constructs a Symbol Object.
func NewSymbol(name string) *Object {
	return &Object{Kind: KindSymbol, Str: name}
}

// NewKeyword constructs a Keyword Object.
func NewKeyword(k Keyword) *Object {
	return &Object{Kind: KindKeyword, Keyword: k}
}

// NewProcedure wraps proc as a Procedure-Kind Object.
func NewProcedure(proc Procedure) *Object {
	return &Object{Kind: KindProcedure, Proc: proc}
}

// Cons constructs a new Pair referencing a and b.
func Cons(a, b *Object) *Object {
	return &Object{Kind: KindPair, Car: a, Cdr: b}
}

// IsTrue reports the truthiness of o: false only for Boolean(false) and
// Null; every other variant is truthy.
func IsTrue(o *Object) bool {
	switch o.Kind {
	case KindBoolean:
		return o.Bool
	case KindNull:
		return false
	default:
		return true
	}
}
