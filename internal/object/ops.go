// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

package object

import "github.com/holomush/dial/internal/errs"

// Car returns the first field of a Pair, failing NotAPair for any other
// Kind.
func Car(o *Object) (*Object, error) {
	if o.Kind != KindPair {
		return nil, errs.NotAPair(o.Kind.String())
	}
	return o.Car, nil
}

// Cdr returns the second field of a Pair, failing NotAPair for any other
// Kind.
func Cdr(o *Object) (*Object, error) {
	if o.Kind != KindPair {
		return nil, errs.NotAPair(o.Kind.String())
	}
	return o.Cdr, nil
}

// ToSequence walks a proper list, returning an ordered slice of its
// element references. It fails MalformedList if the terminating cdr isn't
// Null.
func ToSequence(o *Object) ([]*Object, error) {
	var out []*Object
	cur := o
	for cur.Kind == KindPair {
		out = append(out, cur.Car)
		cur = cur.Cdr
	}
	if cur.Kind != KindNull {
		return nil, errs.MalformedList()
	}
	return out, nil
}

// FromSequence builds a right-leaning chain of Pairs terminated by Null
// from elems, the inverse of ToSequence.
func FromSequence(elems []*Object) *Object {
	result := Null()
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}

// IsProperList reports whether o is Null or a Pair chain terminated by
// Null.
func IsProperList(o *Object) bool {
	cur := o
	for cur.Kind == KindPair {
		cur = cur.Cdr
	}
	return cur.Kind == KindNull
}
