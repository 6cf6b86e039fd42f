// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dial Contributors

// Package env implements Environment, the chain of symbol-to-value
// bindings with a parent link that gives the interpreter lexical scope.
package env

import "github.com/holomush/dial/internal/object"

// Environment is an ordered pair of an optional parent and a mapping from
// symbol name to value. The root (global) environment has a nil parent.
type Environment struct {
	parent   *Environment
	bindings map[string]*object.Object
}

// New creates an environment, optionally chained to parent. Pass nil for
// the root environment.
func New(parent *Environment) *Environment {
	return &Environment{
		parent:   parent,
		bindings: make(map[string]*object.Object),
	}
}

// Define unconditionally sets the binding for name in this frame only,
// shadowing any parent binding. It never mutates a parent frame.
func (e *Environment) Define(name string, value *object.Object) {
	e.bindings[name] = value
}

// Lookup returns the value bound to name in this frame if present,
// otherwise recurses into the parent chain. It never falls through to a
// sibling activation frame. ok is false if name is unbound anywhere on the
// chain.
func (e *Environment) Lookup(name string) (value *object.Object, ok bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if v, found := cur.bindings[name]; found {
			return v, true
		}
	}
	return nil, false
}

// Depth returns how many frames separate e from the root environment (0
// for the root itself), surfaced for the dial_env_depth metric.
func (e *Environment) Depth() int {
	depth := 0
	for cur := e.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}
