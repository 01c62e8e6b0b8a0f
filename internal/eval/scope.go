// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval resolves expression trees against a variable scope.
package eval

import (
	"sort"

	"nickandperla.net/calc/internal/ast"
)

// Closure is a user-defined function: formal parameter names and the body
// tree captured at definition time.
type Closure struct {
	Params []string
	Body   ast.Node
}

// Scope is a mutable name-to-value environment. Assignment and function
// definition write into it; a Batch threads one Scope through all of its
// expressions so earlier bindings are visible to later ones. Calls into a
// user-defined function evaluate against a child overlay that falls back
// to the outer scope for free variables.
//
// A Scope lives for exactly one evaluation call unless the caller chooses
// to reuse it (the REPL does).
type Scope struct {
	vars   map[string]float64
	funcs  map[string]Closure
	parent *Scope
}

// NewScope creates an empty root scope.
func NewScope() *Scope {
	return &Scope{
		vars:  make(map[string]float64),
		funcs: make(map[string]Closure),
	}
}

// Child creates an overlay scope. Lookups fall back to the parent; writes
// stay in the child.
func (s *Scope) Child() *Scope {
	c := NewScope()
	c.parent = s
	return c
}

// Lookup resolves a variable, walking the overlay chain outward.
func (s *Scope) Lookup(name string) (float64, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if v, ok := sc.vars[name]; ok {
			return v, true
		}
	}
	return 0, false
}

// Set binds a variable in this scope, overwriting any prior binding here.
func (s *Scope) Set(name string, v float64) {
	s.vars[name] = v
}

// LookupFunc resolves a user-defined function, walking the overlay chain.
func (s *Scope) LookupFunc(name string) (Closure, bool) {
	for sc := s; sc != nil; sc = sc.parent {
		if c, ok := sc.funcs[name]; ok {
			return c, true
		}
	}
	return Closure{}, false
}

// SetFunc binds a user-defined function in this scope.
func (s *Scope) SetFunc(name string, c Closure) {
	s.funcs[name] = c
}

// Names returns the variable names bound in this scope (not parents),
// sorted for stable display.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
