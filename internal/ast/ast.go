// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package ast defines the expression tree types.
package ast

import (
	"strconv"
	"strings"
)

// Node is the interface all tree node variants implement. Nodes are
// immutable once constructed; rewrites build new nodes.
type Node interface {
	// String returns an infix rendering of the subtree.
	String() string
	// Equal reports deep structural equality with another node.
	Equal(Node) bool
}

// Op names a binary arithmetic operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
)

// String returns the operator's source character.
func (op Op) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	}
	return "?"
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

func (n Number) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n Number) Equal(other Node) bool {
	o, ok := other.(Number)
	return ok && o.Value == n.Value
}

// Complex is a complex literal. The current grammar never produces one; the
// variant is reserved for future complex-number support.
type Complex struct {
	Re float64
	Im float64
}

func (c Complex) String() string {
	re := strconv.FormatFloat(c.Re, 'g', -1, 64)
	im := strconv.FormatFloat(c.Im, 'g', -1, 64)
	if c.Im >= 0 {
		return re + "+" + im + "i"
	}
	return re + im + "i"
}

func (c Complex) Equal(other Node) bool {
	o, ok := other.(Complex)
	return ok && o.Re == c.Re && o.Im == c.Im
}

// Variable is a reference to a named value.
type Variable struct {
	Name string
}

func (v Variable) String() string { return v.Name }

func (v Variable) Equal(other Node) bool {
	o, ok := other.(Variable)
	return ok && o.Name == v.Name
}

// Assign binds the value of an expression to a name.
type Assign struct {
	Name  string
	Value Node
}

func (a Assign) String() string {
	return a.Name + " = " + a.Value.String()
}

func (a Assign) Equal(other Node) bool {
	o, ok := other.(Assign)
	return ok && o.Name == a.Name && o.Value.Equal(a.Value)
}

// FuncDef defines a named function with ordered formal parameters.
type FuncDef struct {
	Name   string
	Params []string
	Body   Node
}

func (f FuncDef) String() string {
	return f.Name + "(" + strings.Join(f.Params, ", ") + ") = " + f.Body.String()
}

func (f FuncDef) Equal(other Node) bool {
	o, ok := other.(FuncDef)
	if !ok || o.Name != f.Name || len(o.Params) != len(f.Params) {
		return false
	}
	for i, p := range f.Params {
		if o.Params[i] != p {
			return false
		}
	}
	return o.Body.Equal(f.Body)
}

// Batch is two or more ;-separated expressions in source order. A single
// expression is never wrapped.
type Batch struct {
	Exprs []Node
}

func (b Batch) String() string {
	parts := make([]string, len(b.Exprs))
	for i, e := range b.Exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, "; ")
}

func (b Batch) Equal(other Node) bool {
	o, ok := other.(Batch)
	if !ok || len(o.Exprs) != len(b.Exprs) {
		return false
	}
	for i, e := range b.Exprs {
		if !o.Exprs[i].Equal(e) {
			return false
		}
	}
	return true
}

// Binary applies an arithmetic operator to exactly two operands.
type Binary struct {
	Op    Op
	Left  Node
	Right Node
}

func (b Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op.String() + " " + b.Right.String() + ")"
}

func (b Binary) Equal(other Node) bool {
	o, ok := other.(Binary)
	return ok && o.Op == b.Op && o.Left.Equal(b.Left) && o.Right.Equal(b.Right)
}

// Call invokes a named function with arguments in call-site order.
type Call struct {
	Name string
	Args []Node
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

func (c Call) Equal(other Node) bool {
	o, ok := other.(Call)
	if !ok || o.Name != c.Name || len(o.Args) != len(c.Args) {
		return false
	}
	for i, a := range c.Args {
		if !o.Args[i].Equal(a) {
			return false
		}
	}
	return true
}

// Neg is prefix negation.
type Neg struct {
	Operand Node
}

func (n Neg) String() string { return "-" + n.Operand.String() }

func (n Neg) Equal(other Node) bool {
	o, ok := other.(Neg)
	return ok && o.Operand.Equal(n.Operand)
}
