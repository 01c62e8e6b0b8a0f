// Package simplify rewrites expression trees: identity elimination and
// constant folding. The transform is pure and idempotent; it never fails
// on a well-formed tree.
package simplify

import (
	"math"

	"nickandperla.net/calc/internal/ast"
)

// Simplify returns a simplified tree. Children are simplified first, then
// the parent rule is applied. Unchanged subtrees may be shared with the
// input; the input itself is never mutated.
//
// Binding forms (Assign, FuncDef), calls, and batches only recurse into
// their sub-nodes; nothing folds across those boundaries.
func Simplify(node ast.Node) ast.Node {
	switch n := node.(type) {
	case ast.Neg:
		return simplifyNeg(n)

	case ast.Binary:
		return simplifyBinary(n)

	case ast.Call:
		args := make([]ast.Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = Simplify(a)
		}
		return ast.Call{Name: n.Name, Args: args}

	case ast.Assign:
		return ast.Assign{Name: n.Name, Value: Simplify(n.Value)}

	case ast.FuncDef:
		return ast.FuncDef{Name: n.Name, Params: n.Params, Body: Simplify(n.Body)}

	case ast.Batch:
		exprs := make([]ast.Node, len(n.Exprs))
		for i, e := range n.Exprs {
			exprs[i] = Simplify(e)
		}
		return ast.Batch{Exprs: exprs}

	default:
		// Number, Complex, Variable are already minimal.
		return node
	}
}

// simplifyNeg folds a literal operand and cancels double negation.
func simplifyNeg(n ast.Neg) ast.Node {
	operand := Simplify(n.Operand)
	if num, ok := operand.(ast.Number); ok {
		return ast.Number{Value: -num.Value}
	}
	if inner, ok := operand.(ast.Neg); ok {
		return inner.Operand
	}
	return ast.Neg{Operand: operand}
}

func simplifyBinary(n ast.Binary) ast.Node {
	left := Simplify(n.Left)
	right := Simplify(n.Right)

	// Both literal: fold. Division by a zero literal folds to ±Inf or
	// NaN per IEEE-754; that is a value, not an error.
	if l, ok := left.(ast.Number); ok {
		if r, ok := right.(ast.Number); ok {
			return ast.Number{Value: applyOp(n.Op, l.Value, r.Value)}
		}
	}

	switch n.Op {
	case ast.Add:
		if isZero(left) {
			return right
		}
		if isZero(right) {
			return left
		}
	case ast.Sub:
		if isZero(right) {
			return left
		}
	case ast.Mul:
		if isZero(left) || isZero(right) {
			return ast.Number{Value: 0}
		}
		if isOne(left) {
			return right
		}
		if isOne(right) {
			return left
		}
	case ast.Div:
		if isOne(right) {
			return left
		}
		if isZero(left) {
			if r, ok := right.(ast.Number); ok && r.Value != 0 {
				return ast.Number{Value: 0}
			}
		}
	case ast.Pow:
		if isZero(right) {
			return ast.Number{Value: 1}
		}
		if isOne(right) {
			return left
		}
		if isOne(left) {
			return ast.Number{Value: 1}
		}
	}

	return ast.Binary{Op: n.Op, Left: left, Right: right}
}

func isZero(n ast.Node) bool {
	num, ok := n.(ast.Number)
	return ok && num.Value == 0
}

func isOne(n ast.Node) bool {
	num, ok := n.(ast.Number)
	return ok && num.Value == 1
}

// applyOp mirrors the evaluator's IEEE-754 arithmetic for literal folds.
func applyOp(op ast.Op, a, b float64) float64 {
	switch op {
	case ast.Add:
		return a + b
	case ast.Sub:
		return a - b
	case ast.Mul:
		return a * b
	case ast.Div:
		return a / b
	case ast.Pow:
		return math.Pow(a, b)
	}
	return math.NaN()
}
