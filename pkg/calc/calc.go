// Package calc provides the public API for the expression engine: a
// lexer/parser front end, an evaluator over a mutable scope, and a
// structural simplifier.
package calc

import (
	"nickandperla.net/calc/internal/ast"
	"nickandperla.net/calc/internal/eval"
	"nickandperla.net/calc/internal/parser"
	"nickandperla.net/calc/internal/simplify"
	"nickandperla.net/calc/internal/store"
)

// Node is an expression tree node.
type Node = ast.Node

// Tree node variants, for callers that inspect structure.
type (
	Number   = ast.Number
	Complex  = ast.Complex
	Variable = ast.Variable
	Assign   = ast.Assign
	FuncDef  = ast.FuncDef
	Batch    = ast.Batch
	Binary   = ast.Binary
	Call     = ast.Call
	Neg      = ast.Neg
)

// Op names a binary operator.
type Op = ast.Op

// Binary operators.
const (
	Add = ast.Add
	Sub = ast.Sub
	Mul = ast.Mul
	Div = ast.Div
	Pow = ast.Pow
)

// Scope is the mutable variable environment threaded through evaluation.
type Scope = eval.Scope

// Value is an evaluation result: a number or a symbolic fallback string.
type Value = eval.Value

// Entry is one recorded history entry.
type Entry = store.Entry

// History is the interface for evaluation-history persistence.
type History = store.History

// NewScope creates an empty scope.
func NewScope() *Scope { return eval.NewScope() }

// ParseExpression parses input into a tree. It returns a lex or parse
// error carrying the failing position; partial trees are never returned.
func ParseExpression(input string) (Node, error) {
	return parser.Parse(input)
}

// EvaluateAST resolves node against scope. Assignments and function
// definitions mutate scope in place; that is how a ;-batch makes earlier
// bindings visible to later expressions.
func EvaluateAST(node Node, scope *Scope) (Value, error) {
	return eval.Evaluate(node, scope)
}

// SimplifyAST returns a structurally simplified tree: identity
// elimination plus constant folding. It is pure and never fails on a
// well-formed tree.
func SimplifyAST(node Node) Node {
	return simplify.Simplify(node)
}

// BuiltinNames returns the registered function and constant names.
func BuiltinNames() []string {
	return eval.BuiltinNames()
}
