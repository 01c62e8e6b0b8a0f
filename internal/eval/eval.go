package eval

import (
	"math"
	"strconv"

	"nickandperla.net/calc/internal/ast"
)

// Evaluation failure reasons.
const (
	UndefinedVariable = "undefined variable"
	UnknownFunction   = "unknown function"
	InvalidArity      = "invalid arity"
	InvalidAssignment = "invalid assignment value"
	NonNumericOperand = "non-numeric operand"
)

// Error is an evaluation failure naming the offending identifier.
type Error struct {
	Reason string
	Name   string
}

func (e *Error) Error() string {
	return e.Reason + ": " + e.Name
}

// Value is an evaluation result: a number, or a symbolic rendering for
// forms that have no numeric value (function definitions, complex
// literals).
type Value struct {
	Num float64
	Sym string
}

// Symbolic reports whether the result is a symbolic fallback rather than
// a number.
func (v Value) Symbolic() bool { return v.Sym != "" }

// String renders the result for display.
func (v Value) String() string {
	if v.Symbolic() {
		return v.Sym
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

func number(f float64) Value  { return Value{Num: f} }
func symbolic(s string) Value { return Value{Sym: s} }

// Evaluate resolves node against scope. Assignment and function
// definition mutate scope; everything else only reads it. Division by
// zero follows IEEE-754 (±Inf or NaN) and is not an error.
func Evaluate(node ast.Node, scope *Scope) (Value, error) {
	switch n := node.(type) {
	case ast.Number:
		return number(n.Value), nil

	case ast.Complex:
		// Reserved variant; the grammar never produces it. Fall back to
		// the symbolic rendering.
		return symbolic(n.String()), nil

	case ast.Variable:
		if v, ok := scope.Lookup(n.Name); ok {
			return number(v), nil
		}
		if v, ok := Constant(n.Name); ok {
			return number(v), nil
		}
		return Value{}, &Error{Reason: UndefinedVariable, Name: n.Name}

	case ast.Binary:
		left, err := evalOperand(n.Left, scope)
		if err != nil {
			return Value{}, err
		}
		right, err := evalOperand(n.Right, scope)
		if err != nil {
			return Value{}, err
		}
		return number(applyOp(n.Op, left, right)), nil

	case ast.Neg:
		v, err := evalOperand(n.Operand, scope)
		if err != nil {
			return Value{}, err
		}
		return number(-v), nil

	case ast.Call:
		return evalCall(n, scope)

	case ast.Assign:
		v, err := Evaluate(n.Value, scope)
		if err != nil {
			return Value{}, err
		}
		if v.Symbolic() {
			return Value{}, &Error{Reason: InvalidAssignment, Name: n.Name}
		}
		scope.Set(n.Name, v.Num)
		return v, nil

	case ast.FuncDef:
		scope.SetFunc(n.Name, Closure{Params: n.Params, Body: n.Body})
		return symbolic(n.String()), nil

	case ast.Batch:
		var last Value
		for _, e := range n.Exprs {
			v, err := Evaluate(e, scope)
			if err != nil {
				return Value{}, err
			}
			last = v
		}
		return last, nil
	}

	// Unreachable for trees produced by the parser.
	return Value{}, &Error{Reason: "unsupported node", Name: node.String()}
}

// evalOperand evaluates a node in a position that requires a number.
// A symbolic result (a function definition smuggled in through parens)
// fails loudly; it never coerces to a number.
func evalOperand(node ast.Node, scope *Scope) (float64, error) {
	v, err := Evaluate(node, scope)
	if err != nil {
		return 0, err
	}
	if v.Symbolic() {
		return 0, &Error{Reason: NonNumericOperand, Name: v.Sym}
	}
	return v.Num, nil
}

// applyOp applies a binary operator with IEEE-754 double semantics.
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

// evalCall resolves a function call. User definitions in scope shadow the
// builtin registry. Arguments are evaluated left to right before the
// function is applied.
func evalCall(call ast.Call, scope *Scope) (Value, error) {
	if closure, ok := scope.LookupFunc(call.Name); ok {
		if len(call.Args) != len(closure.Params) {
			return Value{}, &Error{Reason: InvalidArity, Name: call.Name}
		}
		overlay := scope.Child()
		for i, param := range closure.Params {
			arg, err := evalOperand(call.Args[i], scope)
			if err != nil {
				return Value{}, err
			}
			overlay.Set(param, arg)
		}
		return Evaluate(closure.Body, overlay)
	}

	fn, ok := builtins[call.Name]
	if !ok {
		return Value{}, &Error{Reason: UnknownFunction, Name: call.Name}
	}
	if len(call.Args) != fn.arity {
		return Value{}, &Error{Reason: InvalidArity, Name: call.Name}
	}
	args := make([]float64, len(call.Args))
	for i, a := range call.Args {
		v, err := evalOperand(a, scope)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}
	return number(fn.fn(args)), nil
}
