package simplify

import (
	"math"
	"testing"

	"nickandperla.net/calc/internal/ast"
	"nickandperla.net/calc/internal/parser"
)

func simplifyString(t *testing.T, input string) ast.Node {
	t.Helper()
	node, err := parser.Parse(input)
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return Simplify(node)
}

func TestIdentityRules(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Node
	}{
		{"x+0", ast.Variable{Name: "x"}},
		{"0+x", ast.Variable{Name: "x"}},
		{"x-0", ast.Variable{Name: "x"}},
		{"x*1", ast.Variable{Name: "x"}},
		{"1*x", ast.Variable{Name: "x"}},
		{"x*0", ast.Number{Value: 0}},
		{"0*x", ast.Number{Value: 0}},
		{"x/1", ast.Variable{Name: "x"}},
		{"x^1", ast.Variable{Name: "x"}},
		{"x^0", ast.Number{Value: 1}},
		{"1^x", ast.Number{Value: 1}},
	}

	for _, tt := range tests {
		got := simplifyString(t, tt.input)
		if !got.Equal(tt.want) {
			t.Errorf("%s: expected %s, got %s", tt.input, tt.want, got)
		}
	}
}

func TestConstantFolding(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"2*3+4", 10},
		{"2^3^2", 512},
		{"(1+2)*(3+4)", 21},
		{"-(2+3)", -5},
		{"10/4", 2.5},
	}

	for _, tt := range tests {
		got := simplifyString(t, tt.input)
		num, ok := got.(ast.Number)
		if !ok || num.Value != tt.want {
			t.Errorf("%s: expected %g, got %s", tt.input, tt.want, got)
		}
	}
}

func TestFoldingFollowsIEEE(t *testing.T) {
	got := simplifyString(t, "1/0")
	num, ok := got.(ast.Number)
	if !ok || !math.IsInf(num.Value, 1) {
		t.Errorf("expected +Inf literal, got %s", got)
	}
}

func TestDoubleNegation(t *testing.T) {
	got := simplifyString(t, "--x")
	if !got.Equal(ast.Variable{Name: "x"}) {
		t.Errorf("expected x, got %s", got)
	}

	got = simplifyString(t, "-x")
	if !got.Equal(ast.Neg{Operand: ast.Variable{Name: "x"}}) {
		t.Errorf("expected -x, got %s", got)
	}
}

func TestNegatedLiteralFolds(t *testing.T) {
	got := simplifyString(t, "-5")
	if !got.Equal(ast.Number{Value: -5}) {
		t.Errorf("expected -5, got %s", got)
	}
}

func TestNestedIdentities(t *testing.T) {
	// (x+0)*1 collapses all the way to x.
	got := simplifyString(t, "(x+0)*1")
	if !got.Equal(ast.Variable{Name: "x"}) {
		t.Errorf("expected x, got %s", got)
	}
}

func TestNoFoldingThroughCalls(t *testing.T) {
	// Arguments simplify, but the call itself never folds.
	got := simplifyString(t, "sin(2+3)")
	want := ast.Call{Name: "sin", Args: []ast.Node{ast.Number{Value: 5}}}
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBindingFormsRecurseOnly(t *testing.T) {
	got := simplifyString(t, "x = 2*3+4")
	want := ast.Assign{Name: "x", Value: ast.Number{Value: 10}}
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}

	got = simplifyString(t, "f(x) = x*1")
	wantDef := ast.FuncDef{Name: "f", Params: []string{"x"}, Body: ast.Variable{Name: "x"}}
	if !got.Equal(wantDef) {
		t.Errorf("expected %s, got %s", wantDef, got)
	}

	got = simplifyString(t, "x+0; 1*2")
	wantBatch := ast.Batch{Exprs: []ast.Node{ast.Variable{Name: "x"}, ast.Number{Value: 2}}}
	if !got.Equal(wantBatch) {
		t.Errorf("expected %s, got %s", wantBatch, got)
	}
}

func TestDivideZeroNumerator(t *testing.T) {
	// 0/x stays put: the divisor's value is unknown.
	got := simplifyString(t, "0/x")
	want := ast.Binary{Op: ast.Div, Left: ast.Number{Value: 0}, Right: ast.Variable{Name: "x"}}
	if !got.Equal(want) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestInputTreeIsNotMutated(t *testing.T) {
	node, err := parser.Parse("x+0")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	before := node.String()
	Simplify(node)
	if node.String() != before {
		t.Errorf("input tree changed: %s -> %s", before, node.String())
	}
}

func TestIdempotence(t *testing.T) {
	corpus := []string{
		"x+0",
		"0+x*1",
		"2*3+4",
		"-2^2",
		"--x",
		"-(x+0)",
		"sin(2+3)*cos(x*1)",
		"f(x, y) = x*1 + y^1",
		"a = 1*b; b = a+0",
		"x^0 + y^1 + 1^z",
		"0/x + x/1",
		"pow(x*0, y+0)",
		"1/0",
		"x*(y+0)*(z^1)",
	}

	for _, input := range corpus {
		node, err := parser.Parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		once := Simplify(node)
		twice := Simplify(once)
		if !twice.Equal(once) {
			t.Errorf("%s: not idempotent: %s vs %s", input, once, twice)
		}
	}
}
