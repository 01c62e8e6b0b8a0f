package ast

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		node Node
		want string
	}{
		{Number{Value: 42}, "42"},
		{Number{Value: 2.5}, "2.5"},
		{Variable{Name: "x"}, "x"},
		{Neg{Operand: Variable{Name: "x"}}, "-x"},
		{Binary{Op: Add, Left: Number{Value: 1}, Right: Variable{Name: "x"}}, "(1 + x)"},
		{Assign{Name: "x", Value: Number{Value: 5}}, "x = 5"},
		{
			FuncDef{Name: "f", Params: []string{"x", "y"}, Body: Binary{Op: Mul, Left: Variable{Name: "x"}, Right: Variable{Name: "y"}}},
			"f(x, y) = (x * y)",
		},
		{Call{Name: "sin", Args: []Node{Variable{Name: "x"}}}, "sin(x)"},
		{Batch{Exprs: []Node{Number{Value: 1}, Number{Value: 2}}}, "1; 2"},
		{Complex{Re: 1, Im: 2}, "1+2i"},
		{Complex{Re: 1, Im: -2}, "1-2i"},
	}

	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestEqual(t *testing.T) {
	a := Binary{Op: Add, Left: Number{Value: 1}, Right: Variable{Name: "x"}}
	b := Binary{Op: Add, Left: Number{Value: 1}, Right: Variable{Name: "x"}}
	c := Binary{Op: Sub, Left: Number{Value: 1}, Right: Variable{Name: "x"}}

	if !a.Equal(b) {
		t.Error("structurally identical trees compare unequal")
	}
	if a.Equal(c) {
		t.Error("trees with different operators compare equal")
	}
	if a.Equal(Number{Value: 1}) {
		t.Error("trees of different kinds compare equal")
	}
}
