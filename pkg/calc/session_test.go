package calc

import (
	"errors"
	"strings"
	"testing"
)

// brokenHistory fails every append, like a history database on a full or
// read-only disk.
type brokenHistory struct{}

func (brokenHistory) Append(input, result string) error { return errors.New("disk full") }
func (brokenHistory) Recent(limit int) ([]Entry, error) { return nil, nil }
func (brokenHistory) Clear() error                      { return nil }
func (brokenHistory) Close() error                      { return nil }

func TestSessionScopePersists(t *testing.T) {
	s := NewSession()
	defer s.Close()

	if _, err := s.Eval("x = 2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, err := s.Eval("x * 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 6 {
		t.Errorf("expected 6, got %s", v)
	}
}

func TestSessionRecordsHistory(t *testing.T) {
	s := NewSession(WithMemoryHistory())
	defer s.Close()

	s.Eval("1+1")
	s.Eval("2*3")

	entries, err := s.History(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Input != "1+1" || entries[0].Result != "2" {
		t.Errorf("unexpected first entry: %v", entries[0])
	}

	if err := s.ClearHistory(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries, _ = s.History(0)
	if len(entries) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(entries))
	}
}

func TestSessionFailedEvalIsNotRecorded(t *testing.T) {
	s := NewSession(WithMemoryHistory())
	defer s.Close()

	if _, err := s.Eval("nope"); err == nil {
		t.Fatal("expected error, got none")
	}
	entries, _ := s.History(0)
	if len(entries) != 0 {
		t.Errorf("expected no history for failed eval, got %d entries", len(entries))
	}
}

func TestSessionEvalSurvivesHistoryFailure(t *testing.T) {
	s := NewSession(WithHistory(brokenHistory{}))
	defer s.Close()

	v, err := s.Eval("2+3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 5 {
		t.Errorf("expected 5, got %s", v)
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := NewSession(WithMemoryHistory(), WithHistoryLimit(2))
	defer s.Close()

	s.Eval("1")
	s.Eval("2")
	s.Eval("3")

	entries, err := s.History(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(entries))
	}
	if entries[0].Input != "2" || entries[1].Input != "3" {
		t.Errorf("expected newest two entries oldest first, got %v", entries)
	}
}

func TestSessionEvalReader(t *testing.T) {
	s := NewSession()
	defer s.Close()

	v, err := s.EvalReader(strings.NewReader("x=5;x+1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 6 {
		t.Errorf("expected 6, got %s", v)
	}
}

func TestSessionSimplify(t *testing.T) {
	s := NewSession()
	defer s.Close()

	node, err := s.Simplify("x+0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !node.Equal(Variable{Name: "x"}) {
		t.Errorf("expected x, got %s", node)
	}

	// Simplify never touches the session scope.
	if _, ok := s.Scope().Lookup("x"); ok {
		t.Error("simplify bound a variable")
	}
}

func TestPublicEntryPoints(t *testing.T) {
	node, err := ParseExpression("2+3*4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, err := EvaluateAST(node, NewScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Num != 14 {
		t.Errorf("expected 14, got %s", v)
	}

	simplified := SimplifyAST(node)
	if !simplified.Equal(Number{Value: 14}) {
		t.Errorf("expected folded 14, got %s", simplified)
	}
}

func TestBuiltinNamesForCompletion(t *testing.T) {
	names := BuiltinNames()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"sin", "sqrt", "pi", "atan2"} {
		if !found[want] {
			t.Errorf("expected %s in builtin names", want)
		}
	}
}
