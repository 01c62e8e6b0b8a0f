package calc

import (
	"io"
	"os"

	"nickandperla.net/calc/internal/eval"
	"nickandperla.net/calc/internal/store"
)

// Session keeps one scope alive across Eval calls and optionally records
// each evaluation in a history store. The engine itself is stateless per
// call; the Session is the convenience layer the CLI and REPL sit on.
type Session struct {
	scope        *eval.Scope
	history      store.History
	historyLimit int
}

// NewSession creates a session with the given options.
func NewSession(opts ...Option) *Session {
	s := &Session{
		scope: eval.NewScope(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Eval parses and evaluates input against the session scope, recording
// the result in history when one is configured.
func (s *Session) Eval(input string) (Value, error) {
	node, err := ParseExpression(input)
	if err != nil {
		return Value{}, err
	}
	v, err := EvaluateAST(node, s.scope)
	if err != nil {
		return Value{}, err
	}
	// History is best effort; a failed append never fails the evaluation.
	if s.history != nil {
		_ = s.history.Append(input, v.String())
	}
	return v, nil
}

// EvalReader evaluates the full contents of a reader as one batch.
func (s *Session) EvalReader(r io.Reader) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, err
	}
	return s.Eval(string(data))
}

// EvalFile evaluates a script file.
func (s *Session) EvalFile(path string) (Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return Value{}, err
	}
	defer f.Close()
	return s.EvalReader(f)
}

// Simplify parses input and returns its simplified tree without touching
// the session scope.
func (s *Session) Simplify(input string) (Node, error) {
	node, err := ParseExpression(input)
	if err != nil {
		return nil, err
	}
	return SimplifyAST(node), nil
}

// Scope returns the session's scope.
func (s *Session) Scope() *Scope {
	return s.scope
}

// History returns up to limit recorded entries, oldest first. When limit
// is zero the session's configured limit applies.
func (s *Session) History(limit int) ([]Entry, error) {
	if s.history == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = s.historyLimit
	}
	return s.history.Recent(limit)
}

// ClearHistory removes all recorded entries.
func (s *Session) ClearHistory() error {
	if s.history == nil {
		return nil
	}
	return s.history.Clear()
}

// Close releases resources.
func (s *Session) Close() error {
	if s.history != nil {
		return s.history.Close()
	}
	return nil
}
