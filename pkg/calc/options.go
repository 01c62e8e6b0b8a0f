package calc

import (
	"nickandperla.net/calc/internal/eval"
	"nickandperla.net/calc/internal/store"
)

// Option configures a Session.
type Option func(*Session)

// WithSQLiteHistory configures SQLite-backed history at the given path.
func WithSQLiteHistory(path string) Option {
	return func(s *Session) {
		h, err := store.NewSQLite(path)
		if err == nil {
			s.history = h
		}
	}
}

// WithMemoryHistory configures an in-memory history (for testing).
func WithMemoryHistory() Option {
	return func(s *Session) {
		s.history = store.NewMemory()
	}
}

// WithHistory configures a custom history implementation.
func WithHistory(h History) Option {
	return func(s *Session) {
		s.history = h
	}
}

// WithHistoryLimit sets the default number of entries History returns.
func WithHistoryLimit(n int) Option {
	return func(s *Session) {
		s.historyLimit = n
	}
}

// WithScope seeds the session with an existing scope instead of an empty
// one.
func WithScope(scope *eval.Scope) Option {
	return func(s *Session) {
		s.scope = scope
	}
}
