// Package store persists evaluation history for the CLI layer. The
// engine core never touches it.
package store

// Entry is one recorded evaluation: the source text, the rendered result,
// and when it ran.
type Entry struct {
	ID     int64
	Input  string
	Result string
	At     string // RFC 3339
}

// History is the interface for evaluation-history persistence.
type History interface {
	// Append records one evaluation.
	Append(input, result string) error
	// Recent returns up to limit entries, oldest first. limit <= 0 means
	// all entries.
	Recent(limit int) ([]Entry, error)
	// Clear removes all entries.
	Clear() error
	// Close releases resources.
	Close() error
}
