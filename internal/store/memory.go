package store

import (
	"sync"
	"time"
)

// Memory is an in-memory history for testing and the -no-history mode.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
	nextID  int64
}

// NewMemory creates a new in-memory history.
func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

// Append records one evaluation.
func (m *Memory) Append(input, result string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, Entry{
		ID:     m.nextID,
		Input:  input,
		Result: result,
		At:     time.Now().UTC().Format(time.RFC3339),
	})
	m.nextID++
	return nil
}

// Recent returns up to limit entries, oldest first.
func (m *Memory) Recent(limit int) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	start := 0
	if limit > 0 && len(m.entries) > limit {
		start = len(m.entries) - limit
	}
	out := make([]Entry, len(m.entries)-start)
	copy(out, m.entries[start:])
	return out, nil
}

// Clear removes all entries.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

// Close is a no-op for the memory history.
func (m *Memory) Close() error {
	return nil
}
