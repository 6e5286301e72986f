package repository

import "sync"

// HistoryRepository is an append-only, ordered, in-memory list of generated
// passwords. Duplicates are kept and nothing is evicted until Clear.
type HistoryRepository struct {
	mu      sync.RWMutex
	entries []string
}

// NewHistoryRepository creates an empty HistoryRepository.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Append adds passwords to the end, preserving their order.
func (r *HistoryRepository) Append(passwords ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, passwords...)
}

// Clear removes every entry.
func (r *HistoryRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
}

// All returns a copy of the entries in insertion order.
func (r *HistoryRepository) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of entries.
func (r *HistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}
