package repository

import (
	"sync"

	"quantor/domain"
)

// BehaviorLogMemory is an in-memory implementation of BehaviorLogRepository.
// It grows without bound until Clear is called.
type BehaviorLogMemory struct {
	mu   sync.RWMutex
	data []domain.BehaviorLogEntry
}

// NewBehaviorLogMemory creates an empty in-memory session log.
func NewBehaviorLogMemory() *BehaviorLogMemory {
	return &BehaviorLogMemory{
		data: []domain.BehaviorLogEntry{},
	}
}

// Append stores the entry after every previous one.
func (r *BehaviorLogMemory) Append(entry domain.BehaviorLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append(r.data, entry)
	return nil
}

func (r *BehaviorLogMemory) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = r.data[:0]
	return nil
}

// Snapshot returns a copy of the entries in insertion order.
func (r *BehaviorLogMemory) Snapshot() []domain.BehaviorLogEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.BehaviorLogEntry, len(r.data))
	copy(out, r.data)
	return out
}
