package repository

import (
	"sync"

	"naradamuni/internal/models"
)

// ReadingRepository holds the latest device reading.
type ReadingRepository interface {
	Replace(reading models.Reading)
	Snapshot() models.Reading
}

// ReadingStore keeps exactly one Reading behind a single mutex.
// There is no per-device keying: every Replace overwrites the slot.
type ReadingStore struct {
	mu      sync.Mutex
	current models.Reading
}

var _ ReadingRepository = (*ReadingStore)(nil)

// NewReadingStore creates a store holding initial.
func NewReadingStore(initial models.Reading) *ReadingStore {
	return &ReadingStore{current: initial}
}

// Replace swaps the stored reading for a new one in full.
func (s *ReadingStore) Replace(reading models.Reading) {
	s.mu.Lock()
	s.current = reading
	s.mu.Unlock()
}

// Snapshot returns a copy of the stored reading.
func (s *ReadingStore) Snapshot() models.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
