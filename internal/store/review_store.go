// Package store holds the in-memory review collection shared by all requests.
package store

import (
	"sync"

	"github.com/review-analyzer-api/internal/models"
)

// ReviewStore is an append-only, insertion-ordered review collection.
// Appends are exclusive; snapshots may run concurrently with each other.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews []models.Review
}

// New creates an empty store
func New() *ReviewStore {
	return &ReviewStore{}
}

// LoadInitial replaces the contents with records. Call once before serving.
func (s *ReviewStore) LoadInitial(records []models.Review) {
	loaded := make([]models.Review, len(records))
	copy(loaded, records)

	s.mu.Lock()
	s.reviews = loaded
	s.mu.Unlock()
}

// Append adds a record at the end
func (s *ReviewStore) Append(review models.Review) {
	s.mu.Lock()
	s.reviews = append(s.reviews, review)
	s.mu.Unlock()
}

// Snapshot returns a copy of the current records in insertion order
func (s *ReviewStore) Snapshot() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]models.Review, len(s.reviews))
	copy(snapshot, s.reviews)
	return snapshot
}

// Len returns the number of stored records
func (s *ReviewStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reviews)
}
