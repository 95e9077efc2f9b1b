// Package dataset contains the use cases that load the record collections.
package dataset

import (
	"fmt"
	"sync"

	domainerror "github.com/fleet-dashboard/backend/internal/domain/error"
	"github.com/fleet-dashboard/backend/internal/domain/entity"
)

// Store holds the current immutable snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot *entity.Dataset
	loadErr  error
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current dataset.
func (s *Store) Snapshot() (*entity.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.snapshot == nil {
		if s.loadErr != nil {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrDatasetNotLoaded, s.loadErr)
		}
		return nil, domainerror.ErrDatasetNotLoaded
	}
	return s.snapshot, nil
}

// LoadError returns the last initialization failure.
func (s *Store) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// Put replaces the snapshot and clears any previous failure.
func (s *Store) Put(data *entity.Dataset) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = data
	s.loadErr = nil
}

// MarkFailed records an initialization failure. An existing snapshot is kept.
func (s *Store) MarkFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}
