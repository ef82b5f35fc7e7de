// Package destination owns the keyed collection of travel destination records.
// Authorization is not this package's concern: the engine gates every mutation
// before it reaches the store.
package destination

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no destination exists for the given ID.
var ErrNotFound = errors.New("destination not found")

// Destination is one resource record. ID is generated at creation and immutable.
type Destination struct {
	ID          string
	Name        string
	Description string
	Location    string
	CreatedBy   string
}

// Patch is the partial-update input: nil fields retain their prior values.
type Patch struct {
	Name        *string
	Description *string
	Location    *string
}

// Store defines a public type used by goTravel APIs.
//
// Insertion order is tracked separately from the ID index so listings remain
// stable regardless of ID ordering.
type Store struct {
	mu    sync.Mutex
	byID  map[string]*Destination
	order []string
}

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore may return an error when input validation, dependency calls, or security checks fail.
// NewStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewStore() *Store {
	return &Store{
		byID: make(map[string]*Destination),
	}
}

// Create inserts a new record with a fresh unique ID and returns a copy of it.
func (s *Store) Create(name, description, location, createdBy string) Destination {
	record := Destination{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Location:    location,
		CreatedBy:   createdBy,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[record.ID] = &record
	s.order = append(s.order, record.ID)

	return record
}

// All returns copies of every record in insertion order.
func (s *Store) All() []Destination {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Destination, 0, len(s.order))
	for _, id := range s.order {
		if record, ok := s.byID[id]; ok {
			out = append(out, *record)
		}
	}

	return out
}

// Get returns a copy of the record for id. Fails with [ErrNotFound].
func (s *Store) Get(id string) (Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return Destination{}, ErrNotFound
	}
	return *record, nil
}

// Update applies the non-nil fields of patch to the record for id and returns a
// copy of the result. The read-modify-write runs under one lock acquisition.
// Fails with [ErrNotFound].
func (s *Store) Update(id string, patch Patch) (Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.byID[id]
	if !ok {
		return Destination{}, ErrNotFound
	}

	if patch.Name != nil {
		record.Name = *patch.Name
	}
	if patch.Description != nil {
		record.Description = *patch.Description
	}
	if patch.Location != nil {
		record.Location = *patch.Location
	}

	return *record, nil
}

// Delete removes the record for id. Fails with [ErrNotFound].
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrNotFound
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}
