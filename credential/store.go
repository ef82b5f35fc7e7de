// Package credential owns user records keyed by email. The store holds hashes,
// never plaintext, and treats the role as an opaque string: role semantics live
// in the engine.
package credential

import (
	"errors"
	"sort"
	"sync"
)

// ErrDuplicateEmail is returned by Create when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// ErrNotFound is returned when no record exists for the given email.
var ErrNotFound = errors.New("credential record not found")

// User is one credential record. Email is the immutable key; Name and
// PasswordHash are mutable through [Store.Update].
type User struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

// Store defines a public type used by goTravel APIs.
//
// All compound operations run under a single mutex, so a check-then-insert at
// registration or a verify-then-mutate at profile update cannot interleave with
// another caller touching the same record.
type Store struct {
	mu    sync.Mutex
	users map[string]*User
}

// NewStore describes the newstore operation and its observable behavior.
//
// NewStore may return an error when input validation, dependency calls, or security checks fail.
// NewStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewStore() *Store {
	return &Store{
		users: make(map[string]*User),
	}
}

// Create inserts a new record. Fails with [ErrDuplicateEmail] when the email is
// taken; the existing record is never replaced.
func (s *Store) Create(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[u.Email]; exists {
		return ErrDuplicateEmail
	}

	record := u
	s.users[u.Email] = &record

	return nil
}

// Lookup returns a copy of the record for email, if present.
func (s *Store) Lookup(email string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return User{}, false
	}
	return *record, true
}

// Update applies fn to the record for email while the store lock is held.
// If fn returns an error the record is left as fn left it, so fn must mutate
// only after all its checks pass. Fails with [ErrNotFound] when no record exists.
func (s *Store) Update(email string, fn func(*User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return ErrNotFound
	}

	return fn(record)
}

// Delete removes the record for email. Fails with [ErrNotFound].
func (s *Store) Delete(email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; !ok {
		return ErrNotFound
	}

	delete(s.users, email)
	return nil
}

// DeleteIf removes the record for email only when guard accepts the current
// record. Guard and removal run under one lock acquisition, so the record
// cannot change between the check and the delete.
func (s *Store) DeleteIf(email string, guard func(User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[email]
	if !ok {
		return ErrNotFound
	}
	if err := guard(*record); err != nil {
		return err
	}

	delete(s.users, email)
	return nil
}

// All returns copies of every record, ordered by email for deterministic output.
func (s *Store) All() []User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]User, 0, len(s.users))
	for _, record := range s.users {
		out = append(out, *record)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })

	return out
}
