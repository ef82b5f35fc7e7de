package session

import (
	"context"
	"sync"
)

// MemoryStore is the default in-process [Store]. The token index and the email
// index live under a single mutex, so every compound operation (check-then-insert
// at issue, lookup-then-delete at revoke) is atomic with respect to other callers.
//
// MemoryStore instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MemoryStore struct {
	mu      sync.Mutex
	byToken map[string]Identity
	byEmail map[string]string
}

// NewMemoryStore describes the newmemorystore operation and its observable behavior.
//
// NewMemoryStore may return an error when input validation, dependency calls, or security checks fail.
// NewMemoryStore does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byToken: make(map[string]Identity),
		byEmail: make(map[string]string),
	}
}

// Issue describes the issue operation and its observable behavior.
//
// Issue may return an error when input validation, dependency calls, or security checks fail.
// Issue does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Issue(_ context.Context, ident Identity) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[ident.Email]; exists {
		return "", ErrActiveSession
	}

	s.byToken[token] = ident
	s.byEmail[ident.Email] = token

	return token, nil
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Validate(_ context.Context, token string) (Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byToken[token]
	if !ok {
		return Identity{}, ErrTokenNotFound
	}
	return ident, nil
}

// Revoke describes the revoke operation and its observable behavior.
//
// Revoke may return an error when input validation, dependency calls, or security checks fail.
// Revoke does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ident, ok := s.byToken[token]
	if !ok {
		return ErrTokenNotFound
	}

	delete(s.byToken, token)
	if s.byEmail[ident.Email] == token {
		delete(s.byEmail, ident.Email)
	}

	return nil
}

// RevokeAllFor describes the revokeallfor operation and its observable behavior.
//
// RevokeAllFor may return an error when input validation, dependency calls, or security checks fail.
// RevokeAllFor does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (s *MemoryStore) RevokeAllFor(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, ok := s.byEmail[email]
	if !ok {
		return nil
	}

	delete(s.byToken, token)
	delete(s.byEmail, email)

	return nil
}

// ActiveCount returns the number of live sessions. Intended for tests and
// introspection, not request paths.
func (s *MemoryStore) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byToken)
}
