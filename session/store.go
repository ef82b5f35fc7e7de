package session

import (
	"context"
	"errors"
)

// ErrActiveSession is returned by Issue when the identity already holds a live token.
var ErrActiveSession = errors.New("active session already exists for this identity")

// ErrTokenNotFound is returned when a token does not resolve to a live session.
var ErrTokenNotFound = errors.New("session token not found")

// Identity is the snapshot recorded at login time. Role is whatever string the
// caller supplied; this package never re-reads the credential record, so role
// changes after login do not affect a live session.
type Identity struct {
	Email string
	Role  string
}

// Store defines a public type used by goTravel APIs.
//
// Implementations must make Issue atomic with respect to concurrent calls for
// the same email: exactly one of two racing logins may win.
type Store interface {
	// Issue creates a fresh token for ident and records it under both indexes.
	// Fails with [ErrActiveSession] if a token already exists for ident.Email.
	Issue(ctx context.Context, ident Identity) (string, error)

	// Validate resolves a token to its identity without side effects.
	// Fails with [ErrTokenNotFound].
	Validate(ctx context.Context, token string) (Identity, error)

	// Revoke removes a token. Revoking an unknown token fails with
	// [ErrTokenNotFound] rather than silently succeeding, so client bugs that
	// double-logout are surfaced.
	Revoke(ctx context.Context, token string) error

	// RevokeAllFor removes every token held by email. Removing zero tokens is
	// not an error: the call is a cleanup hook for account deletion.
	RevokeAllFor(ctx context.Context, email string) error
}
