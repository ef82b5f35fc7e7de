// Package session owns the mapping from opaque bearer tokens to authenticated
// identities and the single-session-per-user invariant.
//
// # Stores
//
// Two [Store] implementations are provided. [MemoryStore] keeps both the
// token index and the email index under one mutex, so the check-then-insert
// sequence at login is atomic with respect to every other caller. [RedisStore]
// keeps the same two indexes in Redis and performs the check-then-insert inside
// a Lua script, preserving the invariant across server replicas.
//
// # Tokens
//
// Tokens are 128-bit crypto/rand identifiers in base64url form. They carry no
// claims: a token is nothing but a key into the store, and comparison is always
// whole-string exact match.
//
// # Architecture boundaries
//
// This package stores identities verbatim. It does NOT verify passwords, parse
// roles, or make authorization decisions — those responsibilities belong to the
// Engine.
//
// # What this package must NOT do
//
//   - Import goTravel or any sibling package (no upward imports).
//   - Interpret the Role string beyond storing and returning it.
//   - Log or encode tokens anywhere except the primary index key.
package session
