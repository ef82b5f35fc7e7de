// Package goTravel provides an in-memory authentication and resource-access engine
// for the travel destinations API: opaque bearer-token sessions, a single-session-per-user
// invariant, role-gated authorization (Admin/User), destination CRUD, and self-service
// profile management.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goTravel is the public surface. It exposes [Engine], [Builder], [Config], and value types
// (Identity, Destination, MetricsSnapshot, etc.). Surrounding concerns live in sub-packages:
// credential records in credential/, session state in session/, destination records in
// destination/, password hashing in password/, and the HTTP transport in httpapi/.
//
// # What this package must NOT do
//
//   - Expose store internals, Redis clients, or encoding details in its public API.
//   - Parse HTTP requests or produce HTTP responses — that is httpapi's job.
//   - Retain plaintext passwords beyond the duration of a single call.
//
// # Performance contract
//
// Validate is the hot path: a single lock-guarded map lookup with the default in-memory
// session store, one Redis GET with the Redis-backed store. No engine operation blocks on
// anything other than store access.
package goTravel
