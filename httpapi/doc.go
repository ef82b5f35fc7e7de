// Package httpapi exposes the travel engine over HTTP using gin.
//
// The package owns route registration, JSON request decoding, bearer-token
// extraction, and the mapping from engine errors to status codes and response
// messages. All authentication and authorization decisions live in the engine;
// handlers only translate between the wire format and engine calls.
//
// # Architecture boundaries
//
// httpapi depends on the root goTravel package and nothing else in the module.
// Handlers never touch the credential, session, or destination stores directly.
//
// # What this package must NOT do
//
//   - Inspect or compare session tokens beyond stripping the "Bearer " prefix.
//   - Re-implement role checks; RequireRole belongs to the engine.
//   - Leak password material or raw tokens into responses or logs.
package httpapi
