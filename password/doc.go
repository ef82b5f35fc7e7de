// Package password implements password hashing and verification with Argon2id defaults.
//
// # Output format
//
// Hashes are encoded in PHC string format:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<salt>$<hash>
//
// Verification reads the parameters out of the stored hash, so parameter changes
// in config never invalidate existing credentials.
//
// # Architecture boundaries
//
// This package owns hashing and verification only. Password policy (presence,
// re-authentication rules) is enforced by the Engine.
//
// # What this package must NOT do
//
//   - Store or retrieve passwords — callers supply plaintext and receive hashes.
//   - Import any other goTravel package.
//   - Log plaintext passwords or hash parameters at runtime.
package password
