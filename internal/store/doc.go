// Package store provides local persistence for walletkit's session.
//
// It contains the key-value preference stores behind domain.KeyValueStore and
// the SessionStore that keeps the bearer token on top of them. All types are
// safe for concurrent use via internal locking.
//
// The package includes:
//   - FileKV: a JSON preferences file, optionally sealed with a passphrase
//     (scrypt + XChaCha20-Poly1305)
//   - MemoryKV: process-local preferences for tests and ephemeral runs
//   - SessionStore: the single bearer token, lazily loaded and persisted
package store
