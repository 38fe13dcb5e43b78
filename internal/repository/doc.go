// Package repository holds walletkit's in-memory view of server state.
//
// Each repository owns its cached fields and one mutex. Network calls run
// without the lock, so calls on the same repository proceed in parallel; only
// the cache write that follows a successful call is serialised. A failed or
// abandoned call never touches the cache. When two successful calls race on
// the same field, whichever takes the lock last wins.
package repository
