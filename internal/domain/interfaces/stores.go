package interfaces

import domaintypes "walletkit/internal/domain/types"

// KeyValueStore is the platform preference contract the session depends on.
type KeyValueStore interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
	Remove(key string) error
}

// TokenSource yields the current bearer token, if any.
type TokenSource interface {
	Token() (string, bool, error)
}

// TokenStore holds the single session credential for the process.
type TokenStore interface {
	TokenSource
	SaveToken(token string) error
	ClearToken() error
	Claims() (domaintypes.SessionClaims, bool, error)
}
