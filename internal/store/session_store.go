package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
)

// TokenKey is the preference key holding the bearer token.
const TokenKey = "walletkit.auth_token"

// ErrEmptyToken is returned when asked to persist an empty token.
var ErrEmptyToken = errors.New("store: empty session token")

// SessionStore holds the process-wide bearer token, backed by a key-value
// store so it survives restarts. The token is loaded lazily on first read.
type SessionStore struct {
	kv  domain.KeyValueStore
	log logrus.FieldLogger

	mu     sync.RWMutex
	token  string
	loaded bool
}

// NewSessionStore returns a SessionStore persisting through kv.
func NewSessionStore(kv domain.KeyValueStore, log logrus.FieldLogger) *SessionStore {
	return &SessionStore{kv: kv, log: log}
}

// Token returns the current token and whether one is set. The backing store
// is read at most once.
func (s *SessionStore) Token() (string, bool, error) {
	s.mu.RLock()
	if s.loaded {
		t := s.token
		s.mu.RUnlock()
		return t, t != "", nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		// A failed load is reported once; afterwards the session reads as
		// empty until a token is saved.
		s.loaded = true
		t, _, err := s.kv.Get(TokenKey)
		if err != nil {
			s.log.WithError(err).Warn("session token unreadable, continuing without one")
			return "", false, fmt.Errorf("load session token: %w", err)
		}
		s.token = t
	}
	return s.token, s.token != "", nil
}

// SaveToken persists token and makes it current. Memory is only updated once
// the backing store accepted the write.
func (s *SessionStore) SaveToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Put(TokenKey, token); err != nil {
		return fmt.Errorf("save session token: %w", err)
	}
	s.token = token
	s.loaded = true
	s.log.Debug("session token saved")
	return nil
}

// ClearToken forgets the current token.
func (s *SessionStore) ClearToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Remove(TokenKey); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	s.token = ""
	s.loaded = true
	s.log.Debug("session token cleared")
	return nil
}

// Claims decodes the current token as an unverified JWT. Opaque tokens yield
// ok == false without an error.
func (s *SessionStore) Claims() (domain.SessionClaims, bool, error) {
	token, ok, err := s.Token()
	if err != nil || !ok {
		return domain.SessionClaims{}, false, err
	}

	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return domain.SessionClaims{}, false, nil
	}
	claims := domain.SessionClaims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		at := rc.ExpiresAt.Time
		claims.ExpiresAt = &at
	}
	return claims, true, nil
}

// Compile-time assertion that SessionStore implements domain.TokenStore.
var _ domain.TokenStore = (*SessionStore)(nil)
