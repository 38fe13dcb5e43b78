package types

import "time"

// SessionClaims are informational fields decoded from a JWT-shaped token.
// They are never used to decide whether a request is sent.
type SessionClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// Expired reports whether the claims carry an expiry that has passed.
func (c SessionClaims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}
