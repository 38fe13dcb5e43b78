package gateway

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"walletkit/internal/domain"
)

// AuthTransport attaches the session's bearer token to every outgoing
// request. Requests go out unauthenticated when there is no token or it cannot
// be read; the server's 401 is the authority on rejected sessions.
type AuthTransport struct {
	Tokens domain.TokenSource
	Next   http.RoundTripper
	Log    logrus.FieldLogger
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// modified; a clone carries the header.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, ok, err := t.Tokens.Token()
	if err != nil {
		t.Log.WithError(err).Debug("session token unavailable, sending request unauthenticated")
		ok = false
	}
	if !ok || token == "" {
		return next(t.Next).RoundTrip(req)
	}

	authed := req.Clone(req.Context())
	authed.Header.Set("Authorization", "Bearer "+token)
	return next(t.Next).RoundTrip(authed)
}

func next(rt http.RoundTripper) http.RoundTripper {
	if rt == nil {
		return http.DefaultTransport
	}
	return rt
}
