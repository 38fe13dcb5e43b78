package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

// staticTokens is a TokenSource returning a fixed token or error.
type staticTokens struct {
	token string
	err   error
}

func (s staticTokens) Token() (string, bool, error) { return s.token, s.token != "", s.err }

func nullLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func newTestServer(t *testing.T, h http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

// newTestClient builds a factory client against an httptest server running h.
func newTestClient(t *testing.T, h http.Handler, tokens staticTokens, cfg Config) (*Client, *httptest.Server) {
	t.Helper()
	srv := newTestServer(t, h)

	cfg.BaseURL = srv.URL
	f, err := NewFactory(cfg, tokens, nullLogger(), nil)
	require.NoError(t, err)
	return f.Client(), srv
}
