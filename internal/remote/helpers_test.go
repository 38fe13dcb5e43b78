package remote

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"walletkit/internal/gateway"
	"walletkit/internal/store"
)

// testEnv is a gateway client plus sources pointed at an httptest server.
type testEnv struct {
	srv      *httptest.Server
	client   *gateway.Client
	session  *store.SessionStore
	log      logrus.FieldLogger
	hook     *logtest.Hook
	users    *UserSource
	wallet   *WalletSource
	payments *PaymentSource
}

func newTestEnv(t *testing.T, h http.Handler) *testEnv {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	logger, hook := logtest.NewNullLogger()
	session := store.NewSessionStore(store.NewMemoryKV(), logger)
	f, err := gateway.NewFactory(gateway.Config{BaseURL: srv.URL}, session, logger, nil)
	require.NoError(t, err)
	c := f.Client()

	return &testEnv{
		srv:      srv,
		client:   c,
		session:  session,
		log:      logger,
		hook:     hook,
		users:    NewUserSource(gateway.NewUserService(c), session, logger),
		wallet:   NewWalletSource(gateway.NewWalletService(c), session, logger),
		payments: NewPaymentSource(gateway.NewPaymentService(c), session, logger),
	}
}

// respond writes a fixed status and body.
func respond(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}
