package store_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"walletkit/internal/store"
)

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

// failingKV rejects every operation.
type failingKV struct{}

var errKV = errors.New("kv unavailable")

func (failingKV) Get(string) (string, bool, error) { return "", false, errKV }
func (failingKV) Put(string, string) error         { return errKV }
func (failingKV) Remove(string) error              { return errKV }

func TestSessionStore_LifeCycle(t *testing.T) {
	kv := store.NewMemoryKV()
	s := store.NewSessionStore(kv, quietLogger())

	if _, ok, err := s.Token(); err != nil || ok {
		t.Fatalf("fresh session: ok=%v err=%v", ok, err)
	}
	if err := s.SaveToken("abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok, ok, _ := s.Token(); !ok || tok != "abc123" {
		t.Fatalf("token: %q %v", tok, ok)
	}
	if v, _, _ := kv.Get(store.TokenKey); v != "abc123" {
		t.Fatalf("token not persisted, kv has %q", v)
	}
	if err := s.ClearToken(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, ok, _ := s.Token(); ok {
		t.Fatal("token still present after clear")
	}
}

func TestSessionStore_LoadsPersistedToken(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	if err := store.NewSessionStore(kv, quietLogger()).SaveToken("from-last-run"); err != nil {
		t.Fatalf("save: %v", err)
	}

	restarted := store.NewSessionStore(kv, quietLogger())
	if tok, ok, err := restarted.Token(); err != nil || !ok || tok != "from-last-run" {
		t.Fatalf("restart: %q ok=%v err=%v", tok, ok, err)
	}
}

func TestSessionStore_RejectsEmptyToken(t *testing.T) {
	s := store.NewSessionStore(store.NewMemoryKV(), quietLogger())
	if err := s.SaveToken(""); !errors.Is(err, store.ErrEmptyToken) {
		t.Fatalf("expected ErrEmptyToken, got %v", err)
	}
}

func TestSessionStore_BackendFailuresSurface(t *testing.T) {
	s := store.NewSessionStore(failingKV{}, quietLogger())
	if err := s.SaveToken("t"); !errors.Is(err, errKV) {
		t.Fatalf("expected kv error, got %v", err)
	}
	if _, _, err := s.Token(); !errors.Is(err, errKV) {
		t.Fatalf("expected load error, got %v", err)
	}
}

// countingKV fails every Get and counts the attempts.
type countingKV struct {
	*store.MemoryKV
	mu   sync.Mutex
	gets int
}

func (c *countingKV) Get(string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	return "", false, errKV
}

func TestSessionStore_FailedLoadIsNotRetried(t *testing.T) {
	kv := &countingKV{MemoryKV: store.NewMemoryKV()}
	s := store.NewSessionStore(kv, quietLogger())

	if _, _, err := s.Token(); !errors.Is(err, errKV) {
		t.Fatalf("first read: expected kv error, got %v", err)
	}
	for i := 0; i < 5; i++ {
		if tok, ok, err := s.Token(); err != nil || ok || tok != "" {
			t.Fatalf("later read: %q ok=%v err=%v", tok, ok, err)
		}
	}
	if kv.gets != 1 {
		t.Fatalf("backing store read %d times, want 1", kv.gets)
	}

	if err := s.SaveToken("fresh"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if tok, ok, _ := s.Token(); !ok || tok != "fresh" {
		t.Fatalf("token after save: %q %v", tok, ok)
	}
}

func TestSessionStore_ConcurrentReadersSeeWholeTokens(t *testing.T) {
	s := store.NewSessionStore(store.NewMemoryKV(), quietLogger())
	tokens := []string{"token-aaaaaaaaaaaa", "token-bbbbbbbbbbbb"}
	valid := map[string]bool{"": true, tokens[0]: true, tokens[1]: true}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = s.SaveToken(tokens[(i+j)%2])
			}
		}(i)
	}
	errs := make(chan string, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				tok, _, _ := s.Token()
				if !valid[tok] {
					errs <- tok
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for tok := range errs {
		t.Fatalf("observed torn token %q", tok)
	}
}

func TestSessionStore_Claims(t *testing.T) {
	s := store.NewSessionStore(store.NewMemoryKV(), quietLogger())

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := s.SaveToken(signed); err != nil {
		t.Fatalf("save: %v", err)
	}

	claims, ok, err := s.Claims()
	if err != nil || !ok {
		t.Fatalf("claims: ok=%v err=%v", ok, err)
	}
	if claims.Subject != "42" || claims.ExpiresAt == nil || !claims.ExpiresAt.Equal(exp) {
		t.Fatalf("unexpected claims %+v", claims)
	}
	if claims.Expired(time.Now()) {
		t.Fatal("fresh token reported expired")
	}

	if err := s.SaveToken("opaque"); err != nil {
		t.Fatalf("save opaque: %v", err)
	}
	if _, ok, err := s.Claims(); ok || err != nil {
		t.Fatalf("opaque token: ok=%v err=%v", ok, err)
	}
}
