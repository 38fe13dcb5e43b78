package store_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"walletkit/internal/domain"
	"walletkit/internal/store"
)

func TestFileKV_PutGetRemove_OK(t *testing.T) {
	var kv domain.KeyValueStore = store.NewFileKV(t.TempDir())

	if _, ok, err := kv.Get("k"); err != nil || ok {
		t.Fatalf("empty store: ok=%v err=%v", ok, err)
	}
	if err := kv.Put("k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put("other", "x"); err != nil {
		t.Fatalf("put other: %v", err)
	}
	got, ok, err := kv.Get("k")
	if err != nil || !ok || got != "v1" {
		t.Fatalf("get: got %q ok=%v err=%v", got, ok, err)
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, ok, _ := kv.Get("k"); ok {
		t.Fatal("key still present after remove")
	}
	if v, _, _ := kv.Get("other"); v != "x" {
		t.Fatalf("unrelated key lost: %q", v)
	}
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	home := t.TempDir()
	if err := store.NewFileKV(home).Put("k", "persisted"); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := store.NewFileKV(home).Get("k")
	if err != nil || !ok || got != "persisted" {
		t.Fatalf("reopen: got %q ok=%v err=%v", got, ok, err)
	}
}

func TestFileKV_RemoveLastKeyDeletesFile(t *testing.T) {
	kv := store.NewFileKV(t.TempDir())
	if err := kv.Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(kv.Path()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to be gone, stat err=%v", err)
	}
}

func TestSealedFileKV_RoundTrip_NoPlaintextOnDisk(t *testing.T) {
	home := t.TempDir()
	kv := store.NewSealedFileKV(home, "pass")
	if err := kv.Put(store.TokenKey, "super-secret-token"); err != nil {
		t.Fatalf("put: %v", err)
	}

	raw, err := os.ReadFile(kv.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if strings.Contains(string(raw), "super-secret-token") {
		t.Fatal("token stored in plaintext")
	}

	got, ok, err := store.NewSealedFileKV(home, "pass").Get(store.TokenKey)
	if err != nil || !ok || got != "super-secret-token" {
		t.Fatalf("get: got %q ok=%v err=%v", got, ok, err)
	}
}

func TestSealedFileKV_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	if err := store.NewSealedFileKV(home, "correct").Put("k", "v"); err != nil {
		t.Fatalf("put: %v", err)
	}
	_, _, err := store.NewSealedFileKV(home, "wrong").Get("k")
	if !errors.Is(err, store.ErrWrongPassphrase) {
		t.Fatalf("expected ErrWrongPassphrase, got %v", err)
	}
}

func TestMemoryKV_PutGetRemove(t *testing.T) {
	kv := store.NewMemoryKV()
	_ = kv.Put("a", "1")
	if v, ok, _ := kv.Get("a"); !ok || v != "1" {
		t.Fatalf("get: %q %v", v, ok)
	}
	_ = kv.Remove("a")
	if _, ok, _ := kv.Get("a"); ok {
		t.Fatal("expected key removed")
	}
}
