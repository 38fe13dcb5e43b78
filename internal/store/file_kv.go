package store

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sync"

	"walletkit/internal/domain"
)

const (
	prefsFile       = "prefs.json"
	sealedPrefsFile = "prefs.enc"
)

// FileKV persists string preferences as a single JSON object on disk. When a
// passphrase is set the object is sealed before it is written.
type FileKV struct {
	path       string
	passphrase string
	params     scryptParams
	mu         sync.Mutex
}

// NewFileKV returns a plaintext FileKV rooted at dir.
func NewFileKV(dir string) *FileKV {
	return &FileKV{path: filepath.Join(dir, prefsFile)}
}

// NewSealedFileKV returns a FileKV rooted at dir whose contents are encrypted
// with a key derived from passphrase.
func NewSealedFileKV(dir, passphrase string) *FileKV {
	return &FileKV{
		path:       filepath.Join(dir, sealedPrefsFile),
		passphrase: passphrase,
		params:     defaultScryptParams(),
	}
}

// Path returns the backing file location.
func (s *FileKV) Path() string { return s.path }

// Get returns the value stored under key and whether it was present.
func (s *FileKV) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := prefs[key]
	return v, ok, nil
}

// Put stores value under key.
func (s *FileKV) Put(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.save(prefs)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *FileKV) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := prefs[key]; !ok {
		return nil
	}
	delete(prefs, key)
	if len(prefs) == 0 {
		return removeFile(s.path)
	}
	return s.save(prefs)
}

func (s *FileKV) load() (map[string]string, error) {
	prefs := make(map[string]string)
	b, err := readFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read preferences: %w", err)
	}
	if b == nil {
		return prefs, nil
	}
	if s.passphrase != "" {
		if b, err = open(s.passphrase, b); err != nil {
			return nil, err
		}
	}
	if err := json.Unmarshal(b, &prefs); err != nil {
		return nil, fmt.Errorf("decode preferences: %w", err)
	}
	return prefs, nil
}

func (s *FileKV) save(prefs map[string]string) error {
	b, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	if s.passphrase != "" {
		if b, err = seal(s.passphrase, b, s.params); err != nil {
			return fmt.Errorf("seal preferences: %w", err)
		}
	}
	return writeFile(s.path, b, 0o600)
}

// Compile-time assertion that FileKV implements domain.KeyValueStore.
var _ domain.KeyValueStore = (*FileKV)(nil)
