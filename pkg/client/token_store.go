package client

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"
)

// TokenStore holds the bearer token between calls. Implementations must be
// safe for concurrent use.
type TokenStore interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

type memoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore() TokenStore {
	return &memoryTokenStore{}
}

func (s *memoryTokenStore) Get() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *memoryTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	return nil
}

func (s *memoryTokenStore) Clear() error {
	return s.Set("")
}

// fileTokenStore persists the token at a fixed path so it survives process
// restarts, the same way the browser storefront keeps it in localStorage.
type fileTokenStore struct {
	mu   sync.Mutex
	path string
}

func NewFileTokenStore(path string) TokenStore {
	return &fileTokenStore{path: path}
}

func (s *fileTokenStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}

		return "", err
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *fileTokenStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *fileTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
