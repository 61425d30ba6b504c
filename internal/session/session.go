package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the opaque session credential for the lifetime of the process.
// The transport client clears it on an auth rejection; login and logout are
// the only other writers.
type Store struct {
	mu    sync.RWMutex
	token string
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

// FileStore wraps a Store and mirrors the credential to a file so the CLI
// can reuse it across invocations. Only the token is persisted.
type FileStore struct {
	*Store
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{Store: NewStore(), path: path}

	data, err := os.ReadFile(path)
	if err == nil {
		fs.Store.Set(strings.TrimSpace(string(data)))
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	return fs, nil
}

func (fs *FileStore) Set(token string) {
	fs.Store.Set(token)
	os.MkdirAll(filepath.Dir(fs.path), 0o700)
	os.WriteFile(fs.path, []byte(token), 0o600)
}

func (fs *FileStore) Clear() {
	fs.Store.Clear()
	os.Remove(fs.path)
}
