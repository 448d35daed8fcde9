// Package store holds the process-local persistence shims. The only
// durable state in the system is the admin session cache: two string
// entries, admin_token and admin_user, kept in a small JSON file.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Keys of the admin session cache.
const (
	KeyAdminToken = "admin_token"
	KeyAdminUser  = "admin_user"
)

// LocalStore is a string key-value cache backed by a JSON file. There is
// no schema versioning; an unreadable file is treated as empty.
type LocalStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewLocalStore opens (or initializes) the cache at path.
func NewLocalStore(path string) (*LocalStore, error) {
	s := &LocalStore{path: path, data: map[string]string{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Corrupt cache falls back to empty, same as absent.
		s.data = map[string]string{}
	}
	return s, nil
}

// Get returns the value for key, and whether it was present.
func (s *LocalStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

// Set stores key=value and flushes to disk.
func (s *LocalStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return s.flush()
}

// Remove deletes a key and flushes to disk. Removing an absent key is a
// no-op.
func (s *LocalStore) Remove(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.flush()
}

func (s *LocalStore) flush() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, raw, 0o600)
}
