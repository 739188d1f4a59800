// Package tokenstore persists the access/refresh token pair in a JSON file
// under the user's config directory, keyed by configurable names. It is the
// CLI analog of browser-local storage: last write wins, one logical session
// per storage scope.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the persisted token pair. Tokens are re-read from
// disk on every access so a fresh login in another process is picked up.
type Store struct {
	path       string
	accessKey  string
	refreshKey string
}

// New creates a Store writing to path, with the given storage key names.
func New(path, accessKey, refreshKey string) *Store {
	return &Store{
		path:       path,
		accessKey:  accessKey,
		refreshKey: refreshKey,
	}
}

// DefaultPath returns the standard credentials file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(dir, "taskmanager", "credentials.json"), nil
}

// Access returns the stored access token, or "" when absent.
func (s *Store) Access() string {
	return s.load()[s.accessKey]
}

// Refresh returns the stored refresh token, or "" when absent.
func (s *Store) Refresh() string {
	return s.load()[s.refreshKey]
}

// Save overwrites the stored pair. A new login always replaces the previous
// session's tokens.
func (s *Store) Save(access, refresh string) error {
	return s.write(map[string]string{
		s.accessKey:  access,
		s.refreshKey: refresh,
	})
}

// SaveAccess replaces only the access token, keeping the refresh token.
func (s *Store) SaveAccess(access string) error {
	entries := s.load()
	entries[s.accessKey] = access
	return s.write(entries)
}

// Clear removes both tokens.
func (s *Store) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) load() map[string]string {
	entries := map[string]string{}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return entries
	}
	// A corrupt file reads as no session.
	_ = json.Unmarshal(raw, &entries)
	return entries
}

func (s *Store) write(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}
