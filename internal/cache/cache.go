// Package cache is a small file-backed JSON key/value store for view state
// that must survive restarts: the fetched orders, the organization profile,
// and the in-flight OAuth verifier slot.
//
// Reads fall back to the caller's pre-set default on any storage or parse
// failure; failures never propagate into rendering paths. Writes go through
// a temp file and rename. When another process writes the backing file, the
// store picks the change up on the next read (last writer wins, no merge).
package cache

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Well-known keys. KeyVerifier is the single-slot PKCE verifier that must
// survive the authorization redirect.
const (
	KeyOrders       = "orders"
	KeyOrganization = "organization_info"
	KeyVerifier     = "polar_oauth_code_verifier"
)

// Store is a keyed JSON store backed by a single file.
type Store struct {
	mu      sync.Mutex
	path    string
	logger  *slog.Logger
	data    map[string]json.RawMessage
	modTime time.Time
}

// Open creates a store backed by the given file. A missing or unreadable
// file is not an error: the store starts empty and falls back to defaults.
func Open(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		path:   path,
		logger: logger,
		data:   make(map[string]json.RawMessage),
	}
	s.reload()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get reads the value stored under key into v. It returns false and leaves v
// untouched when the key is absent or the stored value fails to parse, so
// callers keep whatever default v already holds.
func (s *Store) Get(key string, v any) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfChanged()

	raw, ok := s.data[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Debug("cache value unparseable, using default", "key", key, "err", err)
		return false
	}
	return true
}

// Put stores v under key and writes the store through to disk. Write
// failures are logged and otherwise swallowed: persistence is best-effort,
// the in-memory value stays current either way.
func (s *Store) Put(key string, v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfChanged()

	raw, err := json.Marshal(v)
	if err != nil {
		s.logger.Error("cache value not serializable", "key", key, "err", err)
		return
	}
	s.data[key] = raw
	s.flush()
}

// Delete removes key from the store and writes through.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadIfChanged()
	if _, ok := s.data[key]; !ok {
		return
	}
	delete(s.data, key)
	s.flush()
}

// Reset clears all keys and writes through.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make(map[string]json.RawMessage)
	s.flush()
}

// reloadIfChanged re-reads the backing file when its mtime moved, picking up
// writes from other processes sharing the same state file.
func (s *Store) reloadIfChanged() {
	info, err := os.Stat(s.path)
	if err != nil {
		return
	}
	if info.ModTime().Equal(s.modTime) {
		return
	}
	s.reload()
}

func (s *Store) reload() {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var data map[string]json.RawMessage
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Debug("cache file unparseable, starting empty", "path", s.path, "err", err)
		return
	}
	s.data = data
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}
}

func (s *Store) flush() {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("cache dir unavailable", "path", s.path, "err", err)
		return
	}
	raw, err := json.Marshal(s.data)
	if err != nil {
		s.logger.Error("cache not serializable", "err", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		s.logger.Error("cache write failed", "path", tmp, "err", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("cache rename failed", "path", s.path, "err", err)
		return
	}
	if info, err := os.Stat(s.path); err == nil {
		s.modTime = info.ModTime()
	}
}
