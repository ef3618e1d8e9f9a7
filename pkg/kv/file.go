package kv

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"carezone-storefront/pkg/logger"
)

type fileStore struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

// NewFileStore returns a Store persisted as a single JSON document at path.
// Values are kept as strings so both JSON payloads and bare tokens round
// trip. The document is read once at construction; every Set/Remove rewrites
// it synchronously. A missing or unreadable file starts as an empty store.
func NewFileStore(path string) Store {
	s := &fileStore{
		path: path,
		data: make(map[string]string),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to read state file, starting empty")
		}
		return s
	}
	if err := json.Unmarshal(raw, &s.data); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("Corrupt state file, starting empty")
		s.data = make(map[string]string)
	}
	return s
}

func (s *fileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return []byte(v), true
}

func (s *fileStore) Set(key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = string(value)
	s.flush()
}

func (s *fileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	s.flush()
}

// flush writes the full document. Caller holds the lock.
func (s *fileStore) flush() {
	raw, err := json.Marshal(s.data)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to marshal state file")
		return
	}
	if dir := filepath.Dir(s.path); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		logger.Error().Err(err).Str("path", s.path).Msg("Failed to write state file")
	}
}
