package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileProgressStore persists the progress map as a single JSON document on
// the visitor's device, the durable analog of one local-storage key. The
// file is rewritten wholesale on every save (last write wins).
type FileProgressStore struct {
	mu   sync.Mutex
	path string
}

func NewFileProgressStore(path string) *FileProgressStore {
	return &FileProgressStore{path: path}
}

// Load reads the persisted map. A missing file or unparsable content yields
// an empty map and no error: corrupt local state silently resets.
func (s *FileProgressStore) Load(_ context.Context) (ProgressMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return ProgressMap{}, nil
	}
	var m ProgressMap
	if err := json.Unmarshal(raw, &m); err != nil {
		return ProgressMap{}, nil
	}
	if m == nil {
		m = ProgressMap{}
	}
	return m, nil
}

// Save overwrites the whole persisted map. The write goes through a temp
// file and rename so a crash cannot leave a half-written document.
func (s *FileProgressStore) Save(_ context.Context, m ProgressMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// InMemoryProgressStore keeps the map in process memory for tests and for
// sessions that opt out of persistence.
type InMemoryProgressStore struct {
	mu sync.RWMutex
	m  ProgressMap
}

func NewInMemoryProgressStore() *InMemoryProgressStore {
	return &InMemoryProgressStore{m: ProgressMap{}}
}

func (s *InMemoryProgressStore) Load(_ context.Context) (ProgressMap, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Clone(), nil
}

func (s *InMemoryProgressStore) Save(_ context.Context, m ProgressMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = m.Clone()
	return nil
}
