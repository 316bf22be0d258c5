package application

import (
	"context"
	"sync"
)

// InMemoryStore keeps applications in insertion order for tests and
// storeless local runs.
type InMemoryStore struct {
	mu   sync.RWMutex
	apps []AuditApplication
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Insert(_ context.Context, app AuditApplication) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apps = append(s.apps, app)
	return nil
}

func (s *InMemoryStore) List(_ context.Context) ([]AuditApplication, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AuditApplication{}, s.apps...), nil
}
