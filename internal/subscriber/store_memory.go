package subscriber

import (
	"context"
	"sync"
	"time"

	"fixlist/pkg/platform/sentinel"
)

// InMemoryStore keeps subscribers in a map. It backs unit tests and
// storeless local runs; the mutex gives it the same atomic-upsert contract
// as the PostgreSQL store.
type InMemoryStore struct {
	mu   sync.RWMutex
	subs map[string]Subscriber
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{subs: make(map[string]Subscriber)}
}

func (s *InMemoryStore) Upsert(_ context.Context, email string, now time.Time, signupDevice string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.subs[email]; ok {
		existing.AccessGranted = true
		s.subs[email] = existing
		return false, nil
	}

	s.subs[email] = Subscriber{
		Email:         email,
		SubscribedAt:  now,
		AccessGranted: true,
		SignupDevice:  signupDevice,
	}
	return true, nil
}

func (s *InMemoryStore) FindByEmail(_ context.Context, email string) (Subscriber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sub, ok := s.subs[email]; ok {
		return sub, nil
	}
	return Subscriber{}, sentinel.ErrNotFound
}

// Count reports the number of stored records. Test helper.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
