package leadevent

import (
	"context"
	"sync"
)

// Store is the event outbox. Append is called inline by services; the
// worker drains pending events to Kafka and marks them published. Kafka is
// the downstream source of truth; the outbox exists so a broker outage
// never fails a visitor-facing write.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListPending(ctx context.Context, limit int) ([]Event, error)
	MarkPublished(ctx context.Context, ids []string) error
}

// InMemoryStore keeps the outbox in process memory for tests and for runs
// without Kafka configured.
type InMemoryStore struct {
	mu        sync.Mutex
	events    []Event
	published map[string]bool
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{published: make(map[string]bool)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListPending(_ context.Context, limit int) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Event
	for _, e := range s.events {
		if s.published[e.ID] {
			continue
		}
		out = append(out, e)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (s *InMemoryStore) MarkPublished(_ context.Context, ids []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		s.published[id] = true
	}
	return nil
}

// All returns every appended event in order. Test helper.
func (s *InMemoryStore) All() []Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Event{}, s.events...)
}
