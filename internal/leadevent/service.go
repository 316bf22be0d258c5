package leadevent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service captures lead events. It is append-only and uses the outbox store
// for persistence so tests can swap sinks easily.
type Service struct {
	store Store
	clock func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the clock function for testability.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, clock: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Emit appends event to the outbox, filling in ID and Timestamp when unset.
func (s *Service) Emit(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.clock()
	}
	return s.store.Append(ctx, event)
}
