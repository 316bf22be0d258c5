package subscriber

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fixlist/internal/leadevent"
	"fixlist/internal/platform/metrics"
	"fixlist/internal/platform/middleware"
	dErrors "fixlist/pkg/domain-errors"
)

// Prometheus collectors register globally, so the package shares one set.
var testMetrics = metrics.New()

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	store    *InMemoryStore
	notifier *InMemoryNotifier
	events   *leadevent.InMemoryStore
	svc      *Service
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
	s.notifier = NewInMemoryNotifier()
	s.events = leadevent.NewInMemoryStore()
	s.svc = NewService(
		s.store,
		s.notifier,
		leadevent.NewService(s.events),
		testMetrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		WithClock(func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }),
	)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestSubscribe() {
	s.Run("first subscribe creates the record with access", func() {
		res, err := s.svc.Subscribe(s.ctx, "a@b.com")
		s.Require().NoError(err)
		s.True(res.IsNew)
		s.True(res.HasAccess)

		sub, err := s.store.FindByEmail(s.ctx, "a@b.com")
		s.Require().NoError(err)
		s.True(sub.AccessGranted)
		s.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), sub.SubscribedAt)
	})

	s.Run("repeat subscribe is an idempotent re-grant", func() {
		first, err := s.svc.Subscribe(s.ctx, "repeat@b.com")
		s.Require().NoError(err)
		s.True(first.IsNew)

		second, err := s.svc.Subscribe(s.ctx, "repeat@b.com")
		s.Require().NoError(err)
		s.False(second.IsNew)
		s.True(second.HasAccess)
	})

	s.Run("repeat subscribe keeps exactly one record and the original timestamp", func() {
		before := s.store.Count()
		_, err := s.svc.Subscribe(s.ctx, "once@b.com")
		s.Require().NoError(err)

		// Second call under a later clock must not move subscribedAt.
		later := NewService(s.store, s.notifier, nil, testMetrics,
			slog.New(slog.NewTextHandler(io.Discard, nil)),
			WithClock(func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }),
		)
		_, err = later.Subscribe(s.ctx, "once@b.com")
		s.Require().NoError(err)

		s.Equal(before+1, s.store.Count())
		sub, err := s.store.FindByEmail(s.ctx, "once@b.com")
		s.Require().NoError(err)
		s.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), sub.SubscribedAt)
	})

	s.Run("rejects empty email", func() {
		_, err := s.svc.Subscribe(s.ctx, "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("captures signup device from request metadata", func() {
		ctx := middleware.WithClientMetadata(s.ctx, "203.0.113.9",
			"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0")
		_, err := s.svc.Subscribe(ctx, "device@b.com")
		s.Require().NoError(err)

		sub, err := s.store.FindByEmail(s.ctx, "device@b.com")
		s.Require().NoError(err)
		s.Contains(sub.SignupDevice, "Firefox")
	})

	s.Run("store failure surfaces as unavailable", func() {
		broken := NewService(failingStore{}, s.notifier, nil, testMetrics,
			slog.New(slog.NewTextHandler(io.Discard, nil)))
		_, err := broken.Subscribe(s.ctx, "a@b.com")
		s.True(dErrors.HasCode(err, dErrors.CodeUnavailable))
	})
}

func (s *ServiceSuite) TestSubscribeEmitsLeadEvents() {
	_, err := s.svc.Subscribe(s.ctx, "lead@b.com")
	s.Require().NoError(err)

	events := s.events.All()
	s.Require().Len(events, 2)
	s.Equal(leadevent.KindSubscriberCreated, events[0].Kind)
	s.Equal(leadevent.KindAccessGranted, events[1].Kind)
	s.Equal("lead@b.com", events[0].Email)

	// Re-grant emits only the grant event.
	_, err = s.svc.Subscribe(s.ctx, "lead@b.com")
	s.Require().NoError(err)
	events = s.events.All()
	s.Require().Len(events, 3)
	s.Equal(leadevent.KindAccessGranted, events[2].Kind)
}

func (s *ServiceSuite) TestCheckAccess() {
	s.Run("empty email short-circuits without store access", func() {
		broken := NewService(failingStore{}, s.notifier, nil, testMetrics,
			slog.New(slog.NewTextHandler(io.Discard, nil)))
		status, err := broken.CheckAccess(s.ctx, "")
		s.Require().NoError(err)
		s.False(status.Exists)
		s.False(status.HasAccess)
	})

	s.Run("unknown email reports no access", func() {
		status, err := s.svc.CheckAccess(s.ctx, "nobody@b.com")
		s.Require().NoError(err)
		s.False(status.Exists)
		s.False(status.HasAccess)
	})

	s.Run("subscribed email reports access", func() {
		_, err := s.svc.Subscribe(s.ctx, "member@b.com")
		s.Require().NoError(err)

		status, err := s.svc.CheckAccess(s.ctx, "member@b.com")
		s.Require().NoError(err)
		s.True(status.Exists)
		s.True(status.HasAccess)
	})
}

func (s *ServiceSuite) TestWatch() {
	s.Run("emits the current status immediately", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		defer cancel()

		updates, err := s.svc.Watch(ctx, "watched@b.com")
		s.Require().NoError(err)

		status := s.waitFor(updates)
		s.False(status.HasAccess)
	})

	s.Run("re-evaluates when the watched email is granted access", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		defer cancel()

		updates, err := s.svc.Watch(ctx, "granted@b.com")
		s.Require().NoError(err)
		s.False(s.waitFor(updates).HasAccess)

		_, err = s.svc.Subscribe(s.ctx, "granted@b.com")
		s.Require().NoError(err)

		s.Eventually(func() bool {
			select {
			case status, ok := <-updates:
				return ok && status.HasAccess
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond)
	})

	s.Run("ignores changes to other emails", func() {
		ctx, cancel := context.WithCancel(s.ctx)
		defer cancel()

		updates, err := s.svc.Watch(ctx, "quiet@b.com")
		s.Require().NoError(err)
		s.False(s.waitFor(updates).HasAccess)

		_, err = s.svc.Subscribe(s.ctx, "noisy@b.com")
		s.Require().NoError(err)

		select {
		case status := <-updates:
			s.False(status.HasAccess, "unrelated grant must not flip the watched status")
		case <-time.After(50 * time.Millisecond):
			// no update at all is equally correct
		}
	})

	s.Run("rejects empty email", func() {
		_, err := s.svc.Watch(s.ctx, "")
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) waitFor(updates <-chan AccessStatus) AccessStatus {
	select {
	case status := <-updates:
		return status
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for access status")
		return AccessStatus{}
	}
}

type failingStore struct{}

func (failingStore) Upsert(context.Context, string, time.Time, string) (bool, error) {
	return false, errors.New("store down")
}

func (failingStore) FindByEmail(context.Context, string) (Subscriber, error) {
	return Subscriber{}, errors.New("store down")
}
