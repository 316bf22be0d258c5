package subscriber

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"fixlist/internal/leadevent"
	"fixlist/internal/platform/device"
	"fixlist/internal/platform/metrics"
	"fixlist/internal/platform/middleware"
	dErrors "fixlist/pkg/domain-errors"
	"fixlist/pkg/platform/sentinel"
)

var tracer = otel.Tracer("fixlist/subscriber")

// Events receives lead events emitted by the service. Recording is
// best-effort: a sink failure never fails the visitor-facing operation.
type Events interface {
	Emit(ctx context.Context, event leadevent.Event) error
}

// Service implements the subscribe/check protocol over a Store. Any
// non-empty string is a valid email key; format validation stays a
// caller-side concern.
type Service struct {
	store    Store
	notifier Notifier
	events   Events
	metrics  *metrics.Metrics
	logger   *slog.Logger
	clock    func() time.Time
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

func NewService(store Store, notifier Notifier, events Events, m *metrics.Metrics, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: notifier,
		events:   events,
		metrics:  m,
		logger:   logger,
		clock:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Subscribe upserts the subscriber record for email and grants access.
// Repeat calls for the same email re-assert the grant without creating a
// second record or touching subscribedAt.
func (s *Service) Subscribe(ctx context.Context, email string) (SubscribeResult, error) {
	ctx, span := tracer.Start(ctx, "subscriber.Subscribe")
	defer span.End()

	if email == "" {
		return SubscribeResult{}, dErrors.New(dErrors.CodeValidation, "email is required")
	}

	signupDevice := device.ParseUserAgent(middleware.GetUserAgent(ctx))
	created, err := s.store.Upsert(ctx, email, s.clock(), signupDevice)
	if err != nil {
		return SubscribeResult{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "subscriber store unavailable")
	}
	span.SetAttributes(attribute.Bool("subscriber.created", created))

	s.metrics.AccessGrants.Inc()
	if created {
		s.metrics.SubscribersCreated.Inc()
		s.emit(ctx, leadevent.KindSubscriberCreated, email)
	}
	s.emit(ctx, leadevent.KindAccessGranted, email)

	if err := s.notifier.Publish(ctx, email); err != nil {
		// Watchers heal on their next check; the grant itself succeeded.
		s.logger.WarnContext(ctx, "access notification failed",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
	}

	return SubscribeResult{IsNew: created, HasAccess: true}, nil
}

func (s *Service) emit(ctx context.Context, kind leadevent.Kind, email string) {
	if s.events == nil {
		return
	}
	if err := s.events.Emit(ctx, leadevent.Event{Kind: kind, Email: email}); err != nil {
		s.logger.WarnContext(ctx, "lead event dropped",
			"kind", string(kind),
			"error", err.Error(),
		)
	}
}

// CheckAccess is a pure lookup. An empty email short-circuits without
// querying the store.
func (s *Service) CheckAccess(ctx context.Context, email string) (AccessStatus, error) {
	ctx, span := tracer.Start(ctx, "subscriber.CheckAccess")
	defer span.End()

	if email == "" {
		return AccessStatus{}, nil
	}

	s.metrics.AccessChecks.Inc()
	sub, err := s.store.FindByEmail(ctx, email)
	if errors.Is(err, sentinel.ErrNotFound) {
		return AccessStatus{Exists: false, HasAccess: false}, nil
	}
	if err != nil {
		return AccessStatus{}, dErrors.Wrap(err, dErrors.CodeUnavailable, "subscriber store unavailable")
	}
	return AccessStatus{Exists: true, HasAccess: sub.AccessGranted}, nil
}

// Watch streams the access status for email: the current status
// immediately, then a fresh lookup after every change notification for that
// email. The stream ends when ctx does.
func (s *Service) Watch(ctx context.Context, email string) (<-chan AccessStatus, error) {
	if email == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "email is required")
	}

	changes, err := s.notifier.Subscribe(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "access notifier unavailable")
	}

	out := make(chan AccessStatus, 1)
	go func() {
		defer close(out)

		push := func() {
			status, err := s.CheckAccess(ctx, email)
			if err != nil {
				s.logger.WarnContext(ctx, "watch re-check failed", "error", err.Error())
				return
			}
			// Keep only the latest status for slow readers.
			select {
			case <-out:
			default:
			}
			out <- status
		}

		push()
		for changed := range changes {
			if changed != email {
				continue
			}
			push()
		}
	}()

	return out, nil
}
