package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"fixlist/internal/leadevent"
	"fixlist/internal/platform/metrics"
	dErrors "fixlist/pkg/domain-errors"
)

var tracer = otel.Tracer("fixlist/application")

// Events receives lead events emitted by the service. Best-effort.
type Events interface {
	Emit(ctx context.Context, event leadevent.Event) error
}

// Service records audit applications. Submissions always succeed given a
// reachable store; there is no validation beyond URL normalization, matching
// the permissive form this backs.
type Service struct {
	store   Store
	events  Events
	metrics *metrics.Metrics
	logger  *slog.Logger
	clock   func() time.Time
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

func NewService(store Store, events Events, m *metrics.Metrics, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		store:   store,
		events:  events,
		metrics: m,
		logger:  logger,
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Submit normalizes the store URL and inserts a new pending application.
// Returns the new application's id.
func (s *Service) Submit(ctx context.Context, fields Fields) (string, error) {
	ctx, span := tracer.Start(ctx, "application.Submit")
	defer span.End()

	app := AuditApplication{
		ID:             uuid.NewString(),
		Name:           fields.Name,
		Brand:          fields.Brand,
		StoreURL:       NormalizeStoreURL(fields.StoreURL),
		MonthlyAdSpend: fields.MonthlyAdSpend,
		Email:          fields.Email,
		SubmittedAt:    s.clock(),
		Status:         StatusPending,
	}
	if err := s.store.Insert(ctx, app); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "application store unavailable")
	}

	s.metrics.ApplicationsSubmitted.Inc()
	if s.events != nil {
		if err := s.events.Emit(ctx, leadevent.Event{Kind: leadevent.KindApplicationSubmitted, Email: fields.Email}); err != nil {
			s.logger.WarnContext(ctx, "lead event dropped",
				"kind", string(leadevent.KindApplicationSubmitted),
				"error", err.Error(),
			)
		}
	}
	return app.ID, nil
}

// List returns every stored application, oldest first. Operator-only.
func (s *Service) List(ctx context.Context) ([]AuditApplication, error) {
	ctx, span := tracer.Start(ctx, "application.List")
	defer span.End()

	apps, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "application store unavailable")
	}
	return apps, nil
}
