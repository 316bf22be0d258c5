package leadevent

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type WorkerSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
	svc   *Service
}

func (s *WorkerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
	s.svc = NewService(s.store, WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
}

func TestWorkerSuite(t *testing.T) {
	suite.Run(t, new(WorkerSuite))
}

type capturePublisher struct {
	batches [][]Event
	fail    bool
}

func (p *capturePublisher) Publish(_ context.Context, events []Event) error {
	if p.fail {
		return errors.New("broker down")
	}
	p.batches = append(p.batches, events)
	return nil
}

func (p *capturePublisher) Close() {}

func (s *WorkerSuite) TestEmitFillsIdentity() {
	s.Require().NoError(s.svc.Emit(s.ctx, Event{Kind: KindAccessGranted, Email: "a@b.com"}))

	events := s.store.All()
	s.Require().Len(events, 1)
	s.NotEmpty(events[0].ID)
	s.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), events[0].Timestamp)
}

func (s *WorkerSuite) TestDrainMarksPublished() {
	s.Require().NoError(s.svc.Emit(s.ctx, Event{Kind: KindSubscriberCreated, Email: "a@b.com"}))
	s.Require().NoError(s.svc.Emit(s.ctx, Event{Kind: KindAccessGranted, Email: "a@b.com"}))

	pub := &capturePublisher{}
	worker := NewWorker(s.store, pub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Require().NoError(worker.drain(s.ctx))
	s.Require().Len(pub.batches, 1)
	s.Len(pub.batches[0], 2)

	pending, err := s.store.ListPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Empty(pending)

	// Nothing left to publish on the next pass.
	s.Require().NoError(worker.drain(s.ctx))
	s.Len(pub.batches, 1)
}

func (s *WorkerSuite) TestFailedBatchStaysPending() {
	s.Require().NoError(s.svc.Emit(s.ctx, Event{Kind: KindApplicationSubmitted, Email: "a@b.com"}))

	pub := &capturePublisher{fail: true}
	worker := NewWorker(s.store, pub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.Error(worker.drain(s.ctx))
	pending, err := s.store.ListPending(s.ctx, 10)
	s.Require().NoError(err)
	s.Len(pending, 1)
}
