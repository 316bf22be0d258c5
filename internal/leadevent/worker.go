package leadevent

import (
	"context"
	"log/slog"
	"time"
)

// Worker drains the outbox to the publisher in batches. Failed batches stay
// pending and are retried on the next tick; duplicates downstream are
// acceptable, lost events are not.
type Worker struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	interval  time.Duration
	batchSize int
}

func NewWorker(store Store, publisher Publisher, logger *slog.Logger) *Worker {
	return &Worker{
		store:     store,
		publisher: publisher,
		logger:    logger,
		interval:  2 * time.Second,
		batchSize: 100,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				w.logger.WarnContext(ctx, "lead event drain failed", "error", err.Error())
			}
		}
	}
}

func (w *Worker) drain(ctx context.Context) error {
	events, err := w.store.ListPending(ctx, w.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	if err := w.publisher.Publish(ctx, events); err != nil {
		return err
	}
	ids := make([]string, len(events))
	for i, e := range events {
		ids[i] = e.ID
	}
	return w.store.MarkPublished(ctx, ids)
}
