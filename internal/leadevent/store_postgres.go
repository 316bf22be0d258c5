package leadevent

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// PostgresStore implements the outbox on PostgreSQL so pending events
// survive a process restart.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the outbox table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS lead_event_outbox (
			id           UUID PRIMARY KEY,
			kind         TEXT NOT NULL,
			email        TEXT NOT NULL,
			occurred_at  TIMESTAMPTZ NOT NULL,
			published_at TIMESTAMPTZ
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate lead event outbox: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, event Event) error {
	const query = `
		INSERT INTO lead_event_outbox (id, kind, email, occurred_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query, event.ID, event.Kind, event.Email, event.Timestamp); err != nil {
		return fmt.Errorf("append lead event: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListPending(ctx context.Context, limit int) ([]Event, error) {
	const query = `
		SELECT id, kind, email, occurred_at
		FROM lead_event_outbox
		WHERE published_at IS NULL
		ORDER BY occurred_at
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list pending lead events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Kind, &e.Email, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan lead event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *PostgresStore) MarkPublished(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	const query = `
		UPDATE lead_event_outbox
		SET published_at = NOW()
		WHERE id = ANY($1)
	`
	if _, err := s.db.ExecContext(ctx, query, pq.Array(ids)); err != nil {
		return fmt.Errorf("mark lead events published: %w", err)
	}
	return nil
}
