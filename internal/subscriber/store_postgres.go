package subscriber

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fixlist/pkg/platform/sentinel"
)

// PostgresStore persists subscribers in PostgreSQL. Uniqueness-by-email is
// enforced by the primary key; the upsert rides ON CONFLICT so repeat
// subscribes never race into duplicate rows.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the subscribers table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS subscribers (
			email          TEXT PRIMARY KEY,
			subscribed_at  TIMESTAMPTZ NOT NULL,
			access_granted BOOLEAN NOT NULL DEFAULT FALSE,
			signup_device  TEXT NOT NULL DEFAULT ''
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate subscribers: %w", err)
	}
	return nil
}

func (s *PostgresStore) Upsert(ctx context.Context, email string, now time.Time, signupDevice string) (bool, error) {
	// xmax = 0 distinguishes a fresh insert from a conflict-update.
	// subscribed_at and signup_device keep their original values on repeat
	// subscribes; only the access flag is re-asserted.
	const query = `
		INSERT INTO subscribers (email, subscribed_at, access_granted, signup_device)
		VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (email) DO UPDATE SET
			access_granted = TRUE
		RETURNING (xmax = 0) AS created
	`
	var created bool
	if err := s.db.QueryRowContext(ctx, query, email, now, signupDevice).Scan(&created); err != nil {
		return false, fmt.Errorf("upsert subscriber: %w", err)
	}
	return created, nil
}

func (s *PostgresStore) FindByEmail(ctx context.Context, email string) (Subscriber, error) {
	const query = `
		SELECT email, subscribed_at, access_granted, signup_device
		FROM subscribers
		WHERE email = $1
	`
	var sub Subscriber
	err := s.db.QueryRowContext(ctx, query, email).
		Scan(&sub.Email, &sub.SubscribedAt, &sub.AccessGranted, &sub.SignupDevice)
	if errors.Is(err, sql.ErrNoRows) {
		return Subscriber{}, sentinel.ErrNotFound
	}
	if err != nil {
		return Subscriber{}, fmt.Errorf("find subscriber: %w", err)
	}
	return sub, nil
}
