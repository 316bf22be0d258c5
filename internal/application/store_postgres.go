package application

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists applications in PostgreSQL. No uniqueness
// constraints beyond the surrogate id: repeat submissions are rows, not
// conflicts.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the applications table when it does not exist yet.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS audit_applications (
			id               UUID PRIMARY KEY,
			name             TEXT NOT NULL,
			brand            TEXT NOT NULL,
			store_url        TEXT NOT NULL,
			monthly_ad_spend TEXT NOT NULL,
			email            TEXT NOT NULL,
			submitted_at     TIMESTAMPTZ NOT NULL,
			status           TEXT NOT NULL
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("migrate audit applications: %w", err)
	}
	return nil
}

func (s *PostgresStore) Insert(ctx context.Context, app AuditApplication) error {
	const query = `
		INSERT INTO audit_applications
			(id, name, brand, store_url, monthly_ad_spend, email, submitted_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		app.ID, app.Name, app.Brand, app.StoreURL, app.MonthlyAdSpend,
		app.Email, app.SubmittedAt, app.Status,
	)
	if err != nil {
		return fmt.Errorf("insert audit application: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]AuditApplication, error) {
	const query = `
		SELECT id, name, brand, store_url, monthly_ad_spend, email, submitted_at, status
		FROM audit_applications
		ORDER BY submitted_at
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list audit applications: %w", err)
	}
	defer rows.Close()

	var out []AuditApplication
	for rows.Next() {
		var app AuditApplication
		err := rows.Scan(&app.ID, &app.Name, &app.Brand, &app.StoreURL,
			&app.MonthlyAdSpend, &app.Email, &app.SubmittedAt, &app.Status)
		if err != nil {
			return nil, fmt.Errorf("scan audit application: %w", err)
		}
		out = append(out, app)
	}
	return out, rows.Err()
}
