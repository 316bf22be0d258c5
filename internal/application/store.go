package application

import "context"

// Store persists audit applications. Insert-only plus a full listing for
// the operator export.
type Store interface {
	Insert(ctx context.Context, app AuditApplication) error
	List(ctx context.Context) ([]AuditApplication, error)
}
