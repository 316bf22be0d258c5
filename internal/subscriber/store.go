package subscriber

import (
	"context"
	"time"
)

// Store persists subscribers. Implementations must make Upsert atomic with
// respect to the email key so concurrent subscribes of the same address
// cannot create two records.
type Store interface {
	// Upsert grants access to email. If no record exists one is created
	// with subscribedAt=now and created=true is returned. If a record
	// exists its accessGranted flag is forced true (idempotent re-grant),
	// subscribedAt and signupDevice are left untouched, and created=false.
	Upsert(ctx context.Context, email string, now time.Time, signupDevice string) (created bool, err error)

	// FindByEmail returns the record for email or sentinel.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (Subscriber, error)
}
