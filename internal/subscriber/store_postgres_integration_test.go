//go:build integration

package subscriber_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fixlist/internal/subscriber"
	"fixlist/pkg/platform/sentinel"
	"fixlist/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *subscriber.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = subscriber.NewPostgresStore(s.postgres.DB)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "subscribers"))
}

func (s *PostgresStoreSuite) TestUpsert() {
	ctx := context.Background()
	first := time.Date(2026, 2, 12, 9, 0, 0, 0, time.UTC)

	created, err := s.store.Upsert(ctx, "jo@example.com", first, "Firefox on Linux")
	s.Require().NoError(err)
	s.True(created)

	created, err = s.store.Upsert(ctx, "jo@example.com", first.Add(48*time.Hour), "Safari on iOS")
	s.Require().NoError(err)
	s.False(created)

	sub, err := s.store.FindByEmail(ctx, "jo@example.com")
	s.Require().NoError(err)
	s.True(sub.AccessGranted)
	s.True(sub.SubscribedAt.Equal(first), "original subscription time must survive a repeat subscribe")
	s.Equal("Firefox on Linux", sub.SignupDevice)
}

func (s *PostgresStoreSuite) TestFindByEmailMissing() {
	_, err := s.store.FindByEmail(context.Background(), "nobody@example.com")
	s.Require().Error(err)
	s.True(errors.Is(err, sentinel.ErrNotFound))
}

// TestConcurrentUpsert verifies that racing first subscribes for one email
// produce exactly one row and exactly one created=true result.
func (s *PostgresStoreSuite) TestConcurrentUpsert() {
	ctx := context.Background()
	const goroutines = 50

	var wg sync.WaitGroup
	var createdCount atomic.Int32

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			created, err := s.store.Upsert(ctx, "race@example.com", time.Now().UTC(), "")
			if err != nil {
				return
			}
			if created {
				createdCount.Add(1)
			}
		}()
	}

	wg.Wait()

	s.Equal(int32(1), createdCount.Load(), "exactly one upsert should report created")

	sub, err := s.store.FindByEmail(ctx, "race@example.com")
	s.Require().NoError(err)
	s.True(sub.AccessGranted)
}
