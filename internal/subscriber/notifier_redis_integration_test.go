//go:build integration

package subscriber_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"fixlist/internal/subscriber"
	"fixlist/pkg/testutil/containers"
)

type RedisNotifierSuite struct {
	suite.Suite
	redis *containers.RedisContainer
}

func TestRedisNotifierSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisNotifierSuite))
}

func (s *RedisNotifierSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
}

func (s *RedisNotifierSuite) TestPublishReachesSubscriber() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	notifier := subscriber.NewRedisNotifier(s.redis.Client)

	emails, err := notifier.Subscribe(ctx)
	s.Require().NoError(err)

	s.Require().NoError(notifier.Publish(ctx, "jo@example.com"))

	select {
	case email := <-emails:
		s.Equal("jo@example.com", email)
	case <-ctx.Done():
		s.Fail("timed out waiting for notification")
	}
}

// TestCrossInstanceFanOut models two processes sharing one Redis: a grant
// published by one notifier must reach a watcher subscribed via another.
func (s *RedisNotifierSuite) TestCrossInstanceFanOut() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	publisher := subscriber.NewRedisNotifier(s.redis.Client)
	watcher := subscriber.NewRedisNotifier(s.redis.Client)

	first, err := watcher.Subscribe(ctx)
	s.Require().NoError(err)
	second, err := watcher.Subscribe(ctx)
	s.Require().NoError(err)

	s.Require().NoError(publisher.Publish(ctx, "fanout@example.com"))

	for _, emails := range []<-chan string{first, second} {
		select {
		case email := <-emails:
			s.Equal("fanout@example.com", email)
		case <-ctx.Done():
			s.Fail("timed out waiting for notification")
		}
	}
}

func (s *RedisNotifierSuite) TestSubscriptionClosesWithContext() {
	ctx, cancel := context.WithCancel(context.Background())

	notifier := subscriber.NewRedisNotifier(s.redis.Client)
	emails, err := notifier.Subscribe(ctx)
	s.Require().NoError(err)

	cancel()

	select {
	case _, open := <-emails:
		s.False(open, "channel must close when the context ends")
	case <-time.After(5 * time.Second):
		s.Fail("channel did not close after cancellation")
	}
}
