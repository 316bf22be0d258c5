package catalog

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "fixlist/pkg/domain-errors"
)

type TrackerSuite struct {
	suite.Suite
	ctx     context.Context
	store   *InMemoryProgressStore
	tracker *Tracker
}

func (s *TrackerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryProgressStore()
	s.tracker = NewTracker(s.ctx, s.store)
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerSuite))
}

func (s *TrackerSuite) TestSetProgress() {
	s.Run("writes and persists the value", func() {
		s.Require().NoError(s.tracker.SetProgress(s.ctx, 5, ProgressDone))
		s.Equal(ProgressDone, s.tracker.Progress(5))

		persisted, err := s.store.Load(s.ctx)
		s.Require().NoError(err)
		s.Equal(ProgressDone, persisted[5])
	})

	s.Run("setting the same value again is permitted and idempotent", func() {
		s.Require().NoError(s.tracker.SetProgress(s.ctx, 5, ProgressDone))
		s.Require().NoError(s.tracker.SetProgress(s.ctx, 5, ProgressDone))
		s.Equal(ProgressDone, s.tracker.Progress(5))
		s.Equal(1, s.tracker.Stats().CompletedCount)
	})

	s.Run("replaces a prior value", func() {
		s.Require().NoError(s.tracker.SetProgress(s.ctx, 9, ProgressInProgress))
		s.Require().NoError(s.tracker.SetProgress(s.ctx, 9, ProgressDone))
		s.Equal(ProgressDone, s.tracker.Progress(9))
	})

	s.Run("rejects ids outside the catalog", func() {
		err := s.tracker.SetProgress(s.ctx, 0, ProgressDone)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		err = s.tracker.SetProgress(s.ctx, 102, ProgressDone)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("rejects unknown progress labels", func() {
		err := s.tracker.SetProgress(s.ctx, 1, Progress("Almost"))
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *TrackerSuite) TestDefaults() {
	s.Equal(ProgressPending, s.tracker.Progress(42))

	stats := s.tracker.Stats()
	s.Equal(0, stats.CompletedCount)
	s.Equal(0, stats.InProgressCount)
	s.Equal(Size, stats.PendingCount)
}

func (s *TrackerSuite) TestStatsConsistency() {
	// Aggregate invariants must hold after any mutation sequence.
	rng := rand.New(rand.NewSource(7))
	values := []Progress{ProgressPending, ProgressInProgress, ProgressDone}
	for i := 0; i < 300; i++ {
		id := rng.Intn(Size) + 1
		s.Require().NoError(s.tracker.SetProgress(s.ctx, id, values[rng.Intn(len(values))]))

		stats := s.tracker.Stats()
		s.Equal(stats.CompletedCount, stats.CompletedEasy+stats.CompletedMedium+stats.CompletedHard)
		s.Equal(Size, stats.CompletedCount+stats.InProgressCount+stats.PendingCount)
	}
}

func (s *TrackerSuite) TestStatsByDifficulty() {
	s.Require().NoError(s.tracker.SetProgress(s.ctx, 1, ProgressDone))  // Easy
	s.Require().NoError(s.tracker.SetProgress(s.ctx, 40, ProgressDone)) // Medium
	s.Require().NoError(s.tracker.SetProgress(s.ctx, 73, ProgressDone)) // Hard
	s.Require().NoError(s.tracker.SetProgress(s.ctx, 80, ProgressDone)) // Hard
	s.Require().NoError(s.tracker.SetProgress(s.ctx, 2, ProgressInProgress))

	stats := s.tracker.Stats()
	s.Equal(4, stats.CompletedCount)
	s.Equal(1, stats.CompletedEasy)
	s.Equal(1, stats.CompletedMedium)
	s.Equal(2, stats.CompletedHard)
	s.Equal(1, stats.InProgressCount)
	s.Equal(Size-5, stats.PendingCount)
}

func (s *TrackerSuite) TestLoadFallback() {
	// A store that fails to load must not break the tracker.
	tracker := NewTracker(s.ctx, failingLoadStore{})
	s.Equal(ProgressPending, tracker.Progress(1))
	s.Equal(Size, tracker.Stats().PendingCount)
}

type failingLoadStore struct{}

func (failingLoadStore) Load(context.Context) (ProgressMap, error) {
	return nil, context.DeadlineExceeded
}

func (failingLoadStore) Save(context.Context, ProgressMap) error { return nil }
