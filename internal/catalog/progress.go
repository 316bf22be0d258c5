package catalog

import (
	"context"
	"fmt"
	"sync"

	dErrors "fixlist/pkg/domain-errors"
)

// ProgressMap maps fix ids to their tracked progress. Ids absent from the
// map are Pending.
type ProgressMap map[int]Progress

// Effective returns the progress for id, defaulting to Pending.
func (m ProgressMap) Effective(id int) Progress {
	if p, ok := m[id]; ok {
		return p
	}
	return ProgressPending
}

// Clone returns an independent copy of the map.
func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for id, p := range m {
		out[id] = p
	}
	return out
}

// ProgressStore persists the progress map wholesale. Implementations must
// treat missing or unreadable state as an empty map, never as an error the
// visitor sees.
type ProgressStore interface {
	Load(ctx context.Context) (ProgressMap, error)
	Save(ctx context.Context, m ProgressMap) error
}

// Stats are the aggregates derived from the progress map. They are always
// recomputed, never stored, so they cannot drift from the map.
type Stats struct {
	CompletedCount  int `json:"completedCount"`
	InProgressCount int `json:"inProgressCount"`
	PendingCount    int `json:"pendingCount"`

	CompletedEasy   int `json:"completedEasy"`
	CompletedMedium int `json:"completedMedium"`
	CompletedHard   int `json:"completedHard"`
}

// Tracker owns the visitor's progress map. Mutations re-persist the whole
// map through the injected store and invalidate nothing: aggregates are
// computed on demand from the map alone.
type Tracker struct {
	mu    sync.RWMutex
	store ProgressStore
	m     ProgressMap
}

// NewTracker loads persisted progress through store. A load failure falls
// back to an empty map; local persistence problems are never fatal.
func NewTracker(ctx context.Context, store ProgressStore) *Tracker {
	m, err := store.Load(ctx)
	if err != nil || m == nil {
		m = ProgressMap{}
	}
	return &Tracker{store: store, m: m}
}

// SetProgress records progress for a catalog id and persists the full map.
// Ids outside the catalog are a contract violation, not a recoverable
// condition.
func (t *Tracker) SetProgress(ctx context.Context, id int, p Progress) error {
	if !ValidID(id) {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("fix id %d outside catalog range 1..%d", id, Size))
	}
	if !p.Valid() {
		return dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown progress value %q", p))
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.m[id] = p
	if err := t.store.Save(ctx, t.m); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "persist progress")
	}
	return nil
}

// Progress returns the effective progress for id.
func (t *Tracker) Progress(id int) Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.m.Effective(id)
}

// Snapshot returns a copy of the current progress map.
func (t *Tracker) Snapshot() ProgressMap {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.m.Clone()
}

// Stats recomputes the aggregates from the current map. The three
// by-difficulty counts always sum to CompletedCount, and the three top-level
// counts always sum to the catalog size.
func (t *Tracker) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var s Stats
	for id, p := range t.m {
		switch p {
		case ProgressDone:
			s.CompletedCount++
			if fix, ok := ByID(id); ok {
				switch fix.Difficulty {
				case DifficultyEasy:
					s.CompletedEasy++
				case DifficultyMedium:
					s.CompletedMedium++
				case DifficultyHard:
					s.CompletedHard++
				}
			}
		case ProgressInProgress:
			s.InProgressCount++
		}
	}
	s.PendingCount = Size - s.CompletedCount - s.InProgressCount
	return s
}
