// Package gate models the email-capture flow controlling entry to the
// catalog: a small state machine driven by the subscriber service, with a
// live access watch that can unlock the session without a resubmit.
package gate

import (
	"context"
	"log/slog"
	"sync"

	"fixlist/internal/subscriber"
	dErrors "fixlist/pkg/domain-errors"
)

// State is the visitor's position in the entry flow.
type State string

const (
	StateLanding    State = "landing"
	StateEmailCheck State = "email-check"
	StateUnlocked   State = "unlocked"
)

// Subscriptions is the slice of the subscriber service the gate drives.
type Subscriptions interface {
	Subscribe(ctx context.Context, email string) (subscriber.SubscribeResult, error)
	Watch(ctx context.Context, email string) (<-chan subscriber.AccessStatus, error)
}

// Session is one visitor's trip through the gate. All methods are safe for
// concurrent use; at most one Submit round-trip is in flight at a time.
type Session struct {
	subs   Subscriptions
	logger *slog.Logger

	mu          sync.Mutex
	state       State
	email       string
	busy        bool
	cancelWatch context.CancelFunc
}

// NewSession starts a session in the Landing state.
func NewSession(subs Subscriptions, logger *slog.Logger) *Session {
	return &Session{
		subs:   subs,
		logger: logger,
		state:  StateLanding,
	}
}

// State reports the current gate state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Email reports the currently entered email.
func (s *Session) Email() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}

// Begin moves from Landing to EmailCheck. It has no side effects and is a
// no-op in any other state.
func (s *Session) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateLanding {
		s.state = StateEmailCheck
	}
}

// SetEmail records the entered email and re-points the live access watch at
// it. Only meaningful in EmailCheck; if the watched record already grants
// access, or is granted access later, the session unlocks without a Submit.
func (s *Session) SetEmail(ctx context.Context, email string) error {
	s.mu.Lock()
	if s.state != StateEmailCheck {
		s.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "email can only be entered during the email check")
	}
	s.email = email
	if s.cancelWatch != nil {
		s.cancelWatch()
		s.cancelWatch = nil
	}
	if email == "" {
		s.mu.Unlock()
		return nil
	}
	watchCtx, cancel := context.WithCancel(ctx)
	s.cancelWatch = cancel
	s.mu.Unlock()

	updates, err := s.subs.Watch(watchCtx, email)
	if err != nil {
		cancel()
		return err
	}
	go s.watch(email, updates)
	return nil
}

// watch unlocks the session when the watched email gains access. It exits
// when the updates channel closes, which the session arranges by cancelling
// the watch context on email change, unlock, or navigate-home.
func (s *Session) watch(email string, updates <-chan subscriber.AccessStatus) {
	for status := range updates {
		if !status.HasAccess {
			continue
		}
		s.mu.Lock()
		if s.state == StateEmailCheck && s.email == email {
			s.unlockLocked()
			s.logger.Info("access granted by live check", "email", email)
		}
		s.mu.Unlock()
		return
	}
}

// Submit runs the subscribe round-trip for the entered email. While one
// round-trip is outstanding further submits are rejected so a double-click
// cannot write twice. On store failure the session stays in EmailCheck and
// the visitor may simply resubmit.
func (s *Session) Submit(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateEmailCheck {
		s.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "not in the email check step")
	}
	if s.busy {
		s.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "a submission is already in progress")
	}
	s.busy = true
	email := s.email
	s.mu.Unlock()

	res, err := s.subs.Subscribe(ctx, email)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.busy = false
	if err != nil {
		return err
	}
	if res.HasAccess && s.state == StateEmailCheck {
		s.unlockLocked()
	}
	return nil
}

// NavigateHome returns to Landing, discarding the entered email and the
// access watch.
func (s *Session) NavigateHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateLanding
	s.email = ""
	if s.cancelWatch != nil {
		s.cancelWatch()
		s.cancelWatch = nil
	}
}

func (s *Session) unlockLocked() {
	s.state = StateUnlocked
	if s.cancelWatch != nil {
		s.cancelWatch()
		s.cancelWatch = nil
	}
}
