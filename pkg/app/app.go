// Package app owns the application state for the daily reflection journal
// and the state machine that accepts at most one submission per calendar
// day.
package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"tableflip.dev/reflect/pkg/entry"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/store"
	"tableflip.dev/reflect/pkg/timeutil"
)

// View names the surface currently presented to the user.
type View string

const (
	ViewToday   View = "today"
	ViewHistory View = "history"
)

var (
	ErrNoPersistence    = errors.New("app: no persistence configured")
	ErrInitialized      = errors.New("app: already initialized")
	ErrAlreadySubmitted = errors.New("app: a reflection is already recorded for today")
	ErrSubmitting       = errors.New("app: a submission is already in flight")
)

// SubmitPause is the deliberate minimum latency between submit intent and
// persistence, so the in-flight state is observable. Its exact duration is
// presentational, not a correctness matter.
const SubmitPause = 300 * time.Millisecond

// State is the whole application state. Reflections are ordered
// newest-first by date key; Today is the entry for the current calendar day
// when one exists; HasSubmittedToday always equals Today != nil.
type State struct {
	View              View
	Reflections       []*entry.Entry
	Today             *entry.Entry
	HasSubmittedToday bool
	Submitting        bool
}

// Service is the submission state machine. It exclusively owns the State;
// renderers read it through Snapshot and feed intents back through
// Initialize, Submit, and SwitchView.
//
// The duplicate-day guard is primarily a caller contract (the presentation
// layer disables resubmission while Submitting), but Submit also refuses
// concurrent calls itself, so back-to-back programmatic submissions cannot
// race past the guard.
type Service struct {
	Persistence store.Persistence
	Notifier    notify.Notifier

	// Now and Pause are overridable in tests; zero values mean time.Now and
	// SubmitPause. A negative Pause disables the pause entirely.
	Now   func() time.Time
	Pause time.Duration

	mu          sync.Mutex
	state       State
	initialized bool
}

func New(p store.Persistence, n notify.Notifier) *Service {
	return &Service{Persistence: p, Notifier: n}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) pause() time.Duration {
	if s.Pause > 0 {
		return s.Pause
	}
	if s.Pause < 0 {
		return 0
	}
	return SubmitPause
}

func (s *Service) notifyUser(message string, kind notify.Kind) {
	if s.Notifier != nil {
		s.Notifier.Notify(message, kind)
	}
}

// Initialize loads the persisted collection, orders it newest-first, and
// derives the per-day flags. It must run once per session before anything
// renders; any further call, even one overlapping the first, is an error.
// A first-time user (empty store) gets a one-time welcome notification.
func (s *Service) Initialize(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return ErrInitialized
	}
	// Claim the session before the load so an overlapping call cannot run
	// the load twice or queue a second welcome notification.
	s.initialized = true
	s.mu.Unlock()

	entries := s.Persistence.Load(ctx)
	sortNewestFirst(entries)

	s.mu.Lock()
	s.state = State{View: ViewToday, Reflections: entries}
	s.refreshDayLocked()
	s.mu.Unlock()

	if len(entries) == 0 {
		s.notifyUser("Welcome to Daily Reflection! Start your mindfulness journey today.", notify.KindInfo)
	}
	return nil
}

// Submit validates nothing itself (callers run Form.Validate first) but
// re-trims defensively, enforces the one-entry-per-day invariant, pauses
// briefly so the in-flight state is visible, and persists before committing
// the in-memory state. A persistence failure leaves HasSubmittedToday
// untouched so the user can retry the same submission.
func (s *Service) Submit(ctx context.Context, f entry.Form) (*entry.Entry, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}

	s.mu.Lock()
	s.refreshDayLocked()
	if s.state.HasSubmittedToday {
		s.mu.Unlock()
		s.notifyUser("You have already submitted a reflection for today", notify.KindError)
		return nil, ErrAlreadySubmitted
	}
	if s.state.Submitting {
		s.mu.Unlock()
		return nil, ErrSubmitting
	}
	s.state.Submitting = true
	day := timeutil.DayKey(s.now())
	prior := append([]*entry.Entry(nil), s.state.Reflections...)
	s.mu.Unlock()

	// Deliberate pause so "saving" is observable. Submissions run to
	// completion; there is no cancellation path.
	if d := s.pause(); d > 0 {
		time.Sleep(d)
	}

	e := entry.New(day, f, s.now())
	updated := append([]*entry.Entry{e}, prior...)

	if err := s.Persistence.Save(ctx, updated); err != nil {
		s.mu.Lock()
		s.state.Submitting = false
		s.mu.Unlock()
		s.notifyUser("Failed to save your reflection. Please try again.", notify.KindError)
		return nil, err
	}

	s.mu.Lock()
	s.state.Reflections = updated
	s.state.Today = e
	s.state.HasSubmittedToday = true
	s.state.Submitting = false
	s.mu.Unlock()

	s.notifyUser("Your reflection has been saved successfully!", notify.KindSuccess)
	return e, nil
}

// Reload re-reads the persisted collection for an already-initialized
// session, keeping the current view. It exists so a running UI can pick up
// edits made to the store from outside the process; unlike Initialize it
// never queues the welcome notification.
func (s *Service) Reload(ctx context.Context) error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}

	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return errors.New("app: not initialized")
	}
	if s.state.Submitting {
		// A submission is about to rewrite the collection anyway.
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	entries := s.Persistence.Load(ctx)
	sortNewestFirst(entries)

	s.mu.Lock()
	s.state.Reflections = entries
	s.refreshDayLocked()
	s.mu.Unlock()
	return nil
}

// SwitchView changes the presented surface. Entering history with nothing
// recorded yet queues an advisory hint.
func (s *Service) SwitchView(v View) {
	s.mu.Lock()
	s.state.View = v
	empty := len(s.state.Reflections) == 0
	s.mu.Unlock()

	if v == ViewHistory && empty {
		s.notifyUser("Complete your first reflection to start building your history!", notify.KindInfo)
	}
}

// Snapshot returns a copy of the current state for rendering. The per-day
// flags are re-derived against the wall clock on every call, so a session
// that crosses midnight rolls over to the new day's Idle state without an
// explicit transition event.
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDayLocked()
	st := s.state
	st.Reflections = append([]*entry.Entry(nil), s.state.Reflections...)
	return st
}

// refreshDayLocked re-derives Today and HasSubmittedToday from the
// collection and the current date. Callers hold s.mu.
func (s *Service) refreshDayLocked() {
	key := timeutil.DayKey(s.now())
	var today *entry.Entry
	for _, e := range s.state.Reflections {
		if e != nil && e.Date == key {
			today = e
			break
		}
	}
	s.state.Today = today
	s.state.HasSubmittedToday = today != nil
}

// sortNewestFirst orders entries reverse-chronologically by date key. Day
// keys compare lexicographically, so plain string comparison is correct.
func sortNewestFirst(entries []*entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if left == nil || right == nil {
			return left != nil
		}
		return left.Date > right.Date
	})
}
