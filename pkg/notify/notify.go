// Package notify implements the ephemeral, queued, auto-dismissing message
// surface the state machine pushes user-facing outcomes to.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Kind classifies a notification for rendering.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const (
	// DefaultVisible is how long a notification stays on screen before its
	// exit transition begins.
	DefaultVisible = 3 * time.Second

	// ExitGrace is the brief window a dismissed notification lingers in the
	// Expiring state so renderers can animate it out.
	ExitGrace = 300 * time.Millisecond
)

// Notification is one transient user-facing message, independent of entry
// data. Expiring notifications are on their way out and should render faded.
type Notification struct {
	ID       string
	Message  string
	Kind     Kind
	Created  time.Time
	Expiring bool
}

// Notifier is the push capability handed to message producers.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Queue holds the visible notification stack and owns every dismissal timer;
// call sites never schedule their own expiry.
type Queue struct {
	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
	closed bool

	visible time.Duration
	now     func() time.Time
	newID   func() string

	events chan struct{}
}

// NewQueue builds a queue whose notifications stay visible for the given
// duration; zero means DefaultVisible.
func NewQueue(visible time.Duration) *Queue {
	if visible <= 0 {
		visible = DefaultVisible
	}
	return &Queue{
		timers:  make(map[string]*time.Timer),
		visible: visible,
		now:     time.Now,
		newID:   uuid.NewString,
		events:  make(chan struct{}, 1),
	}
}

// Notify implements Notifier.
func (q *Queue) Notify(message string, kind Kind) {
	q.Push(message, kind)
}

// Push queues a notification and schedules its auto-dismissal, returning the
// queued record.
func (q *Queue) Push(message string, kind Kind) Notification {
	q.mu.Lock()
	n := Notification{
		ID:      q.newID(),
		Message: message,
		Kind:    kind,
		Created: q.now(),
	}
	if q.closed {
		q.mu.Unlock()
		return n
	}
	q.active = append(q.active, n)
	q.timers[n.ID] = time.AfterFunc(q.visible, func() { q.beginExit(n.ID) })
	q.mu.Unlock()

	q.signal()
	return n
}

// Dismiss removes exactly one notification by identity, reporting whether it
// was present. The record enters its exit transition and disappears after
// ExitGrace.
func (q *Queue) Dismiss(id string) bool {
	q.mu.Lock()
	found := false
	for i := range q.active {
		if q.active[i].ID == id {
			found = true
			break
		}
	}
	q.mu.Unlock()
	if found {
		q.beginExit(id)
	}
	return found
}

// Active returns a copy of the current notification stack, oldest first.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]Notification(nil), q.active...)
}

// Events signals whenever the stack changes. Signals coalesce; drain and
// re-read Active.
func (q *Queue) Events() <-chan struct{} {
	return q.events
}

// Close stops every pending timer. The queue accepts no further
// notifications afterwards.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	for id, t := range q.timers {
		t.Stop()
		delete(q.timers, id)
	}
	q.active = nil
}

// beginExit flips the record into its exit transition and schedules final
// removal.
func (q *Queue) beginExit(id string) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	if t, ok := q.timers[id]; ok {
		t.Stop()
	}
	changed := false
	for i := range q.active {
		if q.active[i].ID == id && !q.active[i].Expiring {
			q.active[i].Expiring = true
			changed = true
			q.timers[id] = time.AfterFunc(ExitGrace, func() { q.remove(id) })
			break
		}
	}
	q.mu.Unlock()
	if changed {
		q.signal()
	}
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	if t, ok := q.timers[id]; ok {
		t.Stop()
		delete(q.timers, id)
	}
	changed := false
	kept := q.active[:0]
	for _, n := range q.active {
		if n.ID == id {
			changed = true
			continue
		}
		kept = append(kept, n)
	}
	q.active = kept
	q.mu.Unlock()
	if changed {
		q.signal()
	}
}

func (q *Queue) signal() {
	select {
	case q.events <- struct{}{}:
	default:
	}
}
