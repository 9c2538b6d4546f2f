package notify

import (
	"testing"
	"time"
)

func TestPushAndActive(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	first := q.Push("saved", KindSuccess)
	second := q.Push("heads up", KindInfo)

	active := q.Active()
	if len(active) != 2 {
		t.Fatalf("got %d active, want 2", len(active))
	}
	if active[0].ID != first.ID || active[1].ID != second.ID {
		t.Errorf("stack order wrong: %v", active)
	}
	if active[0].Kind != KindSuccess || active[1].Kind != KindInfo {
		t.Errorf("kinds wrong: %v", active)
	}
	if first.ID == second.ID {
		t.Error("ids must be distinct")
	}
}

func TestDismissRemovesExactlyOne(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	a := q.Push("a", KindInfo)
	b := q.Push("b", KindInfo)

	if !q.Dismiss(a.ID) {
		t.Fatal("Dismiss should report the record was present")
	}
	if q.Dismiss("no-such-id") {
		t.Error("Dismiss of unknown id should report false")
	}

	waitFor(t, func() bool {
		active := q.Active()
		return len(active) == 1 && active[0].ID == b.ID
	})
}

func TestAutoExpiry(t *testing.T) {
	q := NewQueue(20 * time.Millisecond)
	defer q.Close()

	q.Push("short lived", KindError)

	// First the record enters its exit transition, then it disappears.
	waitFor(t, func() bool {
		active := q.Active()
		return len(active) == 1 && active[0].Expiring
	})
	waitFor(t, func() bool { return len(q.Active()) == 0 })
}

func TestEventsSignalOnChange(t *testing.T) {
	q := NewQueue(time.Minute)
	defer q.Close()

	q.Push("hello", KindInfo)
	select {
	case <-q.Events():
	case <-time.After(time.Second):
		t.Fatal("expected an event after Push")
	}
}

func TestCloseStopsQueue(t *testing.T) {
	q := NewQueue(time.Minute)
	q.Push("pending", KindInfo)
	q.Close()
	if got := q.Active(); len(got) != 0 {
		t.Errorf("active after Close = %v", got)
	}
	q.Push("ignored", KindInfo)
	if got := q.Active(); len(got) != 0 {
		t.Errorf("Push after Close should be dropped, got %v", got)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}
