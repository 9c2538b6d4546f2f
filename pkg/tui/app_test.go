package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/entry"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/store"
)

// stubPersistence is the minimal store double the model needs.
type stubPersistence struct {
	entries []*entry.Entry
}

func (s *stubPersistence) Load(_ context.Context) []*entry.Entry { return s.entries }

func (s *stubPersistence) Save(_ context.Context, entries []*entry.Entry) error {
	s.entries = entries
	return nil
}

func (s *stubPersistence) Watch(_ context.Context) (<-chan store.Event, error) {
	return make(chan store.Event), nil
}

func TestAnsweredCount(t *testing.T) {
	tests := []struct {
		name string
		form entry.Form
		want int
	}{
		{"empty", entry.Form{}, 0},
		{"one", entry.Form{Achievements: "shipped"}, 1},
		{"whitespace only does not count", entry.Form{Anxieties: "   \n"}, 0},
		{"all three", entry.Form{Achievements: "a", Anxieties: "b", Improvements: "c"}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := answeredCount(tt.form); got != tt.want {
				t.Errorf("answeredCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderToasts(t *testing.T) {
	th := Default()

	if got := renderToasts(th, nil); got != "" {
		t.Errorf("empty stack should render nothing, got %q", got)
	}

	active := []notify.Notification{
		{ID: "1", Message: "first in", Kind: notify.KindSuccess},
		{ID: "2", Message: "second in", Kind: notify.KindError},
	}
	got := renderToasts(th, active)
	firstAt := strings.Index(got, "first in")
	secondAt := strings.Index(got, "second in")
	if firstAt < 0 || secondAt < 0 {
		t.Fatalf("missing toast text in %q", got)
	}
	if firstAt > secondAt {
		t.Error("toasts should render oldest first")
	}
	if !strings.Contains(got, "✔") || !strings.Contains(got, "✘") {
		t.Errorf("kind markers missing in %q", got)
	}
}

func TestRenderHistory(t *testing.T) {
	th := Default()

	if got := renderHistory(th, nil, 60); !strings.Contains(got, "No reflections yet") {
		t.Errorf("empty history = %q", got)
	}

	entries := []*entry.Entry{
		nil, // dropped, not rendered
		entry.New("2024-06-01", entry.Form{
			Achievements: "finished the report",
			Anxieties:    "deadline pressure",
			Improvements: "start earlier",
		}, time.Now()),
	}
	got := renderHistory(th, entries, 60)
	for _, want := range []string{
		"Saturday, June 1, 2024",
		questions[0],
		"finished the report",
		"deadline pressure",
		"start earlier",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("history output missing %q", want)
		}
	}
}

func TestFormReadsAllFields(t *testing.T) {
	queue := notify.NewQueue(0)
	defer queue.Close()
	svc := app.New(&stubPersistence{}, queue)

	m := New(context.Background(), svc, queue)
	m.fields[0].SetValue("a")
	m.fields[1].SetValue("b")
	m.fields[2].SetValue("c")

	f := m.form()
	if f.Achievements != "a" || f.Anxieties != "b" || f.Improvements != "c" {
		t.Errorf("form = %+v", f)
	}
}
