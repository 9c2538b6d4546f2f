package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"tableflip.dev/reflect/pkg/entry"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func open(t *testing.T) Persistence {
	t.Helper()
	p, err := Open(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	return p
}

func sample(date string) *entry.Entry {
	return entry.New(date, entry.Form{
		Achievements: "went well",
		Anxieties:    "worried a bit",
		Improvements: "sleep earlier",
	}, time.Date(2024, time.June, 1, 21, 0, 0, 0, time.UTC))
}

func TestLoadMissingKeyIsEmpty(t *testing.T) {
	p := open(t)
	got := p.Load(context.Background())
	if got == nil {
		t.Fatal("Load should return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Fatalf("fresh store should be empty, got %d entries", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 3} {
		p := open(t)
		entries := make([]*entry.Entry, 0, n)
		for i := 0; i < n; i++ {
			entries = append(entries, sample("2024-06-0"+string(rune('1'+i))))
		}
		if err := p.Save(context.Background(), entries); err != nil {
			t.Fatalf("save %d entries: %v", n, err)
		}
		got := p.Load(context.Background())
		if len(got) != n {
			t.Fatalf("got %d entries, want %d", len(got), n)
		}
		for i := range entries {
			want := entries[i]
			have := got[i]
			if have.ID != want.ID || have.Date != want.Date ||
				have.Achievements != want.Achievements ||
				have.Anxieties != want.Anxieties ||
				have.Improvements != want.Improvements ||
				!have.Created.Equal(want.Created.Time) {
				t.Errorf("entry %d mismatch: %+v vs %+v", i, have, want)
			}
		}
	}
}

func TestSaveReplacesPriorContent(t *testing.T) {
	p := open(t)
	ctx := context.Background()
	if err := p.Save(ctx, []*entry.Entry{sample("2024-06-01"), sample("2024-06-02")}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := p.Save(ctx, []*entry.Entry{sample("2024-06-03")}); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got := p.Load(ctx)
	if len(got) != 1 || got[0].Date != "2024-06-03" {
		t.Fatalf("save should replace the whole collection, got %v", got)
	}
}

func TestLoadMalformedContentIsEmpty(t *testing.T) {
	base := t.TempDir()
	p, err := Open(testConfig{path: base})
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, reflectionsKey), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := p.Load(context.Background())
	if len(got) != 0 {
		t.Fatalf("malformed content should load as empty, got %v", got)
	}
}

func TestWatchEmitsOnSave(t *testing.T) {
	p := open(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	if err := p.Save(ctx, []*entry.Entry{sample("2024-06-01")}); err != nil {
		t.Fatalf("save: %v", err)
	}

	select {
	case evt := <-ch:
		if evt.Key != reflectionsKey {
			t.Fatalf("unexpected event key %q", evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}
