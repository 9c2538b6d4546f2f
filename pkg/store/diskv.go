package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/reflect/pkg/entry"
)

// reflectionsKey is the single fixed store key; the whole collection lives
// under it as one JSON array.
const reflectionsKey = "daily-reflections"

// Persistence is the durable storage contract for the reflection collection.
// The collection is read and replaced whole; there is no per-entry store.
type Persistence interface {
	// Load reads every persisted entry. A missing key, malformed content, or
	// any other read error degrades to an empty collection and is logged;
	// Load never fails.
	Load(ctx context.Context) []*entry.Entry

	// Save serializes and writes the entire collection, replacing prior
	// content. The caller decides what a failure means.
	Save(ctx context.Context, entries []*entry.Entry) error

	// Watch streams a signal whenever the stored collection changes on disk.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A nil
// config loads the default one.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Load(_ context.Context) []*entry.Entry {
	data, err := p.d.Read(reflectionsKey)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "store: read %s: %v\n", reflectionsKey, err)
		}
		return []*entry.Entry{}
	}

	var list []*entry.Entry
	if err := json.Unmarshal(data, &list); err != nil {
		fmt.Fprintf(os.Stderr, "store: decode %s: %v\n", reflectionsKey, err)
		return []*entry.Entry{}
	}

	out := make([]*entry.Entry, 0, len(list))
	for _, e := range list {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

func (p *persistence) Save(_ context.Context, entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", reflectionsKey, err)
	}
	if err := p.d.Write(reflectionsKey, data); err != nil {
		fmt.Fprintf(os.Stderr, "store: write %s: %v\n", reflectionsKey, err)
		return fmt.Errorf("store: write %s: %w", reflectionsKey, err)
	}
	return nil
}
