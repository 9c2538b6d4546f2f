package entry

import (
	"time"
)

// Entry is one persisted daily reflection. Entries are immutable once
// created; the Date key is the business key and at most one entry exists
// per calendar day.
type Entry struct {
	ID           string    `json:"id"`
	Date         string    `json:"date"`
	Achievements string    `json:"achievements"`
	Anxieties    string    `json:"anxieties"`
	Improvements string    `json:"improvements"`
	Created      Timestamp `json:"createdAt"`
}

// New builds a fresh entry for the given day key from form answers. The
// answers are trimmed again here so a caller that skipped validation cannot
// persist padded values. Created is display-only and never used for
// ordering or identity.
func New(date string, f Form, created time.Time) *Entry {
	f = f.Trimmed()
	return &Entry{
		ID:           NewID(),
		Date:         date,
		Achievements: f.Achievements,
		Anxieties:    f.Anxieties,
		Improvements: f.Improvements,
		Created:      Timestamp{Time: created},
	}
}
