package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutDay is the calendar date key format used as the per-day
	// business key for reflections.
	LayoutDay = "2006-01-02"

	// LayoutDisplay is the long human-readable form of a day key.
	LayoutDisplay = "Monday, January 2, 2006"
)

// DayKey derives the calendar date key for t in local time.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDay)
}

// Today returns the date key for the current local day.
func Today() string {
	return DayKey(time.Now())
}

// ParseDay parses a day key back into a local midnight time.
func ParseDay(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutDay, key, time.Local)
}

// DisplayDate renders a day key as a long date, e.g.
// "Monday, January 2, 2006". Unparseable keys are returned as-is.
func DisplayDate(key string) string {
	t, err := ParseDay(key)
	if err != nil {
		return key
	}
	return t.Format(LayoutDisplay)
}

// TimeAgo renders a day key relative to now: "Today", "Yesterday",
// then whole days, weeks under a month, and months beyond that.
// Unparseable keys are returned as-is.
func TimeAgo(key string, now time.Time) string {
	t, err := ParseDay(key)
	if err != nil {
		return key
	}
	days := int(now.Sub(t).Hours() / 24)
	if days < 0 {
		days = -days
	}
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		return fmt.Sprintf("%d weeks ago", days/7)
	default:
		return fmt.Sprintf("%d months ago", days/30)
	}
}
