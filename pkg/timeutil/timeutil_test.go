package timeutil

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	now := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if got, want := DayKey(now), "2024-03-05"; got != want {
		t.Errorf("DayKey = %q, want %q", got, want)
	}
}

func TestParseDayRoundTrip(t *testing.T) {
	key := "2024-01-31"
	parsed, err := ParseDay(key)
	if err != nil {
		t.Fatalf("ParseDay(%q): %v", key, err)
	}
	if got := DayKey(parsed); got != key {
		t.Errorf("DayKey(ParseDay(%q)) = %q", key, got)
	}
}

func TestDisplayDate(t *testing.T) {
	if got, want := DisplayDate("2024-01-01"), "Monday, January 1, 2024"; got != want {
		t.Errorf("DisplayDate = %q, want %q", got, want)
	}
	// Unparseable keys pass through untouched.
	if got := DisplayDate("not-a-date"); got != "not-a-date" {
		t.Errorf("DisplayDate passthrough = %q", got)
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)
	cases := []struct {
		key  string
		want string
	}{
		{"2024-06-15", "Today"},
		{"2024-06-14", "Yesterday"},
		{"2024-06-12", "3 days ago"},
		{"2024-06-01", "2 weeks ago"},
		{"2024-03-15", "3 months ago"},
		{"garbage", "garbage"},
	}
	for _, tc := range cases {
		if got := TimeAgo(tc.key, now); got != tc.want {
			t.Errorf("TimeAgo(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
