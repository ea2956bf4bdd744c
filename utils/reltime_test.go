package utils

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"future days", now.Add(3 * 24 * time.Hour), "in 3 days"},
		{"past days", now.Add(-3 * 24 * time.Hour), "3 days ago"},
		{"single day", now.Add(24 * time.Hour), "in 1 day"},
		{"hours", now.Add(5 * time.Hour), "in 5 hours"},
		{"minutes ago", now.Add(-10 * time.Minute), "10 minutes ago"},
		{"sub-minute", now.Add(20 * time.Second), "in less than a minute"},
		{"sub-minute past", now.Add(-20 * time.Second), "less than a minute ago"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeTime(tc.at, now); got != tc.want {
				t.Fatalf("RelativeTime() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTimeRemaining(t *testing.T) {
	now := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	if got := TimeRemaining(now.Add(2*time.Hour), now); got != "2 hours" {
		t.Fatalf("TimeRemaining() = %q, want %q", got, "2 hours")
	}
	if got := TimeRemaining(now.Add(-time.Minute), now); got != "Expired" {
		t.Fatalf("TimeRemaining() = %q, want %q", got, "Expired")
	}
	if got := TimeRemaining(now, now); got != "Expired" {
		t.Fatalf("TimeRemaining() = %q, want %q", got, "Expired")
	}
}
