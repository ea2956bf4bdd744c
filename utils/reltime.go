package utils

import (
	"fmt"
	"time"
)

// RelativeTime renders the distance between now and t as a human phrase,
// e.g. "in 3 days", "5 hours ago", "in less than a minute".
func RelativeTime(t, now time.Time) string {
	d := t.Sub(now)
	past := d < 0
	suffix := func(phrase string) string {
		if past {
			return phrase + " ago"
		}
		return "in " + phrase
	}
	if past {
		d = -d
	}

	switch {
	case d < time.Minute:
		return suffix("less than a minute")
	case d < time.Hour:
		m := int(d.Minutes())
		return suffix(plural(m, "minute"))
	case d < 24*time.Hour:
		h := int(d.Hours())
		return suffix(plural(h, "hour"))
	default:
		days := int(d.Hours() / 24)
		return suffix(plural(days, "day"))
	}
}

// TimeRemaining renders the time until start, or "Expired" once it has passed.
func TimeRemaining(start, now time.Time) string {
	if !start.After(now) {
		return "Expired"
	}
	d := start.Sub(now)
	switch {
	case d < time.Minute:
		return "less than a minute"
	case d < time.Hour:
		return plural(int(d.Minutes()), "minute")
	case d < 24*time.Hour:
		return plural(int(d.Hours()), "hour")
	default:
		return plural(int(d.Hours()/24), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
