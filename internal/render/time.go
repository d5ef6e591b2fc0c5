package render

import (
	"fmt"
	"time"
)

// now is replaced in tests.
var now = time.Now

// TimeAgo renders an epoch-seconds timestamp the way HN does
// ("3 hours ago"). Zero renders as an empty string.
func TimeAgo(unix int64) string {
	if unix == 0 {
		return ""
	}
	d := now().Sub(time.Unix(unix, 0))
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

// FormatDate renders an epoch-seconds timestamp as day/month/year in
// UTC. Zero renders as an empty string.
func FormatDate(unix int64) string {
	if unix == 0 {
		return ""
	}
	t := time.Unix(unix, 0).UTC()
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
