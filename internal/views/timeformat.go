package views

import (
	"fmt"
	"time"
)

// TimeUntil renders a countdown to a unix-seconds timestamp relative to the
// caller-supplied now. Freshness is the caller's problem: re-invoke on every
// render tick, never cache the result.
func TimeUntil(ts int64, now time.Time) string {
	diff := ts - now.Unix()
	if diff <= 0 {
		return "Started"
	}

	hours := diff / 3600
	minutes := (diff % 3600) / 60

	if hours > 24 {
		days := hours / 24
		if days == 1 {
			return "in 1 day"
		}
		return fmt.Sprintf("in %d days", days)
	}

	if hours > 0 {
		return fmt.Sprintf("in %dh %dm", hours, minutes)
	}

	return fmt.Sprintf("in %dm", minutes)
}

// FormatTime renders a unix-seconds timestamp as a local wall-clock time.
func FormatTime(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(ts, 0).In(loc).Format("15:04")
}

// FormatDateTime renders a timestamp the way the deadline list shows due
// dates, e.g. "Jan 2, 15:04".
func FormatDateTime(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format("Jan 2, 15:04")
}
