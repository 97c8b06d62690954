package challenges

import "time"

// WeekStartOf returns the Monday 00:00 UTC boundary of the week containing t.
// Challenge rows persisted with an earlier week start are stale and get
// re-issued from the catalog.
func WeekStartOf(t time.Time) time.Time {
	t = t.UTC()
	weekday := int(t.Weekday())
	// time.Weekday has Sunday = 0; shift so Monday is the first day.
	daysSinceMonday := (weekday + 6) % 7
	y, m, d := t.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameWeek reports whether two instants fall in the same Monday-anchored week.
func SameWeek(a, b time.Time) bool {
	return WeekStartOf(a).Equal(WeekStartOf(b))
}
