package stats

import "time"

// RecordActivity updates the consecutive-day streak for activity at now.
// Same-day repeats are no-ops, the day after the last activity extends the
// streak, and any gap resets it to 1. Returns true if the streak changed.
func (a *Aggregator) RecordActivity(now time.Time) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	today := dayOf(now)
	switch {
	case a.lastActive.IsZero():
		if a.streak == 0 {
			a.streak = 1
		}
		a.lastActive = today
		return true
	case today.Equal(dayOf(a.lastActive)):
		return false
	case today.Equal(dayOf(a.lastActive).AddDate(0, 0, 1)):
		a.streak++
		a.lastActive = today
		return true
	default:
		a.streak = 1
		a.lastActive = today
		return true
	}
}

// dayOf truncates a time to its UTC calendar day.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
