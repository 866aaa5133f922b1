package domain

import "time"

// BillingCycle is a monthly window whose start day is configurable. The end
// is exclusive: a cycle starting Jan 5 covers [Jan 5 00:00, Feb 5 00:00).
type BillingCycle struct {
	Start time.Time
	End   time.Time
}

// CycleFor returns the billing cycle containing ref for the given start day.
// Start days are limited to 1..28 elsewhere, so the anchor day exists in
// every month.
func CycleFor(ref time.Time, startDay int) BillingCycle {
	if startDay < 1 {
		startDay = 1
	}

	year, month, _ := ref.Date()
	start := time.Date(year, month, startDay, 0, 0, 0, 0, ref.Location())
	if ref.Day() < startDay {
		start = start.AddDate(0, -1, 0)
	}

	return BillingCycle{Start: start, End: start.AddDate(0, 1, 0)}
}

// Previous returns the cycle immediately before this one.
func (c BillingCycle) Previous() BillingCycle {
	return BillingCycle{Start: c.Start.AddDate(0, -1, 0), End: c.Start}
}

// Contains reports whether t falls inside the cycle.
func (c BillingCycle) Contains(t time.Time) bool {
	return !t.Before(c.Start) && t.Before(c.End)
}
