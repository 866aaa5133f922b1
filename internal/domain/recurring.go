package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurringRule materializes into a new record once per calendar month, on or
// after its day of month. A rule with an installment plan deactivates itself
// after the final installment.
type RecurringRule struct {
	ID               string
	Kind             RecordKind
	Amount           decimal.Decimal
	CategoryID       string
	AccountID        string
	Tags             []string
	Remark           string
	DayOfMonth       int // 1..28, so every month has the day
	LastTriggeredAt  time.Time
	Active           bool
	InstallmentTotal int // 0 when the rule is open-ended
	InstallmentPaid  int
}

// HasInstallment reports whether the rule carries a fixed installment plan.
func (r *RecurringRule) HasInstallment() bool {
	return r.InstallmentTotal > 0
}

// ShouldTrigger reports whether the rule fires at the given time: the day of
// month has been reached and the rule has not already fired in the same
// calendar month. Missed months are never backfilled; a rule whose day passed
// without the scheduler running fires exactly once, on the next run.
func (r *RecurringRule) ShouldTrigger(now time.Time) bool {
	if !r.Active {
		return false
	}
	if now.Day() < r.DayOfMonth {
		return false
	}
	return !sameMonth(r.LastTriggeredAt, now)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
