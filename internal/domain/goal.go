package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Progress is driven by records tagged with the
// goal; overshoot past the target is allowed and simply reported as >= 100%.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      *time.Time
	CreatedAt     time.Time
	Icon          string
}

// ApplyDelta returns the new progress after a signed delta, floor-clamped at
// zero. There is no ceiling.
func (g *Goal) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	next := g.CurrentAmount.Add(delta)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}
