package domain

import "github.com/shopspring/decimal"

// Settings are the UI-owned values the core consumes: the monthly budget and
// the billing-cycle start day feed the insight engine, the theme rides along
// in snapshots.
type Settings struct {
	MonthlyBudget   decimal.Decimal
	BillingStartDay int // 1..28
	Theme           string
}

// DefaultSettings returns the values used before the user ever saves any.
func DefaultSettings() *Settings {
	return &Settings{
		MonthlyBudget:   decimal.Zero,
		BillingStartDay: 1,
		Theme:           "auto",
	}
}
