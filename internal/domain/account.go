package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountKind distinguishes asset account types for presentation; the ledger
// treats them identically.
type AccountKind string

const (
	AccountCash   AccountKind = "cash"
	AccountCredit AccountKind = "credit"
	AccountOther  AccountKind = "other"
)

// Account holds a running balance. The balance is a derived cache: it must
// always equal the sum of every entry ever applied to it by the record engine.
// Negative balances are permitted (overdraft/credit).
type Account struct {
	ID        string
	Name      string
	Kind      AccountKind
	Balance   decimal.Decimal
	Color     string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ApplyDelta returns the new balance after applying a signed delta.
func (a *Account) ApplyDelta(delta decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(delta)
}
