package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordKind carries the direction of a record. Amounts are always strictly
// positive; the kind decides the sign of every derived effect.
type RecordKind string

const (
	RecordExpense  RecordKind = "expense"
	RecordIncome   RecordKind = "income"
	RecordTransfer RecordKind = "transfer"
)

// Record is a single dated financial event: expense, income or transfer.
type Record struct {
	ID              string
	Kind            RecordKind
	Amount          decimal.Decimal
	CategoryID      string
	AccountID       string // source account, optional
	DestAccountID   string // transfer destination
	OccurredAt      time.Time
	RecordedAt      time.Time
	BookID          string
	Remark          string
	Tags            []string
	GoalID          string
	Reimbursable    bool
	ReimbursementOf string // id of the expense this income offsets
	RefundOf        string
	Currency        string
	ExchangeRate    decimal.Decimal // book-currency multiplier, 1 when unset
	Archived        bool
}

// Validate checks the record's intrinsic invariants.
func (r *Record) Validate() error {
	switch r.Kind {
	case RecordExpense, RecordIncome, RecordTransfer:
	default:
		return ErrInvalidRecordKind
	}

	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !r.ExchangeRate.IsZero() && r.ExchangeRate.IsNegative() {
		return ErrInvalidExchangeRate
	}

	if r.Kind == RecordTransfer {
		if r.AccountID == "" || r.DestAccountID == "" {
			return ErrMissingTransferAccount
		}
		if r.AccountID == r.DestAccountID {
			return ErrSameAccount
		}
	}

	return nil
}

// Rate returns the exchange rate, defaulting to 1 when unset.
func (r *Record) Rate() decimal.Decimal {
	if r.ExchangeRate.IsZero() {
		return decimal.NewFromInt(1)
	}
	return r.ExchangeRate
}

// EffectiveAmount is the book-local amount used for aggregation:
// amount times the exchange rate.
func (r *Record) EffectiveAmount() decimal.Decimal {
	return r.Amount.Mul(r.Rate())
}

// SourceDelta is the signed balance effect on the source account.
// Transfers move the raw amount; the rate applies only to cross-currency
// expense/income records.
func (r *Record) SourceDelta() decimal.Decimal {
	switch r.Kind {
	case RecordExpense:
		return r.EffectiveAmount().Neg()
	case RecordIncome:
		return r.EffectiveAmount()
	case RecordTransfer:
		return r.Amount.Neg()
	}
	return decimal.Zero
}

// DestDelta is the signed balance effect on the transfer destination.
func (r *Record) DestDelta() decimal.Decimal {
	if r.Kind != RecordTransfer {
		return decimal.Zero
	}
	return r.Amount
}

// GoalDelta is the signed progress effect on the linked goal. An expense
// tagged with a goal is money put aside (positive progress); an income is a
// withdrawal from the goal.
func (r *Record) GoalDelta() decimal.Decimal {
	if r.GoalID == "" {
		return decimal.Zero
	}
	switch r.Kind {
	case RecordExpense:
		return r.EffectiveAmount()
	case RecordIncome:
		return r.EffectiveAmount().Neg()
	}
	return decimal.Zero
}
