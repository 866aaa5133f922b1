package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtDirection tells whose money is outstanding.
type DebtDirection string

const (
	DebtLent     DebtDirection = "lent"     // receivable
	DebtBorrowed DebtDirection = "borrowed" // payable
)

// Debt is a loan given or received, with its repayment history tracked in
// Repayment rows. RepaidAmount must always equal the sum of the debt's
// repayments and can never exceed the principal.
type Debt struct {
	ID           string
	Direction    DebtDirection
	Principal    decimal.Decimal
	RepaidAmount decimal.Decimal
	Counterparty string
	Remark       string
	OpenedAt     time.Time
	DueAt        *time.Time
	Cleared      bool
	BookID       string
}

// Remaining is the outstanding amount.
func (d *Debt) Remaining() decimal.Decimal {
	return d.Principal.Sub(d.RepaidAmount)
}

// ClampRepayment caps a requested repayment at the outstanding amount so
// repayments can never overshoot the principal.
func (d *Debt) ClampRepayment(amount decimal.Decimal) decimal.Decimal {
	if remaining := d.Remaining(); amount.GreaterThan(remaining) {
		return remaining
	}
	return amount
}

// Repayment is one partial settlement of a debt.
type Repayment struct {
	ID         string
	DebtID     string
	Amount     decimal.Decimal
	Remark     string
	OccurredAt time.Time
}

// CompensatingRecordKind is the record direction generated for a repayment:
// money coming back on a lent debt is income, money going out on a borrowed
// debt is an expense.
func (d *Debt) CompensatingRecordKind() RecordKind {
	if d.Direction == DebtLent {
		return RecordIncome
	}
	return RecordExpense
}

// CompensatingCategoryID is the builtin category for a repayment record when
// the caller names none.
func (d *Debt) CompensatingCategoryID() string {
	if d.Direction == DebtLent {
		return CategoryIDDebtCollection
	}
	return CategoryIDDebtRepayment
}
