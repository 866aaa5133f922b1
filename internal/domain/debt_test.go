package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestDebtClampRepayment(t *testing.T) {
	debt := Debt{
		Principal:    decimal.NewFromInt(100),
		RepaidAmount: decimal.NewFromInt(80),
	}

	// Overshooting request stores exactly the remaining amount.
	if got := debt.ClampRepayment(decimal.NewFromInt(50)); !got.Equal(decimal.NewFromInt(20)) {
		t.Errorf("ClampRepayment(50) = %s, want 20", got)
	}

	if got := debt.ClampRepayment(decimal.NewFromInt(10)); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("ClampRepayment(10) = %s, want 10", got)
	}
}

func TestDebtCompensatingRecordKind(t *testing.T) {
	lent := Debt{Direction: DebtLent}
	if got := lent.CompensatingRecordKind(); got != RecordIncome {
		t.Errorf("lent repayment kind = %s, want income", got)
	}

	borrowed := Debt{Direction: DebtBorrowed}
	if got := borrowed.CompensatingRecordKind(); got != RecordExpense {
		t.Errorf("borrowed repayment kind = %s, want expense", got)
	}
}

func TestGoalApplyDeltaClampsAtZero(t *testing.T) {
	goal := Goal{CurrentAmount: decimal.NewFromInt(30)}

	if got := goal.ApplyDelta(decimal.NewFromInt(-50)); !got.IsZero() {
		t.Errorf("ApplyDelta(-50) = %s, want 0", got)
	}

	// No ceiling: overshoot past the target is fine.
	goal.TargetAmount = decimal.NewFromInt(40)
	if got := goal.ApplyDelta(decimal.NewFromInt(100)); !got.Equal(decimal.NewFromInt(130)) {
		t.Errorf("ApplyDelta(100) = %s, want 130", got)
	}
}
