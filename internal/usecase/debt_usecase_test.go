package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

type debtFixture struct {
	*recordFixture
	debtRepo *mocks.MockDebtRepository
	uc       *usecase.DebtUseCase
}

func newDebtFixture(t *testing.T) *debtFixture {
	t.Helper()

	rf := newRecordFixture(t)
	rf.catRepo.Create(context.Background(), &domain.Category{
		ID: domain.CategoryIDDebtCollection, Name: "Debt Collection", Kind: domain.CategoryIncome, IsBuiltin: true,
	})
	rf.catRepo.Create(context.Background(), &domain.Category{
		ID: domain.CategoryIDDebtRepayment, Name: "Debt Repayment", Kind: domain.CategoryExpense, IsBuiltin: true,
	})

	debtRepo := mocks.NewMockDebtRepository()
	uc := usecase.NewDebtUseCase(
		rf.txMgr, debtRepo, rf.bookRepo, rf.outboxRepo, rf.uc,
		mocks.NewMockIDGenerator(),
	)
	return &debtFixture{recordFixture: rf, debtRepo: debtRepo, uc: uc}
}

func TestDebtUseCase_AddDebt(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.CreateDebtInput
		wantErr error
	}{
		{
			name: "lent debt",
			input: usecase.CreateDebtInput{
				Direction:    domain.DebtLent,
				Principal:    decimal.NewFromInt(100),
				Counterparty: "alice",
			},
		},
		{
			name: "borrowed debt",
			input: usecase.CreateDebtInput{
				Direction:    domain.DebtBorrowed,
				Principal:    decimal.NewFromInt(100),
				Counterparty: "bob",
			},
		},
		{
			name: "reject unknown direction",
			input: usecase.CreateDebtInput{
				Direction:    "sideways",
				Principal:    decimal.NewFromInt(100),
				Counterparty: "alice",
			},
			wantErr: domain.ErrInvalidDebtDirection,
		},
		{
			name: "reject non-positive principal",
			input: usecase.CreateDebtInput{
				Direction:    domain.DebtLent,
				Principal:    decimal.Zero,
				Counterparty: "alice",
			},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDebtFixture(t)

			debt, err := f.uc.AddDebt(context.Background(), tt.input)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if debt.Cleared {
				t.Error("new debt should not be cleared")
			}
			if !debt.RepaidAmount.IsZero() {
				t.Errorf("new debt repaid = %s, want 0", debt.RepaidAmount)
			}
			if debt.BookID != "book-1" {
				t.Errorf("debt book = %q, want default book", debt.BookID)
			}
		})
	}
}

func TestDebtUseCase_AddRepayment_Clamp(t *testing.T) {
	f := newDebtFixture(t)

	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID:           "debt-1",
		Direction:    domain.DebtLent,
		Principal:    decimal.NewFromInt(100),
		RepaidAmount: decimal.NewFromInt(80),
		Counterparty: "alice",
		BookID:       "book-1",
	})

	repayment, err := f.uc.AddRepayment(context.Background(), usecase.AddRepaymentInput{
		DebtID:     "debt-1",
		Amount:     decimal.NewFromInt(50),
		AccountID:  "acc-1",
		CategoryID: "cat-salary",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !repayment.Amount.Equal(decimal.NewFromInt(20)) {
		t.Errorf("repayment amount = %s, want clamped 20", repayment.Amount)
	}

	debt, _ := f.debtRepo.GetByID(context.Background(), "debt-1")
	if !debt.RepaidAmount.Equal(decimal.NewFromInt(100)) {
		t.Errorf("repaid = %s, want 100", debt.RepaidAmount)
	}
	if !debt.Cleared {
		t.Error("fully repaid debt should be cleared")
	}

	// A lent repayment writes income to the receiving account.
	if got := f.balance(t, "acc-1"); !got.Equal(decimal.NewFromInt(120)) {
		t.Errorf("account balance = %s, want 120", got)
	}
}

func TestDebtUseCase_AddRepayment_SilentNoOp(t *testing.T) {
	tests := []struct {
		name   string
		debtID string
		setup  func(f *debtFixture)
	}{
		{
			name:   "missing debt",
			debtID: "debt-missing",
			setup:  func(f *debtFixture) {},
		},
		{
			name:   "cleared debt",
			debtID: "debt-1",
			setup: func(f *debtFixture) {
				f.debtRepo.Create(context.Background(), &domain.Debt{
					ID:           "debt-1",
					Direction:    domain.DebtLent,
					Principal:    decimal.NewFromInt(100),
					RepaidAmount: decimal.NewFromInt(100),
					Counterparty: "alice",
					Cleared:      true,
					BookID:       "book-1",
				})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDebtFixture(t)
			tt.setup(f)

			repayment, err := f.uc.AddRepayment(context.Background(), usecase.AddRepaymentInput{
				DebtID:    tt.debtID,
				Amount:    decimal.NewFromInt(10),
				AccountID: "acc-1",
			})
			if err != nil {
				t.Fatalf("expected silent no-op, got error: %v", err)
			}
			if repayment != nil {
				t.Errorf("expected nil repayment, got %+v", repayment)
			}
			if got := f.balance(t, "acc-1"); !got.Equal(decimal.NewFromInt(100)) {
				t.Errorf("balance moved on no-op: %s", got)
			}
		})
	}
}

func TestDebtUseCase_AddRepayment_BorrowedWritesExpense(t *testing.T) {
	f := newDebtFixture(t)

	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID:           "debt-1",
		Direction:    domain.DebtBorrowed,
		Principal:    decimal.NewFromInt(100),
		RepaidAmount: decimal.Zero,
		Counterparty: "bob",
		BookID:       "book-1",
	})

	if _, err := f.uc.AddRepayment(context.Background(), usecase.AddRepaymentInput{
		DebtID:     "debt-1",
		Amount:     decimal.NewFromInt(40),
		AccountID:  "acc-1",
		CategoryID: "cat-food",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Paying back borrowed money leaves the account.
	if got := f.balance(t, "acc-1"); !got.Equal(decimal.NewFromInt(60)) {
		t.Errorf("account balance = %s, want 60", got)
	}

	debt, _ := f.debtRepo.GetByID(context.Background(), "debt-1")
	if debt.Cleared {
		t.Error("partially repaid debt must not be cleared")
	}
	if !debt.Remaining().Equal(decimal.NewFromInt(60)) {
		t.Errorf("remaining = %s, want 60", debt.Remaining())
	}
}

func TestDebtUseCase_AddRepayment_DefaultsBuiltinCategory(t *testing.T) {
	tests := []struct {
		name         string
		direction    domain.DebtDirection
		wantKind     domain.RecordKind
		wantCategory string
	}{
		{
			name:         "lent collects as income",
			direction:    domain.DebtLent,
			wantKind:     domain.RecordIncome,
			wantCategory: domain.CategoryIDDebtCollection,
		},
		{
			name:         "borrowed repays as expense",
			direction:    domain.DebtBorrowed,
			wantKind:     domain.RecordExpense,
			wantCategory: domain.CategoryIDDebtRepayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDebtFixture(t)
			f.debtRepo.Create(context.Background(), &domain.Debt{
				ID:           "debt-1",
				Direction:    tt.direction,
				Principal:    decimal.NewFromInt(100),
				RepaidAmount: decimal.Zero,
				Counterparty: "alice",
				BookID:       "book-1",
			})

			// No category given: the builtin one for the direction is used.
			if _, err := f.uc.AddRepayment(context.Background(), usecase.AddRepaymentInput{
				DebtID:    "debt-1",
				Amount:    decimal.NewFromInt(30),
				AccountID: "acc-1",
			}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			records, _ := f.recordRepo.ListByBook(context.Background(), "book-1", usecase.RecordFilter{})
			if len(records) != 1 {
				t.Fatalf("records = %d, want 1", len(records))
			}
			if records[0].Kind != tt.wantKind {
				t.Errorf("record kind = %s, want %s", records[0].Kind, tt.wantKind)
			}
			if records[0].CategoryID != tt.wantCategory {
				t.Errorf("record category = %q, want %q", records[0].CategoryID, tt.wantCategory)
			}
		})
	}
}

func TestDebtUseCase_DeleteDebt_ClearedRefused(t *testing.T) {
	f := newDebtFixture(t)

	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID:           "debt-1",
		Direction:    domain.DebtLent,
		Principal:    decimal.NewFromInt(100),
		RepaidAmount: decimal.NewFromInt(100),
		Counterparty: "alice",
		Cleared:      true,
		BookID:       "book-1",
	})

	if err := f.uc.DeleteDebt(context.Background(), "debt-1"); !errors.Is(err, domain.ErrDebtCleared) {
		t.Fatalf("delete cleared debt error = %v, want ErrDebtCleared", err)
	}
	if _, err := f.debtRepo.GetByID(context.Background(), "debt-1"); err != nil {
		t.Error("cleared debt should survive the refused delete")
	}
}

func TestDebtUseCase_DeleteDebt_CascadesRepayments(t *testing.T) {
	f := newDebtFixture(t)

	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID:           "debt-1",
		Direction:    domain.DebtLent,
		Principal:    decimal.NewFromInt(100),
		Counterparty: "alice",
		BookID:       "book-1",
	})

	if _, err := f.uc.AddRepayment(context.Background(), usecase.AddRepaymentInput{
		DebtID:     "debt-1",
		Amount:     decimal.NewFromInt(30),
		AccountID:  "acc-1",
		CategoryID: "cat-salary",
	}); err != nil {
		t.Fatalf("add repayment: %v", err)
	}

	if err := f.uc.DeleteDebt(context.Background(), "debt-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := f.debtRepo.GetByID(context.Background(), "debt-1"); !errors.Is(err, domain.ErrDebtNotFound) {
		t.Error("debt still present after delete")
	}
	repayments, _ := f.debtRepo.ListRepayments(context.Background(), "debt-1")
	if len(repayments) != 0 {
		t.Errorf("expected repayments removed, got %d", len(repayments))
	}

	// The compensating record already written is kept.
	if got := f.balance(t, "acc-1"); !got.Equal(decimal.NewFromInt(130)) {
		t.Errorf("balance = %s, want 130", got)
	}
}

func TestDebtUseCase_ListDebts_OutstandingTotals(t *testing.T) {
	f := newDebtFixture(t)

	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID: "d1", Direction: domain.DebtLent, Principal: decimal.NewFromInt(100),
		RepaidAmount: decimal.NewFromInt(40), Counterparty: "a", BookID: "book-1",
	})
	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID: "d2", Direction: domain.DebtBorrowed, Principal: decimal.NewFromInt(200),
		RepaidAmount: decimal.NewFromInt(50), Counterparty: "b", BookID: "book-1",
	})
	f.debtRepo.Create(context.Background(), &domain.Debt{
		ID: "d3", Direction: domain.DebtLent, Principal: decimal.NewFromInt(10),
		RepaidAmount: decimal.NewFromInt(10), Counterparty: "c", Cleared: true, BookID: "book-1",
	})

	out, err := f.uc.ListDebts(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.Debts) != 3 {
		t.Errorf("debts = %d, want 3", len(out.Debts))
	}
	if !out.Summary.TotalReceivable.Equal(decimal.NewFromInt(60)) {
		t.Errorf("receivable = %s, want 60", out.Summary.TotalReceivable)
	}
	if !out.Summary.TotalPayable.Equal(decimal.NewFromInt(150)) {
		t.Errorf("payable = %s, want 150", out.Summary.TotalPayable)
	}
}
