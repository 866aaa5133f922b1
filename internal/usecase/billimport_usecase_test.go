package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

func newBillImportFixture(t *testing.T) (*recordFixture, *usecase.BillImportUseCase) {
	t.Helper()
	rf := newRecordFixture(t)

	// Give the matcher something to hit.
	food, _ := rf.catRepo.GetByID(context.Background(), "cat-food")
	food.Keywords = []string{"coffee", "lunch"}
	rf.catRepo.Update(context.Background(), food)

	matcher := usecase.NewKeywordMatcher(rf.catRepo)
	return rf, usecase.NewBillImportUseCase(rf.txMgr, rf.uc, matcher)
}

func TestBillImportUseCase_Import(t *testing.T) {
	f, uc := newBillImportFixture(t)

	occurredAt := time.Date(2025, time.April, 2, 8, 30, 0, 0, time.UTC)
	result, err := uc.Import(context.Background(), "book-1", []usecase.BillDraft{
		{Amount: decimal.NewFromInt(4), OccurredAt: occurredAt, Remark: "morning coffee", AccountID: "acc-1"},
		{Kind: domain.RecordIncome, Amount: decimal.NewFromInt(500), OccurredAt: occurredAt, Remark: "refund", AccountID: "acc-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Created) != 2 {
		t.Fatalf("created = %d, want 2", len(result.Created))
	}
	if result.Created[0].Kind != domain.RecordExpense {
		t.Errorf("draft without kind should default to expense, got %s", result.Created[0].Kind)
	}
	if result.Created[0].CategoryID != "cat-food" {
		t.Errorf("inferred category = %q, want cat-food", result.Created[0].CategoryID)
	}
	if result.Created[1].CategoryID != "cat-salary" {
		t.Errorf("income fallback category = %q, want cat-salary", result.Created[1].CategoryID)
	}

	// 100 - 4 + 500
	if got := f.balance(t, "acc-1"); !got.Equal(decimal.NewFromInt(596)) {
		t.Errorf("balance = %s, want 596", got)
	}
}

func TestBillImportUseCase_MalformedDraftFailsBatch(t *testing.T) {
	f, uc := newBillImportFixture(t)

	occurredAt := time.Date(2025, time.April, 2, 8, 30, 0, 0, time.UTC)
	tests := []struct {
		name  string
		draft usecase.BillDraft
	}{
		{name: "non-positive amount", draft: usecase.BillDraft{Amount: decimal.Zero, OccurredAt: occurredAt, Remark: "x"}},
		{name: "missing occurrence time", draft: usecase.BillDraft{Amount: decimal.NewFromInt(5), Remark: "x"}},
		{name: "transfer kind", draft: usecase.BillDraft{Kind: domain.RecordTransfer, Amount: decimal.NewFromInt(5), OccurredAt: occurredAt}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Import(context.Background(), "book-1", []usecase.BillDraft{
				tt.draft,
				{Amount: decimal.NewFromInt(4), OccurredAt: occurredAt, Remark: "coffee", AccountID: "acc-1"},
			})
			if !errors.Is(err, domain.ErrInvalidDraft) {
				t.Fatalf("error = %v, want ErrInvalidDraft", err)
			}
		})
	}

	// Nothing from the failed batches landed.
	records, _ := f.recordRepo.ListByBook(context.Background(), "book-1", usecase.RecordFilter{})
	if len(records) != 0 {
		t.Errorf("failed batches left %d records behind", len(records))
	}
}
