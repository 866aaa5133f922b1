package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

func newArchiveFixture(t *testing.T) (*recordFixture, *usecase.ArchiveUseCase) {
	t.Helper()
	rf := newRecordFixture(t)
	uc := usecase.NewArchiveUseCase(rf.txMgr, rf.recordRepo, rf.bookRepo, rf.outboxRepo, mocks.NewMockIDGenerator(), nil)
	return rf, uc
}

func seedRecord(f *recordFixture, id string, kind domain.RecordKind, amount int64, year int) {
	f.recordRepo.Create(context.Background(), nil, &domain.Record{
		ID:         id,
		Kind:       kind,
		Amount:     decimal.NewFromInt(amount),
		OccurredAt: time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC),
		BookID:     "book-1",
	})
}

func TestArchiveUseCase_ArchiveThroughYear(t *testing.T) {
	f, uc := newArchiveFixture(t)

	seedRecord(f, "r-2022", domain.RecordExpense, 100, 2022)
	seedRecord(f, "r-2023", domain.RecordIncome, 50, 2023)
	seedRecord(f, "r-2024", domain.RecordExpense, 10, 2024)

	result, err := uc.ArchiveThroughYear(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ArchivedCount != 2 {
		t.Errorf("archived = %d, want 2", result.ArchivedCount)
	}
	if !result.NetSum.Equal(decimal.NewFromInt(-50)) {
		t.Errorf("net sum = %s, want -50", result.NetSum)
	}

	for id, wantArchived := range map[string]bool{"r-2022": true, "r-2023": true, "r-2024": false} {
		r, err := f.recordRepo.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("get %s: %v", id, err)
		}
		if r.Archived != wantArchived {
			t.Errorf("record %s archived = %v, want %v", id, r.Archived, wantArchived)
		}
	}

	rollover, err := f.recordRepo.GetByID(context.Background(), result.RolloverID)
	if err != nil {
		t.Fatalf("rollover missing: %v", err)
	}
	if rollover.Kind != domain.RecordExpense {
		t.Errorf("rollover kind = %s, want expense for negative net", rollover.Kind)
	}
	if !rollover.Amount.Equal(decimal.NewFromInt(50)) {
		t.Errorf("rollover amount = %s, want 50", rollover.Amount)
	}
	wantDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !rollover.OccurredAt.Equal(wantDate) {
		t.Errorf("rollover date = %s, want %s", rollover.OccurredAt, wantDate)
	}
	if rollover.Archived {
		t.Error("rollover must not itself be archived")
	}
	if rollover.AccountID != "" {
		t.Error("rollover must not be bound to an account")
	}

	// Balance-neutral: no entries were written for the rollover.
	entries, _ := f.entryRepo.ListByRecord(context.Background(), rollover.ID)
	if len(entries) != 0 {
		t.Errorf("rollover wrote %d balance entries, want 0", len(entries))
	}
}

func TestArchiveUseCase_PositiveNetWritesIncomeRollover(t *testing.T) {
	f, uc := newArchiveFixture(t)

	seedRecord(f, "r1", domain.RecordIncome, 200, 2023)
	seedRecord(f, "r2", domain.RecordExpense, 80, 2023)

	result, err := uc.ArchiveThroughYear(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rollover, err := f.recordRepo.GetByID(context.Background(), result.RolloverID)
	if err != nil {
		t.Fatalf("rollover missing: %v", err)
	}
	if rollover.Kind != domain.RecordIncome {
		t.Errorf("rollover kind = %s, want income for positive net", rollover.Kind)
	}
	if !rollover.Amount.Equal(decimal.NewFromInt(120)) {
		t.Errorf("rollover amount = %s, want 120", rollover.Amount)
	}
}

func TestArchiveUseCase_TransfersExcludedFromNet(t *testing.T) {
	f, uc := newArchiveFixture(t)

	seedRecord(f, "r1", domain.RecordIncome, 100, 2023)
	f.recordRepo.Create(context.Background(), nil, &domain.Record{
		ID:            "t1",
		Kind:          domain.RecordTransfer,
		Amount:        decimal.NewFromInt(500),
		AccountID:     "acc-1",
		DestAccountID: "acc-2",
		OccurredAt:    time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC),
		BookID:        "book-1",
	})

	result, err := uc.ArchiveThroughYear(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ArchivedCount != 2 {
		t.Errorf("archived = %d, want 2", result.ArchivedCount)
	}
	if !result.NetSum.Equal(decimal.NewFromInt(100)) {
		t.Errorf("net sum = %s, want 100 with transfer excluded", result.NetSum)
	}
}

func TestArchiveUseCase_NothingMatched(t *testing.T) {
	f, uc := newArchiveFixture(t)

	seedRecord(f, "r1", domain.RecordExpense, 10, 2025)

	result, err := uc.ArchiveThroughYear(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ArchivedCount != 0 {
		t.Errorf("archived = %d, want 0", result.ArchivedCount)
	}
	if result.RolloverID != "" {
		t.Error("no rollover should be written when nothing matched")
	}
	if events := f.outboxRepo.Events(); len(events) != 0 {
		t.Errorf("no-op archive emitted %d events", len(events))
	}
}
