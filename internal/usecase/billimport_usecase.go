package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// BillImportUseCase turns externally parsed bill lines into records. The
// whole batch lands in one transaction so a malformed line aborts the import
// with nothing written.
type BillImportUseCase struct {
	txManager TransactionManager
	records   RecordCreator
	matcher   CategoryMatcher
}

// NewBillImportUseCase creates a new BillImportUseCase.
func NewBillImportUseCase(txManager TransactionManager, records RecordCreator, matcher CategoryMatcher) *BillImportUseCase {
	return &BillImportUseCase{txManager: txManager, records: records, matcher: matcher}
}

// BillDraft is one parsed bill line. Kind is optional and defaults to
// expense; the category is inferred from the remark.
type BillDraft struct {
	Kind       domain.RecordKind
	Amount     decimal.Decimal
	OccurredAt time.Time
	Remark     string
	AccountID  string
}

// ImportResult reports what an import produced.
type ImportResult struct {
	Created []*domain.Record
}

// Import materializes the drafts into records with inferred categories. Any
// draft failing validation fails the whole batch.
func (uc *BillImportUseCase) Import(ctx context.Context, bookID string, drafts []BillDraft) (*ImportResult, error) {
	if len(drafts) == 0 {
		return &ImportResult{}, nil
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	result := &ImportResult{Created: make([]*domain.Record, 0, len(drafts))}
	for i, draft := range drafts {
		record, err := uc.importOne(ctx, tx, bookID, draft)
		if err != nil {
			return nil, fmt.Errorf("draft %d: %w", i, err)
		}
		result.Created = append(result.Created, record)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (uc *BillImportUseCase) importOne(ctx context.Context, tx Transaction, bookID string, draft BillDraft) (*domain.Record, error) {
	kind := draft.Kind
	if kind == "" {
		kind = domain.RecordExpense
	}
	switch kind {
	case domain.RecordExpense, domain.RecordIncome:
	default:
		return nil, fmt.Errorf("%w: kind %q", domain.ErrInvalidDraft, draft.Kind)
	}
	if draft.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidDraft)
	}
	if draft.OccurredAt.IsZero() {
		return nil, fmt.Errorf("%w: missing occurrence time", domain.ErrInvalidDraft)
	}

	categoryID, err := uc.matcher.Match(ctx, draft.Remark, kind)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, err
	}

	return uc.records.CreateInTx(ctx, tx, CreateRecordInput{
		Kind:       kind,
		Amount:     draft.Amount,
		CategoryID: categoryID,
		AccountID:  draft.AccountID,
		OccurredAt: draft.OccurredAt,
		BookID:     bookID,
		Remark:     draft.Remark,
	})
}
