package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// DebtUseCase tracks lent and borrowed money. Repayments write back through
// the record engine so account balances stay consistent with debt state.
type DebtUseCase struct {
	txManager  TransactionManager
	debtRepo   DebtRepository
	bookRepo   BookRepository
	outboxRepo OutboxRepository
	records    RecordCreator
	idGen      IDGenerator
}

// NewDebtUseCase creates a new DebtUseCase.
func NewDebtUseCase(
	txManager TransactionManager,
	debtRepo DebtRepository,
	bookRepo BookRepository,
	outboxRepo OutboxRepository,
	records RecordCreator,
	idGen IDGenerator,
) *DebtUseCase {
	return &DebtUseCase{
		txManager:  txManager,
		debtRepo:   debtRepo,
		bookRepo:   bookRepo,
		outboxRepo: outboxRepo,
		records:    records,
		idGen:      idGen,
	}
}

// CreateDebtInput represents input for opening a debt.
type CreateDebtInput struct {
	Direction    domain.DebtDirection
	Principal    decimal.Decimal
	Counterparty string
	Remark       string
	OpenedAt     time.Time
	DueAt        *time.Time
	BookID       string
}

// AddDebt opens a new debt with no repayments.
func (uc *DebtUseCase) AddDebt(ctx context.Context, input CreateDebtInput) (*domain.Debt, error) {
	switch input.Direction {
	case domain.DebtLent, domain.DebtBorrowed:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDebtDirection, input.Direction)
	}
	if err := domain.ValidateAmount(input.Principal); err != nil {
		return nil, err
	}
	if err := domain.ValidateName(input.Counterparty); err != nil {
		return nil, err
	}

	bookID := input.BookID
	if bookID == "" {
		book, err := uc.bookRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		bookID = book.ID
	} else if _, err := uc.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	openedAt := input.OpenedAt
	if openedAt.IsZero() {
		openedAt = time.Now().UTC()
	}

	debt := &domain.Debt{
		ID:           uc.idGen.Generate(),
		Direction:    input.Direction,
		Principal:    input.Principal,
		RepaidAmount: decimal.Zero,
		Counterparty: input.Counterparty,
		Remark:       input.Remark,
		OpenedAt:     openedAt,
		DueAt:        input.DueAt,
		Cleared:      false,
		BookID:       bookID,
	}

	if err := uc.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}

	return debt, nil
}

// GetDebt retrieves a debt by ID.
func (uc *DebtUseCase) GetDebt(ctx context.Context, id string) (*domain.Debt, error) {
	return uc.debtRepo.GetByID(ctx, id)
}

// AddRepaymentInput represents input for repaying part of a debt.
type AddRepaymentInput struct {
	DebtID     string
	Amount     decimal.Decimal
	AccountID  string
	CategoryID string
	Remark     string
	OccurredAt time.Time
}

// AddRepayment settles part of a debt. The amount is clamped to the
// outstanding balance, the repayment row, the updated debt and the
// compensating record all land in one transaction, and fully repaying the
// principal marks the debt cleared. A repayment against a missing or already
// cleared debt is a silent no-op.
func (uc *DebtUseCase) AddRepayment(ctx context.Context, input AddRepaymentInput) (*domain.Repayment, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	debt, err := uc.debtRepo.GetByIDForUpdate(ctx, tx, input.DebtID)
	if err != nil {
		if errors.Is(err, domain.ErrDebtNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if debt.Cleared {
		return nil, nil
	}

	amount := debt.ClampRepayment(input.Amount)
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, nil
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	repayment := &domain.Repayment{
		ID:         uc.idGen.Generate(),
		DebtID:     debt.ID,
		Amount:     amount,
		Remark:     input.Remark,
		OccurredAt: occurredAt,
	}
	if err := uc.debtRepo.CreateRepayment(ctx, tx, repayment); err != nil {
		return nil, err
	}

	debt.RepaidAmount = debt.RepaidAmount.Add(amount)
	if debt.Remaining().IsZero() {
		debt.Cleared = true
	}
	if err := uc.debtRepo.Update(ctx, tx, debt); err != nil {
		return nil, err
	}

	remark := input.Remark
	if remark == "" {
		remark = fmt.Sprintf("repayment: %s", debt.Counterparty)
	}
	categoryID := input.CategoryID
	if categoryID == "" {
		categoryID = debt.CompensatingCategoryID()
	}
	if _, err := uc.records.CreateInTx(ctx, tx, CreateRecordInput{
		Kind:       debt.CompensatingRecordKind(),
		Amount:     amount,
		CategoryID: categoryID,
		AccountID:  input.AccountID,
		OccurredAt: occurredAt,
		BookID:     debt.BookID,
		Remark:     remark,
	}); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   debt.ID,
		AggregateType: domain.AggregateTypeDebt,
		EventType:     domain.EventTypeRepaymentAdded,
		Payload: map[string]any{
			"debt_id":      debt.ID,
			"repayment_id": repayment.ID,
			"amount":       amount.String(),
			"cleared":      debt.Cleared,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return repayment, nil
}

// ListRepayments lists the repayment history of a debt.
func (uc *DebtUseCase) ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error) {
	if _, err := uc.debtRepo.GetByID(ctx, debtID); err != nil {
		return nil, err
	}
	return uc.debtRepo.ListRepayments(ctx, debtID)
}

// DeleteDebt removes a debt and its repayment history. A cleared debt is
// settled history and is refused. Compensating records already written to the
// ledger are kept; deleting the debt does not rewrite history.
func (uc *DebtUseCase) DeleteDebt(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	debt, err := uc.debtRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}
	if debt.Cleared {
		return domain.ErrDebtCleared
	}
	if err := uc.debtRepo.DeleteRepaymentsByDebt(ctx, tx, id); err != nil {
		return err
	}
	if err := uc.debtRepo.Delete(ctx, tx, id); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DebtSummary aggregates outstanding amounts per direction.
type DebtSummary struct {
	TotalReceivable decimal.Decimal
	TotalPayable    decimal.Decimal
}

// ListDebtsOutput is the debt list together with outstanding totals.
type ListDebtsOutput struct {
	Debts   []*domain.Debt
	Summary DebtSummary
}

// ListDebts lists a book's debts with outstanding totals over uncleared ones.
func (uc *DebtUseCase) ListDebts(ctx context.Context, bookID string) (*ListDebtsOutput, error) {
	if bookID == "" {
		book, err := uc.bookRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		bookID = book.ID
	}

	debts, err := uc.debtRepo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	out := &ListDebtsOutput{
		Debts: debts,
		Summary: DebtSummary{
			TotalReceivable: decimal.Zero,
			TotalPayable:    decimal.Zero,
		},
	}
	for _, debt := range debts {
		if debt.Cleared {
			continue
		}
		switch debt.Direction {
		case domain.DebtLent:
			out.Summary.TotalReceivable = out.Summary.TotalReceivable.Add(debt.Remaining())
		case domain.DebtBorrowed:
			out.Summary.TotalPayable = out.Summary.TotalPayable.Add(debt.Remaining())
		}
	}

	return out, nil
}
