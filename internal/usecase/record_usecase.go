package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/infrastructure/metrics"
)

// RecordUseCase is the record engine: it owns record creation and deletion
// and derives every balance and goal side effect. A record and its effects
// are one unit of work; callers never observe a partially-applied record.
type RecordUseCase struct {
	txManager    TransactionManager
	recordRepo   RecordRepository
	entryRepo    EntryRepository
	accountRepo  AccountRepository
	goalRepo     GoalRepository
	bookRepo     BookRepository
	categoryRepo CategoryRepository
	outboxRepo   OutboxRepository
	idGen        IDGenerator
	metrics      *metrics.Metrics
}

// NewRecordUseCase creates a new RecordUseCase.
func NewRecordUseCase(
	txManager TransactionManager,
	recordRepo RecordRepository,
	entryRepo EntryRepository,
	accountRepo AccountRepository,
	goalRepo GoalRepository,
	bookRepo BookRepository,
	categoryRepo CategoryRepository,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	metrics *metrics.Metrics,
) *RecordUseCase {
	return &RecordUseCase{
		txManager:    txManager,
		recordRepo:   recordRepo,
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		goalRepo:     goalRepo,
		bookRepo:     bookRepo,
		categoryRepo: categoryRepo,
		outboxRepo:   outboxRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreateRecordInput represents input for creating a record.
type CreateRecordInput struct {
	Kind            domain.RecordKind
	Amount          decimal.Decimal
	CategoryID      string
	AccountID       string
	DestAccountID   string
	OccurredAt      time.Time
	BookID          string // resolved to the default book when empty
	Remark          string
	Tags            []string
	GoalID          string
	Currency        string
	ExchangeRate    decimal.Decimal
	RefundOf        string
	ReimbursementOf string // set only by Reimburse
}

// AddRecord validates the input, persists the record and applies its balance
// and goal side effects in a single transaction.
func (uc *RecordUseCase) AddRecord(ctx context.Context, input CreateRecordInput) (*domain.Record, error) {
	start := time.Now()

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	record, err := uc.CreateInTx(ctx, tx, input)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordsCreated.Inc()
		uc.metrics.RecordAmount.Observe(record.Amount.InexactFloat64())
		uc.metrics.RecordDuration.Observe(time.Since(start).Seconds())
	}

	return record, nil
}

// CreateInTx persists a record and all of its side effects inside the given
// transaction. It implements the RecordCreator capability used by the debt
// tracker and the recurring scheduler.
func (uc *RecordUseCase) CreateInTx(ctx context.Context, tx Transaction, input CreateRecordInput) (*domain.Record, error) {
	now := time.Now().UTC()

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

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}

	record := &domain.Record{
		ID:              uc.idGen.Generate(),
		Kind:            input.Kind,
		Amount:          input.Amount,
		CategoryID:      input.CategoryID,
		AccountID:       input.AccountID,
		DestAccountID:   input.DestAccountID,
		OccurredAt:      occurredAt,
		RecordedAt:      now,
		BookID:          bookID,
		Remark:          input.Remark,
		Tags:            input.Tags,
		GoalID:          input.GoalID,
		Reimbursable:    input.Kind == domain.RecordExpense,
		ReimbursementOf: input.ReimbursementOf,
		RefundOf:        input.RefundOf,
		Currency:        input.Currency,
		ExchangeRate:    input.ExchangeRate,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := uc.validateCategory(ctx, record); err != nil {
		return nil, err
	}

	if err := uc.recordRepo.Create(ctx, tx, record); err != nil {
		return nil, err
	}

	if err := uc.applyEffects(ctx, tx, record, false, now); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   record.ID,
		AggregateType: domain.AggregateTypeRecord,
		EventType:     domain.EventTypeRecordCreated,
		Payload: map[string]any{
			"record_id":  record.ID,
			"kind":       string(record.Kind),
			"amount":     record.Amount.String(),
			"book_id":    record.BookID,
			"account_id": record.AccountID,
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteRecord reverses exactly the balance and goal deltas the record
// applied on creation, restores the reimbursable flag on a linked expense,
// and removes the record last. Deleting an expense that still has a live
// reimbursement record is refused.
func (uc *RecordUseCase) DeleteRecord(ctx context.Context, id string) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	record, err := uc.recordRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return err
	}

	if record.Kind == domain.RecordExpense && !record.Reimbursable {
		if _, err := uc.recordRepo.GetReimbursementOf(ctx, tx, record.ID); err == nil {
			return domain.ErrReimbursementAttached
		} else if err != domain.ErrRecordNotFound {
			return err
		}
	}

	now := time.Now().UTC()

	if err := uc.applyEffects(ctx, tx, record, true, now); err != nil {
		return err
	}

	if record.ReimbursementOf != "" {
		if err := uc.recordRepo.SetReimbursable(ctx, tx, record.ReimbursementOf, true); err != nil {
			return err
		}
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   record.ID,
		AggregateType: domain.AggregateTypeRecord,
		EventType:     domain.EventTypeRecordDeleted,
		Payload: map[string]any{
			"record_id": record.ID,
			"kind":      string(record.Kind),
			"amount":    record.Amount.String(),
			"book_id":   record.BookID,
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return err
	}

	if err := uc.recordRepo.Delete(ctx, tx, record.ID); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	if uc.metrics != nil {
		uc.metrics.RecordsDeleted.Inc()
	}

	return nil
}

// Reimburse flips the reimbursable flag on an expense and synthesizes the
// offsetting income record in the same unit of work.
func (uc *RecordUseCase) Reimburse(ctx context.Context, expenseID, accountID string) (*domain.Record, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	expense, err := uc.recordRepo.GetByIDForUpdate(ctx, tx, expenseID)
	if err != nil {
		return nil, err
	}

	if expense.Kind != domain.RecordExpense || !expense.Reimbursable {
		return nil, domain.ErrNotReimbursable
	}

	if err := uc.recordRepo.SetReimbursable(ctx, tx, expense.ID, false); err != nil {
		return nil, err
	}

	income, err := uc.CreateInTx(ctx, tx, CreateRecordInput{
		Kind:            domain.RecordIncome,
		Amount:          expense.Amount,
		CategoryID:      expense.CategoryID,
		AccountID:       accountID,
		BookID:          expense.BookID,
		Remark:          "(reimbursement) " + expense.Remark,
		Currency:        expense.Currency,
		ExchangeRate:    expense.ExchangeRate,
		ReimbursementOf: expense.ID,
	})
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.ReimbursementsCreated.Inc()
	}

	return income, nil
}

// GetRecord retrieves a record by ID.
func (uc *RecordUseCase) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return uc.recordRepo.GetByID(ctx, id)
}

// ListRecordsInput represents input for listing records.
type ListRecordsInput struct {
	BookID string
	Filter RecordFilter
}

// ListRecords lists a book's records, archived excluded unless requested.
// An empty book id resolves to the default book.
func (uc *RecordUseCase) ListRecords(ctx context.Context, input ListRecordsInput) ([]*domain.Record, error) {
	if input.BookID == "" {
		book, err := uc.bookRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		input.BookID = book.ID
	}
	if input.Filter.Limit <= 0 {
		input.Filter.Limit = 20
	}
	if input.Filter.Limit > 100 {
		input.Filter.Limit = 100
	}
	return uc.recordRepo.ListByBook(ctx, input.BookID, input.Filter)
}

// validateCategory checks that the category exists and its kind matches the
// record direction. Transfers carry no category.
func (uc *RecordUseCase) validateCategory(ctx context.Context, record *domain.Record) error {
	if record.Kind == domain.RecordTransfer {
		return nil
	}

	category, err := uc.categoryRepo.GetByID(ctx, record.CategoryID)
	if err != nil {
		return err
	}

	// A reimbursement keeps the expense's category so the category nets to
	// zero, which means an income record carrying an expense category.
	if record.ReimbursementOf != "" {
		return nil
	}

	switch {
	case record.Kind == domain.RecordExpense && category.Kind != domain.CategoryExpense:
		return domain.ErrCategoryKindMismatch
	case record.Kind == domain.RecordIncome && category.Kind != domain.CategoryIncome:
		return domain.ErrCategoryKindMismatch
	}

	return nil
}

// applyEffects writes the balance entries and the goal delta for a record.
// With reverse set, every delta is negated: deletion is the exact algebraic
// inverse of creation.
func (uc *RecordUseCase) applyEffects(ctx context.Context, tx Transaction, record *domain.Record, reverse bool, now time.Time) error {
	deltas := map[string]decimal.Decimal{}
	if record.AccountID != "" {
		deltas[record.AccountID] = record.SourceDelta()
	}
	if record.DestAccountID != "" {
		deltas[record.DestAccountID] = record.DestDelta()
	}

	if len(deltas) > 0 {
		// Lock accounts in sorted order (deadlock prevention).
		ids := make([]string, 0, len(deltas))
		for id := range deltas {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		accounts, err := uc.accountRepo.GetByIDsForUpdate(ctx, tx, ids)
		if err != nil {
			return err
		}
		if len(accounts) != len(ids) {
			return domain.ErrAccountNotFound
		}

		for _, account := range accounts {
			delta := deltas[account.ID]
			if reverse {
				delta = delta.Neg()
			}

			newBalance := account.ApplyDelta(delta)
			entry := &domain.Entry{
				ID:              uc.idGen.Generate(),
				AccountID:       account.ID,
				RecordID:        record.ID,
				Amount:          delta,
				PreviousBalance: account.Balance,
				CurrentBalance:  newBalance,
				AccountVersion:  account.Version + 1,
				CreatedAt:       now,
			}
			if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
				return err
			}
			if err := uc.accountRepo.UpdateBalance(ctx, tx, account.ID, newBalance, now); err != nil {
				return err
			}
		}
	}

	if record.GoalID != "" {
		goal, err := uc.goalRepo.GetByIDForUpdate(ctx, tx, record.GoalID)
		if err != nil {
			return err
		}

		delta := record.GoalDelta()
		if reverse {
			delta = delta.Neg()
		}

		if err := uc.goalRepo.UpdateProgress(ctx, tx, goal.ID, goal.ApplyDelta(delta)); err != nil {
			return err
		}
	}

	return nil
}
