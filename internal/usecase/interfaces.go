package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// BookRepository defines data access for ledger books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	GetDefault(ctx context.Context) (*domain.Book, error)
	List(ctx context.Context) ([]*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository defines data access for the category catalog.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	ListByKind(ctx context.Context, kind domain.CategoryKind) ([]*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id string) error
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsForUpdate(ctx context.Context, tx Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	Update(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// RecordFilter narrows record listings. The zero value lists current
// (non-archived) records newest first.
type RecordFilter struct {
	From            *time.Time
	To              *time.Time
	Kind            *domain.RecordKind
	CategoryID      string
	IncludeArchived bool
	Limit           int
	Offset          int
}

// RecordRepository defines data access for records.
type RecordRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.Record) error
	GetByID(ctx context.Context, id string) (*domain.Record, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Record, error)
	// GetReimbursementOf returns the live reimbursement income linked to an
	// expense, or domain.ErrRecordNotFound when none exists.
	GetReimbursementOf(ctx context.Context, tx Transaction, expenseID string) (*domain.Record, error)
	SetReimbursable(ctx context.Context, tx Transaction, id string, reimbursable bool) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListByBook(ctx context.Context, bookID string, filter RecordFilter) ([]*domain.Record, error)
	// ListUnarchivedThroughYear returns every non-archived record whose
	// occurrence year is <= year, across all books.
	ListUnarchivedThroughYear(ctx context.Context, tx Transaction, year int) ([]*domain.Record, error)
	MarkArchivedThroughYear(ctx context.Context, tx Transaction, year int) (int, error)
	SumEffectiveByKind(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (decimal.Decimal, error)
	SumEffectiveByCategory(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (map[string]decimal.Decimal, error)
}

// EntryRepository defines data access for balance entries.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	ListByRecord(ctx context.Context, recordID string) ([]*domain.Entry, error)
}

// DebtRepository defines data access for debts and their repayments.
type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	GetByID(ctx context.Context, id string) (*domain.Debt, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Debt, error)
	Update(ctx context.Context, tx Transaction, debt *domain.Debt) error
	Delete(ctx context.Context, tx Transaction, id string) error
	ListByBook(ctx context.Context, bookID string) ([]*domain.Debt, error)
	CreateRepayment(ctx context.Context, tx Transaction, repayment *domain.Repayment) error
	ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error)
	DeleteRepaymentsByDebt(ctx context.Context, tx Transaction, debtID string) error
}

// GoalRepository defines data access for savings goals.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Goal, error)
	UpdateProgress(ctx context.Context, tx Transaction, id string, current decimal.Decimal) error
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Goal, error)
}

// RuleRepository defines data access for recurring rules.
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.RecurringRule) error
	GetByID(ctx context.Context, id string) (*domain.RecurringRule, error)
	Update(ctx context.Context, rule *domain.RecurringRule) error
	UpdateTx(ctx context.Context, tx Transaction, rule *domain.RecurringRule) error
	Delete(ctx context.Context, id string) error
	ListActive(ctx context.Context) ([]*domain.RecurringRule, error)
	List(ctx context.Context) ([]*domain.RecurringRule, error)
}

// TemplateRepository defines data access for quick-entry templates.
type TemplateRepository interface {
	Create(ctx context.Context, template *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Template, error)
}

// SettingsRepository persists the single settings row.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, settings *domain.Settings) error
}

// SnapshotRepository moves full application state in and out of storage.
type SnapshotRepository interface {
	Export(ctx context.Context) (*domain.Snapshot, error)
	// Import overwrites all collections inside the given transaction.
	Import(ctx context.Context, tx Transaction, snapshot *domain.Snapshot) error
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
}

// RecordCreator is the narrow capability handed to stores that must
// synthesize a record through the engine's normal side-effect path (debt
// repayments, recurring triggers) inside their own transaction.
type RecordCreator interface {
	CreateInTx(ctx context.Context, tx Transaction, input CreateRecordInput) (*domain.Record, error)
}

// CategoryMatcher infers a category for a bill draft from its remark.
type CategoryMatcher interface {
	Match(ctx context.Context, remark string, kind domain.RecordKind) (string, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation when storage reports a retryable conflict.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
