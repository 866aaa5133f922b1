package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// MockBookRepository is a mock implementation of BookRepository.
type MockBookRepository struct {
	mu    sync.RWMutex
	books map[string]*domain.Book

	CreateFunc     func(ctx context.Context, book *domain.Book) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Book, error)
	GetDefaultFunc func(ctx context.Context) (*domain.Book, error)
	ListFunc       func(ctx context.Context) ([]*domain.Book, error)
	UpdateFunc     func(ctx context.Context, book *domain.Book) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func NewMockBookRepository() *MockBookRepository {
	return &MockBookRepository{books: make(map[string]*domain.Book)}
}

func (m *MockBookRepository) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, book)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[book.ID] = book
	return nil
}

func (m *MockBookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.books[id]; ok {
		return b, nil
	}
	return nil, domain.ErrBookNotFound
}

func (m *MockBookRepository) GetDefault(ctx context.Context) (*domain.Book, error) {
	if m.GetDefaultFunc != nil {
		return m.GetDefaultFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.books {
		if b.IsDefault {
			return b, nil
		}
	}
	return nil, domain.ErrBookNotFound
}

func (m *MockBookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var books []*domain.Book
	for _, b := range m.books {
		books = append(books, b)
	}
	return books, nil
}

func (m *MockBookRepository) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, book)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[book.ID] = book
	return nil
}

func (m *MockBookRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.books, id)
	return nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category
	order      []string

	CreateFunc     func(ctx context.Context, category *domain.Category) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.Category, error)
	ListFunc       func(ctx context.Context) ([]*domain.Category, error)
	ListByKindFunc func(ctx context.Context, kind domain.CategoryKind) ([]*domain.Category, error)
	UpdateFunc     func(ctx context.Context, category *domain.Category) error
	DeleteFunc     func(ctx context.Context, id string) error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{categories: make(map[string]*domain.Category)}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		m.order = append(m.order, category.ID)
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, id := range m.order {
		categories = append(categories, m.categories[id])
	}
	return categories, nil
}

func (m *MockCategoryRepository) ListByKind(ctx context.Context, kind domain.CategoryKind) ([]*domain.Category, error) {
	if m.ListByKindFunc != nil {
		return m.ListByKindFunc(ctx, kind)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, id := range m.order {
		if m.categories[id].Kind == kind {
			categories = append(categories, m.categories[id])
		}
	}
	return categories, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.categories, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc            func(ctx context.Context, account *domain.Account) error
	GetByIDFunc           func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsForUpdateFunc func(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error)
	UpdateBalanceFunc     func(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error
	UpdateFunc            func(ctx context.Context, account *domain.Account) error
	ListFunc              func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDsForUpdate(ctx context.Context, tx usecase.Transaction, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsForUpdateFunc != nil {
		return m.GetByIDsForUpdateFunc(ctx, tx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		acc, ok := m.accounts[id]
		if !ok {
			return nil, domain.ErrAccountNotFound
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

func (m *MockAccountRepository) UpdateBalance(ctx context.Context, tx usecase.Transaction, id string, balance decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateBalanceFunc != nil {
		return m.UpdateBalanceFunc(ctx, tx, id, balance, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Balance = balance
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockRecordRepository is a mock implementation of RecordRepository.
type MockRecordRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.Record

	CreateFunc                    func(ctx context.Context, tx usecase.Transaction, record *domain.Record) error
	GetByIDFunc                   func(ctx context.Context, id string) (*domain.Record, error)
	GetByIDForUpdateFunc          func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error)
	GetReimbursementOfFunc        func(ctx context.Context, tx usecase.Transaction, expenseID string) (*domain.Record, error)
	SetReimbursableFunc           func(ctx context.Context, tx usecase.Transaction, id string, reimbursable bool) error
	DeleteFunc                    func(ctx context.Context, tx usecase.Transaction, id string) error
	ListByBookFunc                func(ctx context.Context, bookID string, filter usecase.RecordFilter) ([]*domain.Record, error)
	ListUnarchivedThroughYearFunc func(ctx context.Context, tx usecase.Transaction, year int) ([]*domain.Record, error)
	MarkArchivedThroughYearFunc   func(ctx context.Context, tx usecase.Transaction, year int) (int, error)
	SumEffectiveByKindFunc        func(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (decimal.Decimal, error)
	SumEffectiveByCategoryFunc    func(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (map[string]decimal.Decimal, error)
}

func NewMockRecordRepository() *MockRecordRepository {
	return &MockRecordRepository{records: make(map[string]*domain.Record)}
}

func (m *MockRecordRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.Record) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[record.ID] = record
	return nil
}

func (m *MockRecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockRecordRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockRecordRepository) GetReimbursementOf(ctx context.Context, tx usecase.Transaction, expenseID string) (*domain.Record, error) {
	if m.GetReimbursementOfFunc != nil {
		return m.GetReimbursementOfFunc(ctx, tx, expenseID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.records {
		if r.ReimbursementOf == expenseID {
			return r, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (m *MockRecordRepository) SetReimbursable(ctx context.Context, tx usecase.Transaction, id string, reimbursable bool) error {
	if m.SetReimbursableFunc != nil {
		return m.SetReimbursableFunc(ctx, tx, id, reimbursable)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if r, ok := m.records[id]; ok {
		r.Reimbursable = reimbursable
		return nil
	}
	return domain.ErrRecordNotFound
}

func (m *MockRecordRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}

func (m *MockRecordRepository) ListByBook(ctx context.Context, bookID string, filter usecase.RecordFilter) ([]*domain.Record, error) {
	if m.ListByBookFunc != nil {
		return m.ListByBookFunc(ctx, bookID, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Record
	for _, r := range m.records {
		if r.BookID != bookID {
			continue
		}
		if r.Archived && !filter.IncludeArchived {
			continue
		}
		records = append(records, r)
	}
	return records, nil
}

func (m *MockRecordRepository) ListUnarchivedThroughYear(ctx context.Context, tx usecase.Transaction, year int) ([]*domain.Record, error) {
	if m.ListUnarchivedThroughYearFunc != nil {
		return m.ListUnarchivedThroughYearFunc(ctx, tx, year)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var records []*domain.Record
	for _, r := range m.records {
		if !r.Archived && r.OccurredAt.Year() <= year {
			records = append(records, r)
		}
	}
	return records, nil
}

func (m *MockRecordRepository) MarkArchivedThroughYear(ctx context.Context, tx usecase.Transaction, year int) (int, error) {
	if m.MarkArchivedThroughYearFunc != nil {
		return m.MarkArchivedThroughYearFunc(ctx, tx, year)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, r := range m.records {
		if !r.Archived && r.OccurredAt.Year() <= year {
			r.Archived = true
			count++
		}
	}
	return count, nil
}

func (m *MockRecordRepository) SumEffectiveByKind(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (decimal.Decimal, error) {
	if m.SumEffectiveByKindFunc != nil {
		return m.SumEffectiveByKindFunc(ctx, bookID, kind, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sum := decimal.Zero
	for _, r := range m.records {
		if r.BookID != bookID || r.Kind != kind || r.Archived {
			continue
		}
		if r.OccurredAt.Before(from) || !r.OccurredAt.Before(to) {
			continue
		}
		sum = sum.Add(r.EffectiveAmount())
	}
	return sum, nil
}

func (m *MockRecordRepository) SumEffectiveByCategory(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (map[string]decimal.Decimal, error) {
	if m.SumEffectiveByCategoryFunc != nil {
		return m.SumEffectiveByCategoryFunc(ctx, bookID, kind, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	sums := make(map[string]decimal.Decimal)
	for _, r := range m.records {
		if r.BookID != bookID || r.Kind != kind || r.Archived {
			continue
		}
		if r.OccurredAt.Before(from) || !r.OccurredAt.Before(to) {
			continue
		}
		sums[r.CategoryID] = sums[r.CategoryID].Add(r.EffectiveAmount())
	}
	return sums, nil
}

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.Entry

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	ListByAccountFunc func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	ListByRecordFunc  func(ctx context.Context, recordID string) ([]*domain.Entry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{entries: make(map[string]*domain.Entry)}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockEntryRepository) ListByRecord(ctx context.Context, recordID string) ([]*domain.Entry, error) {
	if m.ListByRecordFunc != nil {
		return m.ListByRecordFunc(ctx, recordID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.Entry
	for _, e := range m.entries {
		if e.RecordID == recordID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// MockDebtRepository is a mock implementation of DebtRepository.
type MockDebtRepository struct {
	mu         sync.RWMutex
	debts      map[string]*domain.Debt
	repayments map[string]*domain.Repayment

	CreateFunc                 func(ctx context.Context, debt *domain.Debt) error
	GetByIDFunc                func(ctx context.Context, id string) (*domain.Debt, error)
	GetByIDForUpdateFunc       func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error)
	UpdateFunc                 func(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error
	DeleteFunc                 func(ctx context.Context, tx usecase.Transaction, id string) error
	ListByBookFunc             func(ctx context.Context, bookID string) ([]*domain.Debt, error)
	CreateRepaymentFunc        func(ctx context.Context, tx usecase.Transaction, repayment *domain.Repayment) error
	ListRepaymentsFunc         func(ctx context.Context, debtID string) ([]*domain.Repayment, error)
	DeleteRepaymentsByDebtFunc func(ctx context.Context, tx usecase.Transaction, debtID string) error
}

func NewMockDebtRepository() *MockDebtRepository {
	return &MockDebtRepository{
		debts:      make(map[string]*domain.Debt),
		repayments: make(map[string]*domain.Repayment),
	}
}

func (m *MockDebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.debts[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDebtNotFound
}

func (m *MockDebtRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockDebtRepository) Update(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, debt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.debts[debt.ID] = debt
	return nil
}

func (m *MockDebtRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, tx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.debts, id)
	return nil
}

func (m *MockDebtRepository) ListByBook(ctx context.Context, bookID string) ([]*domain.Debt, error) {
	if m.ListByBookFunc != nil {
		return m.ListByBookFunc(ctx, bookID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var debts []*domain.Debt
	for _, d := range m.debts {
		if d.BookID == bookID {
			debts = append(debts, d)
		}
	}
	return debts, nil
}

func (m *MockDebtRepository) CreateRepayment(ctx context.Context, tx usecase.Transaction, repayment *domain.Repayment) error {
	if m.CreateRepaymentFunc != nil {
		return m.CreateRepaymentFunc(ctx, tx, repayment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.repayments[repayment.ID] = repayment
	return nil
}

func (m *MockDebtRepository) ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error) {
	if m.ListRepaymentsFunc != nil {
		return m.ListRepaymentsFunc(ctx, debtID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var repayments []*domain.Repayment
	for _, r := range m.repayments {
		if r.DebtID == debtID {
			repayments = append(repayments, r)
		}
	}
	return repayments, nil
}

func (m *MockDebtRepository) DeleteRepaymentsByDebt(ctx context.Context, tx usecase.Transaction, debtID string) error {
	if m.DeleteRepaymentsByDebtFunc != nil {
		return m.DeleteRepaymentsByDebtFunc(ctx, tx, debtID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, r := range m.repayments {
		if r.DebtID == debtID {
			delete(m.repayments, id)
		}
	}
	return nil
}

// MockGoalRepository is a mock implementation of GoalRepository.
type MockGoalRepository struct {
	mu    sync.RWMutex
	goals map[string]*domain.Goal

	CreateFunc           func(ctx context.Context, goal *domain.Goal) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Goal, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Goal, error)
	UpdateProgressFunc   func(ctx context.Context, tx usecase.Transaction, id string, current decimal.Decimal) error
	UpdateFunc           func(ctx context.Context, goal *domain.Goal) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListFunc             func(ctx context.Context) ([]*domain.Goal, error)
}

func NewMockGoalRepository() *MockGoalRepository {
	return &MockGoalRepository{goals: make(map[string]*domain.Goal)}
}

func (m *MockGoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.goals[id]; ok {
		return g, nil
	}
	return nil, domain.ErrGoalNotFound
}

func (m *MockGoalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Goal, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockGoalRepository) UpdateProgress(ctx context.Context, tx usecase.Transaction, id string, current decimal.Decimal) error {
	if m.UpdateProgressFunc != nil {
		return m.UpdateProgressFunc(ctx, tx, id, current)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.goals[id]; ok {
		g.CurrentAmount = current
		return nil
	}
	return domain.ErrGoalNotFound
}

func (m *MockGoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, goal)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.goals[goal.ID] = goal
	return nil
}

func (m *MockGoalRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.goals, id)
	return nil
}

func (m *MockGoalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var goals []*domain.Goal
	for _, g := range m.goals {
		goals = append(goals, g)
	}
	return goals, nil
}

// MockRuleRepository is a mock implementation of RuleRepository.
type MockRuleRepository struct {
	mu    sync.RWMutex
	rules map[string]*domain.RecurringRule

	CreateFunc     func(ctx context.Context, rule *domain.RecurringRule) error
	GetByIDFunc    func(ctx context.Context, id string) (*domain.RecurringRule, error)
	UpdateFunc     func(ctx context.Context, rule *domain.RecurringRule) error
	UpdateTxFunc   func(ctx context.Context, tx usecase.Transaction, rule *domain.RecurringRule) error
	DeleteFunc     func(ctx context.Context, id string) error
	ListActiveFunc func(ctx context.Context) ([]*domain.RecurringRule, error)
	ListFunc       func(ctx context.Context) ([]*domain.RecurringRule, error)
}

func NewMockRuleRepository() *MockRuleRepository {
	return &MockRuleRepository{rules: make(map[string]*domain.RecurringRule)}
}

func (m *MockRuleRepository) Create(ctx context.Context, rule *domain.RecurringRule) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rule)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[rule.ID] = rule
	return nil
}

func (m *MockRuleRepository) GetByID(ctx context.Context, id string) (*domain.RecurringRule, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if r, ok := m.rules[id]; ok {
		return r, nil
	}
	return nil, domain.ErrRuleNotFound
}

func (m *MockRuleRepository) Update(ctx context.Context, rule *domain.RecurringRule) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rule)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules[rule.ID] = rule
	return nil
}

func (m *MockRuleRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rule *domain.RecurringRule) error {
	if m.UpdateTxFunc != nil {
		return m.UpdateTxFunc(ctx, tx, rule)
	}
	return m.Update(ctx, rule)
}

func (m *MockRuleRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.rules, id)
	return nil
}

func (m *MockRuleRepository) ListActive(ctx context.Context) ([]*domain.RecurringRule, error) {
	if m.ListActiveFunc != nil {
		return m.ListActiveFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rules []*domain.RecurringRule
	for _, r := range m.rules {
		if r.Active {
			rules = append(rules, r)
		}
	}
	return rules, nil
}

func (m *MockRuleRepository) List(ctx context.Context) ([]*domain.RecurringRule, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rules []*domain.RecurringRule
	for _, r := range m.rules {
		rules = append(rules, r)
	}
	return rules, nil
}

// MockTemplateRepository is a mock implementation of TemplateRepository.
type MockTemplateRepository struct {
	mu        sync.RWMutex
	templates map[string]*domain.Template

	CreateFunc  func(ctx context.Context, template *domain.Template) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Template, error)
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]*domain.Template, error)
}

func NewMockTemplateRepository() *MockTemplateRepository {
	return &MockTemplateRepository{templates: make(map[string]*domain.Template)}
}

func (m *MockTemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, template)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[template.ID] = template
	return nil
}

func (m *MockTemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if t, ok := m.templates[id]; ok {
		return t, nil
	}
	return nil, domain.ErrTemplateNotFound
}

func (m *MockTemplateRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.templates, id)
	return nil
}

func (m *MockTemplateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var templates []*domain.Template
	for _, t := range m.templates {
		templates = append(templates, t)
	}
	return templates, nil
}

// MockSettingsRepository is a mock implementation of SettingsRepository.
type MockSettingsRepository struct {
	mu       sync.RWMutex
	settings *domain.Settings

	GetFunc  func(ctx context.Context) (*domain.Settings, error)
	SaveFunc func(ctx context.Context, settings *domain.Settings) error
}

func NewMockSettingsRepository() *MockSettingsRepository {
	return &MockSettingsRepository{}
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return domain.DefaultSettings(), nil
	}
	return m.settings, nil
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, settings)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = settings
	return nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository.
type MockSnapshotRepository struct {
	ExportFunc func(ctx context.Context) (*domain.Snapshot, error)
	ImportFunc func(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error

	Imported *domain.Snapshot
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{}
}

func (m *MockSnapshotRepository) Export(ctx context.Context) (*domain.Snapshot, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx)
	}
	return &domain.Snapshot{}, nil
}

func (m *MockSnapshotRepository) Import(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error {
	if m.ImportFunc != nil {
		return m.ImportFunc(ctx, tx, snapshot)
	}
	m.Imported = snapshot
	return nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var events []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			events = append(events, e)
		}
		if len(events) == limit {
			break
		}
	}
	return events, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var kept []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published || e.PublishedAt == nil || !e.PublishedAt.Before(before) {
			kept = append(kept, e)
		}
	}
	m.events = kept
	return nil
}

// Events returns a copy of all captured outbox events.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	events := make([]*domain.OutboxEvent, len(m.events))
	copy(events, m.events)
	return events
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
