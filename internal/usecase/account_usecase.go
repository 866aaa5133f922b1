package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// AccountUseCase handles account bookkeeping. Balances are never mutated
// here: they move only through the record engine's entry path.
type AccountUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, entryRepo EntryRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{accountRepo: accountRepo, entryRepo: entryRepo, idGen: idGen}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name  string
	Kind  domain.AccountKind
	Color string
}

// CreateAccount creates a new account with a zero balance.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      input.Name,
		Kind:      input.Kind,
		Balance:   decimal.Zero,
		Color:     input.Color,
		Version:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccountsInput represents input for listing accounts.
type ListAccountsInput struct {
	Limit  int
	Offset int
}

// ListAccounts lists accounts with pagination.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, input ListAccountsInput) ([]*domain.Account, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.accountRepo.List(ctx, input.Limit, input.Offset)
}

// UpdateAccountInput represents input for updating an account.
type UpdateAccountInput struct {
	ID    string
	Name  string
	Color string
}

// UpdateAccount renames or recolors an account; the balance is untouchable.
func (uc *AccountUseCase) UpdateAccount(ctx context.Context, input UpdateAccountInput) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := domain.ValidateName(input.Name); err != nil {
			return nil, err
		}
		account.Name = input.Name
	}
	if input.Color != "" {
		account.Color = input.Color
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// AccountSummary aggregates the asset position across all accounts.
type AccountSummary struct {
	NetAsset  decimal.Decimal
	TotalDebt decimal.Decimal
}

// Summary computes net assets and the debt carried by negative balances.
func (uc *AccountUseCase) Summary(ctx context.Context) (*AccountSummary, error) {
	limit, offset := domain.ValidatePagination(1000, 0)
	accounts, err := uc.accountRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	summary := &AccountSummary{NetAsset: decimal.Zero, TotalDebt: decimal.Zero}
	for _, account := range accounts {
		summary.NetAsset = summary.NetAsset.Add(account.Balance)
		if account.Balance.IsNegative() {
			summary.TotalDebt = summary.TotalDebt.Add(account.Balance.Abs())
		}
	}

	return summary, nil
}

// ListEntriesInput represents input for listing an account's entries.
type ListEntriesInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// ListEntries lists the signed balance effects applied to an account.
func (uc *AccountUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.Entry, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}
	return uc.entryRepo.ListByAccount(ctx, input.AccountID, input.Limit, input.Offset)
}
