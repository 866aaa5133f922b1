package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// SettingsUseCase reads and writes the single settings row.
type SettingsUseCase struct {
	settingsRepo SettingsRepository
}

// NewSettingsUseCase creates a new SettingsUseCase.
func NewSettingsUseCase(settingsRepo SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settingsRepo: settingsRepo}
}

// Get returns the current settings, falling back to defaults before any save.
func (uc *SettingsUseCase) Get(ctx context.Context) (*domain.Settings, error) {
	return uc.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents input for updating settings.
type UpdateSettingsInput struct {
	MonthlyBudget   *decimal.Decimal
	BillingStartDay *int
	Theme           string
}

// Update applies partial settings changes.
func (uc *SettingsUseCase) Update(ctx context.Context, input UpdateSettingsInput) (*domain.Settings, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.MonthlyBudget != nil {
		if input.MonthlyBudget.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		settings.MonthlyBudget = *input.MonthlyBudget
	}
	if input.BillingStartDay != nil {
		if err := domain.ValidateDayOfMonth(*input.BillingStartDay); err != nil {
			return nil, err
		}
		settings.BillingStartDay = *input.BillingStartDay
	}
	if input.Theme != "" {
		settings.Theme = input.Theme
	}

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
