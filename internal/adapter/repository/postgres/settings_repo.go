package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// SettingsRepository implements usecase.SettingsRepository. Settings live in
// a single row keyed by a fixed ID.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const settingsRowID = 1

// Get retrieves the settings, falling back to defaults when the row is missing.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT monthly_budget, billing_start_day, theme FROM settings WHERE id = $1`,
		settingsRowID,
	)

	var (
		settings domain.Settings
		budget   pgtype.Numeric
	)
	err := row.Scan(&budget, &settings.BillingStartDay, &settings.Theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.DefaultSettings(), nil
		}

		return nil, err
	}

	settings.MonthlyBudget = numericToDecimal(budget)

	return &settings, nil
}

// Save upserts the settings row.
func (r *SettingsRepository) Save(ctx context.Context, settings *domain.Settings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (id, monthly_budget, billing_start_day, theme)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET monthly_budget = EXCLUDED.monthly_budget,
			billing_start_day = EXCLUDED.billing_start_day,
			theme = EXCLUDED.theme`,
		settingsRowID,
		decimalToNumeric(settings.MonthlyBudget),
		settings.BillingStartDay,
		settings.Theme,
	)

	return err
}
