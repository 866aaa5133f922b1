package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// RuleRepository implements usecase.RuleRepository.
type RuleRepository struct {
	pool *pgxpool.Pool
}

// NewRuleRepository creates a new RuleRepository.
func NewRuleRepository(pool *pgxpool.Pool) *RuleRepository {
	return &RuleRepository{pool: pool}
}

const ruleColumns = `id, kind, amount, category_id, account_id, tags, remark,
	day_of_month, last_triggered_at, active, installment_total, installment_paid`

const ruleUpdateSet = `kind = $2, amount = $3, category_id = $4, account_id = $5, tags = $6,
	remark = $7, day_of_month = $8, last_triggered_at = $9, active = $10,
	installment_total = $11, installment_paid = $12`

// Create creates a new recurring rule.
func (r *RuleRepository) Create(ctx context.Context, rule *domain.RecurringRule) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO recurring_rules (
			id, kind, amount, category_id, account_id, tags, remark,
			day_of_month, last_triggered_at, active, installment_total, installment_paid
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		ruleArgs(rule)...,
	)

	return err
}

// GetByID retrieves a recurring rule by ID.
func (r *RuleRepository) GetByID(ctx context.Context, id string) (*domain.RecurringRule, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ruleColumns+` FROM recurring_rules WHERE id = $1`, id)

	rule, err := scanRule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRuleNotFound
		}

		return nil, err
	}

	return rule, nil
}

// Update updates a recurring rule.
func (r *RuleRepository) Update(ctx context.Context, rule *domain.RecurringRule) error {
	_, err := r.pool.Exec(ctx, `UPDATE recurring_rules SET `+ruleUpdateSet+` WHERE id = $1`, ruleArgs(rule)...)

	return err
}

// UpdateTx updates a recurring rule inside the given transaction.
func (r *RuleRepository) UpdateTx(ctx context.Context, tx usecase.Transaction, rule *domain.RecurringRule) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `UPDATE recurring_rules SET `+ruleUpdateSet+` WHERE id = $1`, ruleArgs(rule)...)

	return err
}

// Delete deletes a recurring rule.
func (r *RuleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM recurring_rules WHERE id = $1`, id)

	return err
}

// ListActive retrieves active rules ordered by trigger day.
func (r *RuleRepository) ListActive(ctx context.Context) ([]*domain.RecurringRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM recurring_rules WHERE active ORDER BY day_of_month, id`)
}

// List retrieves all rules ordered by trigger day.
func (r *RuleRepository) List(ctx context.Context) ([]*domain.RecurringRule, error) {
	return r.list(ctx, `SELECT `+ruleColumns+` FROM recurring_rules ORDER BY day_of_month, id`)
}

func (r *RuleRepository) list(ctx context.Context, query string) ([]*domain.RecurringRule, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domain.RecurringRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

func ruleArgs(rule *domain.RecurringRule) []any {
	return []any{
		rule.ID,
		string(rule.Kind),
		decimalToNumeric(rule.Amount),
		rule.CategoryID,
		rule.AccountID,
		rule.Tags,
		rule.Remark,
		rule.DayOfMonth,
		nullableTimeToPg(rule.LastTriggeredAt),
		rule.Active,
		rule.InstallmentTotal,
		rule.InstallmentPaid,
	}
}

func scanRule(row pgx.Row) (*domain.RecurringRule, error) {
	var (
		rule            domain.RecurringRule
		kind            string
		amount          pgtype.Numeric
		lastTriggeredAt pgtype.Timestamptz
	)

	err := row.Scan(
		&rule.ID,
		&kind,
		&amount,
		&rule.CategoryID,
		&rule.AccountID,
		&rule.Tags,
		&rule.Remark,
		&rule.DayOfMonth,
		&lastTriggeredAt,
		&rule.Active,
		&rule.InstallmentTotal,
		&rule.InstallmentPaid,
	)
	if err != nil {
		return nil, err
	}

	rule.Kind = domain.RecordKind(kind)
	rule.Amount = numericToDecimal(amount)
	rule.LastTriggeredAt = pgToNullableTime(lastTriggeredAt)

	return &rule, nil
}
