package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// SnapshotRepository implements usecase.SnapshotRepository.
type SnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{pool: pool}
}

// Export reads the full ledger state. Archived records are included so a
// restored database can still serve historical queries.
func (r *SnapshotRepository) Export(ctx context.Context) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}

	var err error
	if snapshot.Books, err = collect(ctx, r.pool,
		`SELECT `+bookColumns+` FROM books ORDER BY created_at, id`, scanBook); err != nil {
		return nil, err
	}
	if snapshot.Categories, err = collect(ctx, r.pool,
		`SELECT `+categoryColumns+` FROM categories ORDER BY sort, id`, scanCategory); err != nil {
		return nil, err
	}
	if snapshot.Accounts, err = collect(ctx, r.pool,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at, id`, scanAccount); err != nil {
		return nil, err
	}
	if snapshot.Records, err = collect(ctx, r.pool,
		`SELECT `+recordColumns+` FROM records ORDER BY occurred_at, id`, scanRecord); err != nil {
		return nil, err
	}
	if snapshot.Debts, err = collect(ctx, r.pool,
		`SELECT `+debtColumns+` FROM debts ORDER BY opened_at, id`, scanDebt); err != nil {
		return nil, err
	}
	if snapshot.Goals, err = collect(ctx, r.pool,
		`SELECT `+goalColumns+` FROM goals ORDER BY created_at, id`, scanGoal); err != nil {
		return nil, err
	}
	if snapshot.Rules, err = collect(ctx, r.pool,
		`SELECT `+ruleColumns+` FROM recurring_rules ORDER BY day_of_month, id`, scanRule); err != nil {
		return nil, err
	}
	if snapshot.Templates, err = collect(ctx, r.pool,
		`SELECT `+templateColumns+` FROM templates ORDER BY name, id`, scanTemplate); err != nil {
		return nil, err
	}

	if snapshot.Repayments, err = r.exportRepayments(ctx); err != nil {
		return nil, err
	}

	settings := NewSettingsRepository(r.pool)
	if snapshot.Settings, err = settings.Get(ctx); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// Import replaces the full ledger state inside the given transaction.
// Balance entries are wiped but not restored: account rows already carry the
// resulting balances and history restarts from the import point.
func (r *SnapshotRepository) Import(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error {
	pgxTx := tx.(*Tx).PgxTx()

	tables := []string{
		"entries", "repayments", "records", "debts", "goals",
		"recurring_rules", "templates", "accounts", "categories", "books", "settings",
	}
	for _, table := range tables {
		if _, err := pgxTx.Exec(ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}

	if err := copyRows(ctx, pgxTx, "books",
		[]string{"id", "name", "icon", "base_currency", "is_default", "created_at"},
		snapshot.Books, func(b *domain.Book) []any {
			return []any{b.ID, b.Name, b.Icon, b.BaseCurrency, b.IsDefault, timeToPgTimestamptz(b.CreatedAt)}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "categories",
		[]string{"id", "name", "icon", "kind", "sort", "is_builtin", "keywords", "budget_limit"},
		snapshot.Categories, func(c *domain.Category) []any {
			return []any{c.ID, c.Name, c.Icon, string(c.Kind), c.Sort, c.IsBuiltin, c.Keywords, decimalPtrToNumeric(c.BudgetLimit)}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "accounts",
		[]string{"id", "name", "kind", "balance", "color", "version", "created_at", "updated_at"},
		snapshot.Accounts, func(a *domain.Account) []any {
			return []any{
				a.ID, a.Name, string(a.Kind), decimalToNumeric(a.Balance), a.Color,
				a.Version, timeToPgTimestamptz(a.CreatedAt), timeToPgTimestamptz(a.UpdatedAt),
			}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "records",
		[]string{
			"id", "kind", "amount", "category_id", "account_id", "dest_account_id",
			"occurred_at", "recorded_at", "book_id", "remark", "tags", "goal_id", "reimbursable",
			"reimbursement_of", "refund_of", "currency", "exchange_rate", "archived",
		},
		snapshot.Records, func(rec *domain.Record) []any {
			return []any{
				rec.ID, string(rec.Kind), decimalToNumeric(rec.Amount), rec.CategoryID,
				rec.AccountID, rec.DestAccountID, timeToPgTimestamptz(rec.OccurredAt),
				timeToPgTimestamptz(rec.RecordedAt), rec.BookID, rec.Remark, rec.Tags,
				rec.GoalID, rec.Reimbursable, rec.ReimbursementOf, rec.RefundOf,
				rec.Currency, decimalToNumeric(rec.ExchangeRate), rec.Archived,
			}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "debts",
		[]string{"id", "direction", "principal", "repaid_amount", "counterparty", "remark", "opened_at", "due_at", "cleared", "book_id"},
		snapshot.Debts, func(d *domain.Debt) []any {
			return []any{
				d.ID, string(d.Direction), decimalToNumeric(d.Principal), decimalToNumeric(d.RepaidAmount),
				d.Counterparty, d.Remark, timeToPgTimestamptz(d.OpenedAt),
				timePtrToPgTimestamptz(d.DueAt), d.Cleared, d.BookID,
			}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "repayments",
		[]string{"id", "debt_id", "amount", "remark", "occurred_at"},
		snapshot.Repayments, func(p *domain.Repayment) []any {
			return []any{p.ID, p.DebtID, decimalToNumeric(p.Amount), p.Remark, timeToPgTimestamptz(p.OccurredAt)}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "goals",
		[]string{"id", "name", "target_amount", "current_amount", "deadline", "icon", "created_at"},
		snapshot.Goals, func(g *domain.Goal) []any {
			return []any{
				g.ID, g.Name, decimalToNumeric(g.TargetAmount), decimalToNumeric(g.CurrentAmount),
				timePtrToPgTimestamptz(g.Deadline), g.Icon, timeToPgTimestamptz(g.CreatedAt),
			}
		}); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "recurring_rules",
		[]string{
			"id", "kind", "amount", "category_id", "account_id", "tags", "remark",
			"day_of_month", "last_triggered_at", "active", "installment_total", "installment_paid",
		},
		snapshot.Rules, ruleArgs); err != nil {
		return err
	}

	if err := copyRows(ctx, pgxTx, "templates",
		[]string{"id", "name", "kind", "amount", "category_id", "account_id", "remark", "tags"},
		snapshot.Templates, func(t *domain.Template) []any {
			return []any{t.ID, t.Name, string(t.Kind), decimalToNumeric(t.Amount), t.CategoryID, t.AccountID, t.Remark, t.Tags}
		}); err != nil {
		return err
	}

	if snapshot.Settings != nil {
		_, err := pgxTx.Exec(ctx, `
			INSERT INTO settings (id, monthly_budget, billing_start_day, theme)
			VALUES ($1, $2, $3, $4)`,
			settingsRowID,
			decimalToNumeric(snapshot.Settings.MonthlyBudget),
			snapshot.Settings.BillingStartDay,
			snapshot.Settings.Theme,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *SnapshotRepository) exportRepayments(ctx context.Context) ([]*domain.Repayment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, debt_id, amount, remark, occurred_at FROM repayments ORDER BY occurred_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repayments []*domain.Repayment
	for rows.Next() {
		var (
			p          domain.Repayment
			amount     pgtype.Numeric
			occurredAt pgtype.Timestamptz
		)
		if err := rows.Scan(&p.ID, &p.DebtID, &amount, &p.Remark, &occurredAt); err != nil {
			return nil, err
		}
		p.Amount = numericToDecimal(amount)
		p.OccurredAt = occurredAt.Time
		repayments = append(repayments, &p)
	}

	return repayments, rows.Err()
}

func collect[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Row) (*T, error)) ([]*T, error) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func copyRows[T any](ctx context.Context, tx pgx.Tx, table string, columns []string, items []*T, args func(*T) []any) error {
	if len(items) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(items))
	for _, item := range items {
		rows = append(rows, args(item))
	}

	_, err := tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))

	return err
}
