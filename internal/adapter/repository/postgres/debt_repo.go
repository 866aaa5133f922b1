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

// DebtRepository implements usecase.DebtRepository.
type DebtRepository struct {
	pool *pgxpool.Pool
}

// NewDebtRepository creates a new DebtRepository.
func NewDebtRepository(pool *pgxpool.Pool) *DebtRepository {
	return &DebtRepository{pool: pool}
}

const debtColumns = `id, direction, principal, repaid_amount, counterparty, remark, opened_at, due_at, cleared, book_id`

// Create creates a new debt.
func (r *DebtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO debts (id, direction, principal, repaid_amount, counterparty, remark, opened_at, due_at, cleared, book_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		debt.ID,
		string(debt.Direction),
		decimalToNumeric(debt.Principal),
		decimalToNumeric(debt.RepaidAmount),
		debt.Counterparty,
		debt.Remark,
		timeToPgTimestamptz(debt.OpenedAt),
		timePtrToPgTimestamptz(debt.DueAt),
		debt.Cleared,
		debt.BookID,
	)

	return err
}

// GetByID retrieves a debt by ID.
func (r *DebtRepository) GetByID(ctx context.Context, id string) (*domain.Debt, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1`, id)

	return scanDebtOr(row)
}

// GetByIDForUpdate retrieves a debt by ID with a FOR UPDATE lock.
func (r *DebtRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Debt, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+debtColumns+` FROM debts WHERE id = $1 FOR UPDATE`, id)

	return scanDebtOr(row)
}

// Update updates a debt inside the given transaction.
func (r *DebtRepository) Update(ctx context.Context, tx usecase.Transaction, debt *domain.Debt) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		UPDATE debts
		SET repaid_amount = $2, counterparty = $3, remark = $4, due_at = $5, cleared = $6
		WHERE id = $1`,
		debt.ID,
		decimalToNumeric(debt.RepaidAmount),
		debt.Counterparty,
		debt.Remark,
		timePtrToPgTimestamptz(debt.DueAt),
		debt.Cleared,
	)

	return err
}

// Delete deletes a debt inside the given transaction.
func (r *DebtRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM debts WHERE id = $1`, id)

	return err
}

// ListByBook retrieves debts of a book, open ones first.
func (r *DebtRepository) ListByBook(ctx context.Context, bookID string) ([]*domain.Debt, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+debtColumns+` FROM debts
		WHERE book_id = $1
		ORDER BY cleared, opened_at DESC, id`,
		bookID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var debts []*domain.Debt
	for rows.Next() {
		debt, err := scanDebt(rows)
		if err != nil {
			return nil, err
		}
		debts = append(debts, debt)
	}

	return debts, rows.Err()
}

// CreateRepayment inserts a repayment inside the given transaction.
func (r *DebtRepository) CreateRepayment(ctx context.Context, tx usecase.Transaction, repayment *domain.Repayment) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO repayments (id, debt_id, amount, remark, occurred_at)
		VALUES ($1, $2, $3, $4, $5)`,
		repayment.ID,
		repayment.DebtID,
		decimalToNumeric(repayment.Amount),
		repayment.Remark,
		timeToPgTimestamptz(repayment.OccurredAt),
	)

	return err
}

// ListRepayments retrieves repayments of a debt, oldest first.
func (r *DebtRepository) ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, debt_id, amount, remark, occurred_at
		FROM repayments
		WHERE debt_id = $1
		ORDER BY occurred_at, id`,
		debtID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var repayments []*domain.Repayment
	for rows.Next() {
		var (
			repayment  domain.Repayment
			amount     pgtype.Numeric
			occurredAt pgtype.Timestamptz
		)
		err := rows.Scan(&repayment.ID, &repayment.DebtID, &amount, &repayment.Remark, &occurredAt)
		if err != nil {
			return nil, err
		}
		repayment.Amount = numericToDecimal(amount)
		repayment.OccurredAt = occurredAt.Time
		repayments = append(repayments, &repayment)
	}

	return repayments, rows.Err()
}

// DeleteRepaymentsByDebt deletes all repayments of a debt inside the given transaction.
func (r *DebtRepository) DeleteRepaymentsByDebt(ctx context.Context, tx usecase.Transaction, debtID string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM repayments WHERE debt_id = $1`, debtID)

	return err
}

func scanDebt(row pgx.Row) (*domain.Debt, error) {
	var (
		debt              domain.Debt
		direction         string
		principal, repaid pgtype.Numeric
		openedAt, dueAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&debt.ID,
		&direction,
		&principal,
		&repaid,
		&debt.Counterparty,
		&debt.Remark,
		&openedAt,
		&dueAt,
		&debt.Cleared,
		&debt.BookID,
	)
	if err != nil {
		return nil, err
	}

	debt.Direction = domain.DebtDirection(direction)
	debt.Principal = numericToDecimal(principal)
	debt.RepaidAmount = numericToDecimal(repaid)
	debt.OpenedAt = openedAt.Time
	debt.DueAt = pgTimestamptzToTimePtr(dueAt)

	return &debt, nil
}

func scanDebtOr(row pgx.Row) (*domain.Debt, error) {
	debt, err := scanDebt(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDebtNotFound
		}

		return nil, err
	}

	return debt, nil
}
