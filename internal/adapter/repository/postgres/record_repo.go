package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// RecordRepository implements usecase.RecordRepository.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

const recordColumns = `id, kind, amount, category_id, account_id, dest_account_id,
	occurred_at, recorded_at, book_id, remark, tags, goal_id, reimbursable,
	reimbursement_of, refund_of, currency, exchange_rate, archived`

// effectiveAmount converts a record amount into book currency in SQL. A zero
// stored rate means the record was written in book currency.
const effectiveAmount = `amount * (CASE WHEN exchange_rate = 0 THEN 1 ELSE exchange_rate END)`

// Create inserts a record inside the given transaction.
func (r *RecordRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.Record) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO records (
			id, kind, amount, category_id, account_id, dest_account_id,
			occurred_at, recorded_at, book_id, remark, tags, goal_id, reimbursable,
			reimbursement_of, refund_of, currency, exchange_rate, archived
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`,
		record.ID,
		string(record.Kind),
		decimalToNumeric(record.Amount),
		record.CategoryID,
		record.AccountID,
		record.DestAccountID,
		timeToPgTimestamptz(record.OccurredAt),
		timeToPgTimestamptz(record.RecordedAt),
		record.BookID,
		record.Remark,
		record.Tags,
		record.GoalID,
		record.Reimbursable,
		record.ReimbursementOf,
		record.RefundOf,
		record.Currency,
		decimalToNumeric(record.ExchangeRate),
		record.Archived,
	)

	return err
}

// GetByID retrieves a record by ID.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*domain.Record, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1`, id)

	return scanRecordOr(row, domain.ErrRecordNotFound)
}

// GetByIDForUpdate retrieves a record by ID with a FOR UPDATE lock.
func (r *RecordRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Record, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+recordColumns+` FROM records WHERE id = $1 FOR UPDATE`, id)

	return scanRecordOr(row, domain.ErrRecordNotFound)
}

// GetReimbursementOf retrieves the income record that offsets the given
// expense. Returns ErrRecordNotFound when no reimbursement is attached.
func (r *RecordRepository) GetReimbursementOf(ctx context.Context, tx usecase.Transaction, expenseID string) (*domain.Record, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx,
		`SELECT `+recordColumns+` FROM records WHERE reimbursement_of = $1 LIMIT 1`,
		expenseID,
	)

	return scanRecordOr(row, domain.ErrRecordNotFound)
}

// SetReimbursable flips the reimbursable flag of a record.
func (r *RecordRepository) SetReimbursable(ctx context.Context, tx usecase.Transaction, id string, reimbursable bool) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`UPDATE records SET reimbursable = $2 WHERE id = $1`,
		id, reimbursable,
	)

	return err
}

// Delete deletes a record inside the given transaction.
func (r *RecordRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx, `DELETE FROM records WHERE id = $1`, id)

	return err
}

// ListByBook retrieves records of a book, newest first.
func (r *RecordRepository) ListByBook(ctx context.Context, bookID string, filter usecase.RecordFilter) ([]*domain.Record, error) {
	query := `SELECT ` + recordColumns + ` FROM records WHERE book_id = $1`
	args := []any{bookID}

	if !filter.IncludeArchived {
		query += ` AND NOT archived`
	}
	if filter.From != nil {
		args = append(args, timeToPgTimestamptz(*filter.From))
		query += fmt.Sprintf(` AND occurred_at >= $%d`, len(args))
	}
	if filter.To != nil {
		args = append(args, timeToPgTimestamptz(*filter.To))
		query += fmt.Sprintf(` AND occurred_at < $%d`, len(args))
	}
	if filter.Kind != nil {
		args = append(args, string(*filter.Kind))
		query += fmt.Sprintf(` AND kind = $%d`, len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += fmt.Sprintf(` AND category_id = $%d`, len(args))
	}

	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(` ORDER BY occurred_at DESC, id DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// ListUnarchivedThroughYear retrieves all unarchived records dated in the
// given year or earlier, across all books, with FOR UPDATE locks.
func (r *RecordRepository) ListUnarchivedThroughYear(ctx context.Context, tx usecase.Transaction, year int) ([]*domain.Record, error) {
	pgxTx := tx.(*Tx).PgxTx()

	rows, err := pgxTx.Query(ctx, `
		SELECT `+recordColumns+` FROM records
		WHERE NOT archived AND occurred_at < $1
		ORDER BY occurred_at, id
		FOR UPDATE`,
		timeToPgTimestamptz(yearEnd(year)),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRecords(rows)
}

// MarkArchivedThroughYear marks all unarchived records dated in the given
// year or earlier as archived and reports how many rows changed.
func (r *RecordRepository) MarkArchivedThroughYear(ctx context.Context, tx usecase.Transaction, year int) (int, error) {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx,
		`UPDATE records SET archived = TRUE WHERE NOT archived AND occurred_at < $1`,
		timeToPgTimestamptz(yearEnd(year)),
	)
	if err != nil {
		return 0, err
	}

	return int(tag.RowsAffected()), nil
}

// SumEffectiveByKind sums effective amounts of unarchived records of one kind
// within [from, to).
func (r *RecordRepository) SumEffectiveByKind(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (decimal.Decimal, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(`+effectiveAmount+`), 0)
		FROM records
		WHERE book_id = $1 AND kind = $2 AND NOT archived
			AND occurred_at >= $3 AND occurred_at < $4`,
		bookID,
		string(kind),
		timeToPgTimestamptz(from),
		timeToPgTimestamptz(to),
	)

	var sum pgtype.Numeric
	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}

// SumEffectiveByCategory sums effective amounts per category for unarchived
// records of one kind within [from, to).
func (r *RecordRepository) SumEffectiveByCategory(ctx context.Context, bookID string, kind domain.RecordKind, from, to time.Time) (map[string]decimal.Decimal, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category_id, COALESCE(SUM(`+effectiveAmount+`), 0)
		FROM records
		WHERE book_id = $1 AND kind = $2 AND NOT archived
			AND occurred_at >= $3 AND occurred_at < $4
		GROUP BY category_id`,
		bookID,
		string(kind),
		timeToPgTimestamptz(from),
		timeToPgTimestamptz(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sums := make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			categoryID string
			sum        pgtype.Numeric
		)
		if err := rows.Scan(&categoryID, &sum); err != nil {
			return nil, err
		}
		sums[categoryID] = numericToDecimal(sum)
	}

	return sums, rows.Err()
}

// yearEnd is the exclusive upper bound for records belonging to year or earlier.
func yearEnd(year int) time.Time {
	return time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func collectRecords(rows pgx.Rows) ([]*domain.Record, error) {
	var records []*domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

func scanRecord(row pgx.Row) (*domain.Record, error) {
	var (
		record                 domain.Record
		kind                   string
		amount, exchangeRate   pgtype.Numeric
		occurredAt, recordedAt pgtype.Timestamptz
	)

	err := row.Scan(
		&record.ID,
		&kind,
		&amount,
		&record.CategoryID,
		&record.AccountID,
		&record.DestAccountID,
		&occurredAt,
		&recordedAt,
		&record.BookID,
		&record.Remark,
		&record.Tags,
		&record.GoalID,
		&record.Reimbursable,
		&record.ReimbursementOf,
		&record.RefundOf,
		&record.Currency,
		&exchangeRate,
		&record.Archived,
	)
	if err != nil {
		return nil, err
	}

	record.Kind = domain.RecordKind(kind)
	record.Amount = numericToDecimal(amount)
	record.ExchangeRate = numericToDecimal(exchangeRate)
	record.OccurredAt = occurredAt.Time
	record.RecordedAt = recordedAt.Time

	return &record, nil
}

func scanRecordOr(row pgx.Row, notFound error) (*domain.Record, error) {
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}

		return nil, err
	}

	return record, nil
}
