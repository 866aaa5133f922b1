package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// GoalRepository implements usecase.GoalRepository.
type GoalRepository struct {
	pool *pgxpool.Pool
}

// NewGoalRepository creates a new GoalRepository.
func NewGoalRepository(pool *pgxpool.Pool) *GoalRepository {
	return &GoalRepository{pool: pool}
}

const goalColumns = `id, name, target_amount, current_amount, deadline, icon, created_at`

// Create creates a new goal.
func (r *GoalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO goals (id, name, target_amount, current_amount, deadline, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		goal.ID,
		goal.Name,
		decimalToNumeric(goal.TargetAmount),
		decimalToNumeric(goal.CurrentAmount),
		timePtrToPgTimestamptz(goal.Deadline),
		goal.Icon,
		timeToPgTimestamptz(goal.CreatedAt),
	)

	return err
}

// GetByID retrieves a goal by ID.
func (r *GoalRepository) GetByID(ctx context.Context, id string) (*domain.Goal, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1`, id)

	return scanGoalOr(row)
}

// GetByIDForUpdate retrieves a goal by ID with a FOR UPDATE lock.
func (r *GoalRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Goal, error) {
	pgxTx := tx.(*Tx).PgxTx()

	row := pgxTx.QueryRow(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = $1 FOR UPDATE`, id)

	return scanGoalOr(row)
}

// UpdateProgress sets the saved amount of a goal inside the given transaction.
func (r *GoalRepository) UpdateProgress(ctx context.Context, tx usecase.Transaction, id string, current decimal.Decimal) error {
	pgxTx := tx.(*Tx).PgxTx()

	_, err := pgxTx.Exec(ctx,
		`UPDATE goals SET current_amount = $2 WHERE id = $1`,
		id, decimalToNumeric(current),
	)

	return err
}

// Update updates the metadata of a goal.
func (r *GoalRepository) Update(ctx context.Context, goal *domain.Goal) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE goals
		SET name = $2, target_amount = $3, deadline = $4, icon = $5
		WHERE id = $1`,
		goal.ID,
		goal.Name,
		decimalToNumeric(goal.TargetAmount),
		timePtrToPgTimestamptz(goal.Deadline),
		goal.Icon,
	)

	return err
}

// Delete deletes a goal.
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM goals WHERE id = $1`, id)

	return err
}

// List retrieves all goals, oldest first.
func (r *GoalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+goalColumns+` FROM goals ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func scanGoal(row pgx.Row) (*domain.Goal, error) {
	var (
		goal                domain.Goal
		target, current     pgtype.Numeric
		deadline, createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&goal.ID,
		&goal.Name,
		&target,
		&current,
		&deadline,
		&goal.Icon,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	goal.TargetAmount = numericToDecimal(target)
	goal.CurrentAmount = numericToDecimal(current)
	goal.Deadline = pgTimestamptzToTimePtr(deadline)
	goal.CreatedAt = createdAt.Time

	return &goal, nil
}

func scanGoalOr(row pgx.Row) (*domain.Goal, error) {
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}

		return nil, err
	}

	return goal, nil
}
