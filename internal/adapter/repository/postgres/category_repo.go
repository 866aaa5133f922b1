package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// CategoryRepository implements usecase.CategoryRepository.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, name, icon, kind, sort, is_builtin, keywords, budget_limit`

// Create creates a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO categories (id, name, icon, kind, sort, is_builtin, keywords, budget_limit)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		category.ID,
		category.Name,
		category.Icon,
		string(category.Kind),
		category.Sort,
		category.IsBuiltin,
		category.Keywords,
		decimalPtrToNumeric(category.BudgetLimit),
	)

	return err
}

// GetByID retrieves a category by ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)

	category, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}

		return nil, err
	}

	return category, nil
}

// List retrieves all categories in sort order.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	return r.list(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY sort, id`)
}

// ListByKind retrieves categories of one kind in sort order.
func (r *CategoryRepository) ListByKind(ctx context.Context, kind domain.CategoryKind) ([]*domain.Category, error) {
	return r.list(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE kind = $1 ORDER BY sort, id`,
		string(kind),
	)
}

// Update updates a category.
func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET name = $2, icon = $3, sort = $4, keywords = $5, budget_limit = $6
		WHERE id = $1`,
		category.ID,
		category.Name,
		category.Icon,
		category.Sort,
		category.Keywords,
		decimalPtrToNumeric(category.BudgetLimit),
	)

	return err
}

// Delete deletes a category.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)

	return err
}

func (r *CategoryRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Category, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		category    domain.Category
		kind        string
		budgetLimit pgtype.Numeric
	)

	err := row.Scan(
		&category.ID,
		&category.Name,
		&category.Icon,
		&kind,
		&category.Sort,
		&category.IsBuiltin,
		&category.Keywords,
		&budgetLimit,
	)
	if err != nil {
		return nil, err
	}

	category.Kind = domain.CategoryKind(kind)
	category.BudgetLimit = numericToDecimalPtr(budgetLimit)

	return &category, nil
}
