package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// TemplateRepository implements usecase.TemplateRepository.
type TemplateRepository struct {
	pool *pgxpool.Pool
}

// NewTemplateRepository creates a new TemplateRepository.
func NewTemplateRepository(pool *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{pool: pool}
}

const templateColumns = `id, name, kind, amount, category_id, account_id, remark, tags`

// Create creates a new template.
func (r *TemplateRepository) Create(ctx context.Context, template *domain.Template) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO templates (id, name, kind, amount, category_id, account_id, remark, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		template.ID,
		template.Name,
		string(template.Kind),
		decimalToNumeric(template.Amount),
		template.CategoryID,
		template.AccountID,
		template.Remark,
		template.Tags,
	)

	return err
}

// GetByID retrieves a template by ID.
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*domain.Template, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+templateColumns+` FROM templates WHERE id = $1`, id)

	template, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTemplateNotFound
		}

		return nil, err
	}

	return template, nil
}

// Delete deletes a template.
func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)

	return err
}

// List retrieves all templates by name.
func (r *TemplateRepository) List(ctx context.Context) ([]*domain.Template, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+templateColumns+` FROM templates ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []*domain.Template
	for rows.Next() {
		template, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, template)
	}

	return templates, rows.Err()
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var (
		template domain.Template
		kind     string
		amount   pgtype.Numeric
	)

	err := row.Scan(
		&template.ID,
		&template.Name,
		&kind,
		&amount,
		&template.CategoryID,
		&template.AccountID,
		&template.Remark,
		&template.Tags,
	)
	if err != nil {
		return nil, err
	}

	template.Kind = domain.RecordKind(kind)
	template.Amount = numericToDecimal(amount)

	return &template, nil
}
