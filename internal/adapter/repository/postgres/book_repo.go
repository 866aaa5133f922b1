package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// BookRepository implements usecase.BookRepository.
type BookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository creates a new BookRepository.
func NewBookRepository(pool *pgxpool.Pool) *BookRepository {
	return &BookRepository{pool: pool}
}

const bookColumns = `id, name, icon, base_currency, is_default, created_at`

// Create creates a new book.
func (r *BookRepository) Create(ctx context.Context, book *domain.Book) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO books (id, name, icon, base_currency, is_default, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		book.ID,
		book.Name,
		book.Icon,
		book.BaseCurrency,
		book.IsDefault,
		timeToPgTimestamptz(book.CreatedAt),
	)

	return err
}

// GetByID retrieves a book by ID.
func (r *BookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)

	return scanBookOr(row, domain.ErrBookNotFound)
}

// GetDefault retrieves the default book.
func (r *BookRepository) GetDefault(ctx context.Context) (*domain.Book, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE is_default LIMIT 1`)

	return scanBookOr(row, domain.ErrBookNotFound)
}

// List retrieves all books, default first.
func (r *BookRepository) List(ctx context.Context) ([]*domain.Book, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookColumns+` FROM books
		ORDER BY is_default DESC, created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*domain.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}

	return books, rows.Err()
}

// Update updates a book.
func (r *BookRepository) Update(ctx context.Context, book *domain.Book) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE books
		SET name = $2, icon = $3, base_currency = $4
		WHERE id = $1`,
		book.ID,
		book.Name,
		book.Icon,
		book.BaseCurrency,
	)

	return err
}

// Delete deletes a book.
func (r *BookRepository) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)

	return err
}

func scanBook(row pgx.Row) (*domain.Book, error) {
	var (
		book      domain.Book
		createdAt pgtype.Timestamptz
	)

	err := row.Scan(
		&book.ID,
		&book.Name,
		&book.Icon,
		&book.BaseCurrency,
		&book.IsDefault,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	book.CreatedAt = createdAt.Time

	return &book, nil
}

func scanBookOr(row pgx.Row, notFound error) (*domain.Book, error) {
	book, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}

		return nil, err
	}

	return book, nil
}
