package usecase

import (
	"context"
	"time"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// BookUseCase handles the book registry. It owns the notion of the active
// book: every query and command elsewhere receives an explicit book id
// resolved here, never read from ambient state.
type BookUseCase struct {
	bookRepo BookRepository
	idGen    IDGenerator
}

// NewBookUseCase creates a new BookUseCase.
func NewBookUseCase(bookRepo BookRepository, idGen IDGenerator) *BookUseCase {
	return &BookUseCase{bookRepo: bookRepo, idGen: idGen}
}

// CreateBookInput represents input for creating a book.
type CreateBookInput struct {
	Name         string
	Icon         string
	BaseCurrency string
}

// CreateBook creates a non-default book.
func (uc *BookUseCase) CreateBook(ctx context.Context, input CreateBookInput) (*domain.Book, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:           uc.idGen.Generate(),
		Name:         input.Name,
		Icon:         input.Icon,
		BaseCurrency: input.BaseCurrency,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.bookRepo.Create(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// ResolveActive returns the explicit book id for an operation: the requested
// book when one is named (after an existence check), the default book
// otherwise.
func (uc *BookUseCase) ResolveActive(ctx context.Context, requested string) (string, error) {
	if requested != "" {
		book, err := uc.bookRepo.GetByID(ctx, requested)
		if err != nil {
			return "", err
		}
		return book.ID, nil
	}

	book, err := uc.bookRepo.GetDefault(ctx)
	if err != nil {
		return "", err
	}
	return book.ID, nil
}

// GetBook retrieves a book by ID.
func (uc *BookUseCase) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	return uc.bookRepo.GetByID(ctx, id)
}

// ListBooks lists all books.
func (uc *BookUseCase) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return uc.bookRepo.List(ctx)
}

// UpdateBookInput represents input for updating a book.
type UpdateBookInput struct {
	ID           string
	Name         string
	Icon         string
	BaseCurrency string
}

// UpdateBook renames or re-skins a book.
func (uc *BookUseCase) UpdateBook(ctx context.Context, input UpdateBookInput) (*domain.Book, error) {
	book, err := uc.bookRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := domain.ValidateName(input.Name); err != nil {
			return nil, err
		}
		book.Name = input.Name
	}
	if input.Icon != "" {
		book.Icon = input.Icon
	}
	if input.BaseCurrency != "" {
		book.BaseCurrency = input.BaseCurrency
	}

	if err := uc.bookRepo.Update(ctx, book); err != nil {
		return nil, err
	}

	return book, nil
}

// DeleteBook deletes a book. The default book is protected.
func (uc *BookUseCase) DeleteBook(ctx context.Context, id string) error {
	book, err := uc.bookRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if book.IsDefault {
		return domain.ErrDefaultBookProtected
	}

	return uc.bookRepo.Delete(ctx, id)
}
