package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

func newBookFixture(t *testing.T) (*mocks.MockBookRepository, *usecase.BookUseCase) {
	t.Helper()
	bookRepo := mocks.NewMockBookRepository()
	bookRepo.Create(context.Background(), &domain.Book{ID: "book-default", Name: "Personal", IsDefault: true})
	return bookRepo, usecase.NewBookUseCase(bookRepo, mocks.NewMockIDGenerator())
}

func TestBookUseCase_ResolveActive(t *testing.T) {
	bookRepo, uc := newBookFixture(t)
	bookRepo.Create(context.Background(), &domain.Book{ID: "book-travel", Name: "Travel"})

	tests := []struct {
		name      string
		requested string
		wantID    string
		wantErr   error
	}{
		{name: "empty request resolves to default", requested: "", wantID: "book-default"},
		{name: "named book resolves to itself", requested: "book-travel", wantID: "book-travel"},
		{name: "unknown book is rejected", requested: "book-missing", wantErr: domain.ErrBookNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := uc.ResolveActive(context.Background(), tt.requested)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("resolved %q, want %q", id, tt.wantID)
			}
		})
	}
}

func TestBookUseCase_DeleteBook(t *testing.T) {
	bookRepo, uc := newBookFixture(t)
	bookRepo.Create(context.Background(), &domain.Book{ID: "book-travel", Name: "Travel"})

	if err := uc.DeleteBook(context.Background(), "book-default"); !errors.Is(err, domain.ErrDefaultBookProtected) {
		t.Errorf("deleting default book: error = %v, want ErrDefaultBookProtected", err)
	}

	if err := uc.DeleteBook(context.Background(), "book-travel"); err != nil {
		t.Errorf("deleting ordinary book: %v", err)
	}
	if _, err := bookRepo.GetByID(context.Background(), "book-travel"); !errors.Is(err, domain.ErrBookNotFound) {
		t.Error("book still present after delete")
	}
}

func TestBookUseCase_CreateBook(t *testing.T) {
	_, uc := newBookFixture(t)

	book, err := uc.CreateBook(context.Background(), usecase.CreateBookInput{Name: "Travel", BaseCurrency: "EUR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if book.IsDefault {
		t.Error("created book must not be default")
	}

	if _, err := uc.CreateBook(context.Background(), usecase.CreateBookInput{Name: ""}); err == nil {
		t.Error("expected error for empty name")
	}
}
