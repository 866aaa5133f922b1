package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/dto"
	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// BookService defines the behavior needed by BookHandler.
type BookService interface {
	CreateBook(ctx context.Context, input usecase.CreateBookInput) (*domain.Book, error)
	GetBook(ctx context.Context, id string) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]*domain.Book, error)
	UpdateBook(ctx context.Context, input usecase.UpdateBookInput) (*domain.Book, error)
	DeleteBook(ctx context.Context, id string) error
}

// BookHandler handles book-related HTTP requests.
type BookHandler struct {
	bookUC BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(bookUC BookService) *BookHandler {
	return &BookHandler{bookUC: bookUC}
}

// Create creates a new book.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	book, err := h.bookUC.CreateBook(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create book", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BookFromDomain(book))
}

// Get retrieves a book by ID.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	book, err := h.bookUC.GetBook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get book", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookFromDomain(book))
}

// List lists all books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookUC.ListBooks(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list books", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BooksFromDomain(books))
}

// Update updates a book.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	book, err := h.bookUC.UpdateBook(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update book", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BookFromDomain(book))
}

// Delete deletes a book. The default book is protected.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.bookUC.DeleteBook(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete book", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
