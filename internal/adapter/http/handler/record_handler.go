package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/dto"
	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// RecordService defines the behavior needed by RecordHandler.
type RecordService interface {
	AddRecord(ctx context.Context, input usecase.CreateRecordInput) (*domain.Record, error)
	GetRecord(ctx context.Context, id string) (*domain.Record, error)
	ListRecords(ctx context.Context, input usecase.ListRecordsInput) ([]*domain.Record, error)
	DeleteRecord(ctx context.Context, id string) error
	Reimburse(ctx context.Context, expenseID, accountID string) (*domain.Record, error)
}

// RecordHandler handles record-related HTTP requests.
type RecordHandler struct {
	recordUC RecordService
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordUC RecordService) *RecordHandler {
	return &RecordHandler{recordUC: recordUC}
}

// Create creates a new record.
func (h *RecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.recordUC.AddRecord(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create record", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(record))
}

// Get retrieves a record by ID.
func (h *RecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := h.recordUC.GetRecord(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get record", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordFromDomain(record))
}

// List lists records of a book with optional filters.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := usecase.RecordFilter{
		CategoryID:      r.URL.Query().Get("category_id"),
		IncludeArchived: r.URL.Query().Get("include_archived") == "true",
		Limit:           parseIntQuery(r, "limit", 50),
		Offset:          parseIntQuery(r, "offset", 0),
	}

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid from timestamp", err.Error())
			return
		}
		filter.From = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid to timestamp", err.Error())
			return
		}
		filter.To = &t
	}
	if v := r.URL.Query().Get("kind"); v != "" {
		kind := domain.RecordKind(v)
		filter.Kind = &kind
	}

	records, err := h.recordUC.ListRecords(r.Context(), usecase.ListRecordsInput{
		BookID: r.URL.Query().Get("book_id"),
		Filter: filter,
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list records", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RecordsFromDomain(records))
}

// Delete removes a record and reverses its balance effects.
func (h *RecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.recordUC.DeleteRecord(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to delete record", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reimburse writes the offsetting income for a reimbursable expense.
func (h *RecordHandler) Reimburse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.ReimburseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.recordUC.Reimburse(r.Context(), id, req.AccountID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to reimburse record", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(record))
}
