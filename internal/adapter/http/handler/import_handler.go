package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/dto"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// BillImportService defines the behavior needed by ImportHandler.
type BillImportService interface {
	Import(ctx context.Context, bookID string, drafts []usecase.BillDraft) (*usecase.ImportResult, error)
}

// ImportHandler handles bill import HTTP requests.
type ImportHandler struct {
	importUC BillImportService
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(importUC BillImportService) *ImportHandler {
	return &ImportHandler{importUC: importUC}
}

// Import converts bill lines into records in one transaction. A single
// malformed line rejects the whole batch.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportBillsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.importUC.Import(r.Context(), req.BookID, req.ToDrafts())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to import bills", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ImportBillsResponse{
		Created: dto.RecordsFromDomain(result.Created),
		Count:   len(result.Created),
	})
}
