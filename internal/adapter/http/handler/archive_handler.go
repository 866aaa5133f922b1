package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/dto"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// ArchiveService defines the behavior needed by ArchiveHandler.
type ArchiveService interface {
	ArchiveThroughYear(ctx context.Context, year int) (*usecase.ArchiveResult, error)
}

// ArchiveHandler handles year-end close HTTP requests.
type ArchiveHandler struct {
	archiveUC ArchiveService
}

// NewArchiveHandler creates a new ArchiveHandler.
func NewArchiveHandler(archiveUC ArchiveService) *ArchiveHandler {
	return &ArchiveHandler{archiveUC: archiveUC}
}

// Archive freezes records through a year and writes the rollover marker.
// The year defaults to the previous calendar year.
func (h *ArchiveHandler) Archive(w http.ResponseWriter, r *http.Request) {
	var req dto.ArchiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if req.Year == 0 {
		req.Year = time.Now().UTC().Year() - 1
	}

	result, err := h.archiveUC.ArchiveThroughYear(r.Context(), req.Year)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to archive year", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ArchiveFromResult(result))
}
