package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// InsightService defines the behavior needed by InsightHandler.
type InsightService interface {
	Compute(ctx context.Context, bookID string, now time.Time) (*usecase.Insight, error)
}

// InsightHandler handles spending insight HTTP requests.
type InsightHandler struct {
	insightUC InsightService
}

// NewInsightHandler creates a new InsightHandler.
func NewInsightHandler(insightUC InsightService) *InsightHandler {
	return &InsightHandler{insightUC: insightUC}
}

// Get computes the insight score for the current billing cycle.
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	insight, err := h.insightUC.Compute(r.Context(), r.URL.Query().Get("book_id"), time.Now().UTC())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to compute insight", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, insight)
}
