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

// TemplateService defines the behavior needed by TemplateHandler.
type TemplateService interface {
	CreateTemplate(ctx context.Context, input usecase.CreateTemplateInput) (*domain.Template, error)
	ListTemplates(ctx context.Context) ([]*domain.Template, error)
	DeleteTemplate(ctx context.Context, id string) error
	ApplyTemplate(ctx context.Context, templateID, bookID string) (*domain.Record, error)
}

// TemplateHandler handles template-related HTTP requests.
type TemplateHandler struct {
	templateUC TemplateService
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateUC TemplateService) *TemplateHandler {
	return &TemplateHandler{templateUC: templateUC}
}

// Create creates a new template.
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	template, err := h.templateUC.CreateTemplate(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create template", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.TemplateFromDomain(template))
}

// List lists all templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.templateUC.ListTemplates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list templates", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TemplatesFromDomain(templates))
}

// Delete deletes a template.
func (h *TemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.templateUC.DeleteTemplate(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete template", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Apply writes a record from a template.
func (h *TemplateHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.templateUC.ApplyTemplate(r.Context(), chi.URLParam(r, "id"), req.BookID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to apply template", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.RecordFromDomain(record))
}
