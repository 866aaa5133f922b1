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

// DebtService defines the behavior needed by DebtHandler.
type DebtService interface {
	AddDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error)
	GetDebt(ctx context.Context, id string) (*domain.Debt, error)
	AddRepayment(ctx context.Context, input usecase.AddRepaymentInput) (*domain.Repayment, error)
	ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error)
	DeleteDebt(ctx context.Context, id string) error
	ListDebts(ctx context.Context, bookID string) (*usecase.ListDebtsOutput, error)
}

// DebtHandler handles debt-related HTTP requests.
type DebtHandler struct {
	debtUC DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(debtUC DebtService) *DebtHandler {
	return &DebtHandler{debtUC: debtUC}
}

// Create records a new debt.
func (h *DebtHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	debt, err := h.debtUC.AddDebt(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create debt", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.DebtFromDomain(debt))
}

// Get retrieves a debt by ID.
func (h *DebtHandler) Get(w http.ResponseWriter, r *http.Request) {
	debt, err := h.debtUC.GetDebt(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get debt", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.DebtFromDomain(debt))
}

// List lists debts of a book with outstanding totals.
func (h *DebtHandler) List(w http.ResponseWriter, r *http.Request) {
	out, err := h.debtUC.ListDebts(r.Context(), r.URL.Query().Get("book_id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list debts", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListDebtsResponse{
		Debts:           dto.DebtsFromDomain(out.Debts),
		TotalReceivable: out.Summary.TotalReceivable,
		TotalPayable:    out.Summary.TotalPayable,
	})
}

// AddRepayment records a repayment against a debt. Repaying a missing or
// cleared debt is a no-op and answers 204.
func (h *DebtHandler) AddRepayment(w http.ResponseWriter, r *http.Request) {
	var req dto.AddRepaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	repayment, err := h.debtUC.AddRepayment(r.Context(), req.ToUseCaseInput(chi.URLParam(r, "id")))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add repayment", err.Error())
		return
	}

	if repayment == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, dto.RepaymentFromDomain(repayment))
}

// ListRepayments lists the repayments of a debt.
func (h *DebtHandler) ListRepayments(w http.ResponseWriter, r *http.Request) {
	repayments, err := h.debtUC.ListRepayments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list repayments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.RepaymentsFromDomain(repayments))
}

// Delete removes a debt and its repayment history.
func (h *DebtHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.debtUC.DeleteDebt(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, mapDomainError(err), "failed to delete debt", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
