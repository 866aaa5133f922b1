package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/dto"
	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

type debtServiceStub struct {
	addFn            func(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error)
	getFn            func(ctx context.Context, id string) (*domain.Debt, error)
	addRepaymentFn   func(ctx context.Context, input usecase.AddRepaymentInput) (*domain.Repayment, error)
	listRepaymentsFn func(ctx context.Context, debtID string) ([]*domain.Repayment, error)
	deleteFn         func(ctx context.Context, id string) error
	listFn           func(ctx context.Context, bookID string) (*usecase.ListDebtsOutput, error)
}

func (s *debtServiceStub) AddDebt(ctx context.Context, input usecase.CreateDebtInput) (*domain.Debt, error) {
	return s.addFn(ctx, input)
}

func (s *debtServiceStub) GetDebt(ctx context.Context, id string) (*domain.Debt, error) {
	return s.getFn(ctx, id)
}

func (s *debtServiceStub) AddRepayment(ctx context.Context, input usecase.AddRepaymentInput) (*domain.Repayment, error) {
	return s.addRepaymentFn(ctx, input)
}

func (s *debtServiceStub) ListRepayments(ctx context.Context, debtID string) ([]*domain.Repayment, error) {
	return s.listRepaymentsFn(ctx, debtID)
}

func (s *debtServiceStub) DeleteDebt(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *debtServiceStub) ListDebts(ctx context.Context, bookID string) (*usecase.ListDebtsOutput, error) {
	return s.listFn(ctx, bookID)
}

func TestDebtHandler_AddRepayment_Created(t *testing.T) {
	var captured usecase.AddRepaymentInput

	handler := NewDebtHandler(&debtServiceStub{
		addRepaymentFn: func(ctx context.Context, input usecase.AddRepaymentInput) (*domain.Repayment, error) {
			captured = input
			return &domain.Repayment{
				ID:         "rep-1",
				DebtID:     input.DebtID,
				Amount:     input.Amount,
				OccurredAt: time.Now(),
			}, nil
		},
	})

	body, _ := json.Marshal(dto.AddRepaymentRequest{
		Amount:    decimal.NewFromInt(25),
		AccountID: "acc-1",
	})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/debts/debt-1/repayments", bytes.NewReader(body)), "id", "debt-1")
	rec := httptest.NewRecorder()

	handler.AddRepayment(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "debt-1", captured.DebtID)
	require.True(t, captured.Amount.Equal(decimal.NewFromInt(25)))

	var resp dto.RepaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "rep-1", resp.ID)
}

func TestDebtHandler_AddRepayment_NoOpAnswers204(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		addRepaymentFn: func(ctx context.Context, input usecase.AddRepaymentInput) (*domain.Repayment, error) {
			return nil, nil
		},
	})

	body, _ := json.Marshal(dto.AddRepaymentRequest{Amount: decimal.NewFromInt(25)})
	req := withURLParam(httptest.NewRequest(http.MethodPost, "/debts/missing/repayments", bytes.NewReader(body)), "id", "missing")
	rec := httptest.NewRecorder()

	handler.AddRepayment(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
}

func TestDebtHandler_Delete_ClearedConflict(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			return domain.ErrDebtCleared
		},
	})

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/debts/debt-1", nil), "id", "debt-1")
	rec := httptest.NewRecorder()

	handler.Delete(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestDebtHandler_List_Summary(t *testing.T) {
	handler := NewDebtHandler(&debtServiceStub{
		listFn: func(ctx context.Context, bookID string) (*usecase.ListDebtsOutput, error) {
			return &usecase.ListDebtsOutput{
				Debts: []*domain.Debt{
					{ID: "debt-1", Direction: domain.DebtLent, Principal: decimal.NewFromInt(100)},
				},
				Summary: usecase.DebtSummary{
					TotalReceivable: decimal.NewFromInt(100),
					TotalPayable:    decimal.Zero,
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/debts", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListDebtsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Debts, 1)
	require.True(t, resp.TotalReceivable.Equal(decimal.NewFromInt(100)))
}
