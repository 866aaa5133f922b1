package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkeep/ledgerkeep/internal/adapter/http/handler"
	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

type recordServiceStub struct {
	listFn func(ctx context.Context, input usecase.ListRecordsInput) ([]*domain.Record, error)
}

func (s *recordServiceStub) AddRecord(ctx context.Context, input usecase.CreateRecordInput) (*domain.Record, error) {
	return nil, nil
}

func (s *recordServiceStub) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	return nil, domain.ErrRecordNotFound
}

func (s *recordServiceStub) ListRecords(ctx context.Context, input usecase.ListRecordsInput) ([]*domain.Record, error) {
	return s.listFn(ctx, input)
}

func (s *recordServiceStub) DeleteRecord(ctx context.Context, id string) error {
	return nil
}

func (s *recordServiceStub) Reimburse(ctx context.Context, expenseID, accountID string) (*domain.Record, error) {
	return nil, nil
}

func newTestRouter() http.Handler {
	return NewRouter(RouterConfig{
		RecordHandler: handler.NewRecordHandler(&recordServiceStub{
			listFn: func(ctx context.Context, input usecase.ListRecordsInput) ([]*domain.Record, error) {
				return nil, nil
			},
		}),
	})
}

func TestRouterRoutesRecordList(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/records", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouterRecordNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/records/missing", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterUnknownPath(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
