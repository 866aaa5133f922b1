package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"record not found", domain.ErrRecordNotFound, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"debt not found", domain.ErrDebtNotFound, http.StatusNotFound},
		{"not reimbursable", domain.ErrNotReimbursable, http.StatusConflict},
		{"reimbursement attached", domain.ErrReimbursementAttached, http.StatusConflict},
		{"debt cleared", domain.ErrDebtCleared, http.StatusConflict},
		{"default book protected", domain.ErrDefaultBookProtected, http.StatusConflict},
		{"builtin category", domain.ErrBuiltinCategory, http.StatusConflict},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest},
		{"same account transfer", domain.ErrSameAccount, http.StatusBadRequest},
		{"category kind mismatch", domain.ErrCategoryKindMismatch, http.StatusBadRequest},
		{"invalid day of month", domain.ErrInvalidDayOfMonth, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, mapDomainError(tt.err))
		})
	}
}

func TestParseIntQuery(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/records?limit=25&bad=abc", nil)

	require.Equal(t, 25, parseIntQuery(req, "limit", 50))
	require.Equal(t, 50, parseIntQuery(req, "missing", 50))
	require.Equal(t, 50, parseIntQuery(req, "bad", 50))
}
