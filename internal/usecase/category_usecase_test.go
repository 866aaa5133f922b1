package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

func TestCategoryUseCase_DeleteCategory(t *testing.T) {
	catRepo := mocks.NewMockCategoryRepository()
	catRepo.Create(context.Background(), &domain.Category{ID: "cat-builtin", Name: "Food", Kind: domain.CategoryExpense, IsBuiltin: true})
	catRepo.Create(context.Background(), &domain.Category{ID: "cat-user", Name: "Pets", Kind: domain.CategoryExpense})
	uc := usecase.NewCategoryUseCase(catRepo, mocks.NewMockIDGenerator())

	if err := uc.DeleteCategory(context.Background(), "cat-builtin"); !errors.Is(err, domain.ErrBuiltinCategory) {
		t.Errorf("deleting builtin: error = %v, want ErrBuiltinCategory", err)
	}
	if err := uc.DeleteCategory(context.Background(), "cat-user"); err != nil {
		t.Errorf("deleting user category: %v", err)
	}
	if err := uc.DeleteCategory(context.Background(), "cat-missing"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("deleting missing: error = %v, want ErrCategoryNotFound", err)
	}
}

func TestKeywordMatcher_Match(t *testing.T) {
	catRepo := mocks.NewMockCategoryRepository()
	catRepo.Create(context.Background(), &domain.Category{
		ID: "cat-food", Name: "Food", Kind: domain.CategoryExpense,
		Keywords: []string{"lunch", "dinner", "restaurant"},
	})
	catRepo.Create(context.Background(), &domain.Category{
		ID: "cat-transport", Name: "Transport", Kind: domain.CategoryExpense,
		Keywords: []string{"taxi", "metro"},
	})
	catRepo.Create(context.Background(), &domain.Category{
		ID: "cat-salary", Name: "Salary", Kind: domain.CategoryIncome,
	})
	matcher := usecase.NewKeywordMatcher(catRepo)

	tests := []struct {
		name   string
		remark string
		kind   domain.RecordKind
		want   string
	}{
		{name: "keyword hit", remark: "Team lunch at the office", kind: domain.RecordExpense, want: "cat-food"},
		{name: "case-insensitive hit", remark: "TAXI home", kind: domain.RecordExpense, want: "cat-transport"},
		{name: "no hit falls back to first of kind", remark: "mystery purchase", kind: domain.RecordExpense, want: "cat-food"},
		{name: "income falls back to first income category", remark: "anything", kind: domain.RecordIncome, want: "cat-salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matcher.Match(context.Background(), tt.remark, tt.kind)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("matched %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKeywordMatcher_NoCategoriesOfKind(t *testing.T) {
	catRepo := mocks.NewMockCategoryRepository()
	matcher := usecase.NewKeywordMatcher(catRepo)

	if _, err := matcher.Match(context.Background(), "whatever", domain.RecordExpense); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("error = %v, want ErrCategoryNotFound", err)
	}
}
