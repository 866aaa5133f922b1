package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// CategoryUseCase handles the category catalog.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo, idGen: idGen}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name        string
	Icon        string
	Kind        domain.CategoryKind
	Sort        int
	Keywords    []string
	BudgetLimit *decimal.Decimal
}

// CreateCategory adds a user category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if input.BudgetLimit != nil && input.BudgetLimit.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidAmount
	}

	category := &domain.Category{
		ID:          uc.idGen.Generate(),
		Name:        input.Name,
		Icon:        input.Icon,
		Kind:        input.Kind,
		Sort:        input.Sort,
		Keywords:    input.Keywords,
		BudgetLimit: input.BudgetLimit,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists every category, expense before income, ordered by
// sort within each kind.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// ListByKind lists the categories of one kind in sort order.
func (uc *CategoryUseCase) ListByKind(ctx context.Context, kind domain.CategoryKind) ([]*domain.Category, error) {
	return uc.categoryRepo.ListByKind(ctx, kind)
}

// UpdateCategoryInput represents input for updating a category.
type UpdateCategoryInput struct {
	ID          string
	Name        string
	Icon        string
	Sort        *int
	Keywords    []string
	BudgetLimit *decimal.Decimal
}

// UpdateCategory edits a category in place; builtins may be edited but keep
// their identity.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := domain.ValidateName(input.Name); err != nil {
			return nil, err
		}
		category.Name = input.Name
	}
	if input.Icon != "" {
		category.Icon = input.Icon
	}
	if input.Sort != nil {
		category.Sort = *input.Sort
	}
	if input.Keywords != nil {
		category.Keywords = input.Keywords
	}
	if input.BudgetLimit != nil {
		if input.BudgetLimit.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidAmount
		}
		category.BudgetLimit = input.BudgetLimit
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// DeleteCategory deletes a user category. Builtins are protected.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if category.IsBuiltin {
		return domain.ErrBuiltinCategory
	}

	return uc.categoryRepo.Delete(ctx, id)
}

// KeywordMatcher infers a category from a remark by keyword containment,
// falling back to the first category of the requested kind.
type KeywordMatcher struct {
	categoryRepo CategoryRepository
}

// NewKeywordMatcher creates a new KeywordMatcher.
func NewKeywordMatcher(categoryRepo CategoryRepository) *KeywordMatcher {
	return &KeywordMatcher{categoryRepo: categoryRepo}
}

// Match implements CategoryMatcher.
func (m *KeywordMatcher) Match(ctx context.Context, remark string, kind domain.RecordKind) (string, error) {
	categoryKind := domain.CategoryExpense
	if kind == domain.RecordIncome {
		categoryKind = domain.CategoryIncome
	}

	candidates, err := m.categoryRepo.ListByKind(ctx, categoryKind)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", domain.ErrCategoryNotFound
	}

	for _, category := range candidates {
		if category.MatchesRemark(remark) {
			return category.ID, nil
		}
	}

	// Nothing hit: the first category of the kind is the fallback.
	return candidates[0].ID, nil
}
