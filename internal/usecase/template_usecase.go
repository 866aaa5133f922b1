package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// TemplateUseCase manages quick-entry presets and expands them into records.
type TemplateUseCase struct {
	templateRepo TemplateRepository
	records      *RecordUseCase
	idGen        IDGenerator
}

// NewTemplateUseCase creates a new TemplateUseCase.
func NewTemplateUseCase(templateRepo TemplateRepository, records *RecordUseCase, idGen IDGenerator) *TemplateUseCase {
	return &TemplateUseCase{templateRepo: templateRepo, records: records, idGen: idGen}
}

// CreateTemplateInput represents input for creating a template.
type CreateTemplateInput struct {
	Name       string
	Kind       domain.RecordKind
	Amount     decimal.Decimal
	CategoryID string
	AccountID  string
	Remark     string
	Tags       []string
}

// CreateTemplate creates a quick-entry preset.
func (uc *TemplateUseCase) CreateTemplate(ctx context.Context, input CreateTemplateInput) (*domain.Template, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	switch input.Kind {
	case domain.RecordExpense, domain.RecordIncome:
	default:
		return nil, domain.ErrInvalidRecordKind
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	template := &domain.Template{
		ID:         uc.idGen.Generate(),
		Name:       input.Name,
		Kind:       input.Kind,
		Amount:     input.Amount,
		CategoryID: input.CategoryID,
		AccountID:  input.AccountID,
		Remark:     input.Remark,
		Tags:       input.Tags,
	}

	if err := uc.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}

	return template, nil
}

// ListTemplates lists all templates.
func (uc *TemplateUseCase) ListTemplates(ctx context.Context) ([]*domain.Template, error) {
	return uc.templateRepo.List(ctx)
}

// DeleteTemplate removes a template.
func (uc *TemplateUseCase) DeleteTemplate(ctx context.Context, id string) error {
	return uc.templateRepo.Delete(ctx, id)
}

// ApplyTemplate expands a template into a real record through the engine.
func (uc *TemplateUseCase) ApplyTemplate(ctx context.Context, templateID, bookID string) (*domain.Record, error) {
	template, err := uc.templateRepo.GetByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	return uc.records.AddRecord(ctx, CreateRecordInput{
		Kind:       template.Kind,
		Amount:     template.Amount,
		CategoryID: template.CategoryID,
		AccountID:  template.AccountID,
		BookID:     bookID,
		Remark:     template.Remark,
		Tags:       template.Tags,
	})
}
