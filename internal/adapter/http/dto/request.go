package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// CreateRecordRequest represents a request to create a record.
type CreateRecordRequest struct {
	Kind          string          `json:"kind"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    string          `json:"category_id,omitempty"`
	AccountID     string          `json:"account_id,omitempty"`
	DestAccountID string          `json:"dest_account_id,omitempty"`
	OccurredAt    time.Time       `json:"occurred_at"`
	BookID        string          `json:"book_id,omitempty"`
	Remark        string          `json:"remark,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	GoalID        string          `json:"goal_id,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	ExchangeRate  decimal.Decimal `json:"exchange_rate,omitempty"`
	RefundOf      string          `json:"refund_of,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRecordRequest) ToUseCaseInput() usecase.CreateRecordInput {
	return usecase.CreateRecordInput{
		Kind:          domain.RecordKind(r.Kind),
		Amount:        r.Amount,
		CategoryID:    r.CategoryID,
		AccountID:     r.AccountID,
		DestAccountID: r.DestAccountID,
		OccurredAt:    r.OccurredAt,
		BookID:        r.BookID,
		Remark:        r.Remark,
		Tags:          r.Tags,
		GoalID:        r.GoalID,
		Currency:      r.Currency,
		ExchangeRate:  r.ExchangeRate,
		RefundOf:      r.RefundOf,
	}
}

// ReimburseRequest represents a request to reimburse an expense.
type ReimburseRequest struct {
	AccountID string `json:"account_id,omitempty"`
}

// CreateBookRequest represents a request to create a book.
type CreateBookRequest struct {
	Name         string `json:"name"`
	Icon         string `json:"icon,omitempty"`
	BaseCurrency string `json:"base_currency,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBookRequest) ToUseCaseInput() usecase.CreateBookInput {
	return usecase.CreateBookInput{
		Name:         r.Name,
		Icon:         r.Icon,
		BaseCurrency: r.BaseCurrency,
	}
}

// UpdateBookRequest represents a request to update a book.
type UpdateBookRequest struct {
	Name         string `json:"name,omitempty"`
	Icon         string `json:"icon,omitempty"`
	BaseCurrency string `json:"base_currency,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBookRequest) ToUseCaseInput(id string) usecase.UpdateBookInput {
	return usecase.UpdateBookInput{
		ID:           id,
		Name:         r.Name,
		Icon:         r.Icon,
		BaseCurrency: r.BaseCurrency,
	}
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name        string           `json:"name"`
	Icon        string           `json:"icon,omitempty"`
	Kind        string           `json:"kind"`
	Sort        int              `json:"sort,omitempty"`
	Keywords    []string         `json:"keywords,omitempty"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCategoryRequest) ToUseCaseInput() usecase.CreateCategoryInput {
	return usecase.CreateCategoryInput{
		Name:        r.Name,
		Icon:        r.Icon,
		Kind:        domain.CategoryKind(r.Kind),
		Sort:        r.Sort,
		Keywords:    r.Keywords,
		BudgetLimit: r.BudgetLimit,
	}
}

// UpdateCategoryRequest represents a request to update a category.
type UpdateCategoryRequest struct {
	Name        string           `json:"name,omitempty"`
	Icon        string           `json:"icon,omitempty"`
	Sort        *int             `json:"sort,omitempty"`
	Keywords    []string         `json:"keywords,omitempty"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateCategoryRequest) ToUseCaseInput(id string) usecase.UpdateCategoryInput {
	return usecase.UpdateCategoryInput{
		ID:          id,
		Name:        r.Name,
		Icon:        r.Icon,
		Sort:        r.Sort,
		Keywords:    r.Keywords,
		BudgetLimit: r.BudgetLimit,
	}
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name  string `json:"name"`
	Kind  string `json:"kind,omitempty"`
	Color string `json:"color,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name:  r.Name,
		Kind:  domain.AccountKind(r.Kind),
		Color: r.Color,
	}
}

// UpdateAccountRequest represents a request to update an account.
type UpdateAccountRequest struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateAccountRequest) ToUseCaseInput(id string) usecase.UpdateAccountInput {
	return usecase.UpdateAccountInput{
		ID:    id,
		Name:  r.Name,
		Color: r.Color,
	}
}

// CreateDebtRequest represents a request to create a debt.
type CreateDebtRequest struct {
	Direction    string          `json:"direction"`
	Principal    decimal.Decimal `json:"principal"`
	Counterparty string          `json:"counterparty"`
	Remark       string          `json:"remark,omitempty"`
	OpenedAt     time.Time       `json:"opened_at"`
	DueAt        *time.Time      `json:"due_at,omitempty"`
	BookID       string          `json:"book_id,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateDebtRequest) ToUseCaseInput() usecase.CreateDebtInput {
	return usecase.CreateDebtInput{
		Direction:    domain.DebtDirection(r.Direction),
		Principal:    r.Principal,
		Counterparty: r.Counterparty,
		Remark:       r.Remark,
		OpenedAt:     r.OpenedAt,
		DueAt:        r.DueAt,
		BookID:       r.BookID,
	}
}

// AddRepaymentRequest represents a request to record a repayment.
type AddRepaymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	AccountID  string          `json:"account_id,omitempty"`
	CategoryID string          `json:"category_id,omitempty"`
	Remark     string          `json:"remark,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// ToUseCaseInput converts to use case input.
func (r *AddRepaymentRequest) ToUseCaseInput(debtID string) usecase.AddRepaymentInput {
	return usecase.AddRepaymentInput{
		DebtID:     debtID,
		Amount:     r.Amount,
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
		Remark:     r.Remark,
		OccurredAt: r.OccurredAt,
	}
}

// CreateGoalRequest represents a request to create a goal.
type CreateGoalRequest struct {
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"target_amount"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	Icon         string          `json:"icon,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateGoalRequest) ToUseCaseInput() usecase.CreateGoalInput {
	return usecase.CreateGoalInput{
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
		Deadline:     r.Deadline,
		Icon:         r.Icon,
	}
}

// UpdateGoalRequest represents a request to update a goal.
type UpdateGoalRequest struct {
	Name         string           `json:"name,omitempty"`
	TargetAmount *decimal.Decimal `json:"target_amount,omitempty"`
	Deadline     *time.Time       `json:"deadline,omitempty"`
	Icon         string           `json:"icon,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateGoalRequest) ToUseCaseInput(id string) usecase.UpdateGoalInput {
	return usecase.UpdateGoalInput{
		ID:           id,
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
		Deadline:     r.Deadline,
		Icon:         r.Icon,
	}
}

// AdjustProgressRequest represents a manual goal progress adjustment.
type AdjustProgressRequest struct {
	Delta decimal.Decimal `json:"delta"`
}

// CreateRuleRequest represents a request to create a recurring rule.
type CreateRuleRequest struct {
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	CategoryID       string          `json:"category_id,omitempty"`
	AccountID        string          `json:"account_id,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Remark           string          `json:"remark,omitempty"`
	DayOfMonth       int             `json:"day_of_month"`
	InstallmentTotal int             `json:"installment_total,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateRuleRequest) ToUseCaseInput() usecase.CreateRuleInput {
	return usecase.CreateRuleInput{
		Kind:             domain.RecordKind(r.Kind),
		Amount:           r.Amount,
		CategoryID:       r.CategoryID,
		AccountID:        r.AccountID,
		Tags:             r.Tags,
		Remark:           r.Remark,
		DayOfMonth:       r.DayOfMonth,
		InstallmentTotal: r.InstallmentTotal,
	}
}

// UpdateRuleRequest represents a request to update a recurring rule.
type UpdateRuleRequest struct {
	Amount     *decimal.Decimal `json:"amount,omitempty"`
	CategoryID string           `json:"category_id,omitempty"`
	AccountID  string           `json:"account_id,omitempty"`
	Tags       []string         `json:"tags,omitempty"`
	Remark     *string          `json:"remark,omitempty"`
	DayOfMonth int              `json:"day_of_month,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateRuleRequest) ToUseCaseInput(id string) usecase.UpdateRuleInput {
	return usecase.UpdateRuleInput{
		ID:         id,
		Amount:     r.Amount,
		CategoryID: r.CategoryID,
		AccountID:  r.AccountID,
		Tags:       r.Tags,
		Remark:     r.Remark,
		DayOfMonth: r.DayOfMonth,
		Active:     r.Active,
	}
}

// CreateTemplateRequest represents a request to create a template.
type CreateTemplateRequest struct {
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"category_id,omitempty"`
	AccountID  string          `json:"account_id,omitempty"`
	Remark     string          `json:"remark,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTemplateRequest) ToUseCaseInput() usecase.CreateTemplateInput {
	return usecase.CreateTemplateInput{
		Name:       r.Name,
		Kind:       domain.RecordKind(r.Kind),
		Amount:     r.Amount,
		CategoryID: r.CategoryID,
		AccountID:  r.AccountID,
		Remark:     r.Remark,
		Tags:       r.Tags,
	}
}

// ApplyTemplateRequest represents a request to apply a template.
type ApplyTemplateRequest struct {
	BookID string `json:"book_id,omitempty"`
}

// UpdateSettingsRequest represents a request to update settings.
type UpdateSettingsRequest struct {
	MonthlyBudget   *decimal.Decimal `json:"monthly_budget,omitempty"`
	BillingStartDay *int             `json:"billing_start_day,omitempty"`
	Theme           string           `json:"theme,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateSettingsRequest) ToUseCaseInput() usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		MonthlyBudget:   r.MonthlyBudget,
		BillingStartDay: r.BillingStartDay,
		Theme:           r.Theme,
	}
}

// ArchiveRequest represents a request to close the books through a year.
type ArchiveRequest struct {
	Year int `json:"year"`
}

// BillDraftRequest represents one imported bill line.
type BillDraftRequest struct {
	Kind       string          `json:"kind,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	OccurredAt time.Time       `json:"occurred_at"`
	Remark     string          `json:"remark,omitempty"`
	AccountID  string          `json:"account_id,omitempty"`
}

// ImportBillsRequest represents a request to import bill lines as records.
type ImportBillsRequest struct {
	BookID string             `json:"book_id,omitempty"`
	Drafts []BillDraftRequest `json:"drafts"`
}

// ToDrafts converts request lines to use case drafts.
func (r *ImportBillsRequest) ToDrafts() []usecase.BillDraft {
	drafts := make([]usecase.BillDraft, len(r.Drafts))
	for i, d := range r.Drafts {
		drafts[i] = usecase.BillDraft{
			Kind:       domain.RecordKind(d.Kind),
			Amount:     d.Amount,
			OccurredAt: d.OccurredAt,
			Remark:     d.Remark,
			AccountID:  d.AccountID,
		}
	}
	return drafts
}
