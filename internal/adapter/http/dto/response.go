package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
)

// RecordResponse represents a record in API responses.
type RecordResponse struct {
	ID              string          `json:"id"`
	Kind            string          `json:"kind"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"category_id,omitempty"`
	AccountID       string          `json:"account_id,omitempty"`
	DestAccountID   string          `json:"dest_account_id,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
	RecordedAt      time.Time       `json:"recorded_at"`
	BookID          string          `json:"book_id"`
	Remark          string          `json:"remark,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	GoalID          string          `json:"goal_id,omitempty"`
	Reimbursable    bool            `json:"reimbursable"`
	ReimbursementOf string          `json:"reimbursement_of,omitempty"`
	RefundOf        string          `json:"refund_of,omitempty"`
	Currency        string          `json:"currency,omitempty"`
	ExchangeRate    decimal.Decimal `json:"exchange_rate"`
	Archived        bool            `json:"archived"`
}

// RecordFromDomain converts a domain record to a response.
func RecordFromDomain(r *domain.Record) *RecordResponse {
	return &RecordResponse{
		ID:              r.ID,
		Kind:            string(r.Kind),
		Amount:          r.Amount,
		CategoryID:      r.CategoryID,
		AccountID:       r.AccountID,
		DestAccountID:   r.DestAccountID,
		OccurredAt:      r.OccurredAt,
		RecordedAt:      r.RecordedAt,
		BookID:          r.BookID,
		Remark:          r.Remark,
		Tags:            r.Tags,
		GoalID:          r.GoalID,
		Reimbursable:    r.Reimbursable,
		ReimbursementOf: r.ReimbursementOf,
		RefundOf:        r.RefundOf,
		Currency:        r.Currency,
		ExchangeRate:    r.Rate(),
		Archived:        r.Archived,
	}
}

// RecordsFromDomain converts domain records to responses.
func RecordsFromDomain(records []*domain.Record) []*RecordResponse {
	result := make([]*RecordResponse, len(records))
	for i, r := range records {
		result[i] = RecordFromDomain(r)
	}
	return result
}

// BookResponse represents a book in API responses.
type BookResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Icon         string    `json:"icon,omitempty"`
	BaseCurrency string    `json:"base_currency"`
	IsDefault    bool      `json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookFromDomain converts a domain book to a response.
func BookFromDomain(b *domain.Book) *BookResponse {
	return &BookResponse{
		ID:           b.ID,
		Name:         b.Name,
		Icon:         b.Icon,
		BaseCurrency: b.BaseCurrency,
		IsDefault:    b.IsDefault,
		CreatedAt:    b.CreatedAt,
	}
}

// BooksFromDomain converts domain books to responses.
func BooksFromDomain(books []*domain.Book) []*BookResponse {
	result := make([]*BookResponse, len(books))
	for i, b := range books {
		result[i] = BookFromDomain(b)
	}
	return result
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Icon        string           `json:"icon,omitempty"`
	Kind        string           `json:"kind"`
	Sort        int              `json:"sort"`
	IsBuiltin   bool             `json:"is_builtin"`
	Keywords    []string         `json:"keywords,omitempty"`
	BudgetLimit *decimal.Decimal `json:"budget_limit,omitempty"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Icon:        c.Icon,
		Kind:        string(c.Kind),
		Sort:        c.Sort,
		IsBuiltin:   c.IsBuiltin,
		Keywords:    c.Keywords,
		BudgetLimit: c.BudgetLimit,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []*domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = CategoryFromDomain(c)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Kind      string          `json:"kind"`
	Balance   decimal.Decimal `json:"balance"`
	Color     string          `json:"color,omitempty"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Kind:      string(a.Kind),
		Balance:   a.Balance,
		Color:     a.Color,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// AccountSummaryResponse aggregates the asset position.
type AccountSummaryResponse struct {
	NetAsset  decimal.Decimal `json:"net_asset"`
	TotalDebt decimal.Decimal `json:"total_debt"`
}

// EntryResponse represents a balance entry in API responses.
type EntryResponse struct {
	ID              string          `json:"id"`
	AccountID       string          `json:"account_id"`
	RecordID        string          `json:"record_id"`
	Amount          decimal.Decimal `json:"amount"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	CurrentBalance  decimal.Decimal `json:"current_balance"`
	AccountVersion  int64           `json:"account_version"`
	CreatedAt       time.Time       `json:"created_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:              e.ID,
		AccountID:       e.AccountID,
		RecordID:        e.RecordID,
		Amount:          e.Amount,
		PreviousBalance: e.PreviousBalance,
		CurrentBalance:  e.CurrentBalance,
		AccountVersion:  e.AccountVersion,
		CreatedAt:       e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// DebtResponse represents a debt in API responses.
type DebtResponse struct {
	ID           string          `json:"id"`
	Direction    string          `json:"direction"`
	Principal    decimal.Decimal `json:"principal"`
	RepaidAmount decimal.Decimal `json:"repaid_amount"`
	Remaining    decimal.Decimal `json:"remaining"`
	Counterparty string          `json:"counterparty"`
	Remark       string          `json:"remark,omitempty"`
	OpenedAt     time.Time       `json:"opened_at"`
	DueAt        *time.Time      `json:"due_at,omitempty"`
	Cleared      bool            `json:"cleared"`
	BookID       string          `json:"book_id"`
}

// DebtFromDomain converts a domain debt to a response.
func DebtFromDomain(d *domain.Debt) *DebtResponse {
	return &DebtResponse{
		ID:           d.ID,
		Direction:    string(d.Direction),
		Principal:    d.Principal,
		RepaidAmount: d.RepaidAmount,
		Remaining:    d.Remaining(),
		Counterparty: d.Counterparty,
		Remark:       d.Remark,
		OpenedAt:     d.OpenedAt,
		DueAt:        d.DueAt,
		Cleared:      d.Cleared,
		BookID:       d.BookID,
	}
}

// DebtsFromDomain converts domain debts to responses.
func DebtsFromDomain(debts []*domain.Debt) []*DebtResponse {
	result := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		result[i] = DebtFromDomain(d)
	}
	return result
}

// ListDebtsResponse represents a debt listing with outstanding totals.
type ListDebtsResponse struct {
	Debts           []*DebtResponse `json:"debts"`
	TotalReceivable decimal.Decimal `json:"total_receivable"`
	TotalPayable    decimal.Decimal `json:"total_payable"`
}

// RepaymentResponse represents a repayment in API responses.
type RepaymentResponse struct {
	ID         string          `json:"id"`
	DebtID     string          `json:"debt_id"`
	Amount     decimal.Decimal `json:"amount"`
	Remark     string          `json:"remark,omitempty"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// RepaymentFromDomain converts a domain repayment to a response.
func RepaymentFromDomain(p *domain.Repayment) *RepaymentResponse {
	return &RepaymentResponse{
		ID:         p.ID,
		DebtID:     p.DebtID,
		Amount:     p.Amount,
		Remark:     p.Remark,
		OccurredAt: p.OccurredAt,
	}
}

// RepaymentsFromDomain converts domain repayments to responses.
func RepaymentsFromDomain(repayments []*domain.Repayment) []*RepaymentResponse {
	result := make([]*RepaymentResponse, len(repayments))
	for i, p := range repayments {
		result[i] = RepaymentFromDomain(p)
	}
	return result
}

// GoalResponse represents a goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Icon          string          `json:"icon,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GoalFromDomain converts a domain goal to a response.
func GoalFromDomain(g *domain.Goal) *GoalResponse {
	return &GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Icon:          g.Icon,
		CreatedAt:     g.CreatedAt,
	}
}

// GoalsFromDomain converts domain goals to responses.
func GoalsFromDomain(goals []*domain.Goal) []*GoalResponse {
	result := make([]*GoalResponse, len(goals))
	for i, g := range goals {
		result[i] = GoalFromDomain(g)
	}
	return result
}

// RuleResponse represents a recurring rule in API responses.
type RuleResponse struct {
	ID               string          `json:"id"`
	Kind             string          `json:"kind"`
	Amount           decimal.Decimal `json:"amount"`
	CategoryID       string          `json:"category_id,omitempty"`
	AccountID        string          `json:"account_id,omitempty"`
	Tags             []string        `json:"tags,omitempty"`
	Remark           string          `json:"remark,omitempty"`
	DayOfMonth       int             `json:"day_of_month"`
	LastTriggeredAt  *time.Time      `json:"last_triggered_at,omitempty"`
	Active           bool            `json:"active"`
	InstallmentTotal int             `json:"installment_total,omitempty"`
	InstallmentPaid  int             `json:"installment_paid,omitempty"`
}

// RuleFromDomain converts a domain rule to a response.
func RuleFromDomain(r *domain.RecurringRule) *RuleResponse {
	resp := &RuleResponse{
		ID:               r.ID,
		Kind:             string(r.Kind),
		Amount:           r.Amount,
		CategoryID:       r.CategoryID,
		AccountID:        r.AccountID,
		Tags:             r.Tags,
		Remark:           r.Remark,
		DayOfMonth:       r.DayOfMonth,
		Active:           r.Active,
		InstallmentTotal: r.InstallmentTotal,
		InstallmentPaid:  r.InstallmentPaid,
	}
	if !r.LastTriggeredAt.IsZero() {
		t := r.LastTriggeredAt
		resp.LastTriggeredAt = &t
	}
	return resp
}

// RulesFromDomain converts domain rules to responses.
func RulesFromDomain(rules []*domain.RecurringRule) []*RuleResponse {
	result := make([]*RuleResponse, len(rules))
	for i, r := range rules {
		result[i] = RuleFromDomain(r)
	}
	return result
}

// TriggerResponse reports how many recurring rules fired.
type TriggerResponse struct {
	Triggered int `json:"triggered"`
}

// TemplateResponse represents a template in API responses.
type TemplateResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID string          `json:"category_id,omitempty"`
	AccountID  string          `json:"account_id,omitempty"`
	Remark     string          `json:"remark,omitempty"`
	Tags       []string        `json:"tags,omitempty"`
}

// TemplateFromDomain converts a domain template to a response.
func TemplateFromDomain(t *domain.Template) *TemplateResponse {
	return &TemplateResponse{
		ID:         t.ID,
		Name:       t.Name,
		Kind:       string(t.Kind),
		Amount:     t.Amount,
		CategoryID: t.CategoryID,
		AccountID:  t.AccountID,
		Remark:     t.Remark,
		Tags:       t.Tags,
	}
}

// TemplatesFromDomain converts domain templates to responses.
func TemplatesFromDomain(templates []*domain.Template) []*TemplateResponse {
	result := make([]*TemplateResponse, len(templates))
	for i, t := range templates {
		result[i] = TemplateFromDomain(t)
	}
	return result
}

// SettingsResponse represents settings in API responses.
type SettingsResponse struct {
	MonthlyBudget   decimal.Decimal `json:"monthly_budget"`
	BillingStartDay int             `json:"billing_start_day"`
	Theme           string          `json:"theme"`
}

// SettingsFromDomain converts domain settings to a response.
func SettingsFromDomain(s *domain.Settings) *SettingsResponse {
	return &SettingsResponse{
		MonthlyBudget:   s.MonthlyBudget,
		BillingStartDay: s.BillingStartDay,
		Theme:           s.Theme,
	}
}

// ArchiveResponse reports the outcome of a year-end close.
type ArchiveResponse struct {
	ArchivedCount int             `json:"archived_count"`
	NetSum        decimal.Decimal `json:"net_sum"`
	RolloverID    string          `json:"rollover_id,omitempty"`
}

// ArchiveFromResult converts an archive result to a response.
func ArchiveFromResult(r *usecase.ArchiveResult) *ArchiveResponse {
	return &ArchiveResponse{
		ArchivedCount: r.ArchivedCount,
		NetSum:        r.NetSum,
		RolloverID:    r.RolloverID,
	}
}

// ImportBillsResponse reports imported records.
type ImportBillsResponse struct {
	Created []*RecordResponse `json:"created"`
	Count   int               `json:"count"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
