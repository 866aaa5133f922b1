package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// RecurringUseCase manages recurring rules and materializes them into
// records. The trigger check is driven by an explicit clock reading so the
// scheduler and the tests share one code path.
type RecurringUseCase struct {
	txManager TransactionManager
	ruleRepo  RuleRepository
	records   RecordCreator
	idGen     IDGenerator
}

// NewRecurringUseCase creates a new RecurringUseCase.
func NewRecurringUseCase(txManager TransactionManager, ruleRepo RuleRepository, records RecordCreator, idGen IDGenerator) *RecurringUseCase {
	return &RecurringUseCase{txManager: txManager, ruleRepo: ruleRepo, records: records, idGen: idGen}
}

// CreateRuleInput represents input for creating a recurring rule.
type CreateRuleInput struct {
	Kind             domain.RecordKind
	Amount           decimal.Decimal
	CategoryID       string
	AccountID        string
	Tags             []string
	Remark           string
	DayOfMonth       int
	InstallmentTotal int
}

// CreateRule creates an active recurring rule. A brand new rule has never
// triggered, so it fires on the first check that reaches its day of month.
func (uc *RecurringUseCase) CreateRule(ctx context.Context, input CreateRuleInput) (*domain.RecurringRule, error) {
	switch input.Kind {
	case domain.RecordExpense, domain.RecordIncome:
	default:
		return nil, domain.ErrInvalidRecordKind
	}
	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := domain.ValidateDayOfMonth(input.DayOfMonth); err != nil {
		return nil, err
	}

	rule := &domain.RecurringRule{
		ID:               uc.idGen.Generate(),
		Kind:             input.Kind,
		Amount:           input.Amount,
		CategoryID:       input.CategoryID,
		AccountID:        input.AccountID,
		Tags:             input.Tags,
		Remark:           input.Remark,
		DayOfMonth:       input.DayOfMonth,
		Active:           true,
		InstallmentTotal: input.InstallmentTotal,
	}

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

// GetRule retrieves a rule by ID.
func (uc *RecurringUseCase) GetRule(ctx context.Context, id string) (*domain.RecurringRule, error) {
	return uc.ruleRepo.GetByID(ctx, id)
}

// ListRules lists all rules, active and paused.
func (uc *RecurringUseCase) ListRules(ctx context.Context) ([]*domain.RecurringRule, error) {
	return uc.ruleRepo.List(ctx)
}

// UpdateRuleInput represents input for updating a rule.
type UpdateRuleInput struct {
	ID         string
	Amount     *decimal.Decimal
	CategoryID string
	AccountID  string
	Tags       []string
	Remark     *string
	DayOfMonth int
	Active     *bool
}

// UpdateRule updates a rule. Reactivating a rule does not reset its trigger
// history, so it will not fire twice in the month it last fired.
func (uc *RecurringUseCase) UpdateRule(ctx context.Context, input UpdateRuleInput) (*domain.RecurringRule, error) {
	rule, err := uc.ruleRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return nil, err
		}
		rule.Amount = *input.Amount
	}
	if input.CategoryID != "" {
		rule.CategoryID = input.CategoryID
	}
	if input.AccountID != "" {
		rule.AccountID = input.AccountID
	}
	if input.Tags != nil {
		rule.Tags = input.Tags
	}
	if input.Remark != nil {
		rule.Remark = *input.Remark
	}
	if input.DayOfMonth != 0 {
		if err := domain.ValidateDayOfMonth(input.DayOfMonth); err != nil {
			return nil, err
		}
		rule.DayOfMonth = input.DayOfMonth
	}
	if input.Active != nil {
		rule.Active = *input.Active
	}

	if err := uc.ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	return rule, nil
}

// DeleteRule removes a rule. Records it already generated are kept.
func (uc *RecurringUseCase) DeleteRule(ctx context.Context, id string) error {
	if _, err := uc.ruleRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.ruleRepo.Delete(ctx, id)
}

// CheckAndTrigger materializes every due rule into a record and returns how
// many fired. Each rule commits in its own transaction and a failing rule is
// skipped, so one bad rule does not hold back the rest; the failures come
// back joined in the returned error. Running the check twice in a row fires
// nothing the second time.
func (uc *RecurringUseCase) CheckAndTrigger(ctx context.Context, now time.Time) (int, error) {
	rules, err := uc.ruleRepo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	fired := 0
	var errs []error
	for _, rule := range rules {
		if !rule.ShouldTrigger(now) {
			continue
		}
		if err := uc.trigger(ctx, rule, now); err != nil {
			errs = append(errs, fmt.Errorf("trigger rule %s: %w", rule.ID, err))
			continue
		}
		fired++
	}

	return fired, errors.Join(errs...)
}

func (uc *RecurringUseCase) trigger(ctx context.Context, rule *domain.RecurringRule, now time.Time) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	remark := fmt.Sprintf("[auto] %s", rule.Remark)
	if rule.HasInstallment() {
		remark = fmt.Sprintf("%s (%d/%d)", remark, rule.InstallmentPaid+1, rule.InstallmentTotal)
	}

	if _, err := uc.records.CreateInTx(ctx, tx, CreateRecordInput{
		Kind:       rule.Kind,
		Amount:     rule.Amount,
		CategoryID: rule.CategoryID,
		AccountID:  rule.AccountID,
		OccurredAt: now,
		Remark:     remark,
		Tags:       rule.Tags,
	}); err != nil {
		return err
	}

	rule.LastTriggeredAt = now
	if rule.HasInstallment() {
		rule.InstallmentPaid++
		if rule.InstallmentPaid >= rule.InstallmentTotal {
			rule.Active = false
		}
	}
	if err := uc.ruleRepo.UpdateTx(ctx, tx, rule); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
