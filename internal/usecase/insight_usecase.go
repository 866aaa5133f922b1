package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

const (
	insightBaseScore = 80
	insightCacheTTL  = 5 * time.Minute
)

// InsightUseCase computes the financial health score. It is a pure read over
// the active book's current and previous billing cycle, cached best-effort;
// a cache outage only costs the recomputation.
type InsightUseCase struct {
	recordRepo   RecordRepository
	categoryRepo CategoryRepository
	settingsRepo SettingsRepository
	bookRepo     BookRepository
	cache        Cache
}

// NewInsightUseCase creates a new InsightUseCase.
func NewInsightUseCase(
	recordRepo RecordRepository,
	categoryRepo CategoryRepository,
	settingsRepo SettingsRepository,
	bookRepo BookRepository,
	cache Cache,
) *InsightUseCase {
	return &InsightUseCase{
		recordRepo:   recordRepo,
		categoryRepo: categoryRepo,
		settingsRepo: settingsRepo,
		bookRepo:     bookRepo,
		cache:        cache,
	}
}

// Insight is the health report for one billing cycle.
type Insight struct {
	Score           int             `json:"score"`
	Messages        []string        `json:"messages"`
	CycleStart      time.Time       `json:"cycle_start"`
	CycleEnd        time.Time       `json:"cycle_end"`
	CurrentExpense  decimal.Decimal `json:"current_expense"`
	PreviousExpense decimal.Decimal `json:"previous_expense"`
}

// Compute scores the book's spending health at the given time. The score
// starts at 80 and moves with budget consumption, month-over-month change
// and per-category overages, clamped to [0,100]. Two cycles with no expense
// at all score a flat 100.
func (uc *InsightUseCase) Compute(ctx context.Context, bookID string, now time.Time) (*Insight, error) {
	if bookID == "" {
		book, err := uc.bookRepo.GetDefault(ctx)
		if err != nil {
			return nil, err
		}
		bookID = book.ID
	} else if _, err := uc.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	cycle := domain.CycleFor(now, settings.BillingStartDay)

	// The start day is part of the key: changing it mid-TTL must not serve
	// the old cycle window.
	cacheKey := fmt.Sprintf("insight:%s:%s:%d", bookID, cycle.Start.Format("2006-01-02"), settings.BillingStartDay)

	if cached, err := uc.cache.Get(ctx, cacheKey); err == nil && cached != "" {
		var insight Insight
		if err := json.Unmarshal([]byte(cached), &insight); err == nil {
			return &insight, nil
		}
	}

	insight, err := uc.compute(ctx, bookID, settings, cycle)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(insight); err == nil {
		_ = uc.cache.Set(ctx, cacheKey, string(encoded), insightCacheTTL)
	}

	return insight, nil
}

func (uc *InsightUseCase) compute(ctx context.Context, bookID string, settings *domain.Settings, cycle domain.BillingCycle) (*Insight, error) {
	prev := cycle.Previous()

	current, err := uc.recordRepo.SumEffectiveByKind(ctx, bookID, domain.RecordExpense, cycle.Start, cycle.End)
	if err != nil {
		return nil, err
	}
	previous, err := uc.recordRepo.SumEffectiveByKind(ctx, bookID, domain.RecordExpense, prev.Start, prev.End)
	if err != nil {
		return nil, err
	}

	insight := &Insight{
		Score:           insightBaseScore,
		CycleStart:      cycle.Start,
		CycleEnd:        cycle.End,
		CurrentExpense:  current,
		PreviousExpense: previous,
	}

	if current.IsZero() && previous.IsZero() {
		insight.Score = 100
		insight.Messages = []string{"No spending recorded in the last two cycles."}
		return insight, nil
	}

	if settings.MonthlyBudget.IsPositive() {
		ratio, _ := current.Div(settings.MonthlyBudget).Float64()
		switch {
		case ratio > 0.9:
			insight.Score -= 20
			insight.Messages = append(insight.Messages, fmt.Sprintf("Budget nearly exhausted: %.0f%% of the monthly budget is spent.", ratio*100))
		case ratio > 0.7:
			insight.Score -= 10
			insight.Messages = append(insight.Messages, fmt.Sprintf("Budget running low: %.0f%% of the monthly budget is spent.", ratio*100))
		default:
			insight.Score += 10
			insight.Messages = append(insight.Messages, fmt.Sprintf("Spending is on track at %.0f%% of the monthly budget.", ratio*100))
		}
	}

	if previous.IsPositive() {
		change, _ := current.Sub(previous).Div(previous).Float64()
		switch {
		case change > 0.2:
			insight.Score -= 15
			insight.Messages = append(insight.Messages, fmt.Sprintf("Spending jumped %.0f%% versus the previous cycle.", change*100))
		case change < -0.2:
			insight.Score += 10
			insight.Messages = append(insight.Messages, fmt.Sprintf("Spending dropped %.0f%% versus the previous cycle.", -change*100))
		}
	}

	overages, err := uc.categoryOverages(ctx, bookID, cycle)
	if err != nil {
		return nil, err
	}
	for _, name := range overages {
		insight.Score -= 5
		insight.Messages = append(insight.Messages, fmt.Sprintf("Category %q is over its budget.", name))
	}

	if insight.Score < 0 {
		insight.Score = 0
	}
	if insight.Score > 100 {
		insight.Score = 100
	}

	if len(insight.Messages) == 0 {
		insight.Messages = []string{"Finances look steady this cycle."}
	}

	return insight, nil
}

func (uc *InsightUseCase) categoryOverages(ctx context.Context, bookID string, cycle domain.BillingCycle) ([]string, error) {
	spent, err := uc.recordRepo.SumEffectiveByCategory(ctx, bookID, domain.RecordExpense, cycle.Start, cycle.End)
	if err != nil {
		return nil, err
	}
	if len(spent) == 0 {
		return nil, nil
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	var over []string
	for _, category := range categories {
		if category.BudgetLimit == nil || !category.BudgetLimit.IsPositive() {
			continue
		}
		if amount, ok := spent[category.ID]; ok && amount.GreaterThan(*category.BudgetLimit) {
			over = append(over, category.Name)
		}
	}

	return over, nil
}
