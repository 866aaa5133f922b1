package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

type insightFixture struct {
	*recordFixture
	settingsRepo *mocks.MockSettingsRepository
	cache        *mocks.MockCache
	uc           *usecase.InsightUseCase
}

func newInsightFixture(t *testing.T) *insightFixture {
	t.Helper()

	rf := newRecordFixture(t)
	settingsRepo := mocks.NewMockSettingsRepository()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return("", errors.New("cache miss")).AnyTimes()
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	uc := usecase.NewInsightUseCase(rf.recordRepo, rf.catRepo, settingsRepo, rf.bookRepo, cache)
	return &insightFixture{recordFixture: rf, settingsRepo: settingsRepo, cache: cache, uc: uc}
}

func (f *insightFixture) seedExpense(id string, amount int64, occurredAt time.Time, categoryID string) {
	f.recordRepo.Create(context.Background(), nil, &domain.Record{
		ID:         id,
		Kind:       domain.RecordExpense,
		Amount:     decimal.NewFromInt(amount),
		CategoryID: categoryID,
		OccurredAt: occurredAt,
		BookID:     "book-1",
	})
}

var insightNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestInsightUseCase_NoSpendingScoresPerfect(t *testing.T) {
	f := newInsightFixture(t)

	insight, err := f.uc.Compute(context.Background(), "", insightNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if insight.Score != 100 {
		t.Errorf("score = %d, want 100", insight.Score)
	}
	if len(insight.Messages) == 0 {
		t.Error("insight must carry at least one message")
	}
}

func TestInsightUseCase_Scoring(t *testing.T) {
	june := func(day int) time.Time { return time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC) }
	may := func(day int) time.Time { return time.Date(2025, time.May, day, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name      string
		budget    int64
		setup     func(f *insightFixture)
		wantScore int
	}{
		{
			name:   "over 90 percent of budget",
			budget: 100,
			setup: func(f *insightFixture) {
				f.seedExpense("e1", 95, june(10), "cat-food")
			},
			wantScore: 60, // 80 - 20
		},
		{
			name:   "over 70 percent of budget",
			budget: 100,
			setup: func(f *insightFixture) {
				f.seedExpense("e1", 80, june(10), "cat-food")
			},
			wantScore: 70, // 80 - 10
		},
		{
			name:   "comfortably under budget",
			budget: 100,
			setup: func(f *insightFixture) {
				f.seedExpense("e1", 30, june(10), "cat-food")
			},
			wantScore: 90, // 80 + 10
		},
		{
			name:   "spending jumped month over month",
			budget: 0,
			setup: func(f *insightFixture) {
				f.seedExpense("prev", 100, may(10), "cat-food")
				f.seedExpense("cur", 150, june(10), "cat-food")
			},
			wantScore: 65, // 80 - 15
		},
		{
			name:   "spending dropped month over month",
			budget: 0,
			setup: func(f *insightFixture) {
				f.seedExpense("prev", 100, may(10), "cat-food")
				f.seedExpense("cur", 50, june(10), "cat-food")
			},
			wantScore: 90, // 80 + 10
		},
		{
			name:   "category over its sub-budget",
			budget: 0,
			setup: func(f *insightFixture) {
				limit := decimal.NewFromInt(20)
				f.catRepo.Update(context.Background(), &domain.Category{
					ID: "cat-food", Name: "Food", Kind: domain.CategoryExpense, BudgetLimit: &limit,
				})
				f.seedExpense("e1", 50, june(10), "cat-food")
			},
			wantScore: 75, // 80 - 5
		},
		{
			name:   "penalties stack",
			budget: 100,
			setup: func(f *insightFixture) {
				limitA := decimal.NewFromInt(1)
				limitB := decimal.NewFromInt(1)
				f.catRepo.Update(context.Background(), &domain.Category{
					ID: "cat-food", Name: "Food", Kind: domain.CategoryExpense, BudgetLimit: &limitA,
				})
				f.catRepo.Create(context.Background(), &domain.Category{
					ID: "cat-rent", Name: "Rent", Kind: domain.CategoryExpense, BudgetLimit: &limitB,
				})
				f.seedExpense("prev", 10, may(10), "cat-food")
				f.seedExpense("e1", 95, june(10), "cat-food")
				f.seedExpense("e2", 95, june(11), "cat-rent")
			},
			// 80 - 20 (budget) - 15 (jump) - 5 - 5 (overages) = 35
			wantScore: 35,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newInsightFixture(t)
			if tt.budget > 0 {
				f.settingsRepo.Save(context.Background(), &domain.Settings{
					MonthlyBudget:   decimal.NewFromInt(tt.budget),
					BillingStartDay: 1,
				})
			}
			tt.setup(f)

			insight, err := f.uc.Compute(context.Background(), "book-1", insightNow)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if insight.Score != tt.wantScore {
				t.Errorf("score = %d, want %d (messages: %v)", insight.Score, tt.wantScore, insight.Messages)
			}
			if len(insight.Messages) == 0 {
				t.Error("insight must carry at least one message")
			}
		})
	}
}

func TestInsightUseCase_CustomCycleStartDay(t *testing.T) {
	f := newInsightFixture(t)
	f.settingsRepo.Save(context.Background(), &domain.Settings{
		MonthlyBudget:   decimal.NewFromInt(100),
		BillingStartDay: 20,
	})

	// June 15 with start day 20 falls in the cycle [May 20, Jun 20).
	f.seedExpense("in-cycle", 95, time.Date(2025, time.May, 25, 0, 0, 0, 0, time.UTC), "cat-food")
	f.seedExpense("out-of-cycle", 95, time.Date(2025, time.June, 25, 0, 0, 0, 0, time.UTC), "cat-food")

	insight, err := f.uc.Compute(context.Background(), "book-1", insightNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantStart := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	if !insight.CycleStart.Equal(wantStart) {
		t.Errorf("cycle start = %s, want %s", insight.CycleStart, wantStart)
	}
	if !insight.CurrentExpense.Equal(decimal.NewFromInt(95)) {
		t.Errorf("current expense = %s, want 95", insight.CurrentExpense)
	}
	if insight.Score != 60 {
		t.Errorf("score = %d, want 60", insight.Score)
	}
}

func TestInsightUseCase_CacheKeyCarriesStartDay(t *testing.T) {
	rf := newRecordFixture(t)
	settingsRepo := mocks.NewMockSettingsRepository()
	settingsRepo.Save(context.Background(), &domain.Settings{
		BillingStartDay: 10,
	})

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	var gotKey string
	cache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string) (string, error) {
			gotKey = key
			return "", errors.New("cache miss")
		})
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	uc := usecase.NewInsightUseCase(rf.recordRepo, rf.catRepo, settingsRepo, rf.bookRepo, cache)
	if _, err := uc.Compute(context.Background(), "book-1", insightNow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A different start day must never serve this entry.
	if !strings.HasSuffix(gotKey, ":10") {
		t.Errorf("cache key %q does not carry the billing start day", gotKey)
	}
}

func TestInsightUseCase_ServesFromCache(t *testing.T) {
	rf := newRecordFixture(t)
	settingsRepo := mocks.NewMockSettingsRepository()

	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCache(ctrl)
	cache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(`{"score":42,"messages":["cached"]}`, nil)

	uc := usecase.NewInsightUseCase(rf.recordRepo, rf.catRepo, settingsRepo, rf.bookRepo, cache)

	insight, err := uc.Compute(context.Background(), "book-1", insightNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if insight.Score != 42 {
		t.Errorf("score = %d, want cached 42", insight.Score)
	}
}
