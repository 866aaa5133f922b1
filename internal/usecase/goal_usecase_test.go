package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase"
	"github.com/ledgerkeep/ledgerkeep/internal/usecase/mocks"
)

func newGoalFixture(t *testing.T) (*mocks.MockGoalRepository, *usecase.GoalUseCase) {
	t.Helper()
	goalRepo := mocks.NewMockGoalRepository()
	uc := usecase.NewGoalUseCase(
		mocks.NewMockTransactionManager(),
		goalRepo,
		mocks.NewMockOutboxRepository(),
		mocks.NewMockIDGenerator(),
	)
	return goalRepo, uc
}

func TestGoalUseCase_CreateGoal(t *testing.T) {
	_, uc := newGoalFixture(t)

	goal, err := uc.CreateGoal(context.Background(), usecase.CreateGoalInput{
		Name:         "New laptop",
		TargetAmount: decimal.NewFromInt(2000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !goal.CurrentAmount.IsZero() {
		t.Errorf("new goal progress = %s, want zero", goal.CurrentAmount)
	}
	if goal.ID == "" {
		t.Errorf("expected a generated ID")
	}
}

func TestGoalUseCase_CreateGoal_Validation(t *testing.T) {
	_, uc := newGoalFixture(t)

	tests := []struct {
		name    string
		input   usecase.CreateGoalInput
		wantErr error
	}{
		{
			name:    "empty name",
			input:   usecase.CreateGoalInput{Name: "", TargetAmount: decimal.NewFromInt(100)},
			wantErr: domain.ErrInvalidName,
		},
		{
			name:    "zero target",
			input:   usecase.CreateGoalInput{Name: "Bike", TargetAmount: decimal.Zero},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name:    "negative target",
			input:   usecase.CreateGoalInput{Name: "Bike", TargetAmount: decimal.NewFromInt(-5)},
			wantErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.CreateGoal(context.Background(), tt.input); !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGoalUseCase_AdjustProgress(t *testing.T) {
	tests := []struct {
		name    string
		current int64
		delta   int64
		want    int64
	}{
		{name: "positive delta adds", current: 100, delta: 50, want: 150},
		{name: "negative delta subtracts", current: 100, delta: -30, want: 70},
		{name: "underflow clamps at zero", current: 100, delta: -500, want: 0},
		{name: "overshoot past target is kept", current: 900, delta: 400, want: 1300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goalRepo, uc := newGoalFixture(t)
			goalRepo.Create(context.Background(), &domain.Goal{
				ID:            "goal-1",
				Name:          "Vacation",
				TargetAmount:  decimal.NewFromInt(1000),
				CurrentAmount: decimal.NewFromInt(tt.current),
			})

			goal, err := uc.AdjustProgress(context.Background(), "goal-1", decimal.NewFromInt(tt.delta))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !goal.CurrentAmount.Equal(decimal.NewFromInt(tt.want)) {
				t.Errorf("progress = %s, want %d", goal.CurrentAmount, tt.want)
			}
		})
	}
}

func TestGoalUseCase_AdjustProgress_NotFound(t *testing.T) {
	_, uc := newGoalFixture(t)

	if _, err := uc.AdjustProgress(context.Background(), "missing", decimal.NewFromInt(10)); !errors.Is(err, domain.ErrGoalNotFound) {
		t.Fatalf("expected ErrGoalNotFound, got %v", err)
	}
}

func TestGoalUseCase_UpdateGoal_KeepsProgress(t *testing.T) {
	goalRepo, uc := newGoalFixture(t)
	goalRepo.Create(context.Background(), &domain.Goal{
		ID:            "goal-1",
		Name:          "Vacation",
		TargetAmount:  decimal.NewFromInt(1000),
		CurrentAmount: decimal.NewFromInt(800),
	})

	smaller := decimal.NewFromInt(500)
	goal, err := uc.UpdateGoal(context.Background(), usecase.UpdateGoalInput{
		ID:           "goal-1",
		TargetAmount: &smaller,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !goal.TargetAmount.Equal(smaller) {
		t.Errorf("target = %s, want 500", goal.TargetAmount)
	}
	if !goal.CurrentAmount.Equal(decimal.NewFromInt(800)) {
		t.Errorf("progress = %s, want 800 kept past shrunken target", goal.CurrentAmount)
	}
}
