package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/ledgerkeep/internal/domain"
)

// GoalUseCase manages savings goals. Automatic progress flows through the
// record engine; manual adjustments go through AdjustProgress here.
type GoalUseCase struct {
	txManager  TransactionManager
	goalRepo   GoalRepository
	outboxRepo OutboxRepository
	idGen      IDGenerator
}

// NewGoalUseCase creates a new GoalUseCase.
func NewGoalUseCase(txManager TransactionManager, goalRepo GoalRepository, outboxRepo OutboxRepository, idGen IDGenerator) *GoalUseCase {
	return &GoalUseCase{txManager: txManager, goalRepo: goalRepo, outboxRepo: outboxRepo, idGen: idGen}
}

// CreateGoalInput represents input for creating a goal.
type CreateGoalInput struct {
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
	Icon         string
}

// CreateGoal creates a goal with zero progress.
func (uc *GoalUseCase) CreateGoal(ctx context.Context, input CreateGoalInput) (*domain.Goal, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}
	if err := domain.ValidateAmount(input.TargetAmount); err != nil {
		return nil, err
	}

	goal := &domain.Goal{
		ID:            uc.idGen.Generate(),
		Name:          input.Name,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      input.Deadline,
		CreatedAt:     time.Now().UTC(),
		Icon:          input.Icon,
	}

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// GetGoal retrieves a goal by ID.
func (uc *GoalUseCase) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	return uc.goalRepo.GetByID(ctx, id)
}

// ListGoals lists all goals.
func (uc *GoalUseCase) ListGoals(ctx context.Context) ([]*domain.Goal, error) {
	return uc.goalRepo.List(ctx)
}

// UpdateGoalInput represents input for updating a goal's metadata.
type UpdateGoalInput struct {
	ID           string
	Name         string
	TargetAmount *decimal.Decimal
	Deadline     *time.Time
	Icon         string
}

// UpdateGoal updates a goal's name, target, deadline or icon. Progress
// already earned is kept even when the target shrinks below it.
func (uc *GoalUseCase) UpdateGoal(ctx context.Context, input UpdateGoalInput) (*domain.Goal, error) {
	goal, err := uc.goalRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		if err := domain.ValidateName(input.Name); err != nil {
			return nil, err
		}
		goal.Name = input.Name
	}
	if input.TargetAmount != nil {
		if err := domain.ValidateAmount(*input.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *input.TargetAmount
	}
	if input.Deadline != nil {
		goal.Deadline = input.Deadline
	}
	if input.Icon != "" {
		goal.Icon = input.Icon
	}

	if err := uc.goalRepo.Update(ctx, goal); err != nil {
		return nil, err
	}

	return goal, nil
}

// AdjustProgress applies a signed manual delta to a goal's progress. The
// result is floor-clamped at zero; saving past the target is allowed.
func (uc *GoalUseCase) AdjustProgress(ctx context.Context, id string, delta decimal.Decimal) (*domain.Goal, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	goal, err := uc.goalRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	next := goal.ApplyDelta(delta)
	if err := uc.goalRepo.UpdateProgress(ctx, tx, goal.ID, next); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   goal.ID,
		AggregateType: domain.AggregateTypeGoal,
		EventType:     domain.EventTypeGoalProgressed,
		Payload: map[string]any{
			"goal_id": goal.ID,
			"current": next.String(),
			"target":  goal.TargetAmount.String(),
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	goal.CurrentAmount = next
	return goal, nil
}

// DeleteGoal removes a goal. Records that referenced it keep their goal tag;
// the dangling reference is harmless.
func (uc *GoalUseCase) DeleteGoal(ctx context.Context, id string) error {
	if _, err := uc.goalRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.goalRepo.Delete(ctx, id)
}
