// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/domain/entity"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.Goal
}

// CreateGoalUseCase handles goal creation logic. Validation runs before any
// store interaction so a rejected goal leaves the store untouched.
type CreateGoalUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.GoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	if !input.TargetAmount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	if input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}

	if input.TargetDate.IsZero() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetDate,
			"target date is required",
			domainerror.ErrInvalidTargetDate,
		)
	}

	goal := entity.NewGoal(
		input.UserID,
		input.Name,
		input.TargetAmount,
		input.CurrentAmount,
		input.TargetDate,
	)

	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
