// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// UpdateGoalAmountInput represents the input for updating a goal's saved amount.
type UpdateGoalAmountInput struct {
	UserID        uuid.UUID
	GoalID        uuid.UUID
	CurrentAmount decimal.Decimal
}

// UpdateGoalAmountOutput represents the output of updating a goal's saved amount.
type UpdateGoalAmountOutput struct {
	GoalID        uuid.UUID
	CurrentAmount decimal.Decimal
}

// UpdateGoalAmountUseCase updates the amount saved toward a goal. The amount
// may exceed the target; progress reporting stays uncapped.
type UpdateGoalAmountUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewUpdateGoalAmountUseCase creates a new UpdateGoalAmountUseCase instance.
func NewUpdateGoalAmountUseCase(goalRepo adapter.GoalRepository) *UpdateGoalAmountUseCase {
	return &UpdateGoalAmountUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal amount update.
func (uc *UpdateGoalAmountUseCase) Execute(ctx context.Context, input UpdateGoalAmountInput) (*UpdateGoalAmountOutput, error) {
	if input.CurrentAmount.IsNegative() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCurrentAmount,
			"current amount must not be negative",
			domainerror.ErrInvalidCurrentAmount,
		)
	}

	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	if goal.UserID != input.UserID {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"goal does not belong to user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.goalRepo.UpdateCurrentAmount(ctx, input.GoalID, input.CurrentAmount); err != nil {
		return nil, fmt.Errorf("failed to update goal amount: %w", err)
	}

	return &UpdateGoalAmountOutput{
		GoalID:        input.GoalID,
		CurrentAmount: input.CurrentAmount,
	}, nil
}
