// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
)

// GoalProgress reports a goal together with its derived progress figures.
// Percent is never capped: saving past the target yields a value above 100.
// DisplayFraction is the progress-bar value and is clamped to [0, 1].
type GoalProgress struct {
	ID              uuid.UUID
	Name            string
	CurrentAmount   decimal.Decimal
	TargetAmount    decimal.Decimal
	Percent         float64
	DisplayFraction float64
	TargetDate      time.Time
}

// ListGoalProgressInput represents the input for listing goal progress.
type ListGoalProgressInput struct {
	UserID uuid.UUID
}

// ListGoalProgressOutput represents the output of listing goal progress.
type ListGoalProgressOutput struct {
	Goals []GoalProgress
}

// ListGoalProgressUseCase computes progress for every goal a user has.
type ListGoalProgressUseCase struct {
	goalRepo adapter.GoalRepository
}

// NewListGoalProgressUseCase creates a new ListGoalProgressUseCase instance.
func NewListGoalProgressUseCase(goalRepo adapter.GoalRepository) *ListGoalProgressUseCase {
	return &ListGoalProgressUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal progress listing.
func (uc *ListGoalProgressUseCase) Execute(ctx context.Context, input ListGoalProgressInput) (*ListGoalProgressOutput, error) {
	goals, err := uc.goalRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	output := &ListGoalProgressOutput{
		Goals: make([]GoalProgress, 0, len(goals)),
	}

	for _, g := range goals {
		percent := Percent(g.CurrentAmount, g.TargetAmount)
		output.Goals = append(output.Goals, GoalProgress{
			ID:              g.ID,
			Name:            g.Name,
			CurrentAmount:   g.CurrentAmount,
			TargetAmount:    g.TargetAmount,
			Percent:         percent,
			DisplayFraction: DisplayFraction(percent),
			TargetDate:      g.TargetDate,
		})
	}

	return output, nil
}

// Percent computes the uncapped progress percentage of current toward target.
func Percent(current, target decimal.Decimal) float64 {
	if target.IsZero() {
		return 0
	}
	percent, _ := current.Mul(decimal.NewFromInt(100)).Div(target).Float64()
	return percent
}

// DisplayFraction clamps a progress percentage into the [0, 1] range used by
// progress-bar consumers. The numeric percent itself stays uncapped.
func DisplayFraction(percent float64) float64 {
	fraction := percent / 100
	if fraction > 1 {
		return 1
	}
	if fraction < 0 {
		return 0
	}
	return fraction
}
