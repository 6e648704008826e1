// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-ai/backend/internal/application/usecase/goal"
	"github.com/finance-ai/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
type CreateGoalRequest struct {
	Name          string  `json:"name" binding:"required,min=1,max=100"`
	TargetAmount  float64 `json:"target_amount" binding:"required"`
	CurrentAmount float64 `json:"current_amount"`
	TargetDate    string  `json:"target_date" binding:"required"`
}

// UpdateGoalAmountRequest represents the request body for updating a goal's
// saved amount.
type UpdateGoalAmountRequest struct {
	CurrentAmount float64 `json:"current_amount" binding:"min=0"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	TargetAmount  string `json:"target_amount"`
	CurrentAmount string `json:"current_amount"`
	TargetDate    string `json:"target_date"`
}

// GoalProgressResponse represents a goal with its derived progress figures.
// Percent is uncapped; DisplayFraction is clamped to [0, 1].
type GoalProgressResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	CurrentAmount   string  `json:"current_amount"`
	TargetAmount    string  `json:"target_amount"`
	Percent         float64 `json:"percent"`
	DisplayFraction float64 `json:"display_fraction"`
	TargetDate      string  `json:"target_date"`
}

// GoalProgressListResponse represents the response for goal progress listing.
type GoalProgressListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g *entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.StringFixed(2),
		CurrentAmount: g.CurrentAmount.StringFixed(2),
		TargetDate:    g.TargetDate.Format("2006-01-02"),
	}
}

// ToGoalProgressListResponse converts a ListGoalProgressOutput to a GoalProgressListResponse DTO.
func ToGoalProgressListResponse(output *goal.ListGoalProgressOutput) GoalProgressListResponse {
	goals := make([]GoalProgressResponse, len(output.Goals))
	for i, g := range output.Goals {
		goals[i] = GoalProgressResponse{
			ID:              g.ID.String(),
			Name:            g.Name,
			CurrentAmount:   g.CurrentAmount.StringFixed(2),
			TargetAmount:    g.TargetAmount.StringFixed(2),
			Percent:         g.Percent,
			DisplayFraction: g.DisplayFraction,
			TargetDate:      g.TargetDate.Format("2006-01-02"),
		}
	}
	return GoalProgressListResponse{Goals: goals}
}
