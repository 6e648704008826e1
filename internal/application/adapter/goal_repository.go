// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/domain/entity"
)

// GoalRepository defines the interface for goal persistence operations.
type GoalRepository interface {
	// Create appends a new goal record.
	Create(ctx context.Context, goal *entity.Goal) error

	// FindByID retrieves a goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error)

	// FindByUser retrieves all goals for a given user in creation order.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error)

	// UpdateCurrentAmount sets the current amount saved toward a goal.
	UpdateCurrentAmount(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal) error

	// CountByUser returns the number of goals a user has recorded.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
