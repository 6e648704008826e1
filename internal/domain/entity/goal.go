// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal in the FinanceAI system.
// CurrentAmount may exceed TargetAmount; progress reporting is uncapped.
type Goal struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewGoal creates a new Goal entity.
func NewGoal(
	userID uuid.UUID,
	name string,
	targetAmount decimal.Decimal,
	currentAmount decimal.Decimal,
	targetDate time.Time,
) *Goal {
	now := time.Now().UTC()

	return &Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
