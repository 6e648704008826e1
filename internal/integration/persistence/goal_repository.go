// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/domain/entity"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
	"github.com/finance-ai/backend/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create appends a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.Goal) error {
	goalModel := model.GoalFromEntity(goal)
	result := r.db.WithContext(ctx).Create(goalModel)
	if result.Error != nil {
		return fmt.Errorf("%w: %w", domainerror.ErrStoreUnavailable, result.Error)
	}
	return nil
}

// FindByID retrieves a goal by its ID.
func (r *goalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Goal, error) {
	var goalModel model.GoalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, fmt.Errorf("%w: %w", domainerror.ErrStoreUnavailable, result.Error)
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all goals for a given user in creation order.
func (r *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	var goalModels []model.GoalModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goalModels)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %w", domainerror.ErrStoreUnavailable, result.Error)
	}

	goals := make([]*entity.Goal, len(goalModels))
	for i, gm := range goalModels {
		goals[i] = gm.ToEntity()
	}
	return goals, nil
}

// UpdateCurrentAmount sets the current amount saved toward a goal.
func (r *goalRepository) UpdateCurrentAmount(ctx context.Context, id uuid.UUID, currentAmount decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"current_amount": currentAmount,
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %w", domainerror.ErrStoreUnavailable, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

// CountByUser returns the number of goals a user has recorded.
func (r *goalRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GoalModel{}).
		Where("user_id = ?", userID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %w", domainerror.ErrStoreUnavailable, result.Error)
	}
	return count, nil
}
