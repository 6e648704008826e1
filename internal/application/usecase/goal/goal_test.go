// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/domain/entity"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// fakeGoalRepository is an in-memory adapter.GoalRepository.
type fakeGoalRepository struct {
	goals     []*entity.Goal
	createErr error
}

func (r *fakeGoalRepository) Create(_ context.Context, goal *entity.Goal) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.goals = append(r.goals, goal)
	return nil
}

func (r *fakeGoalRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Goal, error) {
	for _, g := range r.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Goal, error) {
	result := make([]*entity.Goal, 0)
	for _, g := range r.goals {
		if g.UserID == userID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (r *fakeGoalRepository) UpdateCurrentAmount(_ context.Context, id uuid.UUID, currentAmount decimal.Decimal) error {
	for _, g := range r.goals {
		if g.ID == id {
			g.CurrentAmount = currentAmount
			g.UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return domainerror.ErrGoalNotFound
}

func (r *fakeGoalRepository) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, g := range r.goals {
		if g.UserID == userID {
			count++
		}
	}
	return count, nil
}

func futureDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2025-12-31")
	if err != nil {
		t.Fatalf("invalid date: %v", err)
	}
	return d
}

func TestCreateGoalUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("creates a valid goal", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewCreateGoalUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:        userID,
			Name:          "Emergency fund",
			TargetAmount:  decimal.RequireFromString("5000"),
			CurrentAmount: decimal.RequireFromString("1000"),
			TargetDate:    futureDate(t),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.Name != "Emergency fund" {
			t.Errorf("expected name preserved, got %q", output.Goal.Name)
		}
		if len(repo.goals) != 1 {
			t.Errorf("expected 1 stored goal, got %d", len(repo.goals))
		}
	})

	t.Run("zero target is rejected before the store", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewCreateGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "Broken",
			TargetAmount: decimal.Zero,
			TargetDate:   futureDate(t),
		})

		if !errors.Is(err, domainerror.ErrInvalidTargetAmount) {
			t.Errorf("expected ErrInvalidTargetAmount, got %v", err)
		}
		if len(repo.goals) != 0 {
			t.Error("rejected goal must not reach the store")
		}
	})

	t.Run("negative current amount is rejected", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewCreateGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:        userID,
			Name:          "Broken",
			TargetAmount:  decimal.RequireFromString("100"),
			CurrentAmount: decimal.RequireFromString("-1"),
			TargetDate:    futureDate(t),
		})

		if !errors.Is(err, domainerror.ErrInvalidCurrentAmount) {
			t.Errorf("expected ErrInvalidCurrentAmount, got %v", err)
		}
	})

	t.Run("missing target date is rejected", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewCreateGoalUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "Broken",
			TargetAmount: decimal.RequireFromString("100"),
		})

		if !errors.Is(err, domainerror.ErrInvalidTargetDate) {
			t.Errorf("expected ErrInvalidTargetDate, got %v", err)
		}
	})
}

func TestPercentAndDisplayFraction(t *testing.T) {
	tests := []struct {
		name             string
		current          string
		target           string
		wantPercent      float64
		wantDisplayValue float64
	}{
		{"halfway", "50", "100", 50, 0.5},
		{"complete", "100", "100", 100, 1},
		{"overfunded stays uncapped", "150", "100", 150, 1},
		{"zero saved", "0", "100", 0, 0},
		{"zero target", "50", "0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent := Percent(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.target))
			if percent != tt.wantPercent {
				t.Errorf("Percent: expected %v, got %v", tt.wantPercent, percent)
			}
			if fraction := DisplayFraction(percent); fraction != tt.wantDisplayValue {
				t.Errorf("DisplayFraction: expected %v, got %v", tt.wantDisplayValue, fraction)
			}
		})
	}
}

func TestListGoalProgressUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := &fakeGoalRepository{}
	createUC := NewCreateGoalUseCase(repo)
	listUC := NewListGoalProgressUseCase(repo)

	if _, err := createUC.Execute(context.Background(), CreateGoalInput{
		UserID:        userID,
		Name:          "Vacation",
		TargetAmount:  decimal.RequireFromString("2000"),
		CurrentAmount: decimal.RequireFromString("3000"),
		TargetDate:    futureDate(t),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	output, err := listUC.Execute(context.Background(), ListGoalProgressInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(output.Goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(output.Goals))
	}

	progress := output.Goals[0]
	if progress.Percent != 150 {
		t.Errorf("expected uncapped percent 150, got %v", progress.Percent)
	}
	if progress.DisplayFraction != 1 {
		t.Errorf("expected clamped display fraction 1, got %v", progress.DisplayFraction)
	}
}

func TestUpdateGoalAmountUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	newGoal := func(t *testing.T, repo *fakeGoalRepository) *entity.Goal {
		t.Helper()
		uc := NewCreateGoalUseCase(repo)
		output, err := uc.Execute(context.Background(), CreateGoalInput{
			UserID:       userID,
			Name:         "Car",
			TargetAmount: decimal.RequireFromString("10000"),
			TargetDate:   futureDate(t),
		})
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return output.Goal
	}

	t.Run("updates the saved amount", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		g := newGoal(t, repo)
		uc := NewUpdateGoalAmountUseCase(repo)

		output, err := uc.Execute(context.Background(), UpdateGoalAmountInput{
			UserID:        userID,
			GoalID:        g.ID,
			CurrentAmount: decimal.RequireFromString("2500"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.CurrentAmount.Equal(decimal.RequireFromString("2500")) {
			t.Errorf("expected 2500, got %s", output.CurrentAmount)
		}
		if !g.CurrentAmount.Equal(decimal.RequireFromString("2500")) {
			t.Errorf("store not updated, got %s", g.CurrentAmount)
		}
	})

	t.Run("amount above target is accepted", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		g := newGoal(t, repo)
		uc := NewUpdateGoalAmountUseCase(repo)

		if _, err := uc.Execute(context.Background(), UpdateGoalAmountInput{
			UserID:        userID,
			GoalID:        g.ID,
			CurrentAmount: decimal.RequireFromString("20000"),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		g := newGoal(t, repo)
		uc := NewUpdateGoalAmountUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoalAmountInput{
			UserID:        userID,
			GoalID:        g.ID,
			CurrentAmount: decimal.RequireFromString("-1"),
		})
		if !errors.Is(err, domainerror.ErrInvalidCurrentAmount) {
			t.Errorf("expected ErrInvalidCurrentAmount, got %v", err)
		}
	})

	t.Run("unknown goal maps to not found", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		uc := NewUpdateGoalAmountUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoalAmountInput{
			UserID:        userID,
			GoalID:        uuid.New(),
			CurrentAmount: decimal.RequireFromString("100"),
		})
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("another user's goal is forbidden", func(t *testing.T) {
		repo := &fakeGoalRepository{}
		g := newGoal(t, repo)
		uc := NewUpdateGoalAmountUseCase(repo)

		_, err := uc.Execute(context.Background(), UpdateGoalAmountInput{
			UserID:        uuid.New(),
			GoalID:        g.ID,
			CurrentAmount: decimal.RequireFromString("100"),
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedGoalAccess) {
			t.Errorf("expected ErrUnauthorizedGoalAccess, got %v", err)
		}
	})
}
