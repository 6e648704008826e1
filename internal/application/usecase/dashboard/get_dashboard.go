// Package dashboard contains the analytics engine use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
)

// DefaultTopCategories is the ranking size used when the caller does not
// supply one.
const DefaultTopCategories = 5

// GetDashboardInput represents the input for computing the dashboard.
type GetDashboardInput struct {
	UserID uuid.UUID
	// TopN bounds the category ranking; zero means DefaultTopCategories.
	TopN int
}

// GetDashboardOutput is the full derived view of a user's ledger.
type GetDashboardOutput struct {
	Totals            Totals
	DailyAverage      decimal.Decimal
	CategoryBreakdown map[string]decimal.Decimal
	Trend             TrendSeries
	MonthlySpending   []MonthlySpend
	WeeklyPattern     map[string]decimal.Decimal
	CategoryStats     []CategoryStat
	TopCategories     []CategoryStat
	TransactionCount  int
}

// GetDashboardUseCase recomputes every derivation from the store's current
// contents. If materializing the transaction set fails the whole dashboard
// fails as a unit; once materialized no derivation can fail.
type GetDashboardUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(transactionRepo adapter.TransactionRepository) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the dashboard view for a user.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	topN := input.TopN
	if topN <= 0 {
		topN = DefaultTopCategories
	}

	stats := ComputeCategoryStats(transactions)

	return &GetDashboardOutput{
		Totals:            ComputeTotals(transactions),
		DailyAverage:      ComputeDailyAverage(transactions),
		CategoryBreakdown: ComputeCategoryBreakdown(transactions),
		Trend:             ComputeDailyTrend(transactions),
		MonthlySpending:   ComputeMonthlySpending(transactions),
		WeeklyPattern:     ComputeWeeklyPattern(transactions),
		CategoryStats:     stats,
		TopCategories:     TopCategories(stats, topN),
		TransactionCount:  len(transactions),
	}, nil
}
