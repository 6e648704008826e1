// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-ai/backend/internal/application/usecase/dashboard"
)

// DashboardResponse represents the full analytics view of a user's ledger.
type DashboardResponse struct {
	Totals            TotalsResponse         `json:"totals"`
	DailyAverage      string                 `json:"daily_average"`
	CategoryBreakdown map[string]string      `json:"category_breakdown"`
	Trend             TrendResponse          `json:"trend"`
	MonthlySpending   []MonthlySpendResponse `json:"monthly_spending"`
	WeeklyPattern     map[string]string      `json:"weekly_pattern"`
	CategoryStats     []CategoryStatResponse `json:"category_stats"`
	TopCategories     []CategoryStatResponse `json:"top_categories"`
	TransactionCount  int                    `json:"transaction_count"`
}

// TrendResponse represents the income and expense series over the date axis.
type TrendResponse struct {
	Income  []TrendPointResponse `json:"income"`
	Expense []TrendPointResponse `json:"expense"`
}

// TrendPointResponse represents a dated amount in a trend series.
type TrendPointResponse struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

// MonthlySpendResponse represents an expense total for one calendar month.
type MonthlySpendResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// CategoryStatResponse represents aggregated expense figures for a category.
type CategoryStatResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int    `json:"count"`
}

// ToDashboardResponse converts a GetDashboardOutput to a DashboardResponse DTO.
func ToDashboardResponse(output *dashboard.GetDashboardOutput) DashboardResponse {
	breakdown := make(map[string]string, len(output.CategoryBreakdown))
	for category, amount := range output.CategoryBreakdown {
		breakdown[category] = amount.StringFixed(2)
	}

	pattern := make(map[string]string, len(output.WeeklyPattern))
	for day, amount := range output.WeeklyPattern {
		pattern[day] = amount.StringFixed(2)
	}

	monthly := make([]MonthlySpendResponse, len(output.MonthlySpending))
	for i, m := range output.MonthlySpending {
		monthly[i] = MonthlySpendResponse{Month: m.Month, Amount: m.Amount.StringFixed(2)}
	}

	return DashboardResponse{
		Totals: TotalsResponse{
			TotalIncome:   output.Totals.TotalIncome.StringFixed(2),
			TotalExpenses: output.Totals.TotalExpenses.StringFixed(2),
			NetWorth:      output.Totals.NetWorth.StringFixed(2),
		},
		DailyAverage:      output.DailyAverage.StringFixed(2),
		CategoryBreakdown: breakdown,
		Trend: TrendResponse{
			Income:  toTrendPoints(output.Trend.Income),
			Expense: toTrendPoints(output.Trend.Expense),
		},
		MonthlySpending:  monthly,
		WeeklyPattern:    pattern,
		CategoryStats:    toCategoryStats(output.CategoryStats),
		TopCategories:    toCategoryStats(output.TopCategories),
		TransactionCount: output.TransactionCount,
	}
}

func toTrendPoints(points []dashboard.TrendPoint) []TrendPointResponse {
	result := make([]TrendPointResponse, len(points))
	for i, p := range points {
		result[i] = TrendPointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount.StringFixed(2),
		}
	}
	return result
}

func toCategoryStats(stats []dashboard.CategoryStat) []CategoryStatResponse {
	result := make([]CategoryStatResponse, len(stats))
	for i, s := range stats {
		result[i] = CategoryStatResponse{
			Category: s.Category,
			Total:    s.Total.StringFixed(2),
			Count:    s.Count,
		}
	}
	return result
}
