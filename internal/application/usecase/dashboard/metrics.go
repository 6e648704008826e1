// Package dashboard contains the analytics engine use cases. Every
// derivation here is a pure function of the transaction set: there is no
// hidden state and no maintained aggregate, so each call recomputes from
// scratch and an empty set yields a well-formed zero result.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/domain/entity"
)

// dateKeyFormat is the calendar-date grouping key.
const dateKeyFormat = "2006-01-02"

// monthKeyFormat is the year+month grouping key.
const monthKeyFormat = "2006-01"

// Totals represents the headline figures of a ledger.
type Totals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetWorth      decimal.Decimal
}

// TrendPoint is a dated amount in a trend series.
type TrendPoint struct {
	Date   time.Time
	Amount decimal.Decimal
}

// TrendSeries holds the income and expense series over the date axis.
// A date appears in a series only when at least one transaction of that
// type exists on it; missing dates are not interpolated.
type TrendSeries struct {
	Income  []TrendPoint
	Expense []TrendPoint
}

// MonthlySpend is an absolute expense total for one calendar month.
type MonthlySpend struct {
	Month  string // YYYY-MM
	Amount decimal.Decimal
}

// CategoryStat aggregates expenses for a single category.
type CategoryStat struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// ComputeTotals derives total income, total expenses (absolute) and net worth.
func ComputeTotals(transactions []*entity.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero

	for _, t := range transactions {
		if t.Amount.IsPositive() {
			income = income.Add(t.Amount)
		} else if t.Amount.IsNegative() {
			expenses = expenses.Add(t.Amount.Abs())
		}
	}

	return Totals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetWorth:      income.Sub(expenses),
	}
}

// ComputeDailyAverage derives net worth divided by the day span of the
// ledger. The divisor is max(1, days between earliest and latest date) so a
// single-day history divides by one instead of zero.
func ComputeDailyAverage(transactions []*entity.Transaction) decimal.Decimal {
	if len(transactions) == 0 {
		return decimal.Zero
	}

	earliest := dateOnly(transactions[0].Date)
	latest := earliest
	for _, t := range transactions[1:] {
		d := dateOnly(t.Date)
		if d.Before(earliest) {
			earliest = d
		}
		if d.After(latest) {
			latest = d
		}
	}

	days := int64(latest.Sub(earliest).Hours() / 24)
	if days < 1 {
		days = 1
	}

	net := ComputeTotals(transactions).NetWorth
	return net.Div(decimal.NewFromInt(days)).Round(2)
}

// ComputeCategoryBreakdown derives the expense total per category as a
// mapping of category name to absolute amount. Categories with no expense
// transactions are omitted, not zero-filled.
func ComputeCategoryBreakdown(transactions []*entity.Transaction) map[string]decimal.Decimal {
	breakdown := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		breakdown[t.Category] = breakdown[t.Category].Add(t.Amount.Abs())
	}
	return breakdown
}

// ComputeDailyTrend derives the income and expense series grouped by
// calendar date. Expense amounts are reported as absolute values. Both
// series are sorted by date ascending.
func ComputeDailyTrend(transactions []*entity.Transaction) TrendSeries {
	incomeByDate := make(map[string]decimal.Decimal)
	expenseByDate := make(map[string]decimal.Decimal)

	for _, t := range transactions {
		key := dateOnly(t.Date).Format(dateKeyFormat)
		switch {
		case t.Amount.IsPositive():
			incomeByDate[key] = incomeByDate[key].Add(t.Amount)
		case t.Amount.IsNegative():
			expenseByDate[key] = expenseByDate[key].Add(t.Amount.Abs())
		}
	}

	return TrendSeries{
		Income:  sortedTrendPoints(incomeByDate),
		Expense: sortedTrendPoints(expenseByDate),
	}
}

// ComputeMonthlySpending derives absolute expense totals grouped by calendar
// month, sorted by month ascending.
func ComputeMonthlySpending(transactions []*entity.Transaction) []MonthlySpend {
	byMonth := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		key := t.Date.Format(monthKeyFormat)
		byMonth[key] = byMonth[key].Add(t.Amount.Abs())
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	spending := make([]MonthlySpend, 0, len(months))
	for _, m := range months {
		spending = append(spending, MonthlySpend{Month: m, Amount: byMonth[m]})
	}
	return spending
}

// ComputeWeeklyPattern derives absolute expense totals grouped by weekday
// name. The grouping key is the English weekday name, not an ordinal;
// calendar ordering is imposed by the consumer when it matters.
func ComputeWeeklyPattern(transactions []*entity.Transaction) map[string]decimal.Decimal {
	pattern := make(map[string]decimal.Decimal)
	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		day := t.Date.Weekday().String()
		pattern[day] = pattern[day].Add(t.Amount.Abs())
	}
	return pattern
}

// ComputeCategoryStats derives the per-category expense statistics table,
// sorted by total spent descending. Ties sort by category name for stable
// output.
func ComputeCategoryStats(transactions []*entity.Transaction) []CategoryStat {
	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)

	for _, t := range transactions {
		if !t.Amount.IsNegative() {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount.Abs())
		counts[t.Category]++
	}

	stats := make([]CategoryStat, 0, len(totals))
	for category, total := range totals {
		stats = append(stats, CategoryStat{
			Category: category,
			Total:    total,
			Count:    counts[category],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if !stats[i].Total.Equal(stats[j].Total) {
			return stats[i].Total.GreaterThan(stats[j].Total)
		}
		return stats[i].Category < stats[j].Category
	})

	return stats
}

// TopCategories returns the n largest categories by absolute expense sum.
func TopCategories(stats []CategoryStat, n int) []CategoryStat {
	if n <= 0 || n > len(stats) {
		n = len(stats)
	}
	top := make([]CategoryStat, n)
	copy(top, stats[:n])
	return top
}

// dateOnly strips the time component from a timestamp.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// sortedTrendPoints converts a date-keyed amount map into a date-ascending series.
func sortedTrendPoints(byDate map[string]decimal.Decimal) []TrendPoint {
	keys := make([]string, 0, len(byDate))
	for k := range byDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	points := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		date, _ := time.Parse(dateKeyFormat, k)
		points = append(points, TrendPoint{Date: date, Amount: byDate[k]})
	}
	return points
}
