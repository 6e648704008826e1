// Package dashboard contains the analytics engine use cases.
package dashboard

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/domain/entity"
)

func txn(date string, amount string, category string, txnType entity.TransactionType) *entity.Transaction {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		panic(err)
	}
	return &entity.Transaction{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Date:     d,
		Amount:   a,
		Category: category,
		Type:     txnType,
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("mixed ledger", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
			txn("2024-07-03", "3000.00", "Salary", entity.TransactionTypeIncome),
			txn("2024-07-10", "-75.00", "Food", entity.TransactionTypeExpense),
		}

		totals := ComputeTotals(transactions)

		if !totals.TotalIncome.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected income 3000, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpenses.Equal(decimal.RequireFromString("125")) {
			t.Errorf("expected expenses 125, got %s", totals.TotalExpenses)
		}
		if !totals.NetWorth.Equal(decimal.RequireFromString("2875")) {
			t.Errorf("expected net worth 2875, got %s", totals.NetWorth)
		}
	})

	t.Run("empty ledger yields zeros", func(t *testing.T) {
		totals := ComputeTotals(nil)

		if !totals.TotalIncome.IsZero() {
			t.Errorf("expected zero income, got %s", totals.TotalIncome)
		}
		if !totals.TotalExpenses.IsZero() {
			t.Errorf("expected zero expenses, got %s", totals.TotalExpenses)
		}
		if !totals.NetWorth.IsZero() {
			t.Errorf("expected zero net worth, got %s", totals.NetWorth)
		}
	})
}

func TestComputeDailyAverage(t *testing.T) {
	t.Run("divides net by day span", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
			txn("2024-07-03", "3000.00", "Salary", entity.TransactionTypeIncome),
			txn("2024-07-10", "-75.00", "Food", entity.TransactionTypeExpense),
		}

		// Net 2875 over a 9-day span.
		avg := ComputeDailyAverage(transactions)
		expected := decimal.RequireFromString("2875").
			Div(decimal.NewFromInt(9)).
			Round(2)
		if !avg.Equal(expected) {
			t.Errorf("expected %s, got %s", expected, avg)
		}
	})

	t.Run("single day divides by one", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-07-01", "100.00", "Salary", entity.TransactionTypeIncome),
			txn("2024-07-01", "-40.00", "Food", entity.TransactionTypeExpense),
		}

		avg := ComputeDailyAverage(transactions)
		if !avg.Equal(decimal.RequireFromString("60")) {
			t.Errorf("expected 60, got %s", avg)
		}
	})

	t.Run("empty ledger is zero", func(t *testing.T) {
		if avg := ComputeDailyAverage(nil); !avg.IsZero() {
			t.Errorf("expected zero, got %s", avg)
		}
	})
}

func TestComputeCategoryBreakdown(t *testing.T) {
	t.Run("sums expenses per category, income excluded", func(t *testing.T) {
		transactions := []*entity.Transaction{
			txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
			txn("2024-07-03", "3000.00", "Salary", entity.TransactionTypeIncome),
			txn("2024-07-10", "-75.00", "Food", entity.TransactionTypeExpense),
		}

		breakdown := ComputeCategoryBreakdown(transactions)

		if len(breakdown) != 1 {
			t.Fatalf("expected 1 category, got %d", len(breakdown))
		}
		if !breakdown["Food"].Equal(decimal.RequireFromString("125")) {
			t.Errorf("expected Food 125, got %s", breakdown["Food"])
		}
		if _, exists := breakdown["Salary"]; exists {
			t.Error("income category must not appear in expense breakdown")
		}
	})

	t.Run("categories without expenses are omitted", func(t *testing.T) {
		breakdown := ComputeCategoryBreakdown([]*entity.Transaction{
			txn("2024-07-03", "500.00", "Freelance", entity.TransactionTypeIncome),
		})
		if len(breakdown) != 0 {
			t.Errorf("expected empty breakdown, got %v", breakdown)
		}
	})
}

func TestComputeDailyTrend(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-07-10", "-75.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-01", "-25.00", "Transportation", entity.TransactionTypeExpense),
		txn("2024-07-03", "3000.00", "Salary", entity.TransactionTypeIncome),
	}

	trend := ComputeDailyTrend(transactions)

	t.Run("income series holds only income dates", func(t *testing.T) {
		if len(trend.Income) != 1 {
			t.Fatalf("expected 1 income point, got %d", len(trend.Income))
		}
		if got := trend.Income[0].Date.Format("2006-01-02"); got != "2024-07-03" {
			t.Errorf("expected 2024-07-03, got %s", got)
		}
	})

	t.Run("expense series is date ascending with absolute day sums", func(t *testing.T) {
		if len(trend.Expense) != 2 {
			t.Fatalf("expected 2 expense points, got %d", len(trend.Expense))
		}
		if got := trend.Expense[0].Date.Format("2006-01-02"); got != "2024-07-01" {
			t.Errorf("expected first point 2024-07-01, got %s", got)
		}
		if !trend.Expense[0].Amount.Equal(decimal.RequireFromString("75")) {
			t.Errorf("expected 75 on 2024-07-01, got %s", trend.Expense[0].Amount)
		}
		if !trend.Expense[1].Amount.Equal(decimal.RequireFromString("75")) {
			t.Errorf("expected 75 on 2024-07-10, got %s", trend.Expense[1].Amount)
		}
	})
}

func TestComputeMonthlySpending(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-08-02", "-30.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-15", "-20.00", "Transportation", entity.TransactionTypeExpense),
		txn("2024-07-20", "1000.00", "Salary", entity.TransactionTypeIncome),
	}

	spending := ComputeMonthlySpending(transactions)

	if len(spending) != 2 {
		t.Fatalf("expected 2 months, got %d", len(spending))
	}
	if spending[0].Month != "2024-07" || !spending[0].Amount.Equal(decimal.RequireFromString("70")) {
		t.Errorf("expected 2024-07 = 70, got %s = %s", spending[0].Month, spending[0].Amount)
	}
	if spending[1].Month != "2024-08" || !spending[1].Amount.Equal(decimal.RequireFromString("30")) {
		t.Errorf("expected 2024-08 = 30, got %s = %s", spending[1].Month, spending[1].Amount)
	}
}

func TestComputeWeeklyPattern(t *testing.T) {
	// 2024-07-01 is a Monday, 2024-07-08 the next Monday, 2024-07-03 a Wednesday.
	transactions := []*entity.Transaction{
		txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-08", "-25.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-03", "-10.00", "Transportation", entity.TransactionTypeExpense),
		txn("2024-07-03", "1000.00", "Salary", entity.TransactionTypeIncome),
	}

	pattern := ComputeWeeklyPattern(transactions)

	if !pattern["Monday"].Equal(decimal.RequireFromString("75")) {
		t.Errorf("expected Monday 75, got %s", pattern["Monday"])
	}
	if !pattern["Wednesday"].Equal(decimal.RequireFromString("10")) {
		t.Errorf("expected Wednesday 10, got %s", pattern["Wednesday"])
	}
	if len(pattern) != 2 {
		t.Errorf("expected 2 weekdays, got %d", len(pattern))
	}
}

func TestComputeCategoryStats(t *testing.T) {
	transactions := []*entity.Transaction{
		txn("2024-07-01", "-50.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-10", "-75.00", "Food", entity.TransactionTypeExpense),
		txn("2024-07-02", "-200.00", "Utilities", entity.TransactionTypeExpense),
		txn("2024-07-05", "-25.00", "Transportation", entity.TransactionTypeExpense),
		txn("2024-07-03", "3000.00", "Salary", entity.TransactionTypeIncome),
	}

	stats := ComputeCategoryStats(transactions)

	t.Run("sorted by total descending", func(t *testing.T) {
		if len(stats) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(stats))
		}
		expected := []string{"Utilities", "Food", "Transportation"}
		for i, want := range expected {
			if stats[i].Category != want {
				t.Errorf("position %d: expected %s, got %s", i, want, stats[i].Category)
			}
		}
	})

	t.Run("counts expense transactions per category", func(t *testing.T) {
		for _, s := range stats {
			if s.Category == "Food" && s.Count != 2 {
				t.Errorf("expected Food count 2, got %d", s.Count)
			}
		}
	})

	t.Run("top-n truncates the ranking", func(t *testing.T) {
		top := TopCategories(stats, 2)
		if len(top) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(top))
		}
		if top[0].Category != "Utilities" {
			t.Errorf("expected Utilities first, got %s", top[0].Category)
		}
	})

	t.Run("top-n larger than set returns everything", func(t *testing.T) {
		top := TopCategories(stats, 10)
		if len(top) != 3 {
			t.Errorf("expected 3 categories, got %d", len(top))
		}
	})
}
