// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/domain/entity"
	domainerror "github.com/finance-ai/backend/internal/domain/error"
)

// fakeTransactionRepository is an in-memory adapter.TransactionRepository.
type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	createErr    error
}

func (r *fakeTransactionRepository) Create(_ context.Context, transaction *entity.Transaction) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeTransactionRepository) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	result := make([]*entity.Transaction, 0)
	for _, t := range r.transactions {
		if t.UserID == userID {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *fakeTransactionRepository) CountByUser(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, t := range r.transactions {
		if t.UserID == userID {
			count++
		}
	}
	return count, nil
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("invalid date %q: %v", value, err)
	}
	return d
}

func TestCreateTransactionUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	t.Run("expense is stored negative", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-01"),
			Amount:   decimal.RequireFromString("50"),
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Amount.Equal(decimal.RequireFromString("-50")) {
			t.Errorf("expected -50, got %s", output.Transaction.Amount)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected 1 stored transaction, got %d", len(repo.transactions))
		}
	})

	t.Run("income is stored positive", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-03"),
			Amount:   decimal.RequireFromString("3000"),
			Category: "Salary",
			Type:     entity.TransactionTypeIncome,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !output.Transaction.Amount.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected 3000, got %s", output.Transaction.Amount)
		}
	})

	t.Run("zero amount is rejected before the store", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-01"),
			Amount:   decimal.Zero,
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		})

		if !errors.Is(err, domainerror.ErrInvalidTransactionAmount) {
			t.Errorf("expected ErrInvalidTransactionAmount, got %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("rejected transaction must not reach the store")
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-01"),
			Amount:   decimal.RequireFromString("50"),
			Category: "Food",
			Type:     entity.TransactionType("transfer"),
		})

		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("rejected transaction must not reach the store")
		}
	})

	t.Run("missing date is rejected", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Amount:   decimal.RequireFromString("50"),
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		})

		if !errors.Is(err, domainerror.ErrInvalidTransactionDate) {
			t.Errorf("expected ErrInvalidTransactionDate, got %v", err)
		}
	})

	t.Run("identical submissions both append", func(t *testing.T) {
		repo := &fakeTransactionRepository{}
		uc := NewCreateTransactionUseCase(repo)

		input := CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-01"),
			Amount:   decimal.RequireFromString("50"),
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		}

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(context.Background(), input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		if len(repo.transactions) != 2 {
			t.Errorf("expected 2 stored transactions, got %d", len(repo.transactions))
		}
		if repo.transactions[0].ID == repo.transactions[1].ID {
			t.Error("each append must get its own identity")
		}
	})

	t.Run("store failure surfaces and nothing is recorded", func(t *testing.T) {
		repo := &fakeTransactionRepository{createErr: domainerror.ErrStoreUnavailable}
		uc := NewCreateTransactionUseCase(repo)

		_, err := uc.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-07-01"),
			Amount:   decimal.RequireFromString("50"),
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		})

		if !errors.Is(err, domainerror.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
		if len(repo.transactions) != 0 {
			t.Error("failed append must leave no record")
		}
	})
}

func TestListTransactionsUseCase_Execute(t *testing.T) {
	userID := uuid.New()
	repo := &fakeTransactionRepository{}
	createUC := NewCreateTransactionUseCase(repo)
	listUC := NewListTransactionsUseCase(repo)

	seed := []CreateTransactionInput{
		{UserID: userID, Date: mustDate(t, "2024-07-01"), Amount: decimal.RequireFromString("50"), Category: "Food", Type: entity.TransactionTypeExpense},
		{UserID: userID, Date: mustDate(t, "2024-07-03"), Amount: decimal.RequireFromString("3000"), Category: "Salary", Type: entity.TransactionTypeIncome},
		{UserID: userID, Date: mustDate(t, "2024-07-10"), Amount: decimal.RequireFromString("75"), Category: "Food", Type: entity.TransactionTypeExpense},
	}
	for _, input := range seed {
		if _, err := createUC.Execute(context.Background(), input); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	output, err := listUC.Execute(context.Background(), ListTransactionsInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("most recent date first", func(t *testing.T) {
		if len(output.Transactions) != 3 {
			t.Fatalf("expected 3 transactions, got %d", len(output.Transactions))
		}
		if got := output.Transactions[0].Date.Format("2006-01-02"); got != "2024-07-10" {
			t.Errorf("expected 2024-07-10 first, got %s", got)
		}
	})

	t.Run("listed records reproduce the stored tuple", func(t *testing.T) {
		oldest := output.Transactions[len(output.Transactions)-1]
		if got := oldest.Date.Format("2006-01-02"); got != "2024-07-01" {
			t.Errorf("expected date 2024-07-01, got %s", got)
		}
		if !oldest.Amount.Equal(decimal.RequireFromString("-50")) {
			t.Errorf("expected amount -50, got %s", oldest.Amount)
		}
		if oldest.Category != "Food" {
			t.Errorf("expected category Food, got %q", oldest.Category)
		}
		if oldest.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type expense, got %q", oldest.Type)
		}
	})

	t.Run("totals derive from signed amounts", func(t *testing.T) {
		if !output.Totals.IncomeTotal.Equal(decimal.RequireFromString("3000")) {
			t.Errorf("expected income 3000, got %s", output.Totals.IncomeTotal)
		}
		if !output.Totals.ExpenseTotal.Equal(decimal.RequireFromString("125")) {
			t.Errorf("expected expenses 125, got %s", output.Totals.ExpenseTotal)
		}
		if !output.Totals.NetTotal.Equal(decimal.RequireFromString("2875")) {
			t.Errorf("expected net 2875, got %s", output.Totals.NetTotal)
		}
	})

	t.Run("other users see nothing", func(t *testing.T) {
		other, err := listUC.Execute(context.Background(), ListTransactionsInput{UserID: uuid.New()})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(other.Transactions) != 0 {
			t.Errorf("expected empty ledger, got %d transactions", len(other.Transactions))
		}
	})
}

func TestSeedSampleDataUseCase_Execute(t *testing.T) {
	t.Run("seeds an empty ledger once", func(t *testing.T) {
		userID := uuid.New()
		repo := &fakeTransactionRepository{}
		createUC := NewCreateTransactionUseCase(repo)
		seedUC := NewSeedSampleDataUseCase(createUC, repo)

		output, err := seedUC.Execute(context.Background(), SeedSampleDataInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != len(sampleTransactions) {
			t.Errorf("expected %d created, got %d", len(sampleTransactions), output.CreatedCount)
		}

		again, err := seedUC.Execute(context.Background(), SeedSampleDataInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again.CreatedCount != 0 {
			t.Errorf("reseeding a non-empty ledger must be a no-op, created %d", again.CreatedCount)
		}
		if len(repo.transactions) != len(sampleTransactions) {
			t.Errorf("expected %d stored, got %d", len(sampleTransactions), len(repo.transactions))
		}
	})

	t.Run("non-empty ledger is untouched", func(t *testing.T) {
		userID := uuid.New()
		repo := &fakeTransactionRepository{}
		createUC := NewCreateTransactionUseCase(repo)
		seedUC := NewSeedSampleDataUseCase(createUC, repo)

		if _, err := createUC.Execute(context.Background(), CreateTransactionInput{
			UserID:   userID,
			Date:     mustDate(t, "2024-06-01"),
			Amount:   decimal.RequireFromString("10"),
			Category: "Food",
			Type:     entity.TransactionTypeExpense,
		}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		output, err := seedUC.Execute(context.Background(), SeedSampleDataInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CreatedCount != 0 {
			t.Errorf("expected no-op, created %d", output.CreatedCount)
		}
		if len(repo.transactions) != 1 {
			t.Errorf("expected ledger unchanged, got %d transactions", len(repo.transactions))
		}
	})
}
