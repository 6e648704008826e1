// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/domain/entity"
)

// sampleRecord describes one demo ledger entry.
type sampleRecord struct {
	date        string
	amount      string
	category    string
	description string
	txnType     entity.TransactionType
}

// sampleTransactions is the demo dataset offered to users with an empty ledger.
var sampleTransactions = []sampleRecord{
	{"2024-07-01", "50.00", "Food", "Grocery shopping", entity.TransactionTypeExpense},
	{"2024-07-02", "25.00", "Transportation", "Gas", entity.TransactionTypeExpense},
	{"2024-07-03", "3000.00", "Salary", "Monthly salary", entity.TransactionTypeIncome},
	{"2024-07-05", "100.00", "Entertainment", "Movie night", entity.TransactionTypeExpense},
	{"2024-07-07", "200.00", "Utilities", "Electricity bill", entity.TransactionTypeExpense},
	{"2024-07-10", "75.00", "Food", "Restaurant", entity.TransactionTypeExpense},
	{"2024-07-12", "500.00", "Freelance", "Side project", entity.TransactionTypeIncome},
	{"2024-07-15", "300.00", "Shopping", "Clothes", entity.TransactionTypeExpense},
	{"2024-07-18", "60.00", "Health", "Pharmacy", entity.TransactionTypeExpense},
	{"2024-07-20", "150.00", "Insurance", "Car insurance", entity.TransactionTypeExpense},
}

// SeedSampleDataInput represents the input for demo data seeding.
type SeedSampleDataInput struct {
	UserID uuid.UUID
}

// SeedSampleDataOutput represents the output of demo data seeding.
type SeedSampleDataOutput struct {
	CreatedCount int
}

// SeedSampleDataUseCase populates a demo ledger for users with no
// transactions. Seeding a non-empty ledger is a no-op so the demo button
// cannot duplicate data.
type SeedSampleDataUseCase struct {
	createUseCase   *CreateTransactionUseCase
	transactionRepo adapter.TransactionRepository
}

// NewSeedSampleDataUseCase creates a new SeedSampleDataUseCase instance.
func NewSeedSampleDataUseCase(
	createUseCase *CreateTransactionUseCase,
	transactionRepo adapter.TransactionRepository,
) *SeedSampleDataUseCase {
	return &SeedSampleDataUseCase{
		createUseCase:   createUseCase,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the demo data seeding.
func (uc *SeedSampleDataUseCase) Execute(ctx context.Context, input SeedSampleDataInput) (*SeedSampleDataOutput, error) {
	count, err := uc.transactionRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}
	if count > 0 {
		return &SeedSampleDataOutput{CreatedCount: 0}, nil
	}

	created := 0
	for _, sample := range sampleTransactions {
		date, err := time.Parse("2006-01-02", sample.date)
		if err != nil {
			return nil, fmt.Errorf("invalid sample date %q: %w", sample.date, err)
		}
		amount, err := decimal.NewFromString(sample.amount)
		if err != nil {
			return nil, fmt.Errorf("invalid sample amount %q: %w", sample.amount, err)
		}

		if _, err := uc.createUseCase.Execute(ctx, CreateTransactionInput{
			UserID:      input.UserID,
			Date:        date,
			Amount:      amount,
			Category:    sample.category,
			Description: sample.description,
			Type:        sample.txnType,
		}); err != nil {
			return nil, fmt.Errorf("failed to seed sample transaction: %w", err)
		}
		created++
	}

	return &SeedSampleDataOutput{CreatedCount: created}, nil
}
