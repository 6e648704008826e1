// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-ai/backend/internal/application/adapter"
	"github.com/finance-ai/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID uuid.UUID
}

// ListTransactionsOutput represents the output of listing transactions.
// Transactions come back most recent date first; Totals are computed over
// the whole set.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       entity.TransactionTotals
}

// ListTransactionsUseCase handles listing a user's ledger. The raw sequence
// is also what the export surface serializes.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	totals := entity.TransactionTotals{
		IncomeTotal:  decimal.Zero,
		ExpenseTotal: decimal.Zero,
	}
	for _, t := range transactions {
		if t.Amount.IsPositive() {
			totals.IncomeTotal = totals.IncomeTotal.Add(t.Amount)
		} else {
			totals.ExpenseTotal = totals.ExpenseTotal.Add(t.Amount.Abs())
		}
	}
	totals.NetTotal = totals.IncomeTotal.Sub(totals.ExpenseTotal)

	return &ListTransactionsOutput{
		Transactions: transactions,
		Totals:       totals,
	}, nil
}
