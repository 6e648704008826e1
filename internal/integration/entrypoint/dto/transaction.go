// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-ai/backend/internal/application/usecase/transaction"
	"github.com/finance-ai/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is the magnitude; the sign is derived from the type.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Description string  `json:"description,omitempty" binding:"omitempty,max=255"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// TransactionListResponse represents the response for transaction listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
	Count        int                   `json:"count"`
}

// TotalsResponse represents the headline ledger figures in API responses.
type TotalsResponse struct {
	TotalIncome   string `json:"total_income"`
	TotalExpenses string `json:"total_expenses"`
	NetWorth      string `json:"net_worth"`
}

// SeedSampleResponse represents the response for sample data seeding.
type SeedSampleResponse struct {
	Seeded  int    `json:"seeded"`
	Message string `json:"message"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID.String(),
		Date:        t.Date.Format("2006-01-02"),
		Amount:      t.Amount.StringFixed(2),
		Category:    t.Category,
		Description: t.Description,
		Type:        string(t.Type),
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, t := range output.Transactions {
		transactions[i] = ToTransactionResponse(t)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Totals: TotalsResponse{
			TotalIncome:   output.Totals.IncomeTotal.StringFixed(2),
			TotalExpenses: output.Totals.ExpenseTotal.StringFixed(2),
			NetWorth:      output.Totals.NetTotal.StringFixed(2),
		},
		Count: len(output.Transactions),
	}
}
