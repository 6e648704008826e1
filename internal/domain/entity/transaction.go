// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// RecommendedCategories is the category list offered by the UI. It is a
// suggestion only: unknown labels are accepted and passed through unchanged.
var RecommendedCategories = []string{
	"Food", "Transportation", "Entertainment", "Utilities", "Shopping",
	"Health", "Insurance", "Salary", "Freelance", "Investment", "Other",
}

// Transaction represents a ledger entry in the FinanceAI system.
// Amount is signed: positive for income, negative for expenses. The sign is
// assigned by the ledger engine from the transaction type; callers supply an
// unsigned magnitude.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
	Type        TransactionType
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity. The amount is expected to
// already carry the sign matching the transaction type.
func NewTransaction(
	userID uuid.UUID,
	date time.Time,
	amount decimal.Decimal,
	category string,
	description string,
	transactionType TransactionType,
) *Transaction {
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		Type:        transactionType,
		CreatedAt:   time.Now().UTC(),
	}
}

// IsExpense reports whether the transaction is an expense entry.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncome reports whether the transaction is an income entry.
func (t *Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// TransactionTotals represents aggregated totals for a set of transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	NetTotal     decimal.Decimal
}
