// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-ai/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence
// operations. The contract is append-and-list: transactions are immutable
// after creation and are never updated or deleted.
type TransactionRepository interface {
	// Create appends a new transaction record. The append is atomic: on
	// error no partial record exists.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByUser retrieves all transactions for a user, most recent date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// CountByUser returns the number of transactions a user has recorded.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
