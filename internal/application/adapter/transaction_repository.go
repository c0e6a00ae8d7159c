// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
// Every lookup is scoped by owner; a row owned by another user is reported as not found.
type TransactionRepository interface {
	// CreateBatch inserts all transactions in a single database transaction.
	// Either every row is stored or none is.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByIDAndUser retrieves a transaction owned by the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error)

	// FindByUser lists a user's transactions, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// FindExpensesDueFrom lists a user's expenses with a due date on or after from.
	FindExpensesDueFrom(ctx context.Context, userID uuid.UUID, from time.Time) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByIDAndUser removes one transaction. Other members of its series are kept.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
