// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// DebtRepository defines the interface for debt persistence operations.
type DebtRepository interface {
	// CreateBatch inserts all debts in a single database transaction.
	CreateBatch(ctx context.Context, debts []*entity.Debt) error

	// FindByIDAndUser retrieves a debt owned by the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error)

	// FindByUser lists a user's debts with their people, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, filter entity.DebtFilter) ([]*entity.DebtWithPerson, error)

	// Update persists changes to an existing debt.
	Update(ctx context.Context, debt *entity.Debt) error

	// DeleteByIDAndUser removes one debt.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
