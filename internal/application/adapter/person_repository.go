// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PersonRepository defines the interface for person persistence operations.
type PersonRepository interface {
	// Create creates a new person in the database.
	Create(ctx context.Context, person *entity.Person) error

	// FindByIDAndUser retrieves a person owned by the given user.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Person, error)

	// FindByUser lists a user's people ordered by name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Person, error)

	// Update persists changes to an existing person.
	Update(ctx context.Context, person *entity.Person) error

	// DeleteWithDebts removes a person and all of their debts atomically.
	DeleteWithDebts(ctx context.Context, id, userID uuid.UUID) error
}
