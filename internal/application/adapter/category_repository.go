// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category in the database.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its slug.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// FindAll retrieves every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Update updates an existing category in the database.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category from the database.
	Delete(ctx context.Context, id string) error

	// ExistsByID checks if a category with the given slug exists.
	ExistsByID(ctx context.Context, id string) (bool, error)

	// IsReferenced checks if any transaction uses the category.
	IsReferenced(ctx context.Context, id string) (bool, error)
}

// RelationshipRepository defines the interface for relationship persistence operations.
type RelationshipRepository interface {
	// Create creates a new relationship in the database.
	Create(ctx context.Context, relationship *entity.Relationship) error

	// FindAll retrieves every relationship ordered by name.
	FindAll(ctx context.Context) ([]*entity.Relationship, error)

	// ExistsByID checks if a relationship with the given id exists.
	ExistsByID(ctx context.Context, id string) (bool, error)
}
