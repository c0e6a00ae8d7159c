package category

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListRelationshipsOutput represents the output of listing relationships.
type ListRelationshipsOutput struct {
	Relationships []*entity.Relationship
}

// ListRelationshipsUseCase handles listing relationship kinds.
type ListRelationshipsUseCase struct {
	relationshipRepo adapter.RelationshipRepository
}

// NewListRelationshipsUseCase creates a new ListRelationshipsUseCase instance.
func NewListRelationshipsUseCase(relationshipRepo adapter.RelationshipRepository) *ListRelationshipsUseCase {
	return &ListRelationshipsUseCase{
		relationshipRepo: relationshipRepo,
	}
}

// Execute lists every relationship.
func (uc *ListRelationshipsUseCase) Execute(ctx context.Context) (*ListRelationshipsOutput, error) {
	relationships, err := uc.relationshipRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list relationships: %w", err)
	}

	return &ListRelationshipsOutput{
		Relationships: relationships,
	}, nil
}
