package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateRelationshipInput represents the input for relationship creation.
type CreateRelationshipInput struct {
	ID   string
	Name string
	Icon *string
}

// CreateRelationshipOutput represents the output of relationship creation.
type CreateRelationshipOutput struct {
	Relationship *entity.Relationship
}

// CreateRelationshipUseCase handles relationship creation logic.
type CreateRelationshipUseCase struct {
	relationshipRepo adapter.RelationshipRepository
}

// NewCreateRelationshipUseCase creates a new CreateRelationshipUseCase instance.
func NewCreateRelationshipUseCase(relationshipRepo adapter.RelationshipRepository) *CreateRelationshipUseCase {
	return &CreateRelationshipUseCase{
		relationshipRepo: relationshipRepo,
	}
}

// Execute performs the relationship creation.
func (uc *CreateRelationshipUseCase) Execute(ctx context.Context, input CreateRelationshipInput) (*CreateRelationshipOutput, error) {
	name := strings.TrimSpace(input.Name)
	if !slugPattern.MatchString(input.ID) || name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeMissingRelationshipFields,
			"id must be a lowercase slug and name is required",
			domainerror.ErrInvalidCategoryID,
		)
	}

	exists, err := uc.relationshipRepo.ExistsByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check relationship existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeRelationshipAlreadyExists,
			"a relationship with this id already exists",
			domainerror.ErrRelationshipAlreadyExists,
		)
	}

	relationship := entity.NewRelationship(input.ID, name, input.Icon)

	if err := uc.relationshipRepo.Create(ctx, relationship); err != nil {
		return nil, fmt.Errorf("failed to create relationship: %w", err)
	}

	return &CreateRelationshipOutput{
		Relationship: relationship,
	}, nil
}
