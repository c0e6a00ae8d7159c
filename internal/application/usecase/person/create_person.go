package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePersonInput represents the input for person creation.
type CreatePersonInput struct {
	UserID         uuid.UUID
	Name           string
	Email          *string
	Phone          *string
	RelationshipID string
	Color          string // Optional, defaults to entity.DefaultPersonColor
	Notes          *string
}

// CreatePersonOutput represents the output of person creation.
type CreatePersonOutput struct {
	Person *entity.Person
}

// CreatePersonUseCase handles person creation logic.
type CreatePersonUseCase struct {
	personRepo       adapter.PersonRepository
	relationshipRepo adapter.RelationshipRepository
}

// NewCreatePersonUseCase creates a new CreatePersonUseCase instance.
func NewCreatePersonUseCase(personRepo adapter.PersonRepository, relationshipRepo adapter.RelationshipRepository) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		personRepo:       personRepo,
		relationshipRepo: relationshipRepo,
	}
}

// Execute performs the person creation.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, input CreatePersonInput) (*CreatePersonOutput, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	if err := checkRelationship(ctx, uc.relationshipRepo, input.RelationshipID); err != nil {
		return nil, err
	}

	person := entity.NewPerson(
		input.UserID,
		name,
		input.RelationshipID,
		input.Color,
		input.Email,
		input.Phone,
		input.Notes,
	)

	if err := uc.personRepo.Create(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return &CreatePersonOutput{
		Person: person,
	}, nil
}
