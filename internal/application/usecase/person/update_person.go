package person

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// UpdatePersonInput represents the input for person update. Nil fields are left unchanged.
type UpdatePersonInput struct {
	PersonID       uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Email          *string
	Phone          *string
	RelationshipID *string
	Color          *string
	Notes          *string
}

// UpdatePersonOutput represents the output of person update.
type UpdatePersonOutput struct {
	Person *entity.Person
}

// UpdatePersonUseCase handles person update logic.
type UpdatePersonUseCase struct {
	personRepo       adapter.PersonRepository
	relationshipRepo adapter.RelationshipRepository
}

// NewUpdatePersonUseCase creates a new UpdatePersonUseCase instance.
func NewUpdatePersonUseCase(personRepo adapter.PersonRepository, relationshipRepo adapter.RelationshipRepository) *UpdatePersonUseCase {
	return &UpdatePersonUseCase{
		personRepo:       personRepo,
		relationshipRepo: relationshipRepo,
	}
}

// Execute performs the person update.
func (uc *UpdatePersonUseCase) Execute(ctx context.Context, input UpdatePersonInput) (*UpdatePersonOutput, error) {
	person, err := findOwned(ctx, uc.personRepo, input.PersonID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		person.Name = name
	}

	if input.RelationshipID != nil && *input.RelationshipID != person.RelationshipID {
		if err := checkRelationship(ctx, uc.relationshipRepo, *input.RelationshipID); err != nil {
			return nil, err
		}
		person.RelationshipID = *input.RelationshipID
	}

	if input.Email != nil {
		person.Email = input.Email
	}
	if input.Phone != nil {
		person.Phone = input.Phone
	}
	if input.Color != nil && *input.Color != "" {
		person.Color = *input.Color
	}
	if input.Notes != nil {
		person.Notes = input.Notes
	}

	person.UpdatedAt = time.Now().UTC()

	if err := uc.personRepo.Update(ctx, person); err != nil {
		return nil, fmt.Errorf("failed to update person: %w", err)
	}

	return &UpdatePersonOutput{
		Person: person,
	}, nil
}
