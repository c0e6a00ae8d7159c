package person

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetPersonInput represents the input for fetching a person.
type GetPersonInput struct {
	PersonID uuid.UUID
	UserID   uuid.UUID
}

// GetPersonOutput represents the output of fetching a person.
type GetPersonOutput struct {
	Person *entity.Person
}

// GetPersonUseCase handles fetching a single person.
type GetPersonUseCase struct {
	personRepo adapter.PersonRepository
}

// NewGetPersonUseCase creates a new GetPersonUseCase instance.
func NewGetPersonUseCase(personRepo adapter.PersonRepository) *GetPersonUseCase {
	return &GetPersonUseCase{
		personRepo: personRepo,
	}
}

// Execute fetches the person.
func (uc *GetPersonUseCase) Execute(ctx context.Context, input GetPersonInput) (*GetPersonOutput, error) {
	person, err := findOwned(ctx, uc.personRepo, input.PersonID, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetPersonOutput{Person: person}, nil
}
