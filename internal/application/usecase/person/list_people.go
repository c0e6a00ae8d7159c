package person

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// ListPeopleInput represents the input for listing people.
type ListPeopleInput struct {
	UserID uuid.UUID
}

// ListPeopleOutput represents the output of listing people.
type ListPeopleOutput struct {
	People []*entity.Person
}

// ListPeopleUseCase handles listing a user's people.
type ListPeopleUseCase struct {
	personRepo adapter.PersonRepository
}

// NewListPeopleUseCase creates a new ListPeopleUseCase instance.
func NewListPeopleUseCase(personRepo adapter.PersonRepository) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		personRepo: personRepo,
	}
}

// Execute lists the people.
func (uc *ListPeopleUseCase) Execute(ctx context.Context, input ListPeopleInput) (*ListPeopleOutput, error) {
	people, err := uc.personRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return &ListPeopleOutput{
		People: people,
	}, nil
}
