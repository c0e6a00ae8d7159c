package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// GetDebtInput represents the input for fetching a debt.
type GetDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// GetDebtOutput represents the output of fetching a debt.
type GetDebtOutput struct {
	Debt   *entity.Debt
	Person *entity.Person
}

// GetDebtUseCase handles fetching a single debt with its person.
type GetDebtUseCase struct {
	debtRepo   adapter.DebtRepository
	personRepo adapter.PersonRepository
}

// NewGetDebtUseCase creates a new GetDebtUseCase instance.
func NewGetDebtUseCase(debtRepo adapter.DebtRepository, personRepo adapter.PersonRepository) *GetDebtUseCase {
	return &GetDebtUseCase{
		debtRepo:   debtRepo,
		personRepo: personRepo,
	}
}

// Execute fetches the debt.
func (uc *GetDebtUseCase) Execute(ctx context.Context, input GetDebtInput) (*GetDebtOutput, error) {
	debt, err := findOwned(ctx, uc.debtRepo, input.DebtID, input.UserID)
	if err != nil {
		return nil, err
	}

	person, err := uc.personRepo.FindByIDAndUser(ctx, debt.PersonID, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find person of debt: %w", err)
	}

	return &GetDebtOutput{
		Debt:   debt,
		Person: person,
	}, nil
}
