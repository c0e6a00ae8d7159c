package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ListDebtsInput represents the input for listing debts.
type ListDebtsInput struct {
	UserID uuid.UUID
	Filter entity.DebtFilter
}

// ListDebtsOutput represents the output of listing debts.
type ListDebtsOutput struct {
	Debts []*entity.DebtWithPerson
}

// ListDebtsUseCase handles listing debts.
type ListDebtsUseCase struct {
	debtRepo adapter.DebtRepository
}

// NewListDebtsUseCase creates a new ListDebtsUseCase instance.
func NewListDebtsUseCase(debtRepo adapter.DebtRepository) *ListDebtsUseCase {
	return &ListDebtsUseCase{
		debtRepo: debtRepo,
	}
}

// Execute lists the user's debts.
func (uc *ListDebtsUseCase) Execute(ctx context.Context, input ListDebtsInput) (*ListDebtsOutput, error) {
	if input.Filter.Status != nil && !input.Filter.Status.IsValid() {
		return nil, domainerror.NewDebtError(
			domainerror.ErrCodeInvalidDebtStatus,
			"status must be 'pending', 'partial' or 'paid'",
			domainerror.ErrInvalidDebtStatus,
		)
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	return &ListDebtsOutput{
		Debts: debts,
	}, nil
}
