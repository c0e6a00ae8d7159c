package debt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeleteDebtInput represents the input for debt deletion.
type DeleteDebtInput struct {
	DebtID uuid.UUID
	UserID uuid.UUID
}

// DeleteDebtUseCase deletes one debt. Remaining installments of the same plan are kept.
type DeleteDebtUseCase struct {
	debtRepo     adapter.DebtRepository
	summaryCache adapter.SummaryCache
}

// NewDeleteDebtUseCase creates a new DeleteDebtUseCase instance.
func NewDeleteDebtUseCase(debtRepo adapter.DebtRepository, summaryCache adapter.SummaryCache) *DeleteDebtUseCase {
	return &DeleteDebtUseCase{
		debtRepo:     debtRepo,
		summaryCache: summaryCache,
	}
}

// Execute performs the debt deletion.
func (uc *DeleteDebtUseCase) Execute(ctx context.Context, input DeleteDebtInput) error {
	if err := uc.debtRepo.DeleteByIDAndUser(ctx, input.DebtID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	return nil
}
