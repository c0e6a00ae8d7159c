package debt

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// ApplyPaymentInput represents the input for recording a debt payment.
// PaidAmount replaces the accumulated paid amount; it is not added to it.
type ApplyPaymentInput struct {
	DebtID     uuid.UUID
	UserID     uuid.UUID
	PaidAmount decimal.Decimal
}

// ApplyPaymentOutput represents the output of a debt payment.
type ApplyPaymentOutput struct {
	Debt *entity.Debt
}

// ApplyPaymentUseCase overwrites a debt's paid amount and derives its status again.
type ApplyPaymentUseCase struct {
	debtRepo     adapter.DebtRepository
	summaryCache adapter.SummaryCache
	clock        adapter.Clock
}

// NewApplyPaymentUseCase creates a new ApplyPaymentUseCase instance.
func NewApplyPaymentUseCase(debtRepo adapter.DebtRepository, summaryCache adapter.SummaryCache, clock adapter.Clock) *ApplyPaymentUseCase {
	return &ApplyPaymentUseCase{
		debtRepo:     debtRepo,
		summaryCache: summaryCache,
		clock:        clock,
	}
}

// Execute applies the payment.
func (uc *ApplyPaymentUseCase) Execute(ctx context.Context, input ApplyPaymentInput) (*ApplyPaymentOutput, error) {
	if input.PaidAmount.IsNegative() {
		return nil, domainerror.DebtValidationError(domainerror.ErrNegativePaidAmount)
	}

	debt, err := findOwned(ctx, uc.debtRepo, input.DebtID, input.UserID)
	if err != nil {
		return nil, err
	}

	debt.ApplyPayment(input.PaidAmount, uc.clock.Now().UTC())

	if err := saveOwned(ctx, uc.debtRepo, debt); err != nil {
		return nil, err
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &ApplyPaymentOutput{
		Debt: debt,
	}, nil
}
