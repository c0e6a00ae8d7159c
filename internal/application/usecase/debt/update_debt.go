package debt

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateDebtInput represents the input for debt update. Nil fields are left unchanged.
// There is no status field: status is always derived from the amounts.
type UpdateDebtInput struct {
	DebtID            uuid.UUID
	UserID            uuid.UUID
	PersonID          *uuid.UUID
	Description       *string
	Amount            *decimal.Decimal
	PaidAmount        *decimal.Decimal
	Date              *time.Time
	DueDate           *time.Time
	Installments      *int
	TotalInstallments *int
	PaymentMethodID   *uuid.UUID
}

// UpdateDebtOutput represents the output of debt update.
type UpdateDebtOutput struct {
	Debt   *entity.Debt
	Person *entity.Person
}

// UpdateDebtUseCase handles debt update logic.
type UpdateDebtUseCase struct {
	debtRepo          adapter.DebtRepository
	personRepo        adapter.PersonRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	summaryCache      adapter.SummaryCache
	clock             adapter.Clock
}

// NewUpdateDebtUseCase creates a new UpdateDebtUseCase instance.
func NewUpdateDebtUseCase(
	debtRepo adapter.DebtRepository,
	personRepo adapter.PersonRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	summaryCache adapter.SummaryCache,
	clock adapter.Clock,
) *UpdateDebtUseCase {
	return &UpdateDebtUseCase{
		debtRepo:          debtRepo,
		personRepo:        personRepo,
		paymentMethodRepo: paymentMethodRepo,
		summaryCache:      summaryCache,
		clock:             clock,
	}
}

// Execute performs the debt update.
func (uc *UpdateDebtUseCase) Execute(ctx context.Context, input UpdateDebtInput) (*UpdateDebtOutput, error) {
	if input.PaidAmount != nil && input.PaidAmount.IsNegative() {
		return nil, domainerror.DebtValidationError(domainerror.ErrNegativePaidAmount)
	}

	debt, err := findOwned(ctx, uc.debtRepo, input.DebtID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil && !valueobject.DateOnly(*input.Date).Equal(valueobject.DateOnly(debt.Date)) {
		return nil, domainerror.DebtValidationError(domainerror.ErrDateImmutable)
	}

	if input.PersonID != nil {
		debt.PersonID = *input.PersonID
	}
	if input.Description != nil {
		debt.Description = valueobject.NormalizeDescription(*input.Description)
	}
	if input.Amount != nil {
		debt.Amount = valueobject.NormalizeAmount(*input.Amount)
	}
	if input.PaidAmount != nil {
		debt.PaidAmount = valueobject.NormalizeAmount(*input.PaidAmount)
	}
	if input.DueDate != nil {
		due := valueobject.DateOnly(*input.DueDate)
		debt.DueDate = &due
	}
	if input.Installments != nil {
		debt.Installment = input.Installments
	}
	if input.TotalInstallments != nil {
		debt.TotalInstallments = input.TotalInstallments
	}
	if input.PaymentMethodID != nil {
		debt.PaymentMethodID = input.PaymentMethodID
	}

	fields := valueobject.RecordFields{
		Description:       debt.Description,
		Amount:            debt.Amount,
		Date:              debt.Date,
		DueDate:           debt.DueDate,
		Installment:       debt.Installment,
		TotalInstallments: debt.TotalInstallments,
	}
	if err := fields.Validate(); err != nil {
		return nil, domainerror.DebtValidationError(err)
	}

	person, err := checkReferences(ctx, uc.personRepo, uc.paymentMethodRepo, input.UserID, debt.PersonID, debt.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	debt.RefreshStatus()
	debt.UpdatedAt = uc.clock.Now().UTC()

	if err := saveOwned(ctx, uc.debtRepo, debt); err != nil {
		return nil, err
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &UpdateDebtOutput{
		Debt:   debt,
		Person: person,
	}, nil
}
