package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged. Date may be sent but must match the stored date.
type UpdateTransactionInput struct {
	TransactionID     uuid.UUID
	UserID            uuid.UUID
	Description       *string
	Amount            *decimal.Decimal
	Type              *entity.TransactionType
	CategoryID        *string
	Date              *time.Time
	IsRecurring       *bool
	Installments      *int
	TotalInstallments *int
	DueDate           *time.Time
	PaymentMethodID   *uuid.UUID
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic. Only the addressed row
// changes; other members of its series are untouched.
type UpdateTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	summaryCache      adapter.SummaryCache
	clock             adapter.Clock
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	summaryCache adapter.SummaryCache,
	clock adapter.Clock,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		summaryCache:      summaryCache,
		clock:             clock,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := findOwned(ctx, uc.transactionRepo, input.TransactionID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Date != nil && !valueobject.DateOnly(*input.Date).Equal(valueobject.DateOnly(transaction.Date)) {
		return nil, domainerror.TransactionValidationError(domainerror.ErrDateImmutable)
	}

	if input.Type != nil {
		if !input.Type.IsValid() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}
	if input.Description != nil {
		transaction.Description = valueobject.NormalizeDescription(*input.Description)
	}
	if input.Amount != nil {
		transaction.Amount = valueobject.NormalizeAmount(*input.Amount)
	}
	if input.CategoryID != nil {
		transaction.CategoryID = *input.CategoryID
	}
	if input.IsRecurring != nil {
		transaction.IsRecurring = *input.IsRecurring
	}
	if input.Installments != nil {
		transaction.Installment = input.Installments
	}
	if input.TotalInstallments != nil {
		transaction.TotalInstallments = input.TotalInstallments
	}
	if input.DueDate != nil {
		due := valueobject.DateOnly(*input.DueDate)
		transaction.DueDate = &due
	}
	if input.PaymentMethodID != nil {
		transaction.PaymentMethodID = input.PaymentMethodID
	}

	fields := valueobject.RecordFields{
		Description:       transaction.Description,
		Amount:            transaction.Amount,
		Date:              transaction.Date,
		DueDate:           transaction.DueDate,
		Installment:       transaction.Installment,
		TotalInstallments: transaction.TotalInstallments,
	}
	if err := fields.Validate(); err != nil {
		return nil, domainerror.TransactionValidationError(err)
	}

	if err := checkReferences(ctx, uc.categoryRepo, uc.paymentMethodRepo, transaction.Type, transaction.CategoryID, transaction.PaymentMethodID); err != nil {
		return nil, err
	}

	transaction.UpdatedAt = uc.clock.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
