package paymentmethod

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// DeletePaymentMethodInput represents the input for payment method deletion.
type DeletePaymentMethodInput struct {
	PaymentMethodID uuid.UUID
}

// DeletePaymentMethodUseCase handles payment method deletion logic.
type DeletePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewDeletePaymentMethodUseCase creates a new DeletePaymentMethodUseCase instance.
func NewDeletePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *DeletePaymentMethodUseCase {
	return &DeletePaymentMethodUseCase{
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Execute deletes a payment method that no transaction or debt references.
func (uc *DeletePaymentMethodUseCase) Execute(ctx context.Context, input DeletePaymentMethodInput) error {
	if _, err := uc.paymentMethodRepo.FindByID(ctx, input.PaymentMethodID); err != nil {
		if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to find payment method: %w", err)
	}

	inUse, err := uc.paymentMethodRepo.IsReferenced(ctx, input.PaymentMethodID)
	if err != nil {
		return fmt.Errorf("failed to check payment method usage: %w", err)
	}
	if inUse {
		return domainerror.NewPaymentMethodError(
			domainerror.ErrCodePaymentMethodInUse,
			"payment method is used by transactions or debts",
			domainerror.ErrPaymentMethodInUse,
		)
	}

	if err := uc.paymentMethodRepo.Delete(ctx, input.PaymentMethodID); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}
	return nil
}
