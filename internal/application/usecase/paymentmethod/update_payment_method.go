package paymentmethod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// UpdatePaymentMethodInput represents the input for payment method update.
type UpdatePaymentMethodInput struct {
	PaymentMethodID uuid.UUID
	Name            *string
	Description     *string
}

// UpdatePaymentMethodOutput represents the output of payment method update.
type UpdatePaymentMethodOutput struct {
	PaymentMethod *entity.PaymentMethod
}

// UpdatePaymentMethodUseCase handles payment method update logic.
type UpdatePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewUpdatePaymentMethodUseCase creates a new UpdatePaymentMethodUseCase instance.
func NewUpdatePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *UpdatePaymentMethodUseCase {
	return &UpdatePaymentMethodUseCase{
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Execute performs the payment method update.
func (uc *UpdatePaymentMethodUseCase) Execute(ctx context.Context, input UpdatePaymentMethodInput) (*UpdatePaymentMethodOutput, error) {
	method, err := uc.paymentMethodRepo.FindByID(ctx, input.PaymentMethodID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find payment method: %w", err)
	}

	if input.Name != nil {
		name, err := checkName(ctx, uc.paymentMethodRepo, *input.Name, &method.ID)
		if err != nil {
			return nil, err
		}
		method.Name = name
	}

	if input.Description != nil {
		method.Description = input.Description
	}

	method.UpdatedAt = time.Now().UTC()

	if err := uc.paymentMethodRepo.Update(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to update payment method: %w", err)
	}

	return &UpdatePaymentMethodOutput{
		PaymentMethod: method,
	}, nil
}
