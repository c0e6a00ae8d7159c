package paymentmethod

import (
	"context"
	"fmt"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePaymentMethodInput represents the input for payment method creation.
type CreatePaymentMethodInput struct {
	Name        string
	Description *string
}

// CreatePaymentMethodOutput represents the output of payment method creation.
type CreatePaymentMethodOutput struct {
	PaymentMethod *entity.PaymentMethod
}

// CreatePaymentMethodUseCase handles payment method creation logic.
type CreatePaymentMethodUseCase struct {
	paymentMethodRepo adapter.PaymentMethodRepository
}

// NewCreatePaymentMethodUseCase creates a new CreatePaymentMethodUseCase instance.
func NewCreatePaymentMethodUseCase(paymentMethodRepo adapter.PaymentMethodRepository) *CreatePaymentMethodUseCase {
	return &CreatePaymentMethodUseCase{
		paymentMethodRepo: paymentMethodRepo,
	}
}

// Execute performs the payment method creation.
func (uc *CreatePaymentMethodUseCase) Execute(ctx context.Context, input CreatePaymentMethodInput) (*CreatePaymentMethodOutput, error) {
	name, err := checkName(ctx, uc.paymentMethodRepo, input.Name, nil)
	if err != nil {
		return nil, err
	}

	method := entity.NewPaymentMethod(name, input.Description)

	if err := uc.paymentMethodRepo.Create(ctx, method); err != nil {
		return nil, fmt.Errorf("failed to create payment method: %w", err)
	}

	return &CreatePaymentMethodOutput{
		PaymentMethod: method,
	}, nil
}
