// Package paymentmethod contains payment method catalog use cases.
package paymentmethod

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func notFoundError() error {
	return domainerror.NewPaymentMethodError(
		domainerror.ErrCodePaymentMethodNotFound,
		"payment method not found",
		domainerror.ErrPaymentMethodNotFound,
	)
}

// checkName trims name and verifies no other payment method uses it.
func checkName(ctx context.Context, repo adapter.PaymentMethodRepository, name string, excludeID *uuid.UUID) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domainerror.NewPaymentMethodError(
			domainerror.ErrCodePaymentMethodNameRequired,
			"name is required",
			domainerror.ErrPaymentMethodNameRequired,
		)
	}

	exists, err := repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return "", fmt.Errorf("failed to check payment method name: %w", err)
	}
	if exists {
		return "", domainerror.NewPaymentMethodError(
			domainerror.ErrCodePaymentMethodNameExists,
			"a payment method with this name already exists",
			domainerror.ErrPaymentMethodNameExists,
		)
	}
	return name, nil
}
