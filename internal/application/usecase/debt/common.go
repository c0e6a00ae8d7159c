// Package debt contains debt-related use cases, including installment plans and payments.
package debt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

const recordKind = "debt"

func notFoundError() error {
	return domainerror.NewDebtError(
		domainerror.ErrCodeDebtNotFound,
		"debt not found",
		domainerror.ErrDebtNotFound,
	)
}

func findOwned(ctx context.Context, repo adapter.DebtRepository, id, userID uuid.UUID) (*entity.Debt, error) {
	debt, err := repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find debt: %w", err)
	}
	return debt, nil
}

// saveOwned writes debt back. A debt deleted since it was loaded is reported as not found.
func saveOwned(ctx context.Context, repo adapter.DebtRepository, debt *entity.Debt) error {
	if err := repo.Update(ctx, debt); err != nil {
		if errors.Is(err, domainerror.ErrDebtNotFound) {
			return notFoundError()
		}
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}

// checkReferences verifies that the person belongs to the user and that the payment method exists.
func checkReferences(
	ctx context.Context,
	personRepo adapter.PersonRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	userID, personID uuid.UUID,
	paymentMethodID *uuid.UUID,
) (*entity.Person, error) {
	person, err := personRepo.FindByIDAndUser(ctx, personID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPersonNotFound) {
			return nil, domainerror.NewDebtError(
				domainerror.ErrCodeDebtPersonNotFound,
				"person not found",
				domainerror.ErrPersonNotFoundForDebt,
			)
		}
		return nil, fmt.Errorf("failed to find person: %w", err)
	}

	if paymentMethodID != nil {
		if _, err := paymentMethodRepo.FindByID(ctx, *paymentMethodID); err != nil {
			if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
				return nil, domainerror.NewDebtError(
					domainerror.ErrCodeDebtPaymentMethodNotFound,
					"payment method not found",
					domainerror.ErrPaymentMethodNotFoundForRecord,
				)
			}
			return nil, fmt.Errorf("failed to check payment method: %w", err)
		}
	}

	return person, nil
}

func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate summary cache",
			"user_id", userID,
			"error", err,
		)
	}
}
