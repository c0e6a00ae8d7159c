// Package transaction contains transaction-related use cases.
package transaction

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

const recordKind = "transaction"

func notFoundError() error {
	return domainerror.NewTransactionError(
		domainerror.ErrCodeTransactionNotFound,
		"transaction not found",
		domainerror.ErrTransactionNotFound,
	)
}

// findOwned loads a transaction through an owner-scoped lookup.
func findOwned(ctx context.Context, repo adapter.TransactionRepository, id, userID uuid.UUID) (*entity.Transaction, error) {
	transaction, err := repo.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, notFoundError()
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return transaction, nil
}

// checkReferences verifies the category and payment method a transaction points to.
func checkReferences(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	transactionType entity.TransactionType,
	categoryID string,
	paymentMethodID *uuid.UUID,
) error {
	if transactionType == entity.TransactionTypeExpense && paymentMethodID == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnPaymentMethodRequired,
			"payment method is required for expenses",
			domainerror.ErrPaymentMethodRequired,
		)
	}

	exists, err := categoryRepo.ExistsByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if !exists {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForTransaction,
		)
	}

	if paymentMethodID != nil {
		if _, err := paymentMethodRepo.FindByID(ctx, *paymentMethodID); err != nil {
			if errors.Is(err, domainerror.ErrPaymentMethodNotFound) {
				return domainerror.NewTransactionError(
					domainerror.ErrCodeTxnPaymentMethodNotFound,
					"payment method not found",
					domainerror.ErrPaymentMethodNotFoundForRecord,
				)
			}
			return fmt.Errorf("failed to check payment method: %w", err)
		}
	}

	return nil
}

// invalidateSummaries drops cached summaries after a write. A cache failure never fails the write.
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
