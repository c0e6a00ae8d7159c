package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID            uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Type              entity.TransactionType
	CategoryID        string
	Date              time.Time
	IsRecurring       bool
	Installments      *int // Validated against TotalInstallments, not stored
	TotalInstallments *int
	DueDate           *time.Time
	PaymentMethodID   *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction  *entity.Transaction // First row of the series
	Mode         valueobject.SeriesMode
	CreatedCount int
}

// CreateTransactionUseCase materializes a submitted transaction as one row, an
// installment plan or a recurrence series, and stores all rows atomically.
type CreateTransactionUseCase struct {
	transactionRepo   adapter.TransactionRepository
	categoryRepo      adapter.CategoryRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	summaryCache      adapter.SummaryCache
	seriesRecorder    adapter.SeriesRecorder
	clock             adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	categoryRepo adapter.CategoryRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	summaryCache adapter.SummaryCache,
	seriesRecorder adapter.SeriesRecorder,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo:   transactionRepo,
		categoryRepo:      categoryRepo,
		paymentMethodRepo: paymentMethodRepo,
		summaryCache:      summaryCache,
		seriesRecorder:    seriesRecorder,
		clock:             clock,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	fields := valueobject.RecordFields{
		Description:       valueobject.NormalizeDescription(input.Description),
		Amount:            input.Amount,
		Date:              input.Date,
		DueDate:           input.DueDate,
		Installment:       input.Installments,
		TotalInstallments: input.TotalInstallments,
	}
	now := uc.clock.Now().UTC()
	if err := fields.ValidateNew(now); err != nil {
		return nil, domainerror.TransactionValidationError(err)
	}

	if err := checkReferences(ctx, uc.categoryRepo, uc.paymentMethodRepo, input.Type, input.CategoryID, input.PaymentMethodID); err != nil {
		return nil, err
	}

	plan := valueobject.PlanSeries(fields.SeriesRequest(input.IsRecurring))

	var seriesID *uuid.UUID
	if plan.IsSeries() {
		id := uuid.New()
		seriesID = &id
	}

	transactions := make([]*entity.Transaction, 0, len(plan.Slots))
	for _, slot := range plan.Slots {
		transactions = append(transactions, entity.NewTransactionFromSlot(
			input.UserID,
			seriesID,
			fields.Description,
			input.Type,
			input.CategoryID,
			input.PaymentMethodID,
			slot,
			now,
		))
	}

	if err := uc.transactionRepo.CreateBatch(ctx, transactions); err != nil {
		return nil, fmt.Errorf("failed to create transactions: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	if uc.seriesRecorder != nil {
		uc.seriesRecorder.RecordSeries(recordKind, string(plan.Mode), len(transactions))
	}

	if plan.IsSeries() {
		slog.Info("Transaction series created",
			"user_id", input.UserID,
			"series_id", *seriesID,
			"mode", plan.Mode,
			"rows", len(transactions),
		)
	}

	return &CreateTransactionOutput{
		Transaction:  transactions[0],
		Mode:         plan.Mode,
		CreatedCount: len(transactions),
	}, nil
}
