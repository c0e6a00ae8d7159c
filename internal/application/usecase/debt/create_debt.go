package debt

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

// CreateDebtInput represents the input for debt creation.
type CreateDebtInput struct {
	UserID            uuid.UUID
	PersonID          uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Date              time.Time
	DueDate           *time.Time
	Installments      *int
	TotalInstallments *int
	PaymentMethodID   *uuid.UUID
}

// CreateDebtOutput represents the output of debt creation.
type CreateDebtOutput struct {
	Debt         *entity.Debt // First installment, or the single debt
	Person       *entity.Person
	Mode         valueobject.SeriesMode
	CreatedCount int
}

// CreateDebtUseCase stores a debt, splitting it into monthly installments when requested.
// Debts have no recurrence.
type CreateDebtUseCase struct {
	debtRepo          adapter.DebtRepository
	personRepo        adapter.PersonRepository
	paymentMethodRepo adapter.PaymentMethodRepository
	summaryCache      adapter.SummaryCache
	seriesRecorder    adapter.SeriesRecorder
	clock             adapter.Clock
}

// NewCreateDebtUseCase creates a new CreateDebtUseCase instance.
func NewCreateDebtUseCase(
	debtRepo adapter.DebtRepository,
	personRepo adapter.PersonRepository,
	paymentMethodRepo adapter.PaymentMethodRepository,
	summaryCache adapter.SummaryCache,
	seriesRecorder adapter.SeriesRecorder,
	clock adapter.Clock,
) *CreateDebtUseCase {
	return &CreateDebtUseCase{
		debtRepo:          debtRepo,
		personRepo:        personRepo,
		paymentMethodRepo: paymentMethodRepo,
		summaryCache:      summaryCache,
		seriesRecorder:    seriesRecorder,
		clock:             clock,
	}
}

// Execute performs the debt creation.
func (uc *CreateDebtUseCase) Execute(ctx context.Context, input CreateDebtInput) (*CreateDebtOutput, error) {
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
		return nil, domainerror.DebtValidationError(err)
	}

	person, err := checkReferences(ctx, uc.personRepo, uc.paymentMethodRepo, input.UserID, input.PersonID, input.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	plan := valueobject.PlanSeries(fields.SeriesRequest(false))

	var seriesID *uuid.UUID
	if plan.IsSeries() {
		id := uuid.New()
		seriesID = &id
	}

	debts := make([]*entity.Debt, 0, len(plan.Slots))
	for _, slot := range plan.Slots {
		debts = append(debts, entity.NewDebtFromSlot(
			input.UserID,
			input.PersonID,
			seriesID,
			fields.Description,
			input.PaymentMethodID,
			slot,
			now,
		))
	}

	if err := uc.debtRepo.CreateBatch(ctx, debts); err != nil {
		return nil, fmt.Errorf("failed to create debts: %w", err)
	}

	invalidateSummaries(ctx, uc.summaryCache, input.UserID)
	if uc.seriesRecorder != nil {
		uc.seriesRecorder.RecordSeries(recordKind, string(plan.Mode), len(debts))
	}

	if plan.IsSeries() {
		slog.Info("Debt installments created",
			"user_id", input.UserID,
			"person_id", input.PersonID,
			"series_id", *seriesID,
			"rows", len(debts),
		)
	}

	return &CreateDebtOutput{
		Debt:         debts[0],
		Person:       person,
		Mode:         plan.Mode,
		CreatedCount: len(debts),
	}, nil
}
