package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// InstallmentStatus tells whether an installment is still to be paid.
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending"
	InstallmentStatusPaid    InstallmentStatus = "paid"
)

// GetSummaryInput represents the input for the monthly transaction summary.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  valueobject.Month
}

// SummaryInstallment is one installment row of the month.
type SummaryInstallment struct {
	ID                 uuid.UUID
	Description        string
	Amount             decimal.Decimal
	TotalAmount        decimal.Decimal
	CurrentInstallment *int
	TotalInstallments  *int
	DueDate            *time.Time
	Status             InstallmentStatus
}

// GetSummaryOutput represents the monthly transaction summary.
type GetSummaryOutput struct {
	Month               string
	TotalIncome         decimal.Decimal
	TotalExpenses       decimal.Decimal
	Balance             decimal.Decimal
	PendingInstallments decimal.Decimal
	RecurringExpenses   decimal.Decimal
	ProjectedBalance    decimal.Decimal
	ExpensesByCategory  map[string]decimal.Decimal
	Installments        []SummaryInstallment
}

// GetSummaryUseCase builds the monthly income/expense summary.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
	summaryCache    adapter.SummaryCache
	clock           adapter.Clock
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository, summaryCache adapter.SummaryCache, clock adapter.Clock) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
		summaryCache:    summaryCache,
		clock:           clock,
	}
}

// Execute computes the summary, serving it from cache when possible.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	today := valueobject.DateOnly(uc.clock.Now())
	cacheKey := fmt.Sprintf("transactions:%s:%s", input.Month, today.Format(valueobject.DateLayout))

	if uc.summaryCache != nil {
		var cached GetSummaryOutput
		found, err := uc.summaryCache.Get(ctx, input.UserID, cacheKey, &cached)
		if err != nil {
			slog.Warn("Failed to read summary cache", "user_id", input.UserID, "error", err)
		} else if found {
			return &cached, nil
		}
	}

	month := input.Month
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID, entity.TransactionFilter{Month: &month})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	due, err := uc.transactionRepo.FindExpensesDueFrom(ctx, input.UserID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending installments: %w", err)
	}

	output := summarize(input.Month, transactions, due, today)

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Set(ctx, input.UserID, cacheKey, output); err != nil {
			slog.Warn("Failed to write summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return output, nil
}

// summarize aggregates the month's transactions. Pending installments cover every
// expense due from today on, whichever month it belongs to.
func summarize(month valueobject.Month, transactions, dueExpenses []*entity.Transaction, today time.Time) *GetSummaryOutput {
	output := &GetSummaryOutput{
		Month:               month.String(),
		TotalIncome:         decimal.Zero,
		TotalExpenses:       decimal.Zero,
		PendingInstallments: decimal.Zero,
		RecurringExpenses:   decimal.Zero,
		ExpensesByCategory:  make(map[string]decimal.Decimal),
		Installments:        []SummaryInstallment{},
	}

	for _, t := range transactions {
		switch t.Type {
		case entity.TransactionTypeIncome:
			output.TotalIncome = output.TotalIncome.Add(t.Amount)
		case entity.TransactionTypeExpense:
			output.TotalExpenses = output.TotalExpenses.Add(t.Amount)
			output.ExpensesByCategory[t.CategoryID] = output.ExpensesByCategory[t.CategoryID].Add(t.Amount)
			if t.IsRecurring {
				output.RecurringExpenses = output.RecurringExpenses.Add(t.Amount)
			}
		}

		if !t.IsInstallment() {
			continue
		}
		status := InstallmentStatusPaid
		if t.DueDate != nil && !valueobject.DateOnly(*t.DueDate).Before(today) {
			status = InstallmentStatusPending
		}
		output.Installments = append(output.Installments, SummaryInstallment{
			ID:                 t.ID,
			Description:        t.Description,
			Amount:             t.Amount,
			TotalAmount:        t.Amount.Mul(decimal.NewFromInt(int64(*t.TotalInstallments))),
			CurrentInstallment: t.Installment,
			TotalInstallments:  t.TotalInstallments,
			DueDate:            t.DueDate,
			Status:             status,
		})
	}

	for _, t := range dueExpenses {
		output.PendingInstallments = output.PendingInstallments.Add(t.Amount)
	}

	sort.SliceStable(output.Installments, func(i, j int) bool {
		return output.Installments[i].Description < output.Installments[j].Description
	})

	output.Balance = output.TotalIncome.Sub(output.TotalExpenses)
	output.ProjectedBalance = output.Balance.Sub(output.PendingInstallments)
	return output
}
