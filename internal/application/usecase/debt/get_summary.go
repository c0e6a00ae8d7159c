package debt

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

// GetSummaryInput represents the input for the debt summary. A nil Month covers every debt.
type GetSummaryInput struct {
	UserID uuid.UUID
	Month  *valueobject.Month
}

// PersonTotals aggregates the debts of one person.
type PersonTotals struct {
	Total   decimal.Decimal
	Paid    decimal.Decimal
	Pending decimal.Decimal
	Debts   int
}

// SummaryInstallment is one installment debt row.
type SummaryInstallment struct {
	ID                 uuid.UUID
	Description        string
	Amount             decimal.Decimal
	TotalAmount        decimal.Decimal
	CurrentInstallment *int
	TotalInstallments  *int
	DueDate            *time.Time
	PersonName         string
	Status             valueobject.PaymentStatus
}

// GetSummaryOutput represents the debt summary.
type GetSummaryOutput struct {
	TotalDebts        decimal.Decimal
	TotalPaid         decimal.Decimal
	TotalPending      decimal.Decimal
	InstallmentsCount int
	DebtsByPerson     map[string]*PersonTotals
	Installments      []SummaryInstallment
}

// GetSummaryUseCase builds the debt rollup by person.
type GetSummaryUseCase struct {
	debtRepo     adapter.DebtRepository
	summaryCache adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(debtRepo adapter.DebtRepository, summaryCache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		debtRepo:     debtRepo,
		summaryCache: summaryCache,
	}
}

// Execute computes the summary, serving it from cache when possible.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	scope := "all"
	if input.Month != nil {
		scope = input.Month.String()
	}
	cacheKey := "debts:" + scope

	if uc.summaryCache != nil {
		var cached GetSummaryOutput
		found, err := uc.summaryCache.Get(ctx, input.UserID, cacheKey, &cached)
		if err != nil {
			slog.Warn("Failed to read summary cache", "user_id", input.UserID, "error", err)
		} else if found {
			return &cached, nil
		}
	}

	debts, err := uc.debtRepo.FindByUser(ctx, input.UserID, entity.DebtFilter{Month: input.Month})
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}

	output := summarize(debts)

	if uc.summaryCache != nil {
		if err := uc.summaryCache.Set(ctx, input.UserID, cacheKey, output); err != nil {
			slog.Warn("Failed to write summary cache", "user_id", input.UserID, "error", err)
		}
	}

	return output, nil
}

func summarize(debts []*entity.DebtWithPerson) *GetSummaryOutput {
	output := &GetSummaryOutput{
		TotalDebts:    decimal.Zero,
		TotalPaid:     decimal.Zero,
		TotalPending:  decimal.Zero,
		DebtsByPerson: make(map[string]*PersonTotals),
		Installments:  []SummaryInstallment{},
	}

	for _, row := range debts {
		d := row.Debt
		pending := d.PendingAmount()

		output.TotalDebts = output.TotalDebts.Add(d.Amount)
		output.TotalPaid = output.TotalPaid.Add(d.PaidAmount)
		output.TotalPending = output.TotalPending.Add(pending)

		name := ""
		if row.Person != nil {
			name = row.Person.Name
		}
		totals, ok := output.DebtsByPerson[name]
		if !ok {
			totals = &PersonTotals{Total: decimal.Zero, Paid: decimal.Zero, Pending: decimal.Zero}
			output.DebtsByPerson[name] = totals
		}
		totals.Total = totals.Total.Add(d.Amount)
		totals.Paid = totals.Paid.Add(d.PaidAmount)
		totals.Pending = totals.Pending.Add(pending)
		totals.Debts++

		if !d.IsInstallment() {
			continue
		}
		output.InstallmentsCount++
		output.Installments = append(output.Installments, SummaryInstallment{
			ID:                 d.ID,
			Description:        d.Description,
			Amount:             d.Amount,
			TotalAmount:        d.Amount.Mul(decimal.NewFromInt(int64(*d.TotalInstallments))),
			CurrentInstallment: d.Installment,
			TotalInstallments:  d.TotalInstallments,
			DueDate:            d.DueDate,
			PersonName:         name,
			Status:             d.Status,
		})
	}

	sort.SliceStable(output.Installments, func(i, j int) bool {
		a, b := output.Installments[i], output.Installments[j]
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		return *a.CurrentInstallment < *b.CurrentInstallment
	})

	return output
}
