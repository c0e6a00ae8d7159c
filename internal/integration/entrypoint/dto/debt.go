package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateDebtRequest represents the request body for debt creation.
type CreateDebtRequest struct {
	PersonID          string           `json:"person_id" binding:"required"`
	Description       string           `json:"description" binding:"required"`
	Amount            *decimal.Decimal `json:"amount" binding:"required"`
	Date              string           `json:"date" binding:"required"`
	DueDate           *string          `json:"due_date,omitempty"`
	Installments      *int             `json:"installments,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	PaymentMethodID   *string          `json:"payment_method_id,omitempty"`
}

// UpdateDebtRequest represents the request body for debt update. A status sent by the
// client is accepted for compatibility and ignored.
type UpdateDebtRequest struct {
	PersonID          *string          `json:"person_id,omitempty"`
	Description       *string          `json:"description,omitempty"`
	Amount            *decimal.Decimal `json:"amount,omitempty"`
	PaidAmount        *decimal.Decimal `json:"paid_amount,omitempty"`
	Status            *string          `json:"status,omitempty"`
	Date              *string          `json:"date,omitempty"`
	DueDate           *string          `json:"due_date,omitempty"`
	Installments      *int             `json:"installments,omitempty"`
	TotalInstallments *int             `json:"total_installments,omitempty"`
	PaymentMethodID   *string          `json:"payment_method_id,omitempty"`
}

// ApplyPaymentRequest represents the request body for PATCH /debts/:id/payment.
type ApplyPaymentRequest struct {
	PaidAmount *decimal.Decimal `json:"paid_amount" binding:"required"`
}

// DebtResponse represents a single debt in API responses.
type DebtResponse struct {
	ID                string          `json:"id"`
	PersonID          string          `json:"person_id"`
	Person            *PersonResponse `json:"person,omitempty"`
	SeriesID          *string         `json:"series_id"`
	Description       string          `json:"description"`
	Amount            string          `json:"amount"`
	PaidAmount        string          `json:"paid_amount"`
	Status            string          `json:"status"`
	Date              string          `json:"date"`
	DueDate           *string         `json:"due_date"`
	Installments      *int            `json:"installments"`
	TotalInstallments *int            `json:"total_installments"`
	PaymentMethodID   *string         `json:"payment_method_id"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// CreateDebtResponse wraps the representative row of a submission.
type CreateDebtResponse struct {
	Debt         DebtResponse `json:"debt"`
	Mode         string       `json:"mode"`
	CreatedCount int          `json:"created_count"`
}

// DebtListResponse represents the response for listing debts.
type DebtListResponse struct {
	Debts []DebtResponse `json:"debts"`
}

// DebtSummaryTotals holds the headline figures of the debt summary.
type DebtSummaryTotals struct {
	TotalDebts        string `json:"totalDebts"`
	TotalPaid         string `json:"totalPaid"`
	TotalPending      string `json:"totalPending"`
	InstallmentsCount int    `json:"installmentsCount"`
}

// PersonTotalsResponse aggregates the debts of one person.
type PersonTotalsResponse struct {
	Total   string `json:"total"`
	Paid    string `json:"paid"`
	Pending string `json:"pending"`
	Debts   int    `json:"debts"`
}

// DebtSummaryInstallment is one installment row of the debt summary.
type DebtSummaryInstallment struct {
	ID                 string  `json:"id"`
	Description        string  `json:"description"`
	Amount             string  `json:"amount"`
	TotalAmount        string  `json:"totalAmount"`
	CurrentInstallment *int    `json:"currentInstallment"`
	TotalInstallments  *int    `json:"totalInstallments"`
	DueDate            *string `json:"dueDate"`
	Person             string  `json:"person"`
	Status             string  `json:"status"`
}

// DebtSummaryResponse represents the debt summary.
type DebtSummaryResponse struct {
	Summary       DebtSummaryTotals               `json:"summary"`
	DebtsByPerson map[string]PersonTotalsResponse `json:"debtsByPerson"`
	Installments  []DebtSummaryInstallment        `json:"installments"`
}

// ToDebtResponse converts a domain Debt to a DebtResponse DTO. person may be nil.
func ToDebtResponse(d *entity.Debt, person *entity.Person) DebtResponse {
	response := DebtResponse{
		ID:                d.ID.String(),
		PersonID:          d.PersonID.String(),
		SeriesID:          uuidPtrString(d.SeriesID),
		Description:       d.Description,
		Amount:            FormatAmount(d.Amount),
		PaidAmount:        FormatAmount(d.PaidAmount),
		Status:            string(d.Status),
		Date:              FormatDate(d.Date),
		DueDate:           FormatDatePtr(d.DueDate),
		Installments:      d.Installment,
		TotalInstallments: d.TotalInstallments,
		PaymentMethodID:   uuidPtrString(d.PaymentMethodID),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}

	if person != nil {
		p := ToPersonResponse(person)
		response.Person = &p
	}

	return response
}

// ToDebtListResponse converts listed debts to a DebtListResponse.
func ToDebtListResponse(output *debt.ListDebtsOutput) DebtListResponse {
	debts := make([]DebtResponse, len(output.Debts))
	for i, d := range output.Debts {
		debts[i] = ToDebtResponse(d.Debt, d.Person)
	}
	return DebtListResponse{Debts: debts}
}

// ToDebtSummaryResponse converts a GetSummaryOutput to DebtSummaryResponse.
func ToDebtSummaryResponse(output *debt.GetSummaryOutput) DebtSummaryResponse {
	byPerson := make(map[string]PersonTotalsResponse, len(output.DebtsByPerson))
	for name, totals := range output.DebtsByPerson {
		byPerson[name] = PersonTotalsResponse{
			Total:   FormatAmount(totals.Total),
			Paid:    FormatAmount(totals.Paid),
			Pending: FormatAmount(totals.Pending),
			Debts:   totals.Debts,
		}
	}

	installments := make([]DebtSummaryInstallment, len(output.Installments))
	for i, inst := range output.Installments {
		installments[i] = DebtSummaryInstallment{
			ID:                 inst.ID.String(),
			Description:        inst.Description,
			Amount:             FormatAmount(inst.Amount),
			TotalAmount:        FormatAmount(inst.TotalAmount),
			CurrentInstallment: inst.CurrentInstallment,
			TotalInstallments:  inst.TotalInstallments,
			DueDate:            FormatDatePtr(inst.DueDate),
			Person:             inst.PersonName,
			Status:             string(inst.Status),
		}
	}

	return DebtSummaryResponse{
		Summary: DebtSummaryTotals{
			TotalDebts:        FormatAmount(output.TotalDebts),
			TotalPaid:         FormatAmount(output.TotalPaid),
			TotalPending:      FormatAmount(output.TotalPending),
			InstallmentsCount: output.InstallmentsCount,
		},
		DebtsByPerson: byPerson,
		Installments:  installments,
	}
}
