package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// Debt represents money owed between the user and a person.
type Debt struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PersonID          uuid.UUID
	SeriesID          *uuid.UUID
	Description       string
	Amount            decimal.Decimal
	PaidAmount        decimal.Decimal
	Status            valueobject.PaymentStatus
	Date              time.Time
	DueDate           *time.Time
	Installment       *int
	TotalInstallments *int
	PaymentMethodID   *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDebtFromSlot builds one series member from a schedule slot. New debts start unpaid.
func NewDebtFromSlot(
	userID, personID uuid.UUID,
	seriesID *uuid.UUID,
	description string,
	paymentMethodID *uuid.UUID,
	slot valueobject.Slot,
	now time.Time,
) *Debt {
	debt := &Debt{
		ID:                uuid.New(),
		UserID:            userID,
		PersonID:          personID,
		SeriesID:          seriesID,
		Description:       description,
		Amount:            slot.Amount,
		PaidAmount:        decimal.Zero,
		Date:              slot.Date,
		DueDate:           slot.DueDate,
		Installment:       slot.Installment,
		TotalInstallments: slot.TotalInstallments,
		PaymentMethodID:   paymentMethodID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	debt.RefreshStatus()
	return debt
}

// RefreshStatus recomputes Status from Amount and PaidAmount, discarding the stored value.
func (d *Debt) RefreshStatus() {
	d.Status = valueobject.ComputePaymentStatus(d.Amount, d.PaidAmount)
}

// ApplyPayment overwrites the paid amount and recomputes the status.
func (d *Debt) ApplyPayment(paidAmount decimal.Decimal, now time.Time) {
	d.PaidAmount = valueobject.NormalizeAmount(paidAmount)
	d.UpdatedAt = now
	d.RefreshStatus()
}

// PendingAmount returns what is still owed, never below zero.
func (d *Debt) PendingAmount() decimal.Decimal {
	pending := d.Amount.Sub(d.PaidAmount)
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// IsInstallment reports whether the debt belongs to an installment plan of more
// than one row. A 1 of 1 debt is a plain debt.
func (d *Debt) IsInstallment() bool {
	return d.Installment != nil && d.TotalInstallments != nil && *d.TotalInstallments > 1
}

// DebtWithPerson pairs a debt with its counterparty.
type DebtWithPerson struct {
	Debt   *Debt
	Person *Person
}

// DebtFilter narrows a debt listing.
type DebtFilter struct {
	Month    *valueobject.Month
	PersonID *uuid.UUID
	Status   *valueobject.PaymentStatus
	SeriesID *uuid.UUID
}
