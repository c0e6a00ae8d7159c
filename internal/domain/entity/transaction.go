// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents an income or expense entry.
// Members of an installment or recurrence series share a SeriesID.
type Transaction struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	SeriesID          *uuid.UUID
	Description       string
	Amount            decimal.Decimal
	Type              TransactionType
	CategoryID        string
	Date              time.Time
	IsRecurring       bool
	Installment       *int
	TotalInstallments *int
	DueDate           *time.Time
	PaymentMethodID   *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewTransactionFromSlot builds one series member from a schedule slot.
func NewTransactionFromSlot(
	userID uuid.UUID,
	seriesID *uuid.UUID,
	description string,
	transactionType TransactionType,
	categoryID string,
	paymentMethodID *uuid.UUID,
	slot valueobject.Slot,
	now time.Time,
) *Transaction {
	return &Transaction{
		ID:                uuid.New(),
		UserID:            userID,
		SeriesID:          seriesID,
		Description:       description,
		Amount:            slot.Amount,
		Type:              transactionType,
		CategoryID:        categoryID,
		Date:              slot.Date,
		IsRecurring:       slot.IsRecurring,
		Installment:       slot.Installment,
		TotalInstallments: slot.TotalInstallments,
		DueDate:           slot.DueDate,
		PaymentMethodID:   paymentMethodID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsInstallment reports whether the transaction belongs to an installment plan of
// more than one row.
func (t *Transaction) IsInstallment() bool {
	return t.Installment != nil && t.TotalInstallments != nil && *t.TotalInstallments > 1
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	Month      *valueobject.Month
	Type       *TransactionType
	CategoryID *string
	SeriesID   *uuid.UUID
}
