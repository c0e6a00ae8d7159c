package valueobject

import "github.com/shopspring/decimal"

// PaymentStatus is the settlement state of a debt.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// IsValid reports whether s is a known status.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPartial, PaymentStatusPaid:
		return true
	}
	return false
}

// ComputePaymentStatus derives the status of a debt from its amount and the amount
// paid so far. Overpayment is classified as paid.
func ComputePaymentStatus(amount, paidAmount decimal.Decimal) PaymentStatus {
	switch {
	case paidAmount.GreaterThanOrEqual(amount):
		return PaymentStatusPaid
	case paidAmount.IsPositive():
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}
