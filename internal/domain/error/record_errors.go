// Package error defines domain-specific errors for the Finance Tracker application.
package error

import "errors"

// Errors shared by every dated financial record (transactions and debts).
var (
	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrFutureDate is returned when a record is dated after today.
	ErrFutureDate = errors.New("date cannot be in the future")

	// ErrDueDateBeforeDate is returned when the due date precedes the record date.
	ErrDueDateBeforeDate = errors.New("due date cannot be before date")

	// ErrInvalidTotalInstallments is returned when total installments is lower than one.
	ErrInvalidTotalInstallments = errors.New("total installments must be at least 1")

	// ErrInvalidInstallment is returned when the installment index is lower than one.
	ErrInvalidInstallment = errors.New("installment must be at least 1")

	// ErrInstallmentAmountTooSmall is returned when splitting an amount leaves installments of zero.
	ErrInstallmentAmountTooSmall = errors.New("amount is too small to split into installments")

	// ErrInstallmentExceedsTotal is returned when the installment index is above the total.
	ErrInstallmentExceedsTotal = errors.New("installment cannot exceed total installments")

	// ErrDateImmutable is returned when an update tries to move a record to another date.
	ErrDateImmutable = errors.New("date cannot be changed after creation")

	// ErrDescriptionRequired is returned when the description is blank.
	ErrDescriptionRequired = errors.New("description is required")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)
