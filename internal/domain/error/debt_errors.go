package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt is not found for the requesting user.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrNegativePaidAmount is returned when a payment would set a negative paid amount.
	ErrNegativePaidAmount = errors.New("paid amount cannot be negative")

	// ErrPersonNotFoundForDebt is returned when the debt's person does not exist or belongs to another user.
	ErrPersonNotFoundForDebt = errors.New("person not found")

	// ErrInvalidDebtStatus is returned when a status filter is not a known status.
	ErrInvalidDebtStatus = errors.New("invalid debt status")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-XXYYYY where XX is category and YYYY is specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDebtAmount       DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtDate         DebtErrorCode = "DBT-010002"
	ErrCodeDebtDueDateBeforeDate   DebtErrorCode = "DBT-010003"
	ErrCodeDebtInvalidInstallments DebtErrorCode = "DBT-010004"
	ErrCodeNegativePaidAmount      DebtErrorCode = "DBT-010005"
	ErrCodeDebtDescriptionInvalid  DebtErrorCode = "DBT-010006"
	ErrCodeDebtDateImmutable       DebtErrorCode = "DBT-010007"
	ErrCodeInvalidDebtStatus       DebtErrorCode = "DBT-010008"
	ErrCodeMissingDebtFields       DebtErrorCode = "DBT-010009"

	// Reference errors (02XXXX)
	ErrCodeDebtNotFound              DebtErrorCode = "DBT-020001"
	ErrCodeDebtPersonNotFound        DebtErrorCode = "DBT-020002"
	ErrCodeDebtPaymentMethodNotFound DebtErrorCode = "DBT-020003"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// DebtValidationError wraps a shared record rule violation into a coded debt error.
// It returns nil when err is nil.
func DebtValidationError(err error) error {
	if err == nil {
		return nil
	}

	code := ErrCodeMissingDebtFields
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInstallmentAmountTooSmall):
		code = ErrCodeInvalidDebtAmount
	case errors.Is(err, ErrFutureDate):
		code = ErrCodeInvalidDebtDate
	case errors.Is(err, ErrDueDateBeforeDate):
		code = ErrCodeDebtDueDateBeforeDate
	case errors.Is(err, ErrInvalidTotalInstallments), errors.Is(err, ErrInvalidInstallment), errors.Is(err, ErrInstallmentExceedsTotal):
		code = ErrCodeDebtInvalidInstallments
	case errors.Is(err, ErrDescriptionRequired), errors.Is(err, ErrDescriptionTooLong):
		code = ErrCodeDebtDescriptionInvalid
	case errors.Is(err, ErrDateImmutable):
		code = ErrCodeDebtDateImmutable
	case errors.Is(err, ErrNegativePaidAmount):
		code = ErrCodeNegativePaidAmount
	}
	return NewDebtError(code, err.Error(), err)
}
