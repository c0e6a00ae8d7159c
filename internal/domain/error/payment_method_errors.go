package error

import "errors"

// Payment method domain errors.
var (
	// ErrPaymentMethodNotFound is returned when a payment method is not found in the system.
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	// ErrPaymentMethodNameExists is returned when another payment method already uses the name.
	ErrPaymentMethodNameExists = errors.New("payment method name already exists")

	// ErrPaymentMethodNameRequired is returned when the name is blank.
	ErrPaymentMethodNameRequired = errors.New("payment method name is required")

	// ErrPaymentMethodInUse is returned when deleting a payment method still referenced by records.
	ErrPaymentMethodInUse = errors.New("payment method is in use")
)

// PaymentMethodErrorCode defines error codes for payment method errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PaymentMethodErrorCode string

const (
	ErrCodePaymentMethodNotFound     PaymentMethodErrorCode = "PAY-010001"
	ErrCodePaymentMethodNameExists   PaymentMethodErrorCode = "PAY-010002"
	ErrCodePaymentMethodNameRequired PaymentMethodErrorCode = "PAY-010003"
	ErrCodePaymentMethodInUse        PaymentMethodErrorCode = "PAY-010004"
)

// PaymentMethodError represents a payment method error with code and message.
type PaymentMethodError struct {
	Code    PaymentMethodErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PaymentMethodError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PaymentMethodError) Unwrap() error {
	return e.Err
}

// NewPaymentMethodError creates a new PaymentMethodError with the given code and message.
func NewPaymentMethodError(code PaymentMethodErrorCode, message string, err error) *PaymentMethodError {
	return &PaymentMethodError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
