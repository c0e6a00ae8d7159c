package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found for the requesting user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrPaymentMethodRequired is returned when an expense has no payment method.
	ErrPaymentMethodRequired = errors.New("payment method is required for expenses")

	// ErrPaymentMethodNotFoundForRecord is returned when the referenced payment method does not exist.
	ErrPaymentMethodNotFoundForRecord = errors.New("payment method not found")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeTxnDueDateBeforeDate     TransactionErrorCode = "TXN-010004"
	ErrCodeTxnInvalidInstallments   TransactionErrorCode = "TXN-010005"
	ErrCodeTxnPaymentMethodRequired TransactionErrorCode = "TXN-010006"
	ErrCodeTxnDescriptionInvalid    TransactionErrorCode = "TXN-010007"
	ErrCodeTxnDateImmutable         TransactionErrorCode = "TXN-010008"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010009"

	// Reference errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCategoryNotFound      TransactionErrorCode = "TXN-020002"
	ErrCodeTxnPaymentMethodNotFound TransactionErrorCode = "TXN-020003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// TransactionValidationError wraps a shared record rule violation into a coded transaction error.
// It returns nil when err is nil.
func TransactionValidationError(err error) error {
	if err == nil {
		return nil
	}

	code := ErrCodeMissingTransactionFields
	switch {
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrInstallmentAmountTooSmall):
		code = ErrCodeInvalidTransactionAmount
	case errors.Is(err, ErrFutureDate):
		code = ErrCodeInvalidTransactionDate
	case errors.Is(err, ErrDueDateBeforeDate):
		code = ErrCodeTxnDueDateBeforeDate
	case errors.Is(err, ErrInvalidTotalInstallments), errors.Is(err, ErrInvalidInstallment), errors.Is(err, ErrInstallmentExceedsTotal):
		code = ErrCodeTxnInvalidInstallments
	case errors.Is(err, ErrDescriptionRequired), errors.Is(err, ErrDescriptionTooLong):
		code = ErrCodeTxnDescriptionInvalid
	case errors.Is(err, ErrDateImmutable):
		code = ErrCodeTxnDateImmutable
	}
	return NewTransactionError(code, err.Error(), err)
}
