package error

import "errors"

// Person domain errors.
var (
	// ErrPersonNotFound is returned when a person is not found for the requesting user.
	ErrPersonNotFound = errors.New("person not found")

	// ErrPersonNameRequired is returned when a person has a blank name.
	ErrPersonNameRequired = errors.New("person name is required")

	// ErrPersonRelationshipNotFound is returned when the referenced relationship does not exist.
	ErrPersonRelationshipNotFound = errors.New("relationship not found")
)

// PersonErrorCode defines error codes for person errors.
// Format: PPL-XXYYYY where XX is category and YYYY is specific error.
type PersonErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodePersonNameRequired PersonErrorCode = "PPL-010001"

	// Reference errors (02XXXX)
	ErrCodePersonNotFound             PersonErrorCode = "PPL-020001"
	ErrCodePersonRelationshipNotFound PersonErrorCode = "PPL-020002"
)

// PersonError represents a person error with code and message.
type PersonError struct {
	Code    PersonErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PersonError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PersonError) Unwrap() error {
	return e.Err
}

// NewPersonError creates a new PersonError with the given code and message.
func NewPersonError(code PersonErrorCode, message string, err error) *PersonError {
	return &PersonError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
