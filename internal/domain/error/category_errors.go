package error

import "errors"

// Category and relationship catalog errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when creating a category with an id already in use.
	ErrCategoryAlreadyExists = errors.New("category already exists")

	// ErrCategoryInUse is returned when deleting a category that transactions still reference.
	ErrCategoryInUse = errors.New("category is used by transactions")

	// ErrInvalidCategoryID is returned when the category id is not a lowercase slug.
	ErrInvalidCategoryID = errors.New("invalid category id")

	// ErrCategoryNameRequired is returned when the category name is blank.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrRelationshipNotFound is returned when a relationship is not found in the system.
	ErrRelationshipNotFound = errors.New("relationship not found")

	// ErrRelationshipAlreadyExists is returned when creating a relationship with an id already in use.
	ErrRelationshipAlreadyExists = errors.New("relationship already exists")
)

// CategoryErrorCode defines error codes for category and relationship errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Category errors (01XXXX)
	ErrCodeCategoryNotFound      CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryAlreadyExists CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryInUse         CategoryErrorCode = "CAT-010003"
	ErrCodeInvalidCategoryID     CategoryErrorCode = "CAT-010004"
	ErrCodeMissingCategoryFields CategoryErrorCode = "CAT-010005"

	// Relationship errors (02XXXX)
	ErrCodeRelationshipNotFound      CategoryErrorCode = "CAT-020001"
	ErrCodeRelationshipAlreadyExists CategoryErrorCode = "CAT-020002"
	ErrCodeMissingRelationshipFields CategoryErrorCode = "CAT-020003"
)

// CategoryError represents a catalog error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
