package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPersonColor is used when a person is created without a color.
const DefaultPersonColor = "bg-blue-500"

// Person is a counterparty of the user's debts.
type Person struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Email          *string
	Phone          *string
	RelationshipID string
	Color          string
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPerson creates a new Person entity.
func NewPerson(userID uuid.UUID, name, relationshipID, color string, email, phone, notes *string) *Person {
	now := time.Now().UTC()
	if color == "" {
		color = DefaultPersonColor
	}

	return &Person{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Email:          email,
		Phone:          phone,
		RelationshipID: relationshipID,
		Color:          color,
		Notes:          notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
