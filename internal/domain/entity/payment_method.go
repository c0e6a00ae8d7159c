package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a global means of payment (cash, credit card, PIX...).
type PaymentMethod struct {
	ID          uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewPaymentMethod creates a new PaymentMethod entity.
func NewPaymentMethod(name string, description *string) *PaymentMethod {
	now := time.Now().UTC()

	return &PaymentMethod{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
