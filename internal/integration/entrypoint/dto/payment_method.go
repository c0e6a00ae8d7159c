package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePaymentMethodRequest represents the request body for payment method creation.
type CreatePaymentMethodRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

// UpdatePaymentMethodRequest represents the request body for payment method update.
type UpdatePaymentMethodRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string `json:"description,omitempty"`
}

// PaymentMethodResponse represents a payment method in API responses.
type PaymentMethodResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PaymentMethodListResponse represents the response for listing payment methods.
type PaymentMethodListResponse struct {
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

// ToPaymentMethodResponse converts a domain PaymentMethod to a PaymentMethodResponse DTO.
func ToPaymentMethodResponse(m *entity.PaymentMethod) PaymentMethodResponse {
	return PaymentMethodResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToPaymentMethodListResponse converts payment methods to a PaymentMethodListResponse.
func ToPaymentMethodListResponse(methods []*entity.PaymentMethod) PaymentMethodListResponse {
	out := make([]PaymentMethodResponse, len(methods))
	for i, m := range methods {
		out[i] = ToPaymentMethodResponse(m)
	}
	return PaymentMethodListResponse{PaymentMethods: out}
}
