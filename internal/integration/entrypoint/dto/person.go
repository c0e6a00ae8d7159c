package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreatePersonRequest represents the request body for person creation.
type CreatePersonRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	RelationshipID string  `json:"relationship" binding:"required"`
	Color          string  `json:"color,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// UpdatePersonRequest represents the request body for person update.
type UpdatePersonRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	RelationshipID *string `json:"relationship,omitempty"`
	Color          *string `json:"color,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}

// PersonResponse represents a person in API responses.
type PersonResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          *string   `json:"email"`
	Phone          *string   `json:"phone"`
	RelationshipID string    `json:"relationship"`
	Color          string    `json:"color"`
	Notes          *string   `json:"notes"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PersonListResponse represents the response for listing people.
type PersonListResponse struct {
	People []PersonResponse `json:"people"`
}

// ToPersonResponse converts a domain Person to a PersonResponse DTO.
func ToPersonResponse(p *entity.Person) PersonResponse {
	return PersonResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		RelationshipID: p.RelationshipID,
		Color:          p.Color,
		Notes:          p.Notes,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToPersonListResponse converts people to a PersonListResponse.
func ToPersonListResponse(people []*entity.Person) PersonListResponse {
	out := make([]PersonResponse, len(people))
	for i, p := range people {
		out[i] = ToPersonResponse(p)
	}
	return PersonListResponse{People: out}
}
