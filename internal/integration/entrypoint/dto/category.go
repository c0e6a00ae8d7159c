package dto

import (
	"time"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	ID    string  `json:"id" binding:"required"`
	Name  string  `json:"name" binding:"required,min=1,max=100"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	Color     *string   `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// CreateRelationshipRequest represents the request body for relationship creation.
type CreateRelationshipRequest struct {
	ID   string  `json:"id" binding:"required"`
	Name string  `json:"name" binding:"required,min=1,max=100"`
	Icon *string `json:"icon,omitempty"`
}

// RelationshipResponse represents a relationship in API responses.
type RelationshipResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Icon      *string   `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// RelationshipListResponse represents the response for listing relationships.
type RelationshipListResponse struct {
	Relationships []RelationshipResponse `json:"relationships"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(cat *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:        cat.ID,
		Name:      cat.Name,
		Icon:      cat.Icon,
		Color:     cat.Color,
		CreatedAt: cat.CreatedAt,
		UpdatedAt: cat.UpdatedAt,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	out := make([]CategoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = ToCategoryResponse(cat)
	}
	return CategoryListResponse{
		Categories: out,
	}
}

// ToRelationshipResponse converts a domain Relationship to a RelationshipResponse DTO.
func ToRelationshipResponse(r *entity.Relationship) RelationshipResponse {
	return RelationshipResponse{
		ID:        r.ID,
		Name:      r.Name,
		Icon:      r.Icon,
		CreatedAt: r.CreatedAt,
	}
}

// ToRelationshipListResponse converts relationships to a RelationshipListResponse.
func ToRelationshipListResponse(relationships []*entity.Relationship) RelationshipListResponse {
	out := make([]RelationshipResponse, len(relationships))
	for i, r := range relationships {
		out[i] = ToRelationshipResponse(r)
	}
	return RelationshipListResponse{
		Relationships: out,
	}
}
