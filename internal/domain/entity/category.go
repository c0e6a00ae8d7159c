package entity

import "time"

// Category is a global transaction category identified by a slug such as "food".
type Category struct {
	ID        string
	Name      string
	Icon      *string
	Color     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(id, name string, icon, color *string) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        id,
		Name:      name,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
