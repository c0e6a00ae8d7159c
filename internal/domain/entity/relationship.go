package entity

import "time"

// Relationship describes how a person relates to the user (family, friend...).
type Relationship struct {
	ID        string
	Name      string
	Icon      *string
	CreatedAt time.Time
}

// NewRelationship creates a new Relationship entity.
func NewRelationship(id, name string, icon *string) *Relationship {
	return &Relationship{
		ID:        id,
		Name:      name,
		Icon:      icon,
		CreatedAt: time.Now().UTC(),
	}
}
