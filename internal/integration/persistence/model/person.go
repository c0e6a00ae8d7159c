package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// PersonModel represents the people table in the database.
type PersonModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          *string   `gorm:"type:varchar(255)"`
	Phone          *string   `gorm:"type:varchar(30)"`
	RelationshipID string    `gorm:"type:varchar(50);not null"`
	Color          string    `gorm:"type:varchar(30);not null;default:'bg-blue-500'"`
	Notes          *string   `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for the PersonModel.
func (PersonModel) TableName() string {
	return "people"
}

// ToEntity converts a PersonModel to a domain Person entity.
func (m *PersonModel) ToEntity() *entity.Person {
	return &entity.Person{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		RelationshipID: m.RelationshipID,
		Color:          m.Color,
		Notes:          m.Notes,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PersonFromEntity creates a PersonModel from a domain Person entity.
func PersonFromEntity(p *entity.Person) *PersonModel {
	return &PersonModel{
		ID:             p.ID,
		UserID:         p.UserID,
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
