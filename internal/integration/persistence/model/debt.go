package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// DebtModel represents the debts table in the database.
type DebtModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	PersonID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	SeriesID          *uuid.UUID      `gorm:"type:uuid;index"`
	Description       string          `gorm:"type:varchar(200);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaidAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status            string          `gorm:"type:varchar(10);not null;index"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	DueDate           *time.Time      `gorm:"type:date"`
	Installment       *int            `gorm:"type:integer"`
	TotalInstallments *int            `gorm:"type:integer"`
	PaymentMethodID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`

	// Not loaded by default, use Preload
	Person *PersonModel `gorm:"foreignKey:PersonID;references:ID"`
}

// TableName returns the table name for the DebtModel.
func (DebtModel) TableName() string {
	return "debts"
}

// ToEntity converts a DebtModel to a domain Debt entity. The stored status is
// recomputed so that a stale value never leaves the repository.
func (m *DebtModel) ToEntity() *entity.Debt {
	debt := &entity.Debt{
		ID:                m.ID,
		UserID:            m.UserID,
		PersonID:          m.PersonID,
		SeriesID:          m.SeriesID,
		Description:       m.Description,
		Amount:            valueobject.NormalizeAmount(m.Amount),
		PaidAmount:        valueobject.NormalizeAmount(m.PaidAmount),
		Date:              valueobject.DateOnly(m.Date),
		DueDate:           dateOnlyPtr(m.DueDate),
		Installment:       m.Installment,
		TotalInstallments: m.TotalInstallments,
		PaymentMethodID:   m.PaymentMethodID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	debt.RefreshStatus()
	return debt
}

// ToEntityWithPerson converts a DebtModel with its preloaded person.
func (m *DebtModel) ToEntityWithPerson() *entity.DebtWithPerson {
	result := &entity.DebtWithPerson{Debt: m.ToEntity()}
	if m.Person != nil {
		result.Person = m.Person.ToEntity()
	}
	return result
}

// DebtFromEntity creates a DebtModel from a domain Debt entity.
func DebtFromEntity(d *entity.Debt) *DebtModel {
	return &DebtModel{
		ID:                d.ID,
		UserID:            d.UserID,
		PersonID:          d.PersonID,
		SeriesID:          d.SeriesID,
		Description:       d.Description,
		Amount:            d.Amount,
		PaidAmount:        d.PaidAmount,
		Status:            string(valueobject.ComputePaymentStatus(d.Amount, d.PaidAmount)),
		Date:              valueobject.DateOnly(d.Date),
		DueDate:           dateOnlyPtr(d.DueDate),
		Installment:       d.Installment,
		TotalInstallments: d.TotalInstallments,
		PaymentMethodID:   d.PaymentMethodID,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}
