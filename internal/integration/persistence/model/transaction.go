package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	SeriesID          *uuid.UUID      `gorm:"type:uuid;index"`
	Description       string          `gorm:"type:varchar(200);not null"`
	Amount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type              string          `gorm:"type:varchar(10);not null;index"`
	CategoryID        string          `gorm:"type:varchar(50);not null;index"`
	Date              time.Time       `gorm:"type:date;not null;index"`
	IsRecurring       bool            `gorm:"default:false"`
	Installment       *int            `gorm:"type:integer"`
	TotalInstallments *int            `gorm:"type:integer"`
	DueDate           *time.Time      `gorm:"type:date;index"`
	PaymentMethodID   *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:                m.ID,
		UserID:            m.UserID,
		SeriesID:          m.SeriesID,
		Description:       m.Description,
		Amount:            valueobject.NormalizeAmount(m.Amount),
		Type:              entity.TransactionType(m.Type),
		CategoryID:        m.CategoryID,
		Date:              valueobject.DateOnly(m.Date),
		IsRecurring:       m.IsRecurring,
		Installment:       m.Installment,
		TotalInstallments: m.TotalInstallments,
		DueDate:           dateOnlyPtr(m.DueDate),
		PaymentMethodID:   m.PaymentMethodID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:                t.ID,
		UserID:            t.UserID,
		SeriesID:          t.SeriesID,
		Description:       t.Description,
		Amount:            t.Amount,
		Type:              string(t.Type),
		CategoryID:        t.CategoryID,
		Date:              valueobject.DateOnly(t.Date),
		IsRecurring:       t.IsRecurring,
		Installment:       t.Installment,
		TotalInstallments: t.TotalInstallments,
		DueDate:           dateOnlyPtr(t.DueDate),
		PaymentMethodID:   t.PaymentMethodID,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := valueobject.DateOnly(*t)
	return &d
}
