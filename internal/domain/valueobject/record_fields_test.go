package valueobject

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

func TestRecordFields_ValidateNew(t *testing.T) {
	today := date(2025, 6, 10)
	valid := func() RecordFields {
		return RecordFields{
			Description: "Notebook",
			Amount:      decimal.RequireFromString("1200.00"),
			Date:        date(2025, 1, 15),
		}
	}
	before := date(2025, 1, 14)
	after := date(2025, 2, 1)

	tests := []struct {
		name    string
		mutate  func(f *RecordFields)
		wantErr error
	}{
		{"valid", func(f *RecordFields) {}, nil},
		{"valid with due date and installments", func(f *RecordFields) {
			f.DueDate = &after
			f.Installment = intPtr(2)
			f.TotalInstallments = intPtr(3)
		}, nil},
		{"dated today", func(f *RecordFields) { f.Date = today }, nil},
		{"blank description", func(f *RecordFields) { f.Description = "   " }, domainerror.ErrDescriptionRequired},
		{"long description", func(f *RecordFields) { f.Description = strings.Repeat("x", 201) }, domainerror.ErrDescriptionTooLong},
		{"zero amount", func(f *RecordFields) { f.Amount = decimal.Zero }, domainerror.ErrInvalidAmount},
		{"negative amount", func(f *RecordFields) { f.Amount = decimal.NewFromInt(-5) }, domainerror.ErrInvalidAmount},
		{"sub-cent amount", func(f *RecordFields) { f.Amount = decimal.RequireFromString("0.004") }, domainerror.ErrInvalidAmount},
		{"installment share rounds to zero", func(f *RecordFields) {
			f.Amount = decimal.RequireFromString("0.01")
			f.TotalInstallments = intPtr(3)
		}, domainerror.ErrInstallmentAmountTooSmall},
		{"smallest splittable total", func(f *RecordFields) {
			f.Amount = decimal.RequireFromString("0.03")
			f.TotalInstallments = intPtr(3)
		}, nil},
		{"future date", func(f *RecordFields) { f.Date = date(2025, 6, 11) }, domainerror.ErrFutureDate},
		{"due before date", func(f *RecordFields) { f.DueDate = &before }, domainerror.ErrDueDateBeforeDate},
		{"zero total installments", func(f *RecordFields) { f.TotalInstallments = intPtr(0) }, domainerror.ErrInvalidTotalInstallments},
		{"zero installment", func(f *RecordFields) { f.Installment = intPtr(0) }, domainerror.ErrInvalidInstallment},
		{"installment above total", func(f *RecordFields) {
			f.Installment = intPtr(4)
			f.TotalInstallments = intPtr(3)
		}, domainerror.ErrInstallmentExceedsTotal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := valid()
			tt.mutate(&fields)

			err := fields.ValidateNew(today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordFields_ValidateAcceptsStoredInstallmentShare(t *testing.T) {
	fields := RecordFields{
		Description:       "Notebook",
		Amount:            decimal.RequireFromString("0.01"),
		Date:              date(2025, 1, 15),
		Installment:       intPtr(2),
		TotalInstallments: intPtr(3),
	}

	assert.NoError(t, fields.Validate())
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "Notebook", NormalizeDescription("  Notebook\t"))
	assert.Empty(t, NormalizeDescription("   "))
}

func TestRecordFields_SeriesRequestStripsClock(t *testing.T) {
	fields := RecordFields{
		Amount: decimal.NewFromInt(10),
		Date:   date(2025, 1, 15).Add(13 * time.Hour),
	}
	req := fields.SeriesRequest(true)

	assert.Equal(t, date(2025, 1, 15), req.Date)
	assert.True(t, req.IsRecurring)
	assert.Nil(t, req.DueDate)
}
