package valueobject

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// MaxDescriptionLength is the longest description accepted for a record.
const MaxDescriptionLength = 200

// RecordFields holds the submitted values shared by transactions and debts.
type RecordFields struct {
	Description       string
	Amount            decimal.Decimal
	Date              time.Time
	DueDate           *time.Time
	Installment       *int
	TotalInstallments *int
}

// NormalizeDescription trims surrounding whitespace from a record description.
func NormalizeDescription(description string) string {
	return strings.TrimSpace(description)
}

// Validate checks the rules that hold for every stored record. Amount is checked
// after rounding to cents, which is the value that gets stored.
func (f RecordFields) Validate() error {
	description := NormalizeDescription(f.Description)
	if description == "" {
		return domainerror.ErrDescriptionRequired
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return domainerror.ErrDescriptionTooLong
	}

	if !NormalizeAmount(f.Amount).IsPositive() {
		return domainerror.ErrInvalidAmount
	}

	if f.DueDate != nil && DateOnly(*f.DueDate).Before(DateOnly(f.Date)) {
		return domainerror.ErrDueDateBeforeDate
	}

	if f.TotalInstallments != nil && *f.TotalInstallments < 1 {
		return domainerror.ErrInvalidTotalInstallments
	}
	if f.Installment != nil {
		if *f.Installment < 1 {
			return domainerror.ErrInvalidInstallment
		}
		if f.TotalInstallments != nil && *f.Installment > *f.TotalInstallments {
			return domainerror.ErrInstallmentExceedsTotal
		}
	}

	return nil
}

// ValidateNew runs Validate for a submission whose Amount is the series total. It also
// rejects dates after today and installment plans whose per-row share rounds to zero.
func (f RecordFields) ValidateNew(today time.Time) error {
	if DateOnly(f.Date).After(DateOnly(today)) {
		return domainerror.ErrFutureDate
	}
	if err := f.Validate(); err != nil {
		return err
	}

	if f.TotalInstallments != nil && *f.TotalInstallments > 1 &&
		!SplitEvenly(f.Amount, *f.TotalInstallments).IsPositive() {
		return domainerror.ErrInstallmentAmountTooSmall
	}
	return nil
}

// SeriesRequest returns the expansion input for these fields.
func (f RecordFields) SeriesRequest(isRecurring bool) SeriesRequest {
	return SeriesRequest{
		Amount:            f.Amount,
		Date:              DateOnly(f.Date),
		DueDate:           dateOnlyPtr(f.DueDate),
		TotalInstallments: f.TotalInstallments,
		IsRecurring:       isRecurring,
	}
}

func dateOnlyPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := DateOnly(*t)
	return &d
}
