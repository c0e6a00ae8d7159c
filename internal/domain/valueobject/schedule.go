package valueobject

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecurrenceHorizon is the number of monthly occurrences materialized for a recurring
// record. Nothing extends a series once the horizon has been reached.
const RecurrenceHorizon = 6

// SeriesMode describes how a submitted record is materialized.
type SeriesMode string

const (
	SeriesModeSingle      SeriesMode = "single"
	SeriesModeInstallment SeriesMode = "installment"
	SeriesModeRecurring   SeriesMode = "recurring"
)

// Slot is one dated row of a materialized series.
type Slot struct {
	Installment       *int
	TotalInstallments *int
	Date              time.Time
	DueDate           *time.Time
	Amount            decimal.Decimal
	IsRecurring       bool
}

// SeriesRequest carries the fields of a submission that drive expansion.
type SeriesRequest struct {
	Amount            decimal.Decimal
	Date              time.Time
	DueDate           *time.Time
	TotalInstallments *int
	IsRecurring       bool
}

// SeriesPlan is the ordered set of rows to persist for one submission.
// Slots[0] is the representative row.
type SeriesPlan struct {
	Mode  SeriesMode
	Slots []Slot
}

// IsSeries reports whether the plan produces more than a single standalone row.
func (p SeriesPlan) IsSeries() bool {
	return p.Mode != SeriesModeSingle
}

// PlanSeries selects the expansion for a submission. Installments take precedence over
// recurrence; anything else is stored as one plain row with no installment fields.
func PlanSeries(req SeriesRequest) SeriesPlan {
	if req.TotalInstallments != nil && *req.TotalInstallments > 1 {
		return SeriesPlan{
			Mode:  SeriesModeInstallment,
			Slots: ExpandInstallments(req.Amount, *req.TotalInstallments, req.Date, req.DueDate),
		}
	}

	if req.IsRecurring {
		return SeriesPlan{
			Mode:  SeriesModeRecurring,
			Slots: ExpandRecurrence(req.Amount, req.Date),
		}
	}

	return SeriesPlan{
		Mode: SeriesModeSingle,
		Slots: []Slot{{
			Date:    req.Date,
			DueDate: req.DueDate,
			Amount:  NormalizeAmount(req.Amount),
		}},
	}
}

// ExpandInstallments splits total into count monthly installments starting at start.
// Installment i is dated start + (i-1) months. Its due date is dueStart + (i-1) months
// when dueStart is given, otherwise the installment's own date.
func ExpandInstallments(total decimal.Decimal, count int, start time.Time, dueStart *time.Time) []Slot {
	if count < 1 {
		return nil
	}

	amount := SplitEvenly(total, count)
	slots := make([]Slot, 0, count)
	for offset := 0; offset < count; offset++ {
		index := offset + 1
		totalInstallments := count
		date := AddMonths(start, offset)

		due := date
		if dueStart != nil {
			due = AddMonths(*dueStart, offset)
		}

		slots = append(slots, Slot{
			Installment:       &index,
			TotalInstallments: &totalInstallments,
			Date:              date,
			DueDate:           &due,
			Amount:            amount,
		})
	}
	return slots
}

// ExpandRecurrence repeats amount monthly from start for RecurrenceHorizon months.
func ExpandRecurrence(amount decimal.Decimal, start time.Time) []Slot {
	amount = NormalizeAmount(amount)
	slots := make([]Slot, 0, RecurrenceHorizon)
	for offset := 0; offset < RecurrenceHorizon; offset++ {
		slots = append(slots, Slot{
			Date:        AddMonths(start, offset),
			Amount:      amount,
			IsRecurring: true,
		})
	}
	return slots
}
