package valueobject

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestExpandInstallments_DebtOfTwelveHundred(t *testing.T) {
	slots := ExpandInstallments(decimal.RequireFromString("1200.00"), 3, date(2025, 1, 15), nil)
	require.Len(t, slots, 3)

	wantDates := []time.Time{date(2025, 1, 15), date(2025, 2, 15), date(2025, 3, 15)}
	for i, slot := range slots {
		require.NotNil(t, slot.Installment)
		assert.Equal(t, i+1, *slot.Installment)
		assert.Equal(t, 3, *slot.TotalInstallments)
		assert.Equal(t, wantDates[i], slot.Date)
		assert.Equal(t, wantDates[i], *slot.DueDate, "due date falls back to the installment date")
		assert.True(t, decimal.RequireFromString("400.00").Equal(slot.Amount))
		assert.False(t, slot.IsRecurring)
	}
}

func TestExpandInstallments_ShiftsDueDate(t *testing.T) {
	due := date(2025, 1, 31)
	slots := ExpandInstallments(decimal.RequireFromString("90"), 3, date(2025, 1, 10), &due)
	require.Len(t, slots, 3)

	assert.Equal(t, date(2025, 1, 31), *slots[0].DueDate)
	assert.Equal(t, date(2025, 2, 28), *slots[1].DueDate)
	assert.Equal(t, date(2025, 3, 31), *slots[2].DueDate)
}

func TestExpandInstallments_SumWithinRoundingBound(t *testing.T) {
	totals := []string{"100.00", "0.05", "1000.01", "33.33", "999.99", "10.00"}
	for _, raw := range totals {
		total := decimal.RequireFromString(raw)
		for count := 2; count <= 24; count++ {
			slots := ExpandInstallments(total, count, date(2025, 1, 1), nil)
			require.Len(t, slots, count)

			sum := decimal.Zero
			seen := make(map[int]bool, count)
			for i, slot := range slots {
				sum = sum.Add(slot.Amount)
				seen[*slot.Installment] = true
				assert.Equal(t, AddMonths(date(2025, 1, 1), i), slot.Date)
			}
			assert.Len(t, seen, count)

			bound := decimal.New(int64(count-1), -2)
			assert.True(t, sum.Sub(total).Abs().LessThanOrEqual(bound),
				"total %s in %d parts summed to %s", raw, count, sum)
		}
	}
}

func TestExpandInstallments_KeepsLossySum(t *testing.T) {
	slots := ExpandInstallments(decimal.RequireFromString("100.00"), 3, date(2025, 1, 1), nil)

	sum := decimal.Zero
	for _, slot := range slots {
		assert.True(t, decimal.RequireFromString("33.33").Equal(slot.Amount))
		sum = sum.Add(slot.Amount)
	}
	assert.True(t, decimal.RequireFromString("99.99").Equal(sum))
}

func TestExpandRecurrence_ClampsDays(t *testing.T) {
	slots := ExpandRecurrence(decimal.RequireFromString("50.00"), date(2025, 1, 31))
	require.Len(t, slots, RecurrenceHorizon)

	want := []time.Time{
		date(2025, 1, 31), date(2025, 2, 28), date(2025, 3, 31),
		date(2025, 4, 30), date(2025, 5, 31), date(2025, 6, 30),
	}
	for i, slot := range slots {
		assert.Equal(t, want[i], slot.Date)
		assert.True(t, slot.IsRecurring)
		assert.Nil(t, slot.Installment)
		assert.Nil(t, slot.TotalInstallments)
		assert.Nil(t, slot.DueDate)
		assert.True(t, decimal.RequireFromString("50.00").Equal(slot.Amount))
	}
}

func TestExpandRecurrence_RollsOverYear(t *testing.T) {
	slots := ExpandRecurrence(decimal.NewFromInt(10), date(2025, 12, 15))
	require.Len(t, slots, 6)

	months := make([]string, 0, len(slots))
	for i, slot := range slots {
		months = append(months, MonthOf(slot.Date).String())
		if i > 0 {
			assert.True(t, slot.Date.After(slots[i-1].Date))
		}
	}
	assert.Equal(t, []string{"2025-12", "2026-01", "2026-02", "2026-03", "2026-04", "2026-05"}, months)
}

func TestPlanSeries_DecisionOrder(t *testing.T) {
	due := date(2025, 2, 1)
	tests := []struct {
		name      string
		req       SeriesRequest
		wantMode  SeriesMode
		wantSlots int
	}{
		{
			name:      "installments win over recurrence",
			req:       SeriesRequest{Amount: decimal.NewFromInt(300), Date: date(2025, 1, 1), TotalInstallments: intPtr(3), IsRecurring: true},
			wantMode:  SeriesModeInstallment,
			wantSlots: 3,
		},
		{
			name:      "recurring",
			req:       SeriesRequest{Amount: decimal.NewFromInt(50), Date: date(2025, 1, 1), IsRecurring: true},
			wantMode:  SeriesModeRecurring,
			wantSlots: RecurrenceHorizon,
		},
		{
			name:      "one of one is a plain record",
			req:       SeriesRequest{Amount: decimal.NewFromInt(50), Date: date(2025, 1, 1), TotalInstallments: intPtr(1), DueDate: &due},
			wantMode:  SeriesModeSingle,
			wantSlots: 1,
		},
		{
			name:      "single",
			req:       SeriesRequest{Amount: decimal.NewFromInt(50), Date: date(2025, 1, 1)},
			wantMode:  SeriesModeSingle,
			wantSlots: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanSeries(tt.req)
			assert.Equal(t, tt.wantMode, plan.Mode)
			assert.Len(t, plan.Slots, tt.wantSlots)
			assert.Equal(t, tt.wantMode != SeriesModeSingle, plan.IsSeries())
			assert.Equal(t, tt.req.Date, plan.Slots[0].Date)
		})
	}
}

func TestPlanSeries_SingleKeepsDueDateWithoutInstallmentFields(t *testing.T) {
	due := date(2025, 2, 1)
	plan := PlanSeries(SeriesRequest{Amount: decimal.RequireFromString("10.005"), Date: date(2025, 1, 1), TotalInstallments: intPtr(1), DueDate: &due})

	slot := plan.Slots[0]
	assert.Nil(t, slot.Installment)
	assert.Nil(t, slot.TotalInstallments)
	assert.Equal(t, due, *slot.DueDate)
	assert.True(t, decimal.RequireFromString("10.01").Equal(slot.Amount))
}
