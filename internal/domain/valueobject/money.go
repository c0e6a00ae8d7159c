// Package valueobject contains domain value objects for the Finance Tracker system.
package valueobject

import "github.com/shopspring/decimal"

// MoneyScale is the number of fractional digits stored for monetary values.
const MoneyScale int32 = 2

// SplitEvenly returns the amount of one part when total is divided into parts pieces,
// rounded to cents. The remainder is not redistributed, so parts*result may differ
// from total by up to (parts-1) cents.
func SplitEvenly(total decimal.Decimal, parts int) decimal.Decimal {
	if parts <= 1 {
		return total.Round(MoneyScale)
	}
	return total.Div(decimal.NewFromInt(int64(parts))).Round(MoneyScale)
}

// NormalizeAmount rounds a monetary value to cents.
func NormalizeAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
