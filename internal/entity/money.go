package entity

import "github.com/shopspring/decimal"

// Monetary columns carry exactly 2 decimal places; conversion_rate carries 4.
// Values with more precision than declared are rejected at validation time,
// never rounded silently.

const (
	MoneyScale = 2
	RatioScale = 4
)

// FitsScale reports whether d can be represented without loss at the given
// number of decimal places.
func FitsScale(d decimal.Decimal, scale int32) bool {
	return d.Equal(d.Truncate(scale))
}

func MoneyZero() decimal.Decimal {
	return decimal.New(0, -MoneyScale)
}
