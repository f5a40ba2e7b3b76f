package output

import "github.com/shopspring/decimal"

// FormatPrice formats a price estimate with 6 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatPrice(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(6)
}

// FormatRate formats a rate or volatility with 4 decimals.
func FormatRate(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(4)
}
