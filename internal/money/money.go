// Package money centralises currency rounding. All monetary amounts in the
// system are rounded half-away-from-zero, matching how totals were computed
// historically, so every rounding site goes through here.
package money

import "github.com/shopspring/decimal"

// Round2 rounds a currency amount to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return round(v, 2)
}

// Round1 rounds to 1 decimal place. Used for display distances only; fee
// formulas must consume the unrounded value.
func Round1(v float64) float64 {
	return round(v, 1)
}

func round(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
