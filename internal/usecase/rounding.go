package usecase

import "github.com/shopspring/decimal"

// roundCents rounds a BRL amount to two decimals, half away from zero.
func roundCents(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
