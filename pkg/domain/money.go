package domain

import "github.com/shopspring/decimal"

// DefaultCurrency is the settlement currency of the platform.
const DefaultCurrency = "GHS"

// Amount rounds a monetary value to two decimal places.
func Amount(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// ToMinorUnits converts an amount to the smallest currency unit (pesewas, cents).
func ToMinorUnits(v decimal.Decimal) int64 {
	return v.Shift(2).Round(0).IntPart()
}

// FromMinorUnits converts the smallest currency unit back to a decimal amount.
func FromMinorUnits(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}
