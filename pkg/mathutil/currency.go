// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/price-projection/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// PercentToRate converts a percentage such as 12.5 into the rate 0.125.
func PercentToRate(percentage float64) float64 {
	return percentage / constants.PercentageMultiplier
}

// RateToPercent converts a rate such as 0.125 into the percentage 12.5.
func RateToPercent(rate float64) float64 {
	return rate * constants.PercentageMultiplier
}
