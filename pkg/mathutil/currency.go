// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/paint-bid/pkg/constants"
)

const floatEpsilon = 1e-9

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for display and logical comparisons, never inside a calculation.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// ApplyPercentage applies a percentage to a value
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}

// CeilDiv returns ceil(quantity / per) as a whole count. A non-positive
// quantity or divisor yields 0. Any remainder rounds up.
func CeilDiv(quantity, per float64) int {
	if quantity <= 0 || per <= 0 {
		return 0
	}
	return int(math.Ceil(quantity / per))
}

// CeilMul returns ceil(quantity * per) as a whole count. A non-positive
// quantity or factor yields 0. A product within floatEpsilon of a whole
// number snaps to it so that 30 doors at 0.10 gal/door is 3 gallons, not 4.
func CeilMul(quantity, per float64) int {
	if quantity <= 0 || per <= 0 {
		return 0
	}
	product := quantity * per
	if nearest := math.Round(product); math.Abs(product-nearest) < floatEpsilon {
		return int(nearest)
	}
	return int(math.Ceil(product))
}
