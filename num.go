package prodex

import "math"

// Unit conversion factors.
const (
	kgPerPound = 0.45359237
	cmPerInch  = 2.54
)

// IsFloat reports whether n has a non-zero fractional part.
// NaN and infinities are not classified as floats.
func IsFloat(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n != math.Trunc(n)
}

// IsInt reports whether n is a whole number.
func IsInt(n float64) bool {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n == math.Trunc(n)
}

// PoundsToKg converts pounds to kilograms, rounded to 2 decimals.
func PoundsToKg(pounds float64) float64 {
	return round2(pounds * kgPerPound)
}

// InchesToCm converts inches to centimeters, rounded to 2 decimals.
func InchesToCm(inches float64) float64 {
	return round2(inches * cmPerInch)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
