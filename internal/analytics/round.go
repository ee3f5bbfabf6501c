package analytics

import "math"

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	p := math.Pow10(decimals)
	return math.Round(v*p) / p
}

func roundPtr(v float64, decimals int) *float64 {
	r := roundTo(v, decimals)
	return &r
}
