package utils

import "math"

// Round rounds v half away from zero to the given number of decimal places.
// Scores and confidences are reported rounded so downstream JSON stays
// stable across runs.
func Round(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
