// Package numeric holds the small clamping and rounding helpers shared by the
// generators and scenario transforms.
package numeric

import "math"

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// Round rounds half up (toward +Inf), which differs from math.Round for
// negative halves. All generated series are rounded this way so that
// identical inputs give identical integers across implementations.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundInt is Round converted to int.
func RoundInt(v float64) int {
	return int(Round(v))
}
