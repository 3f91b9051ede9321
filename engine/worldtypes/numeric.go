package worldtypes

import "golang.org/x/exp/constraints"

// Clamp restricts v to [lo, hi]. Used for market price bands and
// inventory caps.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundHalfUp rounds a non-negative float to the nearest integer,
// breaking exact .5 ties upward. Spec.md requires half-up rounding at
// several boundaries (stockpile gather gains, building HP multipliers).
func RoundHalfUp(v float64) int {
	return int(v + 0.5)
}
