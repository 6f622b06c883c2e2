package world

import "math/rand"

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// RandRange returns a random integer in [lo, hi]. If hi < lo it returns lo.
func RandRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Midpoint returns the integer midpoint of a and b, rounded toward negative infinity.
func Midpoint(a, b int) int {
	s := a + b
	if s < 0 && s%2 != 0 {
		return s/2 - 1
	}
	return s / 2
}
