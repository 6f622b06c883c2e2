package view

import (
	"fmt"
	"math"
)

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CompassLabel returns the nearest of eight compass points for an angle in
// radians, where 0 is east and angles grow clockwise with y pointing down.
func CompassLabel(angle float64) string {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return compassPoints[0]
	}
	n := math.Mod(angle+math.Pi/2, 2*math.Pi)
	if n < 0 {
		n += 2 * math.Pi
	}
	i := int(math.Round(n/(math.Pi/4))) % len(compassPoints)
	return compassPoints[i]
}

// CompassRose renders the three-line rose with the current heading.
func CompassRose(angle float64) string {
	return fmt.Sprintf("    N\n  W + E  [%s]\n    S", CompassLabel(angle))
}
