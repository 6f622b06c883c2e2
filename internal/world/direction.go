package world

import (
	"math"
	"strings"
)

// Direction is a cardinal facing.
type Direction int

// Direction constants, clockwise from north.
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration.
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// ParseDirection accepts "N", "north", "up" and the like.
// Anything unrecognised falls back to North.
func ParseDirection(s string) Direction {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "e", "east", "right":
		return East
	case "s", "south", "down":
		return South
	case "w", "west", "left":
		return West
	default:
		return North
	}
}

// DirectionFromDelta maps a movement delta to the facing it implies.
// Horizontal movement wins over vertical; a zero delta yields ok=false.
func DirectionFromDelta(dx, dy int) (Direction, bool) {
	switch {
	case dx > 0:
		return East, true
	case dx < 0:
		return West, true
	case dy > 0:
		return South, true
	case dy < 0:
		return North, true
	default:
		return North, false
	}
}

// IsValid returns true if the direction is a valid cardinal direction.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// normalized maps invalid values onto North.
func (d Direction) normalized() Direction {
	if !d.IsValid() {
		return North
	}
	return d
}

// String returns the single-letter label of a direction.
func (d Direction) String() string {
	switch d.normalized() {
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return "N"
	}
}

// Name returns the full direction name.
func (d Direction) Name() string {
	switch d.normalized() {
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "north"
	}
}

// Vector returns the unit step for this facing with y growing downward.
func (d Direction) Vector() (dx, dy int) {
	switch d.normalized() {
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, -1
	}
}

// Left returns the direction 90 degrees counter-clockwise.
func (d Direction) Left() Direction {
	return (d.normalized() + 3) % 4
}

// Right returns the direction 90 degrees clockwise.
func (d Direction) Right() Direction {
	return (d.normalized() + 1) % 4
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d.normalized() + 2) % 4
}

// Angle returns the facing in radians: 0 is east, angles grow clockwise on screen.
func (d Direction) Angle() float64 {
	switch d.normalized() {
	case East:
		return 0
	case South:
		return math.Pi / 2
	case West:
		return math.Pi
	default:
		return -math.Pi / 2
	}
}

// Arrow returns the glyph used to mark this facing on maps.
func (d Direction) Arrow() rune {
	switch d.normalized() {
	case East:
		return '▶'
	case South:
		return '▼'
	case West:
		return '◀'
	default:
		return '▲'
	}
}
