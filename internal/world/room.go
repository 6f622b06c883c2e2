package world

// Room represents a rectangular room in the dungeon.
// X2 and Y2 are exclusive.
type Room struct {
	X1, Y1 int // Top-left corner
	X2, Y2 int // One past the bottom-right corner
}

// NewRoom creates a room from an origin and a size.
func NewRoom(x, y, width, height int) Room {
	return Room{X1: x, Y1: y, X2: x + width, Y2: y + height}
}

// Width returns the room width.
func (r Room) Width() int { return r.X2 - r.X1 }

// Height returns the room height.
func (r Room) Height() int { return r.Y2 - r.Y1 }

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return Midpoint(r.X1, r.X2), Midpoint(r.Y1, r.Y2)
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X1 && x < r.X2 && y >= r.Y1 && y < r.Y2
}

// Intersects returns true if this room overlaps or touches another room.
// Edges are inclusive so accepted rooms always keep a wall between them.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 &&
		r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 &&
		r.Y2 >= other.Y1
}
