package entity

import "github.com/samdwyer/crawlview/internal/world"

// PlayerGlyph marks the player on the 2D map.
const PlayerGlyph = '@'

// Player is the observer: a grid position and a cardinal facing.
type Player struct {
	X, Y   int
	Facing world.Direction
}

// NewPlayer creates a player at the given position facing north.
func NewPlayer(x, y int) *Player {
	return &Player{X: x, Y: y, Facing: world.North}
}

// Move updates the player position by the given delta.
func (p *Player) Move(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// MoveTo places the player on a cell.
func (p *Player) MoveTo(pt world.Point) {
	p.X, p.Y = pt.X, pt.Y
}

// Position returns the current x, y coordinates.
func (p *Player) Position() (int, int) {
	return p.X, p.Y
}

// Point returns the current cell.
func (p *Player) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// TurnLeft rotates the facing counter-clockwise.
func (p *Player) TurnLeft() { p.Facing = p.Facing.Left() }

// TurnRight rotates the facing clockwise.
func (p *Player) TurnRight() { p.Facing = p.Facing.Right() }
