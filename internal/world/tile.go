// Package world provides dungeon generation, map storage and visibility.
package world

import "github.com/gdamore/tcell/v2"

// Tile represents a single map tile.
type Tile uint8

const (
	// TileWall represents an impassable, opaque wall tile.
	TileWall Tile = iota
	// TileFloor represents a passable floor tile.
	TileFloor
	// TileWater is shallow water: walkable and see-through.
	TileWater
	// TileTree blocks both movement and sight.
	TileTree
	// TileGrass is open ground.
	TileGrass
	// TileStairsDown leads to the next floor.
	TileStairsDown
	// TileStairsUp leads to the previous floor.
	TileStairsUp
)

type tileInfo struct {
	name        string
	glyph       rune
	walkable    bool
	transparent bool
	light       tcell.Color // lit (currently visible)
	dark        tcell.Color // remembered (explored, not visible)
}

var tileTable = [...]tileInfo{
	TileWall:       {"wall", '#', false, false, rgb(130, 110, 50), rgb(0, 0, 100)},
	TileFloor:      {"floor", '.', true, true, rgb(200, 180, 50), rgb(50, 50, 150)},
	TileWater:      {"water", '~', true, true, rgb(30, 144, 255), rgb(0, 50, 100)},
	TileTree:       {"tree", 'T', false, false, rgb(34, 100, 34), rgb(0, 40, 0)},
	TileGrass:      {"grass", '"', true, true, rgb(34, 139, 34), rgb(0, 50, 0)},
	TileStairsDown: {"stairs down", '>', true, true, rgb(255, 255, 255), rgb(100, 100, 100)},
	TileStairsUp:   {"stairs up", '<', true, true, rgb(255, 255, 255), rgb(100, 100, 100)},
}

func rgb(r, g, b int32) tcell.Color {
	return tcell.NewRGBColor(r, g, b)
}

func (t Tile) info() tileInfo {
	if int(t) >= len(tileTable) {
		return tileTable[TileWall]
	}
	return tileTable[t]
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.info().walkable
}

// IsTransparent returns true if light passes through the tile.
func (t Tile) IsTransparent() bool {
	return t.info().transparent
}

// IsStairs reports whether the tile is either staircase.
func (t Tile) IsStairs() bool {
	return t == TileStairsDown || t == TileStairsUp
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return t.info().glyph
}

// LightColor is the foreground used while the tile is in view.
func (t Tile) LightColor() tcell.Color {
	return t.info().light
}

// DarkColor is the foreground used for explored tiles out of view.
func (t Tile) DarkColor() tcell.Color {
	return t.info().dark
}

// String returns the tile name.
func (t Tile) String() string {
	return t.info().name
}
