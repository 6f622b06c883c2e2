package world

import "math/rand"

const (
	// Default dungeon dimensions
	DefaultWidth  = 60
	DefaultHeight = 30
)

// Dungeon represents one floor of the game map.
// Tiles are stored row-major; all accessors take (x, y).
type Dungeon struct {
	Width  int
	Height int
	Floor  int
	Tiles  [][]Tile
	Rooms  []Room
}

// NewDungeon creates a new dungeon filled with walls.
func NewDungeon(width, height int) *Dungeon {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = TileWall
		}
	}

	return &Dungeon{
		Width:  width,
		Height: height,
		Tiles:  tiles,
		Rooms:  make([]Room, 0),
	}
}

// Size returns the grid dimensions.
func (d *Dungeon) Size() (int, int) {
	return d.Width, d.Height
}

// InBounds reports whether (x, y) lies on the grid.
func (d *Dungeon) InBounds(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// GetTile returns the tile at the given position.
// Positions off the grid read as walls.
func (d *Dungeon) GetTile(x, y int) Tile {
	if !d.InBounds(x, y) {
		return TileWall
	}
	return d.Tiles[y][x]
}

// SetTile stamps a tile into the grid. Out-of-bounds writes are ignored.
func (d *Dungeon) SetTile(x, y int, t Tile) {
	if !d.InBounds(x, y) {
		return
	}
	d.Tiles[y][x] = t
}

// IsPassable returns true if the given position can be walked on.
func (d *Dungeon) IsPassable(x, y int) bool {
	return d.GetTile(x, y).IsPassable()
}

// IsTransparent returns true if sight passes through the given position.
func (d *Dungeon) IsTransparent(x, y int) bool {
	return d.GetTile(x, y).IsTransparent()
}

// IsWall reports whether the 3D view should draw a wall face at (x, y).
// Every non-walkable tile, including the area off the map, is a wall.
func (d *Dungeon) IsWall(x, y int) bool {
	return !d.IsPassable(x, y)
}

// RandomPointInRoom returns a random passable point within the specified room.
func (d *Dungeon) RandomPointInRoom(rng *rand.Rand, roomIndex int) (int, int) {
	if roomIndex < 0 || roomIndex >= len(d.Rooms) {
		return -1, -1
	}
	room := d.Rooms[roomIndex]

	// Try random points until we find a passable one (max 100 attempts)
	for i := 0; i < 100; i++ {
		x := RandRange(rng, room.X1, room.X2-1)
		y := RandRange(rng, room.Y1, room.Y2-1)
		if d.IsPassable(x, y) {
			return x, y
		}
	}

	// Fallback to room center
	return room.Center()
}

// FindTile returns the first position holding the given tile, scanning row by row.
func (d *Dungeon) FindTile(t Tile) (Point, bool) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if d.Tiles[y][x] == t {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// FirstWalkable scans column by column inside the border for any walkable cell.
func (d *Dungeon) FirstWalkable() (Point, bool) {
	for x := 1; x < d.Width-1; x++ {
		for y := 1; y < d.Height-1; y++ {
			if d.Tiles[y][x].IsPassable() {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// carveRoom sets all tiles within the room to floor.
func (d *Dungeon) carveRoom(room Room) {
	for y := room.Y1; y < room.Y2; y++ {
		for x := room.X1; x < room.X2; x++ {
			d.SetTile(x, y, TileFloor)
		}
	}
}

// carveCorridor creates an L-shaped corridor between two rooms.
func (d *Dungeon) carveCorridor(rng *rand.Rand, room1, room2 Room) {
	x1, y1 := room1.Center()
	x2, y2 := room2.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if rng.Intn(2) == 0 {
		d.carveHorizontalTunnel(x1, x2, y1)
		d.carveVerticalTunnel(y1, y2, x2)
	} else {
		d.carveVerticalTunnel(y1, y2, x1)
		d.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (d *Dungeon) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		d.SetTile(x, y, TileFloor)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (d *Dungeon) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		d.SetTile(x, y, TileFloor)
	}
}
