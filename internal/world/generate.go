package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawlview/internal/telemetry"
)

// GenParams controls a single dungeon generation pass.
type GenParams struct {
	Width       int
	Height      int
	MaxRooms    int // Placement attempts, not a guaranteed count
	RoomMinSize int
	RoomMaxSize int
	Floor       int // 1 is the topmost floor
	MaxFloors   int // Deepest floor; it gets no down stairs
}

// DefaultGenParams returns the layout used by the game for the given floor.
func DefaultGenParams(floor, maxFloors int) GenParams {
	return GenParams{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		MaxRooms:    20,
		RoomMinSize: 4,
		RoomMaxSize: 10,
		Floor:       floor,
		MaxFloors:   maxFloors,
	}
}

// RetryPolicy bounds how hard GenerateFloor tries for a usable layout.
type RetryPolicy struct {
	MaxAttempts int
	MinRooms    int
}

// DefaultRetryPolicy retries up to ten times for at least three rooms.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 10, MinRooms: 3}

// Generate places non-overlapping rooms, chains each to its predecessor with an
// L-shaped corridor and drops the stairs. It never fails: a layout without rooms
// is returned as an all-wall grid and callers must check len(d.Rooms).
func Generate(ctx context.Context, rng *rand.Rand, p GenParams) *Dungeon {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d := NewDungeon(p.Width, p.Height)
	d.Floor = p.Floor

	minSize := max(1, p.RoomMinSize)
	maxSize := max(minSize, p.RoomMaxSize)

	for i := 0; i < p.MaxRooms; i++ {
		w := RandRange(rng, minSize, maxSize)
		h := RandRange(rng, minSize, maxSize)

		// Keep a one-tile wall border around the map
		if w > p.Width-2 || h > p.Height-2 {
			continue
		}
		x := RandRange(rng, 1, p.Width-w-1)
		y := RandRange(rng, 1, p.Height-h-1)
		room := NewRoom(x, y, w, h)

		if d.overlapsAny(room) {
			continue
		}

		d.carveRoom(room)
		if n := len(d.Rooms); n > 0 {
			d.carveCorridor(rng, d.Rooms[n-1], room)
		}
		d.Rooms = append(d.Rooms, room)
	}

	d.placeStairs(p)

	span.SetAttributes(
		attribute.Int("dungeon.width", p.Width),
		attribute.Int("dungeon.height", p.Height),
		attribute.Int("dungeon.floor", p.Floor),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d
}

// GenerateFloor runs Generate until the layout has at least policy.MinRooms rooms
// and every staircase the floor needs, or the attempts run out. Layouts with
// their stairs beat layouts without, then more rooms beat fewer. A lone 1x1
// room cannot hold two staircases, so an intermediate floor made only of such
// attempts keeps its down stairs and loses the up stairs. It also picks the
// arrival point: the up stairs, else the first room's center, else any walkable
// cell, else a freshly carved cell at the grid center.
func GenerateFloor(ctx context.Context, rng *rand.Rand, p GenParams, policy RetryPolicy) (*Dungeon, Point) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "floor.generate")
	defer span.End()

	attempts := max(1, policy.MaxAttempts)

	var best *Dungeon
	used := 0
	for used < attempts {
		used++
		d := Generate(ctx, rng, p)
		if best == nil || betterLayout(d, best, p) {
			best = d
		}
		if len(best.Rooms) >= policy.MinRooms && len(best.Rooms) > 0 && best.hasStairs(p) {
			break
		}
	}

	start, fallback := arrivalPoint(best)

	span.SetAttributes(
		attribute.Int("floor.level", p.Floor),
		attribute.Int("floor.attempts", used),
		attribute.Int("floor.room_count", len(best.Rooms)),
		attribute.Bool("floor.fallback_start", fallback),
		attribute.Bool("floor.stairs_complete", best.hasStairs(p)),
	)

	return best, start
}

func betterLayout(d, best *Dungeon, p GenParams) bool {
	if d.hasStairs(p) != best.hasStairs(p) {
		return d.hasStairs(p)
	}
	return len(d.Rooms) > len(best.Rooms)
}

// hasStairs reports whether every staircase the floor's place in the stack
// calls for was placed.
func (d *Dungeon) hasStairs(p GenParams) bool {
	if len(d.Rooms) == 0 {
		return false
	}
	if _, ok := d.FindTile(TileStairsUp); p.wantUp() && !ok {
		return false
	}
	if _, ok := d.FindTile(TileStairsDown); p.wantDown() && !ok {
		return false
	}
	return true
}

func (p GenParams) wantUp() bool   { return p.Floor > 1 }
func (p GenParams) wantDown() bool { return p.MaxFloors <= 0 || p.Floor < p.MaxFloors }

// arrivalPoint chooses where the player appears on a freshly generated floor.
// The up stairs win over the room center because a room holding both
// staircases moves the up stairs off the center.
func arrivalPoint(d *Dungeon) (Point, bool) {
	if up, ok := d.FindTile(TileStairsUp); ok {
		return up, false
	}
	if len(d.Rooms) > 0 {
		x, y := d.Rooms[0].Center()
		return Point{x, y}, false
	}
	if p, ok := d.FirstWalkable(); ok {
		return p, true
	}
	cx, cy := d.Width/2, d.Height/2
	d.SetTile(cx, cy, TileFloor)
	return Point{cx, cy}, true
}

// overlapsAny reports whether room intersects a previously accepted room.
func (d *Dungeon) overlapsAny(room Room) bool {
	for _, other := range d.Rooms {
		if room.Intersects(other) {
			return true
		}
	}
	return false
}

// placeStairs puts up stairs in the first room and down stairs in the last room,
// skipping whichever one the floor's position in the stack rules out.
func (d *Dungeon) placeStairs(p GenParams) {
	if len(d.Rooms) == 0 {
		return
	}
	first := d.Rooms[0]
	last := d.Rooms[len(d.Rooms)-1]

	wantUp := p.wantUp()
	wantDown := p.wantDown()

	if wantDown {
		x, y := last.Center()
		d.SetTile(x, y, TileStairsDown)
	}
	if wantUp {
		x, y := first.Center()
		if wantDown && d.GetTile(x, y) == TileStairsDown {
			// Single room holds both staircases.
			x, y = first.X1, first.Y1
		}
		// A 1x1 room has no second cell.
		if d.GetTile(x, y) != TileStairsDown {
			d.SetTile(x, y, TileStairsUp)
		}
	}
}
