package game

import (
	"context"
	"math/rand"

	"github.com/samdwyer/crawlview/internal/entity"
	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/world"
)

// Floor is one generated level and everything remembered about it.
type Floor struct {
	Level    int
	Dungeon  *world.Dungeon
	Vis      *world.Visibility
	Entities entity.List
	Arrival  world.Point
}

// floorSeed derives a per-floor seed so each level is the same no matter
// in which order floors are visited.
func floorSeed(seed int64, level int) int64 {
	return seed + int64(level)*1_000_003
}

// buildFloor generates, populates and wraps one level.
func buildFloor(ctx context.Context, cfg Config, cat *gamedata.Catalog, level int) *Floor {
	rng := rand.New(rand.NewSource(floorSeed(cfg.Seed, level)))

	d, arrival := world.GenerateFloor(ctx, rng, cfg.GenParams(level), world.DefaultRetryPolicy)
	return &Floor{
		Level:    level,
		Dungeon:  d,
		Vis:      world.NewVisibility(d.Width, d.Height),
		Entities: entity.Populate(rng, d, level, cat),
		Arrival:  arrival,
	}
}

// stairs returns where a staircase of the given kind sits on this floor.
func (f *Floor) stairs(t world.Tile) (world.Point, bool) {
	return f.Dungeon.FindTile(t)
}
