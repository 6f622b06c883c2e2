package entity

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/world"
)

// MaxItemsPerRoom caps item rolls per room.
const MaxItemsPerRoom = 2

// MaxMonstersPerRoom returns the monster cap for a floor: deeper floors are busier.
func MaxMonstersPerRoom(floor int) int {
	return 2 + max(0, floor)/2
}

// Populate scatters monsters and items over every room except the first, which
// is where the player arrives. Nothing is placed on stairs or on a cell that
// already holds an entity. Rolls that land on such a cell are skipped, not retried.
func Populate(rng *rand.Rand, d *world.Dungeon, floor int, cat *gamedata.Catalog) List {
	var list List
	if cat == nil || len(d.Rooms) < 2 {
		return list
	}

	occupied := mapset.New[world.Point]()
	free := func(p world.Point) bool {
		t := d.GetTile(p.X, p.Y)
		return t.IsPassable() && !t.IsStairs() && !occupied.Has(p)
	}

	for roomIndex := 1; roomIndex < len(d.Rooms); roomIndex++ {
		monsters := rng.Intn(MaxMonstersPerRoom(floor) + 1)
		for n := 0; n < monsters; n++ {
			x, y := d.RandomPointInRoom(rng, roomIndex)
			p := world.Point{X: x, Y: y}
			if !free(p) {
				continue
			}
			def := cat.Monsters.SpawnRandom(rng, floor)
			if def == nil {
				break
			}
			occupied.Put(p)
			list = append(list, NewMonster(def, p.X, p.Y, roomIndex))
		}

		items := rng.Intn(MaxItemsPerRoom + 1)
		for n := 0; n < items; n++ {
			x, y := d.RandomPointInRoom(rng, roomIndex)
			p := world.Point{X: x, Y: y}
			if !free(p) {
				continue
			}
			def := cat.Items.SpawnRandom(rng, floor)
			if def == nil {
				break
			}
			occupied.Put(p)
			list = append(list, NewItem(def, p.X, p.Y, roomIndex))
		}
	}

	return list
}
