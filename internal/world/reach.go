package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every walkable cell connected to start through
// 4-directional steps. An unwalkable start yields an empty set.
func Reachable(d *Dungeon, start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !d.IsPassable(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range AllDirections() {
			dx, dy := dir.Vector()
			n := Point{current.X + dx, current.Y + dy}
			if d.IsPassable(n.X, n.Y) && !visited.Has(n) {
				visited.Put(n)
				queue = append(queue, n)
			}
		}
	}

	return visited
}

// RoomsConnected reports whether every room center can reach the first one.
func RoomsConnected(d *Dungeon) bool {
	if len(d.Rooms) == 0 {
		return true
	}
	x, y := d.Rooms[0].Center()
	reach := Reachable(d, Point{x, y})
	for _, room := range d.Rooms[1:] {
		cx, cy := room.Center()
		if !reach.Has(Point{cx, cy}) {
			return false
		}
	}
	return true
}
