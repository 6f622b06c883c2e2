package world

import "github.com/zyedidia/generic/heap"

const (
	straightCost = 1.0
	diagonalCost = 1.4
)

var pathNeighbors = [8]Point{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

type pathNode struct {
	p Point
	f float64
	n int // insertion order, keeps ties deterministic
}

// FindPath returns the steps from start to goal over walkable tiles, excluding
// start and including goal. Moves may be diagonal. An unreachable goal or
// start == goal yields nil.
func FindPath(d *Dungeon, start, goal Point) []Point {
	if start == goal || !d.IsPassable(goal.X, goal.Y) {
		return nil
	}

	open := heap.New(func(a, b pathNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.n < b.n
	})
	seq := 0
	open.Push(pathNode{p: start})

	cameFrom := make(map[Point]Point)
	gScore := map[Point]float64{start: 0}
	closed := make(map[Point]bool)

	for open.Size() > 0 {
		node, _ := open.Pop()
		current := node.p
		if current == goal {
			return rebuildPath(cameFrom, start, goal)
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, off := range pathNeighbors {
			next := Point{current.X + off.X, current.Y + off.Y}
			if !d.IsPassable(next.X, next.Y) || closed[next] {
				continue
			}
			cost := straightCost
			if off.X != 0 && off.Y != 0 {
				cost = diagonalCost
			}
			tentative := gScore[current] + cost
			if g, seen := gScore[next]; seen && tentative >= g {
				continue
			}
			cameFrom[next] = current
			gScore[next] = tentative
			seq++
			open.Push(pathNode{p: next, f: tentative + manhattan(next, goal), n: seq})
		}
	}

	return nil
}

func rebuildPath(cameFrom map[Point]Point, start, goal Point) []Point {
	var path []Point
	for p := goal; p != start; p = cameFrom[p] {
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func manhattan(a, b Point) float64 {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return float64(dx + dy)
}
