package world

import (
	"math"
	"testing"
)

func TestFindPathStraightLine(t *testing.T) {
	d := corridor(10)
	path := FindPath(d, Point{1, 1}, Point{6, 1})

	if len(path) != 5 {
		t.Fatalf("path length = %d, want 5: %v", len(path), path)
	}
	if path[len(path)-1] != (Point{6, 1}) {
		t.Errorf("path should end at goal, got %v", path[len(path)-1])
	}
	for i, p := range path {
		if p != (Point{2 + i, 1}) {
			t.Errorf("step %d = %v", i, p)
		}
	}
}

func TestFindPathUsesDiagonals(t *testing.T) {
	d := openRoom(10, 10)
	path := FindPath(d, Point{1, 1}, Point{5, 5})

	if len(path) != 4 {
		t.Fatalf("diagonal path length = %d, want 4: %v", len(path), path)
	}
}

func TestFindPathStepsAreAdjacentAndWalkable(t *testing.T) {
	d := openRoom(12, 8)
	for y := 1; y < 6; y++ {
		d.SetTile(6, y, TileWall)
	}

	prev := Point{2, 2}
	path := FindPath(d, prev, Point{9, 2})
	if path == nil {
		t.Fatal("expected a path around the wall")
	}
	for _, p := range path {
		if !d.IsPassable(p.X, p.Y) {
			t.Errorf("path crosses unwalkable %v", p)
		}
		if math.Abs(float64(p.X-prev.X)) > 1 || math.Abs(float64(p.Y-prev.Y)) > 1 {
			t.Errorf("non-adjacent step %v -> %v", prev, p)
		}
		prev = p
	}
}

func TestFindPathUnreachable(t *testing.T) {
	d := corridor(10)
	d.SetTile(5, 1, TileWall)

	if path := FindPath(d, Point{1, 1}, Point{8, 1}); path != nil {
		t.Errorf("expected nil path, got %v", path)
	}
	if path := FindPath(d, Point{1, 1}, Point{1, 1}); path != nil {
		t.Errorf("start == goal should yield nil, got %v", path)
	}
	if path := FindPath(d, Point{1, 1}, Point{0, 0}); path != nil {
		t.Errorf("wall goal should yield nil, got %v", path)
	}
}

func TestReachable(t *testing.T) {
	d := corridor(10)
	d.SetTile(5, 1, TileWall)

	reach := Reachable(d, Point{1, 1})
	if reach.Size() != 4 {
		t.Errorf("reachable size = %d, want 4", reach.Size())
	}
	if reach.Has(Point{6, 1}) {
		t.Error("cell behind the wall should not be reachable")
	}
	if Reachable(d, Point{0, 0}).Size() != 0 {
		t.Error("starting in a wall reaches nothing")
	}
}

func TestDirectionTurns(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Left().Right() != dir {
			t.Errorf("%v: left then right should return", dir)
		}
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v: opposite twice should return", dir)
		}
		dx, dy := dir.Vector()
		back, ok := DirectionFromDelta(dx, dy)
		if !ok || back != dir {
			t.Errorf("DirectionFromDelta(%d,%d) = %v, want %v", dx, dy, back, dir)
		}
	}
	if North.Right() != East || North.Left() != West {
		t.Error("turns from north are wrong")
	}
	if Direction(42).String() != "N" || !Direction(42).Left().IsValid() {
		t.Error("invalid facings should normalize to north")
	}
	if ParseDirection("west") != West || ParseDirection("?") != North {
		t.Error("ParseDirection mismatch")
	}
}
