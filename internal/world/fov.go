package world

import "math"

// DefaultFOVRadius is the sight radius used by the game.
const DefaultFOVRadius = 10

// fovRays is the number of rays cast per computation, one per degree.
const fovRays = 360

// Transparency is the read-only view of a map needed to compute sight.
type Transparency interface {
	Size() (width, height int)
	IsTransparent(x, y int) bool
}

// Visibility holds the currently visible cells and every cell ever seen.
type Visibility struct {
	width, height int
	visible       [][]bool // indexed [x][y]
	explored      [][]bool // indexed [x][y]
}

// NewVisibility creates an empty mask for a width x height map.
func NewVisibility(width, height int) *Visibility {
	v := &Visibility{
		width:    max(0, width),
		height:   max(0, height),
		visible:  make([][]bool, max(0, width)),
		explored: make([][]bool, max(0, width)),
	}
	for x := range v.visible {
		v.visible[x] = make([]bool, v.height)
		v.explored[x] = make([]bool, v.height)
	}
	return v
}

// Size returns the mask dimensions.
func (v *Visibility) Size() (int, int) {
	return v.width, v.height
}

func (v *Visibility) inBounds(x, y int) bool {
	return v != nil && x >= 0 && x < v.width && y >= 0 && y < v.height
}

// Visible reports whether (x, y) was seen by the last computation.
func (v *Visibility) Visible(x, y int) bool {
	return v.inBounds(x, y) && v.visible[x][y]
}

// Explored reports whether (x, y) has ever been seen.
func (v *Visibility) Explored(x, y int) bool {
	return v.inBounds(x, y) && v.explored[x][y]
}

// MarkExplored flags a cell as remembered, e.g. when restoring a saved floor.
func (v *Visibility) MarkExplored(x, y int) {
	if v.inBounds(x, y) {
		v.explored[x][y] = true
	}
}

// VisibleCount returns how many cells are currently in view.
func (v *Visibility) VisibleCount() int {
	n := 0
	for x := range v.visible {
		for y := range v.visible[x] {
			if v.visible[x][y] {
				n++
			}
		}
	}
	return n
}

// ExploredCount returns how many cells have been seen at least once.
func (v *Visibility) ExploredCount() int {
	n := 0
	for x := range v.explored {
		for y := range v.explored[x] {
			if v.explored[x][y] {
				n++
			}
		}
	}
	return n
}

// Reset clears the visible set. Explored cells are kept.
func (v *Visibility) Reset() {
	for x := range v.visible {
		clear(v.visible[x])
	}
}

func (v *Visibility) mark(x, y int) {
	v.visible[x][y] = true
	v.explored[x][y] = true
}

// Compute recalculates the visible set from (cx, cy) by casting one ray per
// degree. Each ray advances one cell-width per step for radius steps, marks the
// tile it lands in, and stops after the first opaque tile, which is itself seen.
// Rays stop at the grid edge. The observer's own cell is always visible.
func (v *Visibility) Compute(grid Transparency, cx, cy, radius int) {
	v.Reset()

	if !v.inBounds(cx, cy) {
		return
	}
	v.mark(cx, cy)

	gw, gh := grid.Size()
	for angle := 0; angle < fovRays; angle++ {
		rad := float64(angle) * math.Pi / 180
		dx := math.Cos(rad)
		dy := math.Sin(rad)

		x := float64(cx) + 0.5
		y := float64(cy) + 0.5

		for i := 0; i < radius; i++ {
			x += dx
			y += dy

			tx := int(math.Floor(x))
			ty := int(math.Floor(y))
			if tx < 0 || ty < 0 || tx >= gw || ty >= gh || !v.inBounds(tx, ty) {
				break
			}

			v.mark(tx, ty)

			if !grid.IsTransparent(tx, ty) {
				break
			}
		}
	}
}
