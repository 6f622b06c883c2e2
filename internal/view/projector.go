package view

import (
	"math"

	"github.com/samdwyer/crawlview/internal/world"
)

// Default first-person view size.
const (
	DefaultViewWidth  = 50
	DefaultViewHeight = 18
)

// Occupancy is the only map query the projector needs.
// Positions off the map must report true.
type Occupancy interface {
	IsWall(x, y int) bool
}

// Observer is the viewer's cell and facing.
type Observer struct {
	X, Y   int
	Facing world.Direction
}

// Projector draws the first-person view as nested depth bands.
// It holds no per-frame state and is safe to reuse.
type Projector struct {
	width, height int
	book          SpriteBook
}

// NewProjector creates a projector producing width x height frames.
// A nil book draws every sprite as its bare glyph.
func NewProjector(width, height int, book SpriteBook) *Projector {
	if book == nil {
		book = glyphBook{}
	}
	return &Projector{width: max(1, width), height: max(1, height), book: book}
}

// Size returns the frame dimensions.
func (p *Projector) Size() (int, int) {
	return p.width, p.height
}

// Render draws the background, the walls from MaxDepth in to depth 1, and
// then the sprites, far to near. The result depends only on the arguments.
func (p *Projector) Render(grid Occupancy, obs Observer, sprites []Sprite) *Frame {
	f := NewFrame(p.width, p.height)
	obs.Facing = normalizeFacing(obs.Facing)

	p.drawBackground(f)
	for depth := MaxDepth; depth >= 1; depth-- {
		p.drawDepth(f, grid, obs, depth)
	}
	p.drawSprites(f, grid, obs, sprites)

	return f
}

func normalizeFacing(d world.Direction) world.Direction {
	if !d.IsValid() {
		return world.North
	}
	return d
}

// drawBackground paints the ceiling and floor gradients. Both get brighter
// and denser away from the horizon.
func (p *Projector) drawBackground(f *Frame) {
	midY := float64(p.height) / 2

	for y := 0; y < p.height; y++ {
		dist := math.Abs(float64(y)-midY) / midY

		glyph := ' '
		switch {
		case dist > 0.6:
			glyph = '░'
		case dist > 0.3:
			glyph = '·'
		}

		var c Cell
		if float64(y) < midY {
			b := math.Floor(40 + dist*30)
			c = Cell{Glyph: glyph, Color: rgb(b-10, b-5, b)}
		} else {
			b := math.Floor(50 + dist*40)
			c = Cell{Glyph: glyph, Color: rgb(b, b-15, b-25)}
		}
		for x := 0; x < p.width; x++ {
			f.Set(x, y, c)
		}
	}
}

// drawDepth draws the walls one band deep: the cells left and right of the
// tile straight ahead become side walls, the tile itself a front wall.
func (p *Projector) drawDepth(f *Frame, grid Occupancy, obs Observer, depth int) {
	fx, fy := obs.Facing.Vector()
	lx, ly := obs.Facing.Left().Vector()
	rx, ry := obs.Facing.Right().Vector()

	cx := obs.X + fx*depth
	cy := obs.Y + fy*depth

	near := Band(depth-1).cells(p.width, p.height)
	far := Band(depth).cells(p.width, p.height)

	if grid.IsWall(cx+lx, cy+ly) {
		p.drawSideWall(f, near, far, depth, false)
	}
	if grid.IsWall(cx+rx, cy+ry) {
		p.drawSideWall(f, near, far, depth, true)
	}
	if grid.IsWall(cx, cy) {
		p.drawFrontWall(f, far, depth)
	}
}

// drawFrontWall fills a band with a bordered face and two decorative stripes.
func (p *Projector) drawFrontWall(f *Frame, r rect, depth int) {
	bright := math.Max(80, float64(170-depth*25))
	fill := '▒'
	switch {
	case depth <= 1:
		fill = '█'
	case depth <= 2:
		fill = '▓'
	}

	face := rgb(bright, bright, bright+15)
	edge := rgb(bright+30, bright+30, bright+45)
	stripe := rgb(180, 160, 50)

	for y := r.top; y < r.bottom; y++ {
		for x := r.left; x < r.right; x++ {
			isTop := y == r.top
			isBottom := y == r.bottom-1

			c := Cell{Glyph: fill, Color: face}
			switch {
			case isTop || isBottom:
				c = Cell{Glyph: '═', Color: edge}
			case x == r.left || x == r.right-1:
				c = Cell{Glyph: '║', Color: edge}
			}
			if !isTop && !isBottom && (y == r.top+2 || y == r.bottom-3) {
				c = Cell{Glyph: '─', Color: stripe}
			}
			f.Set(x, y, c)
		}
	}
}

// drawSideWall fills the trapezoid between the near band's edge and the far
// band's edge. Columns shrink toward the far band along two diagonals; the
// inner (corridor-side) columns are brighter than the outer ones.
func (p *Projector) drawSideWall(f *Frame, near, far rect, depth int, right bool) {
	bright := math.Max(45, float64(95-depth*15))
	fill := '░'
	if depth <= 2 {
		fill = '▒'
	}

	outer, inner := near.left, far.left
	if right {
		outer, inner = near.right-1, far.right-1
	}
	columns := abs(inner - outer)

	stripeTop := far.top + 2
	stripeBottom := far.bottom - 3
	edge := rgb(bright+45, bright+40, bright+50)
	topEdge, bottomEdge := '╲', '╱'
	if right {
		topEdge, bottomEdge = '╱', '╲'
	}

	for i := 0; i < columns; i++ {
		x := outer + i
		if right {
			x = outer - i
		}
		ratio := float64(i) / float64(columns)

		top := near.top + int(math.Floor(float64(far.top-near.top)*ratio))
		bottom := near.bottom - int(math.Floor(float64(near.bottom-far.bottom)*ratio))

		local := bright - 25 + ratio*35
		body := rgb(local-10, local-15, local)

		for y := top; y < bottom; y++ {
			c := Cell{Glyph: fill, Color: body}
			switch {
			case y == stripeTop || y == stripeBottom:
				c = Cell{Glyph: '─', Color: rgb(120+ratio*40, 105+ratio*35, 35)}
			case y == top && top > near.top:
				c = Cell{Glyph: topEdge, Color: edge}
			case y == bottom-1 && bottom < near.bottom:
				c = Cell{Glyph: bottomEdge, Color: edge}
			}
			f.Set(x, y, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
