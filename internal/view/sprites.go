package view

import (
	"math"
	"sort"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/gamedata"
)

// Placement decides where a sprite sits vertically in the 3D view.
type Placement int

const (
	// PlaceGround rests the sprite's feet on the band's floor line.
	PlaceGround Placement = iota
	// PlaceFlying lifts the sprite above the horizon.
	PlaceFlying
	// PlaceFloor draws a small item or corpse symbol near the frame bottom.
	PlaceFloor
)

// Sprite is a read-only snapshot of something to draw.
type Sprite struct {
	X, Y      int
	Glyph     rune
	Color     tcell.Color
	Placement Placement
	Corpse    bool
}

// SpriteBook supplies the ASCII pattern for a glyph at a scale level
// (5 nearest, 1 smallest).
type SpriteBook interface {
	Pattern(glyph rune, scale int) []string
}

type glyphBook struct{}

func (glyphBook) Pattern(glyph rune, _ int) []string {
	return []string{string(glyph)}
}

// ScaleForDepth maps a depth band to the sprite scale level drawn in it.
func ScaleForDepth(depth int) int {
	switch {
	case depth <= 1:
		return gamedata.ScaleNear
	case depth <= 2:
		return gamedata.ScaleMid
	case depth <= 3:
		return gamedata.ScaleFar
	default:
		return gamedata.ScaleDistant
	}
}

// projected is a sprite placed in observer space.
type projected struct {
	Sprite
	depth  int
	side   int
	spread float64
}

type spriteGroup struct {
	depth, side int
	floor, main []projected
}

// drawSprites projects, groups and draws sprites far to near. Sprites
// behind the observer, beyond MaxDepth, inside a wall or hidden behind one
// are skipped.
func (p *Projector) drawSprites(f *Frame, grid Occupancy, obs Observer, sprites []Sprite) {
	fx, fy := obs.Facing.Vector()
	rx, ry := obs.Facing.Right().Vector()

	var groups []*spriteGroup
	index := make(map[[2]int]*spriteGroup)

	for _, s := range sprites {
		relX, relY := s.X-obs.X, s.Y-obs.Y
		forward := relX*fx + relY*fy
		side := relX*rx + relY*ry
		if forward <= 0 || forward > MaxDepth {
			continue
		}
		if p.occluded(grid, obs, forward, side) {
			continue
		}

		key := [2]int{forward, side}
		g, ok := index[key]
		if !ok {
			g = &spriteGroup{depth: forward, side: side}
			index[key] = g
			groups = append(groups, g)
		}
		ps := projected{Sprite: s, depth: forward, side: side}
		if s.Placement == PlaceFloor {
			g.floor = append(g.floor, ps)
		} else {
			g.main = append(g.main, ps)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].depth != groups[j].depth {
			return groups[i].depth > groups[j].depth
		}
		return groups[i].side < groups[j].side
	})

	for _, g := range groups {
		n := len(g.floor)
		for i, s := range g.floor {
			if n > 1 {
				s.spread = (float64(i) - float64(n-1)/2) * 0.2
			}
			p.drawSprite(f, s)
		}
		for _, s := range g.main {
			p.drawSprite(f, s)
		}
	}
}

// occluded reports whether a wall stands on the sprite's cell or on the
// straight line between it and the observer.
func (p *Projector) occluded(grid Occupancy, obs Observer, forward, side int) bool {
	fx, fy := obs.Facing.Vector()
	rx, ry := obs.Facing.Right().Vector()

	for k := 1; k <= forward; k++ {
		lateral := int(math.Round(float64(side*k) / float64(forward)))
		x := obs.X + fx*k + rx*lateral
		y := obs.Y + fy*k + ry*lateral
		if grid.IsWall(x, y) {
			return true
		}
	}
	return false
}

func (p *Projector) drawSprite(f *Frame, s projected) {
	vp := Band(s.depth)
	scale := ScaleForDepth(s.depth)

	var pattern []string
	if s.Placement == PlaceFloor {
		pattern = floorPattern(s.Sprite, scale)
	} else {
		pattern = p.book.Pattern(s.Glyph, scale)
	}
	if len(pattern) == 0 {
		return
	}

	midY := p.height / 2
	midX := p.width / 2
	rows := len(pattern)

	viewWidth := (vp.R - vp.L) * float64(p.width)
	sideOffset := int(math.Floor(float64(s.side) * viewWidth * 0.4))
	spreadOffset := int(math.Floor(s.spread * viewWidth * 0.5))
	centerX := midX + sideOffset + spreadOffset

	startY := midY - rows/2
	switch s.Placement {
	case PlaceFlying:
		startY -= int(math.Floor(float64(rows) * 0.6))
	case PlaceFloor:
		startY += int(math.Floor(float64(p.height) * 0.35))
	default:
		// The bottom row sits on the last row above the band's floor line.
		startY = int(math.Floor(vp.B*float64(p.height))) - rows
	}
	startX := centerX - utf8.RuneCountInString(pattern[0])/2

	color := dim(s.Color, math.Max(0.4, 1-float64(s.depth)*0.2))

	for py, row := range pattern {
		px := 0
		for _, r := range row {
			if r != ' ' {
				f.Set(startX+px, startY+py, Cell{Glyph: r, Color: color})
			}
			px++
		}
	}
}

// floorPattern is the small symbol used for items and corpses.
func floorPattern(s Sprite, scale int) []string {
	if s.Corpse {
		switch {
		case scale >= 4:
			return []string{"  ___  ", ` /%%%\ `, ` \___/ `}
		case scale >= 3:
			return []string{" _%_ ", ` \%/ `}
		default:
			return []string{"%"}
		}
	}

	g := string(s.Glyph)
	switch {
	case scale >= 4:
		return []string{" [" + g + "] "}
	case scale >= 3:
		return []string{"[" + g + "]"}
	default:
		return []string{g}
	}
}
