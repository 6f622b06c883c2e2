package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/world"
)

// Rect is a window onto the map in map coordinates.
type Rect struct {
	X, Y, W, H int
}

// CenteredWindow returns a w x h window centered on (px, py), shifted to stay
// inside a mapW x mapH map when the map is large enough.
func CenteredWindow(mapW, mapH, w, h, px, py int) Rect {
	return Rect{
		X: scroll(px, w, mapW),
		Y: scroll(py, h, mapH),
		W: w,
		H: h,
	}
}

func scroll(center, view, total int) int {
	if total <= view {
		return 0
	}
	return max(0, min(center-view/2, total-view))
}

// PlayerColor is the color of the '@' on the top-down map.
var PlayerColor = tcell.NewRGBColor(255, 255, 255)

// MapRenderer draws the top-down view.
type MapRenderer struct {
	// PlayerGlyph marks the observer; '@' when zero.
	PlayerGlyph rune
}

// Render draws the window of the map. Visible cells show the player, then a
// creature, then an item or corpse, then the lit tile. Explored cells show the
// remembered tile; everything else is blank.
func (m MapRenderer) Render(d *world.Dungeon, vis *world.Visibility, player Observer, sprites []Sprite, window Rect) *Frame {
	f := NewFrame(window.W, window.H)
	f.Fill(Cell{Glyph: ' ', Color: tcell.ColorDefault})

	playerGlyph := m.PlayerGlyph
	if playerGlyph == 0 {
		playerGlyph = '@'
	}

	creatures := make(map[world.Point]Sprite)
	floor := make(map[world.Point]Sprite)
	for _, s := range sprites {
		p := world.Point{X: s.X, Y: s.Y}
		if s.Placement == PlaceFloor {
			floor[p] = s
		} else {
			creatures[p] = s
		}
	}

	for fy := 0; fy < window.H; fy++ {
		for fx := 0; fx < window.W; fx++ {
			x, y := window.X+fx, window.Y+fy
			if !d.InBounds(x, y) {
				continue
			}
			tile := d.GetTile(x, y)
			p := world.Point{X: x, Y: y}

			switch {
			case vis.Visible(x, y):
				c := Cell{Glyph: tile.Rune(), Color: tile.LightColor()}
				if s, ok := floor[p]; ok {
					c = Cell{Glyph: s.Glyph, Color: s.Color}
				}
				if s, ok := creatures[p]; ok {
					c = Cell{Glyph: s.Glyph, Color: s.Color}
				}
				if x == player.X && y == player.Y {
					c = Cell{Glyph: playerGlyph, Color: PlayerColor}
				}
				f.Set(fx, fy, c)
			case vis.Explored(x, y):
				f.Set(fx, fy, Cell{Glyph: tile.Rune(), Color: tile.DarkColor()})
			}
		}
	}

	return f
}
