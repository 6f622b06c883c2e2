package game

import (
	"github.com/samdwyer/crawlview/internal/entity"
	"github.com/samdwyer/crawlview/internal/view"
)

// SpriteFor snapshots an entity for the renderers. Placement follows the
// entity's kind and its flying flag.
func SpriteFor(e *entity.Entity) view.Sprite {
	placement := view.PlaceGround
	switch {
	case e.OnFloor():
		placement = view.PlaceFloor
	case e.Flying:
		placement = view.PlaceFlying
	}
	return view.Sprite{
		X:         e.X,
		Y:         e.Y,
		Glyph:     e.Glyph,
		Color:     e.Color,
		Placement: placement,
		Corpse:    e.Kind == entity.KindCorpse,
	}
}

// VisibleSprites returns the entities currently in the field of view.
func (s *Session) VisibleSprites() []view.Sprite {
	var out []view.Sprite
	for _, e := range s.floor.Entities {
		if s.floor.Vis.Visible(e.X, e.Y) {
			out = append(out, SpriteFor(e))
		}
	}
	return out
}

// FirstPerson renders the 3D view from the player's cell.
func (s *Session) FirstPerson(p *view.Projector) *view.Frame {
	return p.Render(s.floor.Dungeon, s.Observer(), s.VisibleSprites())
}

// MapFrame renders a w x h top-down window centered on the player.
func (s *Session) MapFrame(w, h int) *view.Frame {
	d := s.floor.Dungeon
	win := view.CenteredWindow(d.Width, d.Height, w, h, s.player.X, s.player.Y)
	return view.MapRenderer{PlayerGlyph: entity.PlayerGlyph}.Render(d, s.floor.Vis, s.Observer(), s.VisibleSprites(), win)
}

// Minimap returns the small explored-area map around the player.
func (s *Session) Minimap() []string {
	return view.Minimap(s.floor.Dungeon, s.floor.Vis, s.Observer(), view.DefaultMinimapRadius)
}
