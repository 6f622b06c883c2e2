// Package entity provides the creatures and objects that populate a floor.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/gamedata"
)

// Kind tags what an entity is. Render placement is derived from it.
type Kind int

const (
	KindMonster Kind = iota
	KindNPC
	KindItem
	KindCorpse
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMonster:
		return "monster"
	case KindNPC:
		return "npc"
	case KindItem:
		return "item"
	case KindCorpse:
		return "corpse"
	default:
		return "unknown"
	}
}

// CorpseGlyph is the map glyph of every corpse.
const CorpseGlyph = '%'

// Stats are the fixed-shape numbers carried by creatures. Items have none.
type Stats struct {
	HP, MaxHP int
	Attack    int
	Defense   int
}

// Entity is anything standing or lying on a floor tile.
type Entity struct {
	DefID     string // Definition ID in gamedata
	Name      string
	Kind      Kind
	Glyph     rune
	Color     tcell.Color
	X, Y      int
	RoomIndex int  // Room the entity spawned in, -1 if none
	Flying    bool // Drawn above the horizon in the 3D view
	Stats     *Stats
}

// NewMonster creates a creature from its definition. NPC definitions produce
// KindNPC entities.
func NewMonster(def *gamedata.MonsterDef, x, y, roomIndex int) *Entity {
	kind := KindMonster
	if def.IsNPC() {
		kind = KindNPC
	}
	return &Entity{
		DefID:     def.ID,
		Name:      def.Name,
		Kind:      kind,
		Glyph:     def.GlyphRune(),
		Color:     def.TCellColor(),
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
		Flying:    def.Flying,
		Stats: &Stats{
			HP:      def.HP,
			MaxHP:   def.HP,
			Attack:  def.Attack,
			Defense: def.Defense,
		},
	}
}

// NewItem creates a floor item from its definition.
func NewItem(def *gamedata.ItemDef, x, y, roomIndex int) *Entity {
	return &Entity{
		DefID:     def.ID,
		Name:      def.Name,
		Kind:      KindItem,
		Glyph:     def.GlyphRune(),
		Color:     def.TCellColor(),
		X:         x,
		Y:         y,
		RoomIndex: roomIndex,
	}
}

// Position returns the entity's current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}

// BlocksMovement reports whether the entity occupies its cell.
func (e *Entity) BlocksMovement() bool {
	return e.Kind == KindMonster || e.Kind == KindNPC
}

// OnFloor reports whether the entity lies on the ground (items and corpses).
func (e *Entity) OnFloor() bool {
	return e.Kind == KindItem || e.Kind == KindCorpse
}
