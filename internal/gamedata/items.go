package gamedata

import (
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// ItemDef defines a floor item loaded from JSON.
type ItemDef struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Glyph       string `json:"glyph"`
	Color       string `json:"color"`
	SpawnWeight int    `json:"spawnWeight"`
	MinFloor    int    `json:"minFloor,omitempty"`
}

// GlyphRune returns the map glyph, '?' when none is set.
func (i *ItemDef) GlyphRune() rune {
	return firstRune(i.Glyph)
}

// TCellColor returns the parsed color, falling back to white on bad input.
func (i *ItemDef) TCellColor() tcell.Color {
	c, err := ParseHexColor(i.Color)
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}

// Key, Weight and AvailableOn implement Spawnable.
func (i ItemDef) Key() string { return i.ID }

func (i ItemDef) Weight() int { return i.SpawnWeight }

func (i ItemDef) AvailableOn(floor int) bool { return floor >= i.MinFloor }

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItemsFS loads items.json from fsys.
func LoadItemsFS(fsys fs.FS) ([]ItemDef, error) {
	file, err := LoadFS[ItemsFile](fsys, "items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
