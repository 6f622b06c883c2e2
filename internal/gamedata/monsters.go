package gamedata

import (
	"errors"
	"io/fs"

	"github.com/gdamore/tcell/v2"
)

// ErrNoMonsters is returned when a monster file holds no definitions.
var ErrNoMonsters = errors.New("gamedata: no monsters defined")

// Kind distinguishes hostile monsters from passive NPCs.
type Kind string

const (
	KindMonster Kind = "monster"
	KindNPC     Kind = "npc"
)

// MonsterDef defines a creature loaded from JSON.
type MonsterDef struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Kind           Kind             `json:"kind"`
	Glyph          string           `json:"glyph"` // Single character used on the map
	Color          string           `json:"color"` // Hex color
	HP             int              `json:"hp"`
	Attack         int              `json:"attack"`
	Defense        int              `json:"defense"`
	DetectionRange int              `json:"detectionRange,omitempty"`
	Flying         bool             `json:"flying,omitempty"`
	SpawnWeight    int              `json:"spawnWeight"`
	MinFloor       int              `json:"minFloor"`
	Sprite         map[int][]string `json:"sprite,omitempty"` // Scale level -> rows
}

// GlyphRune returns the map glyph, '?' when none is set.
func (m *MonsterDef) GlyphRune() rune {
	return firstRune(m.Glyph)
}

// TCellColor returns the parsed color, falling back to red on bad input.
func (m *MonsterDef) TCellColor() tcell.Color {
	c, err := ParseHexColor(m.Color)
	if err != nil {
		return tcell.NewRGBColor(255, 102, 102)
	}
	return c
}

// IsNPC reports whether the creature is passive.
func (m *MonsterDef) IsNPC() bool {
	return m.Kind == KindNPC
}

// Key implements Spawnable.
func (m MonsterDef) Key() string { return m.ID }

// Weight implements Spawnable.
func (m MonsterDef) Weight() int { return m.SpawnWeight }

// AvailableOn implements Spawnable.
func (m MonsterDef) AvailableOn(floor int) bool { return floor >= m.MinFloor }

// MonstersFile represents the structure of monsters.json.
type MonstersFile struct {
	Monsters []MonsterDef `json:"monsters"`
}

// LoadMonstersFS loads monsters.json from fsys.
func LoadMonstersFS(fsys fs.FS) ([]MonsterDef, error) {
	file, err := LoadFS[MonstersFile](fsys, "monsters.json")
	if err != nil {
		return nil, err
	}
	if len(file.Monsters) == 0 {
		return nil, ErrNoMonsters
	}
	return file.Monsters, nil
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return '?'
}
