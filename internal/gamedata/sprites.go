package gamedata

// Scale levels used by the 3D view, nearest first.
const (
	ScaleNear    = 5
	ScaleMid     = 4
	ScaleFar     = 3
	ScaleDistant = 2
	ScaleTiny    = 1
)

// defaultSprite is drawn for creatures without their own patterns.
var defaultSprite = map[int][]string{
	ScaleNear:    {"  ▄▄▄  ", " █???█ ", " █   █ ", "  ███  ", " █   █ ", " █ ? █ ", " ▀   ▀ "},
	ScaleMid:     {" ▄▄▄ ", " █?█ ", "  █  ", " █?█ ", " ▀ ▀ "},
	ScaleFar:     {" ▄ ", "█?█", " ▀ "},
	ScaleDistant: {"??", "▀▀"},
	ScaleTiny:    {"?"},
}

// SpriteBook maps creature glyphs to their multi-scale ASCII patterns.
type SpriteBook struct {
	patterns map[rune]map[int][]string
}

// NewSpriteBook collects the sprite patterns of every monster.
// Later definitions with the same glyph win.
func NewSpriteBook(monsters []MonsterDef) *SpriteBook {
	b := &SpriteBook{patterns: make(map[rune]map[int][]string)}
	for i := range monsters {
		if len(monsters[i].Sprite) > 0 {
			b.Add(monsters[i].GlyphRune(), monsters[i].Sprite)
		}
	}
	return b
}

// Add registers or replaces the patterns for a glyph.
func (b *SpriteBook) Add(glyph rune, patterns map[int][]string) {
	b.patterns[glyph] = patterns
}

// Pattern returns the rows for glyph at the given scale level. Unknown glyphs
// use the default pattern; missing scales fall back to scale 1 and then to the
// bare glyph.
func (b *SpriteBook) Pattern(glyph rune, scale int) []string {
	set, ok := b.patterns[glyph]
	if !ok {
		set = defaultSprite
	}
	if rows := set[scale]; len(rows) > 0 {
		return rows
	}
	if rows := set[ScaleTiny]; len(rows) > 0 {
		return rows
	}
	return []string{string(glyph)}
}
