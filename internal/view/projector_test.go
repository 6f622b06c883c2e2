package view

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/world"
)

// blockBook draws every glyph as a solid scale x scale square.
type blockBook struct{}

func (blockBook) Pattern(glyph rune, scale int) []string {
	row := strings.Repeat(string(glyph), scale)
	rows := make([]string, scale)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

// northCorridor returns an 11x12 map with one open column at x=5 (y 1..10)
// and an observer at its south end facing north.
func northCorridor() (*world.Dungeon, Observer) {
	d := world.NewDungeon(11, 12)
	for y := 1; y <= 10; y++ {
		d.SetTile(5, y, world.TileFloor)
	}
	return d, Observer{X: 5, Y: 10, Facing: world.North}
}

func newTestProjector() *Projector {
	return NewProjector(DefaultViewWidth, DefaultViewHeight, blockBook{})
}

func brightness(c tcell.Color) int32 {
	r, g, b := c.RGB()
	return r + g + b
}

func TestProjectorNearOverwritesFar(t *testing.T) {
	d, obs := northCorridor()
	sprites := []Sprite{
		{X: 5, Y: 9, Glyph: 'A', Color: tcell.ColorRed},   // depth 1
		{X: 5, Y: 7, Glyph: 'Z', Color: tcell.ColorGreen}, // depth 3
	}

	f := newTestProjector().Render(d, obs, sprites)

	// Depth 1 covers rows 10..14, cols 23..27; depth 3 covers rows 8..10, cols 24..26.
	if got := f.At(25, 10).Glyph; got != 'A' {
		t.Errorf("shared cell (25,10) = %q, want 'A'", got)
	}
	if got := f.At(25, 8).Glyph; got != 'Z' {
		t.Errorf("far sprite should remain visible at (25,8), got %q", got)
	}

	// Same result regardless of input order.
	reversed := newTestProjector().Render(d, obs, []Sprite{sprites[1], sprites[0]})
	if !f.Equal(reversed) {
		t.Error("sprite order in the input should not change the frame")
	}
}

func TestProjectorDiscardsOutOfRangeSprites(t *testing.T) {
	d, obs := northCorridor()
	sprites := []Sprite{
		{X: 5, Y: 10, Glyph: 'Q'}, // observer's own cell
		{X: 5, Y: 11, Glyph: 'Q'}, // behind
		{X: 5, Y: 5, Glyph: 'Q'},  // depth 5
		{X: 5, Y: 1, Glyph: 'Q'},  // depth 9
	}

	f := newTestProjector().Render(d, obs, sprites)
	if _, _, ok := f.Find('Q'); ok {
		t.Error("sprites at depth <= 0 or beyond MaxDepth must not be drawn")
	}
}

func TestProjectorHidesSpritesBehindWalls(t *testing.T) {
	d, obs := northCorridor()
	d.SetTile(5, 8, world.TileWall) // depth 2

	f := newTestProjector().Render(d, obs, []Sprite{{X: 5, Y: 7, Glyph: 'Q'}})
	if _, _, ok := f.Find('Q'); ok {
		t.Error("sprite behind a wall should be hidden")
	}
}

func TestProjectorIsIdempotent(t *testing.T) {
	d, obs := northCorridor()
	sprites := []Sprite{
		{X: 5, Y: 9, Glyph: 'g', Color: tcell.NewRGBColor(63, 127, 63)},
		{X: 5, Y: 8, Glyph: '!', Placement: PlaceFloor},
		{X: 5, Y: 6, Glyph: 'b', Placement: PlaceFlying},
	}
	p := newTestProjector()

	a := p.Render(d, obs, sprites)
	b := p.Render(d, obs, sprites)
	if !a.Equal(b) {
		t.Error("identical inputs must produce identical frames")
	}
	if HTML(a) != HTML(b) {
		t.Error("serialized frames differ")
	}
}

func TestProjectorFrontWall(t *testing.T) {
	d, obs := northCorridor()
	d.SetTile(5, 9, world.TileWall) // dead end at depth 1

	f := newTestProjector().Render(d, obs, nil)

	// Band 1 spans cols 7..41 and rows 2..14.
	tests := []struct {
		x, y int
		want rune
	}{
		{25, 9, '█'},
		{25, 2, '═'},
		{25, 14, '═'},
		{7, 9, '║'},
		{41, 9, '║'},
		{25, 4, '─'},
		{25, 12, '─'},
	}
	for _, tt := range tests {
		if got := f.At(tt.x, tt.y).Glyph; got != tt.want {
			t.Errorf("(%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestProjectorSideWallShading(t *testing.T) {
	d, obs := northCorridor()
	d.SetTile(5, 9, world.TileWall)

	f := newTestProjector().Render(d, obs, nil)

	outer := f.At(0, 9)
	inner := f.At(6, 9)
	front := f.At(25, 9)

	if outer.Glyph != '▒' || inner.Glyph != '▒' {
		t.Fatalf("left wall glyphs = %q %q", outer.Glyph, inner.Glyph)
	}
	if brightness(inner.Color) <= brightness(outer.Color) {
		t.Error("inner edge of a side wall should be brighter than the outer edge")
	}
	if brightness(inner.Color) >= brightness(front.Color) {
		t.Error("side walls should be darker than the front face at the same depth")
	}

	// Right wall mirrors the left.
	if got := f.At(49, 9).Glyph; got != '▒' {
		t.Errorf("right wall glyph = %q", got)
	}
	if brightness(f.At(43, 9).Color) <= brightness(f.At(49, 9).Color) {
		t.Error("right wall inner edge should be brighter")
	}
}

func TestProjectorOpenRoomShowsBackground(t *testing.T) {
	d := world.NewDungeon(20, 20)
	for y := 1; y < 19; y++ {
		for x := 1; x < 19; x++ {
			d.SetTile(x, y, world.TileFloor)
		}
	}

	f := newTestProjector().Render(d, Observer{X: 10, Y: 10, Facing: world.East}, nil)
	if got := f.At(25, 0).Glyph; got != '░' {
		t.Errorf("top row should be ceiling texture, got %q", got)
	}
	if got := f.At(25, 9).Glyph; got != ' ' {
		t.Errorf("horizon should be empty, got %q", got)
	}
	if got := f.At(25, 17).Glyph; got != '░' {
		t.Errorf("bottom row should be floor texture, got %q", got)
	}
}

func TestProjectorInvalidFacingIsNorth(t *testing.T) {
	d, obs := northCorridor()
	sprites := []Sprite{{X: 5, Y: 8, Glyph: 'k'}}
	p := newTestProjector()

	want := p.Render(d, obs, sprites)
	obs.Facing = world.Direction(99)
	if got := p.Render(d, obs, sprites); !got.Equal(want) {
		t.Error("invalid facing should render as north")
	}
}

func TestProjectorOutOfBoundsIsSolid(t *testing.T) {
	// Observer at the very edge of a 1x1 map: every cell it looks at lies off the map.
	d := world.NewDungeon(1, 1)
	d.SetTile(0, 0, world.TileFloor)

	f := newTestProjector().Render(d, Observer{X: 0, Y: 0, Facing: world.West}, nil)
	if got := f.At(25, 9).Glyph; got != '█' {
		t.Errorf("off-map tile ahead should draw as a wall, got %q", got)
	}
}

func TestFlyingSpritesFloatAboveGrounded(t *testing.T) {
	d, obs := northCorridor()
	p := newTestProjector()

	ground := p.Render(d, obs, []Sprite{{X: 5, Y: 8, Glyph: 'F'}})
	flying := p.Render(d, obs, []Sprite{{X: 5, Y: 8, Glyph: 'F', Placement: PlaceFlying}})

	_, gy, ok1 := ground.Find('F')
	_, fy, ok2 := flying.Find('F')
	if !ok1 || !ok2 {
		t.Fatal("sprite at depth 2 should be drawn")
	}
	// Depth 2: grounded sprite starts on row 8, flying on row 5.
	if gy != 8 || fy != 5 {
		t.Errorf("grounded top row %d, flying top row %d; want 8 and 5", gy, fy)
	}
}

func TestGroundedSpritesRestOnFloorLine(t *testing.T) {
	d, obs := northCorridor()
	p := newTestProjector()

	// Scales 5 and 3 have odd row counts, 4 and 2 even ones.
	for depth := 1; depth <= MaxDepth; depth++ {
		f := p.Render(d, obs, []Sprite{{X: 5, Y: obs.Y - depth, Glyph: 'G'}})

		bottom := -1
		for y := 0; y < f.Height; y++ {
			for _, c := range f.Row(y) {
				if c.Glyph == 'G' {
					bottom = y
				}
			}
		}
		want := int(Band(depth).B*float64(DefaultViewHeight)) - 1
		if bottom != want {
			t.Errorf("depth %d: bottom row %d, want %d", depth, bottom, want)
		}
	}
}

func TestFloorItemsSpreadApart(t *testing.T) {
	d, obs := northCorridor()
	sprites := []Sprite{
		{X: 5, Y: 9, Glyph: 'a', Placement: PlaceFloor},
		{X: 5, Y: 9, Glyph: 'b', Placement: PlaceFloor},
	}

	f := newTestProjector().Render(d, obs, sprites)

	ax, ay, okA := f.Find('a')
	bx, by, okB := f.Find('b')
	if !okA || !okB {
		t.Fatal("both floor items should be visible")
	}
	if ay != 15 || by != 15 {
		t.Errorf("floor items should sit on row 15, got %d and %d", ay, by)
	}
	if ax >= bx {
		t.Errorf("items should spread left to right, got x=%d and x=%d", ax, bx)
	}
}

func TestCorpsePattern(t *testing.T) {
	d, obs := northCorridor()
	f := newTestProjector().Render(d, obs, []Sprite{{X: 5, Y: 9, Glyph: '%', Placement: PlaceFloor, Corpse: true}})

	if !strings.Contains(Plain(f), "%%%") {
		t.Error("near corpse should use the large pattern")
	}
}

func TestSpriteColorDimsWithDepth(t *testing.T) {
	d, obs := northCorridor()
	base := tcell.NewRGBColor(200, 200, 200)
	p := newTestProjector()

	near := p.Render(d, obs, []Sprite{{X: 5, Y: 9, Glyph: 'D', Color: base}})
	far := p.Render(d, obs, []Sprite{{X: 5, Y: 6, Glyph: 'D', Color: base}})

	nx, ny, _ := near.Find('D')
	fx, fy, _ := far.Find('D')
	if brightness(near.At(nx, ny).Color) <= brightness(far.At(fx, fy).Color) {
		t.Error("distant sprites should be dimmer")
	}
	if r, _, _ := far.At(fx, fy).Color.RGB(); r != 80 {
		t.Errorf("depth 4 red channel = %d, want 80 (0.4 brightness)", r)
	}
}

func TestScaleForDepth(t *testing.T) {
	want := map[int]int{1: 5, 2: 4, 3: 3, 4: 2}
	for depth, scale := range want {
		if got := ScaleForDepth(depth); got != scale {
			t.Errorf("ScaleForDepth(%d) = %d, want %d", depth, got, scale)
		}
	}
}
