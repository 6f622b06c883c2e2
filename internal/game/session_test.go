package game

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/entity"
	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/view"
	"github.com/samdwyer/crawlview/internal/world"
)

func testConfig(seed int64) Config {
	cfg := DefaultConfig()
	cfg.Seed = seed
	cfg.MaxFloors = 3
	return cfg
}

func newTestSession(t *testing.T, cfg Config) *Session {
	t.Helper()
	cat, err := gamedata.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	s, err := NewSession(context.Background(), cfg, cat, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func apply(t *testing.T, s *Session, a Action) error {
	t.Helper()
	return s.Apply(context.Background(), a)
}

func lastMessage(s *Session) string {
	m := s.Messages(1)
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// travelToStairs walks to the down stairs with the floor cleared of creatures.
func travelToStairs(t *testing.T, s *Session) {
	t.Helper()
	s.Floor().Entities = nil
	target, ok := s.Floor().Dungeon.FindTile(world.TileStairsDown)
	if !ok {
		t.Fatal("floor has no down stairs")
	}
	for i := 0; i < 500 && s.Player().Point() != target; i++ {
		if err := apply(t, s, Action{Kind: ActTravel}); err != nil {
			t.Fatalf("travel: %v", err)
		}
	}
	if s.Player().Point() != target {
		t.Fatalf("travel stopped at %v, stairs at %v", s.Player().Point(), target)
	}
}

func TestNewSessionStartsAtArrival(t *testing.T) {
	s := newTestSession(t, testConfig(42))

	if s.Floor().Level != 1 {
		t.Errorf("start floor = %d, want 1", s.Floor().Level)
	}
	if s.Player().Point() != s.Floor().Arrival {
		t.Errorf("player at %v, want arrival %v", s.Player().Point(), s.Floor().Arrival)
	}
	if s.Player().Facing != world.North {
		t.Errorf("facing = %v, want N", s.Player().Facing)
	}
	if !s.Floor().Vis.Visible(s.Player().X, s.Player().Y) {
		t.Error("player cell should be visible after the first FOV pass")
	}
	if s.State() != StateExplore {
		t.Errorf("state = %v", s.State())
	}
	if lastMessage(s) != msgWelcome {
		t.Errorf("first message = %q", lastMessage(s))
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cat, _ := gamedata.DefaultCatalog()
	cfg := testConfig(1)
	cfg.StartFloor = 0
	if _, err := NewSession(context.Background(), cfg, cat, nil); err == nil {
		t.Error("start floor 0 should be rejected")
	}
	if _, err := NewSession(context.Background(), testConfig(1), nil, nil); err == nil {
		t.Error("nil catalog should be rejected")
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	s := newTestSession(t, testConfig(0))
	if s.Seed() == 0 {
		t.Error("seed 0 should be replaced with a random seed")
	}
}

func TestSessionReproducible(t *testing.T) {
	a := newTestSession(t, testConfig(99))
	b := newTestSession(t, testConfig(99))

	if a.Player().Point() != b.Player().Point() {
		t.Errorf("start positions differ: %v vs %v", a.Player().Point(), b.Player().Point())
	}
	ra, rb := a.Floor().Dungeon.Rooms, b.Floor().Dungeon.Rooms
	if len(ra) != len(rb) {
		t.Fatalf("room counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("room %d differs", i)
		}
	}
	if len(a.Floor().Entities) != len(b.Floor().Entities) {
		t.Errorf("entity counts differ")
	}
}

func TestFloorSeedIgnoresVisitOrder(t *testing.T) {
	ctx := context.Background()
	a := newTestSession(t, testConfig(7))
	a.enterFloor(ctx, 2, true)

	cfg := testConfig(7)
	cfg.StartFloor = 2
	b := newTestSession(t, cfg)

	ra, rb := a.Floor().Dungeon.Rooms, b.Floor().Dungeon.Rooms
	if len(ra) != len(rb) {
		t.Fatalf("room counts differ: %d vs %d", len(ra), len(rb))
	}
	for i := range ra {
		if ra[i] != rb[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, ra[i], rb[i])
		}
	}
}

func TestTurningChangesFacingOnly(t *testing.T) {
	s := newTestSession(t, testConfig(3))
	start := s.Player().Point()

	tests := []struct {
		action Action
		want   world.Direction
	}{
		{Action{Kind: ActTurnRight}, world.East},
		{Action{Kind: ActTurnRight}, world.South},
		{Action{Kind: ActTurnLeft}, world.East},
		{Action{Kind: ActTurnLeft}, world.North},
		{Action{Kind: ActTurnLeft}, world.West},
	}
	for i, tt := range tests {
		if err := apply(t, s, tt.action); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.Player().Facing != tt.want {
			t.Errorf("step %d: facing = %v, want %v", i, s.Player().Facing, tt.want)
		}
	}
	if s.Player().Point() != start {
		t.Error("turning must not move the player")
	}
	if s.Turn() != len(tests) {
		t.Errorf("turn = %d, want %d", s.Turn(), len(tests))
	}
}

func TestMoveBlockedByCreature(t *testing.T) {
	s := newTestSession(t, testConfig(5))
	p := s.Player().Point()
	s.Floor().Entities = entity.List{
		{Name: "goblin", Kind: entity.KindMonster, Glyph: 'g', X: p.X, Y: p.Y - 1},
	}
	s.Player().Facing = world.East

	if err := apply(t, s, Move(world.North)); err != nil {
		t.Fatal(err)
	}
	if s.Player().Point() != p {
		t.Errorf("player moved into a creature: %v", s.Player().Point())
	}
	if s.Player().Facing != world.North {
		t.Error("absolute move should still turn the player")
	}
	if got := lastMessage(s); got != "The goblin blocks your way." {
		t.Errorf("message = %q", got)
	}

	s.Floor().Entities[0].Name = "100% goblin"
	_ = apply(t, s, Move(world.North))
	if got := lastMessage(s); got != "The 100% goblin blocks your way." {
		t.Errorf("name with a percent sign = %q", got)
	}
}

func TestForwardAndBack(t *testing.T) {
	s := newTestSession(t, testConfig(5))
	s.Floor().Entities = nil
	p := s.Player().Point()

	// Arrival is a room center and rooms are at least 4 wide, so both
	// neighbors are open.
	if err := apply(t, s, Action{Kind: ActForward}); err != nil {
		t.Fatal(err)
	}
	if want := (world.Point{X: p.X, Y: p.Y - 1}); s.Player().Point() != want {
		t.Errorf("after forward at %v, want %v", s.Player().Point(), want)
	}
	if err := apply(t, s, Action{Kind: ActBack}); err != nil {
		t.Fatal(err)
	}
	if s.Player().Point() != p {
		t.Errorf("after back at %v, want %v", s.Player().Point(), p)
	}
	if s.Player().Facing != world.North {
		t.Error("stepping back must keep the facing")
	}
}

func TestStairsAwayFromStairs(t *testing.T) {
	s := newTestSession(t, testConfig(11))

	if err := apply(t, s, Action{Kind: ActDescend}); !errors.Is(err, ErrNoStairs) {
		t.Errorf("descend away from stairs: err = %v", err)
	}
	if err := apply(t, s, Action{Kind: ActAscend}); !errors.Is(err, ErrNoStairs) {
		t.Errorf("ascend on floor 1: err = %v", err)
	}
	if s.Floor().Level != 1 {
		t.Errorf("floor changed to %d", s.Floor().Level)
	}
}

func TestDescendAscendRoundTrip(t *testing.T) {
	s := newTestSession(t, testConfig(21))
	first := s.Floor()

	travelToStairs(t, s)
	if got := lastMessage(s); got != msgTravelArrived {
		t.Errorf("arrival message = %q", got)
	}
	down := s.Player().Point()

	if err := apply(t, s, Action{Kind: ActDescend}); err != nil {
		t.Fatalf("descend: %v", err)
	}
	if s.Floor().Level != 2 {
		t.Fatalf("floor = %d, want 2", s.Floor().Level)
	}
	if s.Floor().Dungeon.GetTile(s.Player().X, s.Player().Y) != world.TileStairsUp {
		t.Error("descending should land on the up stairs")
	}

	if err := apply(t, s, Action{Kind: ActAscend}); err != nil {
		t.Fatalf("ascend: %v", err)
	}
	if s.Floor() != first {
		t.Error("floor 1 should come from the cache")
	}
	if s.Player().Point() != down {
		t.Errorf("ascending should land on the down stairs %v, got %v", down, s.Player().Point())
	}
}

func TestDeepestFloorState(t *testing.T) {
	cfg := testConfig(8)
	cfg.MaxFloors = 2
	s := newTestSession(t, cfg)

	travelToStairs(t, s)
	if err := apply(t, s, Action{Kind: ActDescend}); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateDeepest {
		t.Errorf("state = %v, want deepest", s.State())
	}
	if got := lastMessage(s); got != msgDeepest {
		t.Errorf("message = %q", got)
	}
	if _, ok := s.Floor().Dungeon.FindTile(world.TileStairsDown); ok {
		t.Error("deepest floor should have no way down")
	}
	if err := apply(t, s, Action{Kind: ActTravel}); !errors.Is(err, ErrNoStairs) {
		t.Errorf("travel on deepest floor: err = %v", err)
	}
}

func TestQuit(t *testing.T) {
	s := newTestSession(t, testConfig(2))
	if err := apply(t, s, Action{Kind: ActQuit}); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateQuit {
		t.Errorf("state = %v", s.State())
	}
}

func TestMessagesAreCapped(t *testing.T) {
	s := newTestSession(t, testConfig(2))
	for i := 0; i < maxMessages+10; i++ {
		_ = apply(t, s, Action{Kind: ActTurnLeft})
	}
	if got := len(s.Messages(0)); got != maxMessages {
		t.Errorf("kept %d messages, want %d", got, maxMessages)
	}
	if got := len(s.Messages(3)); got != 3 {
		t.Errorf("Messages(3) returned %d", got)
	}
}

func TestVisibleSprites(t *testing.T) {
	s := newTestSession(t, testConfig(4))
	p := s.Player().Point()
	red := tcell.NewRGBColor(200, 0, 0)
	s.Floor().Entities = entity.List{
		{Name: "water flask", Kind: entity.KindItem, Glyph: '!', Color: red, X: p.X + 1, Y: p.Y},
		{Name: "bat", Kind: entity.KindMonster, Glyph: 'b', Flying: true, X: p.X, Y: p.Y - 1},
		{Name: "far", Kind: entity.KindMonster, Glyph: 'o', X: -5, Y: -5},
	}
	_ = apply(t, s, Action{Kind: ActWait})

	sprites := s.VisibleSprites()
	if len(sprites) != 2 {
		t.Fatalf("got %d sprites, want 2: %+v", len(sprites), sprites)
	}
	if sprites[0].Placement != view.PlaceFloor || sprites[0].Color != red {
		t.Errorf("item sprite = %+v", sprites[0])
	}
	if sprites[1].Placement != view.PlaceFlying {
		t.Errorf("bat placement = %v", sprites[1].Placement)
	}
}

func TestSpriteForCorpse(t *testing.T) {
	e := &entity.Entity{Kind: entity.KindCorpse, Glyph: entity.CorpseGlyph}
	sp := SpriteFor(e)
	if !sp.Corpse || sp.Placement != view.PlaceFloor {
		t.Errorf("corpse sprite = %+v", sp)
	}
}

func TestRenderedViewsMatchSession(t *testing.T) {
	s := newTestSession(t, testConfig(6))

	fp := s.FirstPerson(view.NewProjector(view.DefaultViewWidth, view.DefaultViewHeight, nil))
	if fp.Width != view.DefaultViewWidth || fp.Height != view.DefaultViewHeight {
		t.Errorf("first-person size %dx%d", fp.Width, fp.Height)
	}

	m := s.MapFrame(20, 10)
	if _, _, ok := m.Find(entity.PlayerGlyph); !ok {
		t.Error("map window should contain the player")
	}

	mini := s.Minimap()
	center := []rune(mini[view.DefaultMinimapRadius])[view.DefaultMinimapRadius]
	if center != world.North.Arrow() {
		t.Errorf("minimap center = %q", center)
	}
	if s.Status() == "" {
		t.Error("status line is empty")
	}
}
