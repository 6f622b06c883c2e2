package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawlview/internal/entity"
	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/telemetry"
	"github.com/samdwyer/crawlview/internal/view"
	"github.com/samdwyer/crawlview/internal/world"
)

// ErrNoStairs is returned when a stairs action is taken away from stairs, or
// travel is requested on a floor without a way down.
var ErrNoStairs = errors.New("game: no stairs")

// Session is the whole mutable state of one game. It is not safe for
// concurrent use; each turn runs to completion before the next.
type Session struct {
	cfg Config
	cat *gamedata.Catalog
	tr  *Translator

	floors map[int]*Floor
	floor  *Floor
	player *entity.Player

	state    State
	turn     int
	messages []string
}

// NewSession validates cfg, builds the starting floor and computes the first
// field of view. A zero seed is replaced by the current time.
func NewSession(ctx context.Context, cfg Config, cat *gamedata.Catalog, tr *Translator) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, errors.New("game: nil catalog")
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		cat:    cat,
		tr:     tr,
		floors: make(map[int]*Floor),
		player: entity.NewPlayer(0, 0),
	}
	s.enterFloor(ctx, cfg.StartFloor, true)
	s.log(msgWelcome)

	return s, nil
}

// Apply performs one action. Movement and the field-of-view update happen as
// a single unit. Only stairs misuse returns an error; blocked moves are
// reported in the message log.
func (s *Session) Apply(ctx context.Context, a Action) error {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	var err error
	switch a.Kind {
	case ActQuit:
		s.state = StateQuit
		return nil
	case ActWait:
	case ActMove:
		s.player.Facing = a.Dir
		s.step(a.Dir)
	case ActForward:
		s.step(s.player.Facing)
	case ActBack:
		s.step(s.player.Facing.Opposite())
	case ActTurnLeft:
		s.player.TurnLeft()
		s.log(msgFacing, s.tr.T(s.player.Facing.Name()))
	case ActTurnRight:
		s.player.TurnRight()
		s.log(msgFacing, s.tr.T(s.player.Facing.Name()))
	case ActDescend:
		err = s.descend(ctx)
	case ActAscend:
		err = s.ascend(ctx)
	case ActTravel:
		err = s.travel()
	}

	s.turn++
	s.updateFOV()

	span.SetAttributes(
		attribute.String("turn.action", a.Kind.String()),
		attribute.Int("turn.number", s.turn),
		attribute.Int("turn.floor", s.floor.Level),
		attribute.Int("player.x", s.player.X),
		attribute.Int("player.y", s.player.Y),
		attribute.String("player.facing", s.player.Facing.String()),
		attribute.Int("fov.visible", s.floor.Vis.VisibleCount()),
	)
	if err != nil {
		span.RecordError(err)
	}
	return err
}

// step moves the player one cell if nothing blocks the way.
func (s *Session) step(d world.Direction) {
	dx, dy := d.Vector()
	s.moveBy(dx, dy)
}

func (s *Session) moveBy(dx, dy int) bool {
	nx, ny := s.player.X+dx, s.player.Y+dy

	if e := s.floor.Entities.BlockerAt(nx, ny); e != nil {
		s.log(msgBlocked, s.tr.T(e.Name))
		return false
	}
	if !s.floor.Dungeon.IsPassable(nx, ny) {
		s.log(msgWall)
		return false
	}

	s.player.Move(dx, dy)
	for _, e := range s.floor.Entities.At(nx, ny) {
		if e.OnFloor() {
			s.log(msgSeeItem, s.tr.T(e.Name))
		}
	}
	return true
}

func (s *Session) descend(ctx context.Context) error {
	if s.floor.Dungeon.GetTile(s.player.X, s.player.Y) != world.TileStairsDown {
		s.log(msgNoStairsDown)
		return ErrNoStairs
	}
	s.enterFloor(ctx, s.floor.Level+1, true)
	s.log(msgDescend, s.floor.Level)
	if s.state == StateDeepest {
		s.log(msgDeepest)
	}
	return nil
}

func (s *Session) ascend(ctx context.Context) error {
	if s.floor.Dungeon.GetTile(s.player.X, s.player.Y) != world.TileStairsUp {
		s.log(msgNoStairsUp)
		return ErrNoStairs
	}
	if s.floor.Level <= 1 {
		s.log(msgTopFloor)
		return ErrNoStairs
	}
	s.enterFloor(ctx, s.floor.Level-1, false)
	s.log(msgAscend, s.floor.Level)
	return nil
}

// travel takes one step along the shortest path to the down stairs.
func (s *Session) travel() error {
	target, ok := s.floor.stairs(world.TileStairsDown)
	if !ok {
		s.log(msgNoStairsDown)
		return ErrNoStairs
	}
	if target == s.player.Point() {
		s.log(msgTravelArrived)
		return nil
	}

	path := world.FindPath(s.floor.Dungeon, s.player.Point(), target)
	if len(path) == 0 {
		s.log(msgNoPath)
		return nil
	}

	dx, dy := path[0].X-s.player.X, path[0].Y-s.player.Y
	if d, ok := world.DirectionFromDelta(dx, dy); ok {
		s.player.Facing = d
	}
	if s.moveBy(dx, dy) && s.player.Point() == target {
		s.log(msgTravelArrived)
	}
	return nil
}

// enterFloor switches to a level, generating it on first visit. Going down
// lands on the arrival point (where the up stairs are); going up lands on
// the down stairs.
func (s *Session) enterFloor(ctx context.Context, level int, down bool) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "floor.change")
	defer span.End()

	from := 0
	if s.floor != nil {
		from = s.floor.Level
	}

	f, cached := s.floors[level]
	if !cached {
		f = buildFloor(ctx, s.cfg, s.cat, level)
		s.floors[level] = f
	}
	s.floor = f

	pos := f.Arrival
	if !down {
		if p, ok := f.stairs(world.TileStairsDown); ok {
			pos = p
		}
	}
	s.player.MoveTo(pos)

	s.state = StateExplore
	if s.cfg.MaxFloors > 0 && level >= s.cfg.MaxFloors {
		s.state = StateDeepest
	}
	s.updateFOV()

	span.SetAttributes(
		attribute.Int("floor.from", from),
		attribute.Int("floor.to", level),
		attribute.Bool("floor.cached", cached),
		attribute.Int("floor.rooms", len(f.Dungeon.Rooms)),
		attribute.Int("floor.entities", len(f.Entities)),
	)
}

func (s *Session) updateFOV() {
	s.floor.Vis.Compute(s.floor.Dungeon, s.player.X, s.player.Y, s.cfg.FOVRadius)
}

// Floor returns the current level.
func (s *Session) Floor() *Floor { return s.floor }

// Player returns the observer.
func (s *Session) Player() *entity.Player { return s.player }

// State returns the session state.
func (s *Session) State() State { return s.state }

// Turn returns how many actions have been applied.
func (s *Session) Turn() int { return s.turn }

// Seed returns the seed in use, which is never zero.
func (s *Session) Seed() int64 { return s.cfg.Seed }

// Config returns the session settings.
func (s *Session) Config() Config { return s.cfg }

// Messages returns up to n of the most recent log lines, oldest first.
func (s *Session) Messages(n int) []string {
	if n <= 0 || n > len(s.messages) {
		n = len(s.messages)
	}
	return s.messages[len(s.messages)-n:]
}

// Observer returns the player as the views see it.
func (s *Session) Observer() view.Observer {
	return view.Observer{X: s.player.X, Y: s.player.Y, Facing: s.player.Facing}
}

// Status returns the one-line summary shown under the views.
func (s *Session) Status() string {
	return s.tr.Get("Floor %d  Turn %d  (%d,%d)  Facing %s",
		s.floor.Level, s.turn, s.player.X, s.player.Y, view.CompassLabel(s.player.Facing.Angle()))
}
