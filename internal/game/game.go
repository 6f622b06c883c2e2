package game

import (
	"context"
	"errors"
	"log"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/telemetry"
	"github.com/samdwyer/crawlview/internal/ui"
	"github.com/samdwyer/crawlview/internal/view"
)

const helpLine = "w/s move  a/d turn  arrows/hjkl step  > < stairs  t travel  tab map  q quit"

// Game runs a session in the terminal.
type Game struct {
	screen    *ui.Screen
	renderer  *ui.Renderer
	projector *view.Projector
	session   *Session
	showMap   bool
}

// New opens the terminal and starts a session.
func New(ctx context.Context, cfg Config, cat *gamedata.Catalog, tr *Translator) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(ctx, screen, cfg, cat, tr)
}

func newGame(ctx context.Context, screen *ui.Screen, cfg Config, cat *gamedata.Catalog, tr *Translator) (*Game, error) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	session, err := NewSession(ctx, cfg, cat, tr)
	if err != nil {
		screen.Close()
		return nil, err
	}
	span.SetAttributes(
		attribute.Int64("game.seed", session.Seed()),
		attribute.Int("game.start_floor", session.Floor().Level),
		attribute.Int("dungeon.rooms", len(session.Floor().Dungeon.Rooms)),
	)

	return &Game{
		screen:    screen,
		renderer:  ui.NewRenderer(screen),
		projector: view.NewProjector(cfg.ViewWidth, cfg.ViewHeight, cat.Sprites),
		session:   session,
	}, nil
}

// Session exposes the running session.
func (g *Game) Session() *Session { return g.session }

// Run executes the main game loop until the player quits or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	for g.session.State() != StateQuit {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.renderer.Render(g.frame())
		g.handleInput(ctx)
	}
	return nil
}

// frame collects what the renderer needs for this refresh.
func (g *Game) frame() ui.View {
	main := g.session.FirstPerson(g.projector)
	if g.showMap {
		main = g.session.MapFrame(main.Width, main.Height)
	}
	return ui.View{
		Main:     main,
		Minimap:  g.session.Minimap(),
		Compass:  view.CompassRose(g.session.Player().Facing.Angle()),
		Status:   g.session.Status(),
		Messages: g.session.Messages(maxMessages),
		Help:     helpLine,
	}
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyTab {
		g.showMap = !g.showMap
		return
	}
	a, ok := ActionForKey(ev)
	if !ok {
		return
	}
	if err := g.session.Apply(ctx, a); err != nil && !errors.Is(err, ErrNoStairs) {
		log.Printf("turn %d: %v", g.session.Turn(), err)
	}
}

// Close cleans up game resources. It is safe to call more than once.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
		g.screen = nil
	}
}
