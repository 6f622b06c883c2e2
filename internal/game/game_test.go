package game

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/ui"
)

func TestGameLoopQuits(t *testing.T) {
	cat, err := gamedata.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := ui.NewScreenFrom(sim)
	if err != nil {
		t.Fatal(err)
	}
	sim.SetSize(80, 30)

	g, err := newGame(context.Background(), screen, testConfig(12), cat, nil)
	if err != nil {
		t.Fatalf("newGame: %v", err)
	}

	sim.InjectKey(tcell.KeyRune, 'd', tcell.ModNone)
	sim.InjectKey(tcell.KeyTab, 0, tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := g.Session()
	if s.State() != StateQuit {
		t.Errorf("state = %v, want quit", s.State())
	}
	if s.Player().Facing.String() != "E" {
		t.Errorf("facing = %v, want E after one right turn", s.Player().Facing)
	}
	if !g.showMap {
		t.Error("tab should toggle the map view")
	}
}
