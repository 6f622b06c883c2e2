package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/view"
)

// panelGap is the blank space between the main view and the side panel.
const panelGap = 2

// View is everything drawn on one screen refresh.
type View struct {
	Main     *view.Frame // first-person view, or the map when toggled
	Minimap  []string
	Compass  string
	Status   string
	Messages []string
	Help     string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render lays out the main view at the top left, the minimap and compass to
// its right, and the status line and newest messages underneath.
func (r *Renderer) Render(v View) {
	r.screen.Clear()
	_, height := r.screen.Size()

	mainW, mainH := 0, 0
	if v.Main != nil {
		r.screen.DrawFrame(v.Main, 0, 0)
		mainW, mainH = v.Main.Width, v.Main.Height
	}

	panelX := mainW + panelGap
	y := 0
	for _, line := range v.Minimap {
		r.screen.DrawText(panelX, y, line, minimapStyle)
		y++
	}
	if v.Compass != "" {
		y++
		for _, line := range strings.Split(v.Compass, "\n") {
			r.screen.DrawText(panelX, y, line, compassStyle)
			y++
		}
	}

	y = max(mainH, y)
	if v.Status != "" {
		r.screen.DrawText(0, y, v.Status, statusStyle)
		y++
	}

	rows := height - y
	if v.Help != "" {
		rows--
	}
	msgs := v.Messages
	if rows < len(msgs) {
		msgs = msgs[len(msgs)-max(0, rows):]
	}
	for _, msg := range msgs {
		r.screen.DrawText(0, y, msg, messageStyle)
		y++
	}

	if v.Help != "" && height > 0 {
		r.screen.DrawText(0, height-1, v.Help, helpStyle)
	}

	r.screen.Show()
}

var (
	minimapStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	compassStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	statusStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	messageStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	helpStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)
