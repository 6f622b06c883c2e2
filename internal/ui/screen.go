// Package ui draws crawlview frames on a terminal using tcell.
package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/crawlview/internal/view"
)

// Screen wraps tcell.Screen with a simplified interface.
type Screen struct {
	screen tcell.Screen
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewScreenFrom(s)
}

// NewScreenFrom initializes an existing tcell screen, such as a simulation
// screen in tests.
func NewScreenFrom(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear clears the screen buffer.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent sets a single cell's content at the given position.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Size returns the current terminal dimensions.
func (s *Screen) Size() (width, height int) {
	return s.screen.Size()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// DrawFrame copies a view frame to the screen with its corner at (x, y).
func (s *Screen) DrawFrame(f *view.Frame, x, y int) {
	for fy := 0; fy < f.Height; fy++ {
		for fx, c := range f.Row(fy) {
			s.SetContent(x+fx, y+fy, c.Glyph, tcell.StyleDefault.Foreground(c.Color))
		}
	}
}

// DrawText writes one line of text and returns the column after it.
// Newlines are not interpreted.
func (s *Screen) DrawText(x, y int, text string, style tcell.Style) int {
	for _, r := range text {
		s.SetContent(x, y, r, style)
		x++
	}
	return x
}
