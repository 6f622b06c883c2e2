package ui

import (
	"os"

	"golang.org/x/term"
)

// TerminalSize returns the size of the terminal on f, or ok=false when f is
// not a terminal.
func TerminalSize(f *os.File) (width, height int, ok bool) {
	if !IsTerminal(f) {
		return 0, 0, false
	}
	w, h, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return w, h, true
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// Fits reports whether a w x h terminal can hold the layout with a main view
// of the given size and a side panel of panelW columns.
func Fits(w, h, mainW, mainH, panelW int) bool {
	return w >= mainW+panelGap+panelW && h >= mainH+2
}
