// Package view turns dungeon state into glyph+color frames: the pseudo-3D
// first-person projection, the top-down map, the minimap and the compass.
package view

import "github.com/gdamore/tcell/v2"

// Cell is one character of output.
type Cell struct {
	Glyph rune
	Color tcell.Color
}

// blankCell is what a fresh frame holds before anything is drawn.
var blankCell = Cell{Glyph: ' ', Color: tcell.NewRGBColor(0x11, 0x11, 0x11)}

// Frame is a Width x Height grid of cells, rebuilt on every render.
type Frame struct {
	Width  int
	Height int
	cells  []Cell // row-major
}

// NewFrame creates a frame filled with blank cells.
func NewFrame(width, height int) *Frame {
	width, height = max(0, width), max(0, height)
	f := &Frame{Width: width, Height: height, cells: make([]Cell, width*height)}
	f.Fill(blankCell)
	return f
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.Width && y >= 0 && y < f.Height
}

// Set writes a cell. Writes outside the frame are dropped.
func (f *Frame) Set(x, y int, c Cell) {
	if f.inBounds(x, y) {
		f.cells[y*f.Width+x] = c
	}
}

// At returns the cell at (x, y), or a blank cell outside the frame.
func (f *Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return blankCell
	}
	return f.cells[y*f.Width+x]
}

// Fill overwrites every cell.
func (f *Frame) Fill(c Cell) {
	for i := range f.cells {
		f.cells[i] = c
	}
}

// Row returns the cells of row y. The slice aliases the frame.
func (f *Frame) Row(y int) []Cell {
	if y < 0 || y >= f.Height {
		return nil
	}
	return f.cells[y*f.Width : (y+1)*f.Width]
}

// Equal reports whether two frames hold the same cells.
func (f *Frame) Equal(o *Frame) bool {
	if f.Width != o.Width || f.Height != o.Height {
		return false
	}
	for i := range f.cells {
		if f.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Find returns the first position holding glyph, scanning row by row.
func (f *Frame) Find(glyph rune) (x, y int, ok bool) {
	for i, c := range f.cells {
		if c.Glyph == glyph {
			return i % f.Width, i / f.Width, true
		}
	}
	return 0, 0, false
}
