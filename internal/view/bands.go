package view

import "math"

// MaxDepth is how many tiles ahead the projector draws.
const MaxDepth = 4

// Viewport is a depth band as fractions of the frame: left, right, top, bottom.
type Viewport struct {
	L, R, T, B float64
}

// bands nests each depth inside the previous one, converging on the center.
var bands = [MaxDepth + 1]Viewport{
	{0.00, 1.00, 0.00, 1.00},
	{0.15, 0.85, 0.15, 0.85},
	{0.28, 0.72, 0.28, 0.72},
	{0.38, 0.62, 0.38, 0.62},
	{0.45, 0.55, 0.45, 0.55},
}

// Band returns the viewport for a depth, clamped to 0..MaxDepth.
func Band(depth int) Viewport {
	return bands[max(0, min(MaxDepth, depth))]
}

// rect is a band in cell coordinates; right and bottom are exclusive.
type rect struct {
	left, right, top, bottom int
}

func (v Viewport) cells(width, height int) rect {
	return rect{
		left:   int(math.Floor(v.L * float64(width))),
		right:  int(math.Floor(v.R * float64(width))),
		top:    int(math.Floor(v.T * float64(height))),
		bottom: int(math.Floor(v.B * float64(height))),
	}
}
