package view

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// rgb builds a color from float channels, flooring and clamping each to 0..255.
func rgb(r, g, b float64) tcell.Color {
	return tcell.NewRGBColor(channel(r), channel(g), channel(b))
}

func channel(v float64) int32 {
	return int32(math.Max(0, math.Min(255, math.Floor(v))))
}

// dim scales a color's channels by brightness. Colors without an RGB value
// are returned unchanged.
func dim(c tcell.Color, brightness float64) tcell.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return c
	}
	return rgb(float64(r)*brightness, float64(g)*brightness, float64(b)*brightness)
}
