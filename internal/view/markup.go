package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/gookit/color"
)

// HTML serializes a frame as lines of inline-styled spans, one span per run
// of same-colored cells.
func HTML(f *Frame) string {
	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].Color == row[start].Color {
				end++
			}
			fmt.Fprintf(&sb, `<span style="color:%s">%s</span>`, cssColor(row[start]), html.EscapeString(runes(row[start:end])))
			start = end
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cssColor(c Cell) string {
	hex := c.Color.Hex()
	if hex < 0 {
		return "inherit"
	}
	return fmt.Sprintf("#%06x", hex)
}

// ANSI serializes a frame with 24-bit terminal color escapes. When color
// output is disabled the glyphs are emitted plain.
func ANSI(f *Frame) string {
	var sb strings.Builder
	for y := 0; y < f.Height; y++ {
		row := f.Row(y)
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && row[end].Color == row[start].Color {
				end++
			}
			text := runes(row[start:end])
			if r, g, b := row[start].Color.RGB(); r >= 0 {
				text = color.RGB(uint8(r), uint8(g), uint8(b)).Sprint(text)
			}
			sb.WriteString(text)
			start = end
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Plain returns the glyphs only, one line per row.
func Plain(f *Frame) string {
	lines := make([]string, f.Height)
	for y := range lines {
		lines[y] = runes(f.Row(y))
	}
	return strings.Join(lines, "\n")
}

func runes(cells []Cell) string {
	rs := make([]rune, len(cells))
	for i, c := range cells {
		rs[i] = c.Glyph
	}
	return string(rs)
}
