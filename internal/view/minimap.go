package view

import (
	"strings"

	"github.com/samdwyer/crawlview/internal/world"
)

// DefaultMinimapRadius is the number of cells shown on each side of the observer.
const DefaultMinimapRadius = 5

// Minimap renders the (2r+1)-square around the observer as text lines, with
// the facing arrow in the middle. With a visibility mask only explored cells
// are drawn; cells off the map are blank.
func Minimap(d *world.Dungeon, vis *world.Visibility, obs Observer, radius int) []string {
	radius = max(0, radius)
	lines := make([]string, 0, 2*radius+1)

	var sb strings.Builder
	for dy := -radius; dy <= radius; dy++ {
		sb.Reset()
		for dx := -radius; dx <= radius; dx++ {
			x, y := obs.X+dx, obs.Y+dy
			switch {
			case dx == 0 && dy == 0:
				sb.WriteRune(normalizeFacing(obs.Facing).Arrow())
			case !d.InBounds(x, y):
				sb.WriteByte(' ')
			case vis != nil && !vis.Explored(x, y):
				sb.WriteByte(' ')
			default:
				sb.WriteRune(d.GetTile(x, y).Rune())
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}
