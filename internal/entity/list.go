package entity

// List is the set of entities on one floor, in spawn order.
type List []*Entity

// At returns every entity standing on (x, y).
func (l List) At(x, y int) []*Entity {
	var out []*Entity
	for _, e := range l {
		if e.X == x && e.Y == y {
			out = append(out, e)
		}
	}
	return out
}

// BlockerAt returns the creature occupying (x, y), if any.
func (l List) BlockerAt(x, y int) *Entity {
	for _, e := range l {
		if e.X == x && e.Y == y && e.BlocksMovement() {
			return e
		}
	}
	return nil
}

// Count returns how many entities have the given kind.
func (l List) Count(kind Kind) int {
	n := 0
	for _, e := range l {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
