package gamedata

import "math/rand"

// Spawnable is a definition that can be drawn from a weighted registry.
type Spawnable interface {
	Key() string
	Weight() int
	AvailableOn(floor int) bool
}

// Registry holds loaded definitions and provides weighted spawning.
type Registry[T Spawnable] struct {
	defs []T
	byID map[string]int
}

// NewRegistry creates a registry from loaded definitions.
func NewRegistry[T Spawnable](defs []T) *Registry[T] {
	r := &Registry[T]{
		defs: defs,
		byID: make(map[string]int, len(defs)),
	}
	for i, d := range defs {
		r.byID[d.Key()] = i
	}
	return r
}

// MonsterRegistry and ItemRegistry are the two registries the game uses.
type (
	MonsterRegistry = Registry[MonsterDef]
	ItemRegistry    = Registry[ItemDef]
)

// SpawnRandom selects a definition available on floor using weighted
// probability. It returns nil when nothing can spawn there.
func (r *Registry[T]) SpawnRandom(rng *rand.Rand, floor int) *T {
	total := 0
	for i := range r.defs {
		if r.defs[i].AvailableOn(floor) && r.defs[i].Weight() > 0 {
			total += r.defs[i].Weight()
		}
	}
	if total <= 0 {
		return nil
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range r.defs {
		if !r.defs[i].AvailableOn(floor) || r.defs[i].Weight() <= 0 {
			continue
		}
		cumulative += r.defs[i].Weight()
		if roll < cumulative {
			return &r.defs[i]
		}
	}
	return nil
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	i, ok := r.byID[id]
	if !ok {
		return nil
	}
	return &r.defs[i]
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.defs
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.defs)
}
