package gamedata

import (
	"fmt"
	"io/fs"
)

// Catalog bundles everything loaded from one data source.
type Catalog struct {
	Monsters *MonsterRegistry
	Items    *ItemRegistry
	Sprites  *SpriteBook
}

// LoadCatalog reads monsters.json and items.json from fsys.
func LoadCatalog(fsys fs.FS) (*Catalog, error) {
	monsters, err := LoadMonstersFS(fsys)
	if err != nil {
		return nil, fmt.Errorf("load monsters: %w", err)
	}
	items, err := LoadItemsFS(fsys)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	return &Catalog{
		Monsters: NewRegistry(monsters),
		Items:    NewRegistry(items),
		Sprites:  NewSpriteBook(monsters),
	}, nil
}

// DefaultCatalog loads the embedded data.
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(dataFS)
}
