package game

import (
	"fmt"
	"strconv"

	"github.com/samdwyer/crawlview/internal/view"
	"github.com/samdwyer/crawlview/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	MapWidth    int
	MapHeight   int
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int

	MaxFloors  int // Deepest floor; 0 means unbounded
	StartFloor int
	FOVRadius  int

	ViewWidth  int // First-person view size
	ViewHeight int

	LocaleDir string // gettext catalog root; empty shows English
	Lang      string
	DataDir   string // Overrides the embedded monsters.json and items.json
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		MapWidth:    world.DefaultWidth,
		MapHeight:   world.DefaultHeight,
		MaxRooms:    20,
		RoomMinSize: 4,
		RoomMaxSize: 10,
		MaxFloors:   10,
		StartFloor:  1,
		FOVRadius:   world.DefaultFOVRadius,
		ViewWidth:   view.DefaultViewWidth,
		ViewHeight:  view.DefaultViewHeight,
		Lang:        "en_US",
	}
}

// ConfigFromEnv overlays CRAWLVIEW_* variables on the defaults. getenv is
// usually os.Getenv.
func ConfigFromEnv(getenv func(string) string) (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		key string
		dst *int
	}{
		{"CRAWLVIEW_MAP_WIDTH", &cfg.MapWidth},
		{"CRAWLVIEW_MAP_HEIGHT", &cfg.MapHeight},
		{"CRAWLVIEW_MAX_ROOMS", &cfg.MaxRooms},
		{"CRAWLVIEW_ROOM_MIN", &cfg.RoomMinSize},
		{"CRAWLVIEW_ROOM_MAX", &cfg.RoomMaxSize},
		{"CRAWLVIEW_MAX_FLOORS", &cfg.MaxFloors},
		{"CRAWLVIEW_START_FLOOR", &cfg.StartFloor},
		{"CRAWLVIEW_FOV_RADIUS", &cfg.FOVRadius},
		{"CRAWLVIEW_VIEW_WIDTH", &cfg.ViewWidth},
		{"CRAWLVIEW_VIEW_HEIGHT", &cfg.ViewHeight},
	}
	for _, v := range ints {
		raw := getenv(v.key)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	if raw := getenv("CRAWLVIEW_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("CRAWLVIEW_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := getenv("CRAWLVIEW_LOCALE_DIR"); v != "" {
		cfg.LocaleDir = v
	}
	if v := getenv("CRAWLVIEW_LANG"); v != "" {
		cfg.Lang = v
	}
	if v := getenv("CRAWLVIEW_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	return cfg, cfg.Validate()
}

// Validate rejects settings the generator or renderer cannot work with.
func (c Config) Validate() error {
	switch {
	case c.MapWidth < 3 || c.MapHeight < 3:
		return fmt.Errorf("map size %dx%d is too small", c.MapWidth, c.MapHeight)
	case c.RoomMinSize < 1 || c.RoomMaxSize < c.RoomMinSize:
		return fmt.Errorf("invalid room size range %d..%d", c.RoomMinSize, c.RoomMaxSize)
	case c.MaxFloors < 0:
		return fmt.Errorf("max floors must not be negative, got %d", c.MaxFloors)
	case c.StartFloor < 1 || (c.MaxFloors > 0 && c.StartFloor > c.MaxFloors):
		return fmt.Errorf("start floor %d outside 1..%d", c.StartFloor, c.MaxFloors)
	case c.FOVRadius < 0:
		return fmt.Errorf("FOV radius must not be negative, got %d", c.FOVRadius)
	case c.ViewWidth < 1 || c.ViewHeight < 1:
		return fmt.Errorf("view size %dx%d is too small", c.ViewWidth, c.ViewHeight)
	}
	return nil
}

// GenParams returns the generator settings for a floor.
func (c Config) GenParams(floor int) world.GenParams {
	return world.GenParams{
		Width:       c.MapWidth,
		Height:      c.MapHeight,
		MaxRooms:    c.MaxRooms,
		RoomMinSize: c.RoomMinSize,
		RoomMaxSize: c.RoomMaxSize,
		Floor:       floor,
		MaxFloors:   c.MaxFloors,
	}
}
