package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawlview/internal/entity"
	"github.com/samdwyer/crawlview/internal/game"
	"github.com/samdwyer/crawlview/internal/telemetry"
	"github.com/samdwyer/crawlview/internal/world"
)

// FloorResponse is the JSON form of one generated floor.
type FloorResponse struct {
	Seed       int64            `json:"seed"`
	Level      int              `json:"level"`
	Width      int              `json:"width"`
	Height     int              `json:"height"`
	Tiles      []string         `json:"tiles"`
	Rooms      []RoomResponse   `json:"rooms"`
	Entities   []EntityResponse `json:"entities"`
	Arrival    PointResponse    `json:"arrival"`
	StairsUp   *PointResponse   `json:"stairsUp,omitempty"`
	StairsDown *PointResponse   `json:"stairsDown,omitempty"`
}

// PointResponse is a map cell.
type PointResponse struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func point(p world.Point) *PointResponse {
	return &PointResponse{X: p.X, Y: p.Y}
}

// RoomResponse is a room rectangle; x2 and y2 are exclusive.
type RoomResponse struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// EntityResponse describes one creature or item.
type EntityResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Glyph string `json:"glyph"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	HP    int    `json:"hp,omitempty"`
}

// GetFloor handles GET /api/floor/{level}?seed=N
func (s *Server) GetFloor(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid floor level")
		return
	}
	cfg, err := s.sessionConfig(r, level)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, span := telemetry.Tracer("web").Start(r.Context(), "web.floor")
	defer span.End()

	session, err := game.NewSession(ctx, cfg, s.cat, s.tr)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	span.SetAttributes(attribute.Int64("game.seed", session.Seed()), attribute.Int("floor.level", level))

	respondJSON(w, http.StatusOK, floorResponse(session.Seed(), session.Floor()))
}

func floorResponse(seed int64, f *game.Floor) FloorResponse {
	d := f.Dungeon
	resp := FloorResponse{
		Seed:    seed,
		Level:   f.Level,
		Width:   d.Width,
		Height:  d.Height,
		Tiles:   make([]string, d.Height),
		Rooms:   make([]RoomResponse, 0, len(d.Rooms)),
		Arrival: *point(f.Arrival),
	}
	for y := 0; y < d.Height; y++ {
		row := make([]rune, d.Width)
		for x := range row {
			row[x] = d.GetTile(x, y).Rune()
		}
		resp.Tiles[y] = string(row)
	}
	for _, room := range d.Rooms {
		resp.Rooms = append(resp.Rooms, RoomResponse{X1: room.X1, Y1: room.Y1, X2: room.X2, Y2: room.Y2})
	}
	for _, e := range f.Entities {
		resp.Entities = append(resp.Entities, EntityResponse{
			ID:    e.DefID,
			Name:  e.Name,
			Kind:  e.Kind.String(),
			Glyph: string(e.Glyph),
			X:     e.X,
			Y:     e.Y,
			HP:    hp(e.Stats),
		})
	}
	if p, ok := d.FindTile(world.TileStairsUp); ok {
		resp.StairsUp = point(p)
	}
	if p, ok := d.FindTile(world.TileStairsDown); ok {
		resp.StairsDown = point(p)
	}
	return resp
}

// ListMonsters handles GET /api/monsters and returns the loaded definitions.
func (s *Server) ListMonsters(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.cat.Monsters.All())
}

func hp(st *entity.Stats) int {
	if st == nil {
		return 0
	}
	return st.HP
}
