// Package web serves read-only snapshots of generated floors over HTTP.
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/samdwyer/crawlview/internal/game"
	"github.com/samdwyer/crawlview/internal/gamedata"
)

// maxMoves bounds the replayed action string of one request.
const maxMoves = 2000

// Server answers floor and view requests. Every request builds its own
// session, so handlers share nothing mutable.
type Server struct {
	cfg game.Config
	cat *gamedata.Catalog
	tr  *game.Translator
}

// NewServer creates a server that generates floors with cfg as the base
// settings.
func NewServer(cfg game.Config, cat *gamedata.Catalog, tr *game.Translator) *Server {
	return &Server{cfg: cfg, cat: cat, tr: tr}
}

// Routes configures all routes and returns the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/floor/{level}", s.GetFloor)
		r.Get("/monsters", s.ListMonsters)
	})

	r.Get("/view", s.GetView)

	return r
}

// sessionConfig overlays the seed and floor query values on the base config.
func (s *Server) sessionConfig(r *http.Request, level int) (game.Config, error) {
	cfg := s.cfg
	cfg.StartFloor = level
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, err
		}
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
