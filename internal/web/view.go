package web

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/crawlview/internal/game"
	"github.com/samdwyer/crawlview/internal/telemetry"
	"github.com/samdwyer/crawlview/internal/view"
)

var viewPage = template.Must(template.New("view").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>crawlview floor {{.Level}}</title>
<style>
body { background: #000; color: #ccc; font-family: monospace; }
pre { line-height: 1.0; margin: 0 0 1em 0; }
.panel { display: inline-block; vertical-align: top; margin-right: 2em; }
</style>
</head>
<body>
<div class="panel"><pre>{{.FirstPerson}}</pre></div>
<div class="panel"><pre>{{.Minimap}}</pre><pre>{{.Compass}}</pre></div>
<pre>{{.Map}}</pre>
<p>{{.Status}}</p>
<ul>{{range .Messages}}<li>{{.}}</li>{{end}}</ul>
<p>seed {{.Seed}}</p>
</body>
</html>
`))

type viewData struct {
	Level       int
	Seed        int64
	FirstPerson template.HTML
	Map         template.HTML
	Minimap     string
	Compass     string
	Status      string
	Messages    []string
}

// GetView handles GET /view?seed=N&floor=L&moves=wwad and renders the
// first-person view after replaying the moves.
func (s *Server) GetView(w http.ResponseWriter, r *http.Request) {
	level := 1
	if raw := r.URL.Query().Get("floor"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid floor", http.StatusBadRequest)
			return
		}
		level = n
	}
	cfg, err := s.sessionConfig(r, level)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	moves := r.URL.Query().Get("moves")
	if len(moves) > maxMoves {
		http.Error(w, "too many moves", http.StatusBadRequest)
		return
	}

	ctx, span := telemetry.Tracer("web").Start(r.Context(), "web.view")
	defer span.End()

	session, err := game.NewSession(ctx, cfg, s.cat, s.tr)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for _, a := range game.ParseActions(moves) {
		if a.Kind == game.ActQuit {
			break
		}
		if err := session.Apply(ctx, a); err != nil && !errors.Is(err, game.ErrNoStairs) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
	span.SetAttributes(
		attribute.Int64("game.seed", session.Seed()),
		attribute.Int("view.turns", session.Turn()),
		attribute.Int("floor.level", session.Floor().Level),
	)

	fp := session.FirstPerson(view.NewProjector(cfg.ViewWidth, cfg.ViewHeight, s.cat.Sprites))
	data := viewData{
		Level:       session.Floor().Level,
		Seed:        session.Seed(),
		FirstPerson: template.HTML(view.HTML(fp)),
		Map:         template.HTML(view.HTML(session.MapFrame(fp.Width, fp.Height))),
		Minimap:     strings.Join(session.Minimap(), "\n"),
		Compass:     view.CompassRose(session.Player().Facing.Angle()),
		Status:      session.Status(),
		Messages:    session.Messages(10),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := viewPage.Execute(w, data); err != nil {
		log.Printf("Error rendering view: %v", err)
	}
}
