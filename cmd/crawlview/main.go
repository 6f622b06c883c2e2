// Package main is the entry point for crawlview.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/samdwyer/crawlview/internal/game"
	"github.com/samdwyer/crawlview/internal/gamedata"
	"github.com/samdwyer/crawlview/internal/telemetry"
	"github.com/samdwyer/crawlview/internal/ui"
	"github.com/samdwyer/crawlview/internal/view"
	"github.com/samdwyer/crawlview/internal/web"
)

func main() {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	mode := flag.String("mode", "play", "play, dump or serve")
	seed := flag.Int64("seed", 0, "dungeon seed (0 picks one)")
	floor := flag.Int("floor", 0, "starting floor (0 keeps the configured one)")
	moves := flag.String("moves", "", "actions to replay before dumping, e.g. wwdt")
	showMap := flag.Bool("map", false, "dump the top-down map as well")
	addr := flag.String("addr", ":8080", "listen address for serve mode")
	flag.Parse()

	cfg, err := game.ConfigFromEnv(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *floor != 0 {
		cfg.StartFloor = *floor
	}

	cat, err := loadCatalog(cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to load game data: %v", err)
	}
	tr := game.NewTranslator(cfg.LocaleDir, cfg.Lang)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, telemetry.Options{Enabled: setupOTelEnv(), Mode: *mode})
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Running without observability")
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	switch *mode {
	case "play":
		err = play(ctx, cfg, cat, tr)
	case "dump":
		err = dump(ctx, os.Stdout, cfg, cat, tr, *moves, *showMap)
	case "serve":
		err = serve(ctx, *addr, cfg, cat, tr)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("crawlview: %v", err)
	}
}

func loadCatalog(dir string) (*gamedata.Catalog, error) {
	if dir == "" {
		return gamedata.DefaultCatalog()
	}
	return gamedata.LoadCatalog(os.DirFS(dir))
}

func play(ctx context.Context, cfg game.Config, cat *gamedata.Catalog, tr *game.Translator) error {
	if !ui.IsTerminal(os.Stdout) {
		return errors.New("play mode needs a terminal; try -mode dump")
	}
	if w, h, ok := ui.TerminalSize(os.Stdout); ok && !ui.Fits(w, h, cfg.ViewWidth, cfg.ViewHeight, 2*view.DefaultMinimapRadius+1) {
		log.Printf("Warning: terminal is %dx%d, the view may be clipped", w, h)
	}

	// The screen owns the terminal; keep log output from tearing it.
	log.SetOutput(io.Discard)
	if path := os.Getenv("CRAWLVIEW_LOG_FILE"); path != "" {
		if f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			defer f.Close()
			log.SetOutput(f)
		}
	}

	g, err := game.New(ctx, cfg, cat, tr)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

// dump replays moves and prints the resulting views once.
func dump(ctx context.Context, out io.Writer, cfg game.Config, cat *gamedata.Catalog, tr *game.Translator, moves string, showMap bool) error {
	s, err := game.NewSession(ctx, cfg, cat, tr)
	if err != nil {
		return err
	}
	for _, a := range game.ParseActions(moves) {
		if a.Kind == game.ActQuit {
			break
		}
		if err := s.Apply(ctx, a); err != nil && !errors.Is(err, game.ErrNoStairs) {
			return err
		}
	}

	render := view.Plain
	if ui.IsTerminal(os.Stdout) {
		render = view.ANSI
	}

	fp := s.FirstPerson(view.NewProjector(cfg.ViewWidth, cfg.ViewHeight, cat.Sprites))
	fmt.Fprintln(out, strings.TrimRight(render(fp), "\n"))
	if showMap {
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.TrimRight(render(s.MapFrame(cfg.MapWidth, cfg.MapHeight)), "\n"))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Join(s.Minimap(), "\n"))
	fmt.Fprintln(out, view.CompassRose(s.Player().Facing.Angle()))
	fmt.Fprintln(out, s.Status())
	for _, msg := range s.Messages(5) {
		fmt.Fprintln(out, msg)
	}
	fmt.Fprintf(out, "seed %d\n", s.Seed())
	return nil
}

func serve(ctx context.Context, addr string, cfg game.Config, cat *gamedata.Catalog, tr *game.Translator) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           web.NewServer(cfg, cat, tr).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupOTelEnv configures OTEL environment variables from our custom env vars
// and reports whether an exporter should be started.
func setupOTelEnv() bool {
	apiKey := os.Getenv("HONEYCOMB_CRAWLVIEW_API_KEY")
	if apiKey == "" {
		return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != ""
	}

	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")

	dataset := os.Getenv("HONEYCOMB_CRAWLVIEW_DATASET")
	if dataset == "" {
		dataset = "crawlview" // default dataset name
	}
	// Constructed here because .env files may hold an unexpanded reference
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
	return true
}
