package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/crawlview/internal/game"
	"github.com/samdwyer/crawlview/internal/gamedata"
)

func TestDumpPrintsViews(t *testing.T) {
	cat, err := gamedata.DefaultCatalog()
	if err != nil {
		t.Fatal(err)
	}
	cfg := game.DefaultConfig()
	cfg.Seed = 31

	var buf bytes.Buffer
	if err := dump(context.Background(), &buf, cfg, cat, nil, "wdq", true); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Turn 2", "seed 31", "[", "@"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	lines := strings.Split(out, "\n")
	if got := len([]rune(lines[0])); got != cfg.ViewWidth {
		t.Errorf("first line is %d wide, want %d", got, cfg.ViewWidth)
	}
}

func TestLoadCatalogFromDir(t *testing.T) {
	if _, err := loadCatalog(t.TempDir()); err == nil {
		t.Error("empty data dir should fail to load")
	}
	if _, err := loadCatalog(""); err != nil {
		t.Errorf("embedded catalog: %v", err)
	}
}
