//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"frontier/internal/app"
	"frontier/internal/worldgen"
)

func main() {
	preset := flag.String("preset", "small", "configuration preset ("+strings.Join(worldgen.Presets(), ", ")+")")
	seed := flag.Int64("seed", 0, "initial seed (0 keeps the preset seed)")
	view := flag.Int("view", 768, "preview side in pixels")
	hudWidth := flag.Int("hud", 320, "parameter panel width in pixels")
	verbose := flag.Bool("v", false, "log generation stages")
	flag.Parse()

	cfg, err := worldgen.Preset(*preset)
	if err != nil {
		log.Fatal(err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	game := app.New(cfg, *view, *hudWidth, logger)

	ebiten.SetWindowTitle("frontier worldgen")
	ebiten.SetWindowSize(*view+*hudWidth, *view)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
