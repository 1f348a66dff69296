// Command worldgen generates one world and writes a preview image and a JSON
// summary.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"frontier/internal/render"
	"frontier/internal/worldgen"
)

// setFlags collects repeated -set key=value pairs.
type setFlags map[string]string

func (s setFlags) String() string {
	pairs := make([]string, 0, len(s))
	for k, v := range s {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (s setFlags) Set(v string) error {
	key, value, ok := strings.Cut(v, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", v)
	}
	s[key] = value
	return nil
}

func main() {
	preset := flag.String("preset", "default", "configuration preset ("+strings.Join(worldgen.Presets(), ", ")+")")
	configPath := flag.String("config", "", "JSON file overriding the preset")
	seed := flag.Int64("seed", 0, "world seed (0 keeps the preset seed)")
	pngPath := flag.String("png", "", "write a preview image to this path")
	maxSide := flag.Int("scale", 1024, "longest side of the preview image, 0 for full resolution")
	overlays := flag.Bool("overlays", true, "draw railway, roads, settlements and spawns on the preview")
	underground := flag.Bool("underground", false, "render the cave layer instead of the surface")
	summaryPath := flag.String("json", "", "write the generation summary to this path (- for stdout)")
	verbose := flag.Bool("v", false, "log every stage")
	sets := setFlags{}
	flag.Var(sets, "set", "override a parameter, key=value (repeatable)")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig(*preset, *configPath, sets)
	if err != nil {
		log.Error("configuration", "err", err)
		os.Exit(2)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	res, err := worldgen.Generate(cfg, worldgen.WithLogger(log))
	if err != nil {
		if errors.Is(err, worldgen.ErrInvalidConfig) {
			fmt.Fprintln(os.Stderr, "invalid configuration:", err)
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "world generation failed, try a different seed (seed %d): %v\n", cfg.Seed, err)
		os.Exit(1)
	}

	s := res.Summary
	fmt.Printf("seed %d: %d towns, %d localities, railway %d cells, %d roads, %d caves in %v\n",
		s.Seed, s.Towns, s.Localities, s.RailwayLength, s.Roads, s.Caves, s.Elapsed)

	if *pngPath != "" {
		opts := render.Options{MaxSide: *maxSide}
		if *overlays {
			opts.Overlays = render.OverlayAll
		}
		if *underground {
			opts.Layer = render.LayerUnderground
		}
		if err := writePNG(*pngPath, res, opts); err != nil {
			log.Error("preview", "path", *pngPath, "err", err)
			os.Exit(1)
		}
	}

	if *summaryPath != "" {
		if err := writeSummary(*summaryPath, s); err != nil {
			log.Error("summary", "path", *summaryPath, "err", err)
			os.Exit(1)
		}
	}
}

func loadConfig(preset, path string, sets map[string]string) (worldgen.Config, error) {
	cfg, err := worldgen.Preset(preset)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", path, err)
		}
	}
	for key, value := range sets {
		if !cfg.Override(key, value) {
			return cfg, fmt.Errorf("%w: cannot set %s=%q", worldgen.ErrInvalidConfig, key, value)
		}
	}
	return cfg, nil
}

func writePNG(path string, res *worldgen.Result, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, render.Image(res.World, opts)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeSummary(path string, s worldgen.Summary) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
