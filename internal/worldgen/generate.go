// Package worldgen turns a seed into a complete world snapshot: terrain,
// settlements, a closed railway loop and the caves below the mountains.
//
// The pipeline is strictly sequential and deterministic. The same Config
// always produces the same world.
package worldgen

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	icore "frontier/internal/core"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// Option customizes a Generate call.
type Option func(*options)

type options struct {
	log      *slog.Logger
	progress *Progress
}

// WithLogger routes stage logs to log.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithProgress publishes the running stage to p.
func WithProgress(p *Progress) Option {
	return func(o *options) { o.progress = p }
}

// Result is the outcome of a successful generation.
type Result struct {
	World *world.World
	// Regions are the biome regions used to place the caves.
	Regions *Regions
	Caves   []CaveAccess
	Summary Summary
}

// Summary describes a generated world for reports.
type Summary struct {
	Seed           int64          `json:"seed"`
	Width          int            `json:"width"`
	Height         int            `json:"height"`
	Towns          int            `json:"towns"`
	Localities     int            `json:"localities"`
	TownRounds     int            `json:"town_rounds"`
	LocalityRounds int            `json:"locality_rounds"`
	Cliffs         int            `json:"cliffs"`
	RailwayLength  int            `json:"railway_length"`
	Stations       int            `json:"stations"`
	StopTime       int            `json:"stop_time"`
	Roads          int            `json:"roads"`
	RoadsSkipped   int            `json:"roads_skipped"`
	Regions        map[string]int `json:"regions"`
	Caves          int            `json:"caves"`
	Hero           core.Vec2I     `json:"hero"`
	Elapsed        time.Duration  `json:"elapsed"`
}

// Generate runs the whole pipeline. Any stage failure aborts generation.
func Generate(cfg Config, opts ...Option) (*Result, error) {
	o := options{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &generator{
		cfg:      cfg,
		p:        cfg.Params,
		rng:      core.NewRNG(cfg.Seed),
		log:      o.log.With("seed", cfg.Seed),
		progress: o.progress,
		watch:    icore.NewStopwatch(),
	}
	res, err := g.run()
	if err != nil {
		g.log.Error("world generation failed", "stage", g.stage, "err", err)
		return nil, err
	}
	return res, nil
}

type generator struct {
	cfg      Config
	p        Params
	rng      *core.RNG
	log      *slog.Logger
	progress *Progress
	watch    *icore.Stopwatch
	stage    Stage
}

func (g *generator) enter(s Stage) {
	g.stage = s
	g.progress.set(s)
}

func (g *generator) done(args ...any) {
	args = append([]any{"stage", g.stage, "elapsed", g.watch.Lap()}, args...)
	g.log.Info("stage done", args...)
}

func (g *generator) run() (*Result, error) {
	g.enter(StageStart)
	g.log.Info("starting generation", "width", g.cfg.Width, "height", g.cfg.Height)

	g.enter(StageTerrain)
	raw := generateRaw(g.cfg, g.rng)
	g.done()

	g.enter(StageBiomes)
	w := world.FromCells(generateOutline(g.cfg, raw, g.rng))
	w.Seed = g.cfg.Seed
	g.done()

	g.enter(StageMountains)
	cliffs := generateMountains(w.Cells, g.p, g.rng)
	g.done("cliffs", cliffs)

	g.enter(StageTowns)
	pl, err := generatePlaces(g.cfg, w.Cells, g.rng)
	if err != nil {
		return nil, err
	}
	g.done("town_rounds", pl.townRounds, "locality_rounds", pl.localityRounds)

	g.enter(StageRails)
	network, stats, err := generateNetwork(g.cfg, raw, w.Cells, pl, g.rng, g.log)
	if err != nil {
		return nil, err
	}
	w.Network = network
	g.done("railway", len(network.Railway), "stop_time", stats.stopTime, "reversed", stats.reversed, "roads", len(network.Roads))

	g.enter(StageBuildings)
	w.Towns = newTowns(g.p, pl)
	if err := generateTowns(g.p, w.Cells, w.Towns, g.rng); err != nil {
		return nil, err
	}
	w.Localities = newLocalities(pl)
	g.done("towns", len(w.Towns))

	g.enter(StageRegions)
	regions := computeRegions(w.Cells, g.p.RegionMinimumSize)
	regionCounts := make(map[string]int, len(world.Biomes))
	for _, b := range world.Biomes {
		regionCounts[b.String()] = len(regions.Of(b))
	}
	g.done(
		"prairie", regionCounts[world.Prairie.String()],
		"desert", regionCounts[world.Desert.String()],
		"forest", regionCounts[world.Forest.String()],
		"mountain", regionCounts[world.Mountain.String()],
	)

	g.enter(StageUnderground)
	caves, err := generateUnderground(g.p, w, regions, g.rng)
	if err != nil {
		return nil, err
	}
	g.done("caves", len(caves))

	g.enter(StageHero)
	if err := generateSpawns(g.cfg, w); err != nil {
		return nil, fmt.Errorf("spawns: %w", err)
	}
	hero, _ := w.Spawn(world.SpawnHero)
	g.done("hero", hero.Position)

	g.enter(StageDone)
	total := g.watch.Total()
	g.log.Info("generation done", "elapsed", total)

	return &Result{
		World:   w,
		Regions: regions,
		Caves:   caves,
		Summary: Summary{
			Seed:           g.cfg.Seed,
			Width:          g.cfg.Width,
			Height:         g.cfg.Height,
			Towns:          len(w.Towns),
			Localities:     len(w.Localities),
			TownRounds:     pl.townRounds,
			LocalityRounds: pl.localityRounds,
			Cliffs:         cliffs,
			RailwayLength:  len(network.Railway),
			Stations:       len(network.Stations),
			StopTime:       stats.stopTime,
			Roads:          len(network.Roads),
			RoadsSkipped:   stats.roadsSkipped,
			Regions:        regionCounts,
			Caves:          len(caves),
			Hero:           hero.Position,
			Elapsed:        total,
		},
	}, nil
}

func newLocalities(pl *places) []world.Locality {
	out := make([]world.Locality, len(pl.localities))
	for i, l := range pl.localities {
		out[i] = world.Locality{Position: toMap(l.center), Type: l.kind, Direction: l.direction}
	}
	return out
}
