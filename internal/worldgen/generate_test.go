package worldgen

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// smallWorld generates the small preset. The preset seed must always
// produce a world.
func smallWorld(t *testing.T, opts ...Option) (Config, *Result) {
	t.Helper()
	cfg := SmallConfig()
	res, err := Generate(cfg, opts...)
	require.NoError(t, err, "seed %d", cfg.Seed)
	return cfg, res
}

func TestGenerateSmallWorld(t *testing.T) {
	cfg, res := smallWorld(t)
	p := cfg.Params
	w := res.World
	require.Equal(t, int64(42), cfg.Seed)
	require.Equal(t, core.Size{W: 256, H: 256}, cfg.Size())
	require.Equal(t, 2, p.TownsCount)

	assert.Equal(t, cfg.Seed, w.Seed)
	assert.Equal(t, cfg.Size(), w.Size())

	require.Len(t, w.Towns, p.TownsCount)
	for _, town := range w.Towns {
		town.Footprint(p.TownDiameter()).Each(func(pos core.Vec2I) {
			require.True(t, w.Cells.Valid(pos))
			assert.Equal(t, world.Prairie, w.Cells.At(pos).Biome)
			assert.Equal(t, world.DecorationNone, w.Cells.At(pos).Decoration)
		})
		assert.Equal(t, town.Center, town.Footprint(p.TownDiameter()).Min.Add(core.V(p.TownRadius(), p.TownRadius())))
	}
	assert.Len(t, w.Localities, p.LocalityCount())

	network := w.Network
	require.True(t, network.IsClosedLoop())
	unique := make(map[core.Vec2I]bool, len(network.Railway))
	for _, pos := range network.Railway {
		assert.False(t, unique[pos], "railway visits %v twice", pos)
		unique[pos] = true
		assert.Equal(t, world.DecorationNone, w.Cells.At(pos).Decoration)
		for _, town := range w.Towns {
			assert.False(t, town.Footprint(p.TownDiameter()).Contains(pos))
		}
	}

	require.Len(t, network.Stations, p.TownsCount)
	require.Len(t, network.Trains, p.TownsCount)
	for i, s := range network.Stations {
		assert.Equal(t, s.Index, network.Trains[i].RailwayIndex)
	}
	assert.Equal(t, p.DayTime, network.TotalStopTime()+len(network.Railway)*p.TrainStepTime)
	for _, pos := range network.Roads {
		assert.False(t, unique[pos], "road %v on the railway", pos)
	}

	prairie := res.Regions.Of(world.Prairie)
	require.NotEmpty(t, prairie)
	for _, r := range prairie {
		assert.Greater(t, r.Size(), p.RegionMinimumSize)
	}
	nonMountain := 0
	for _, c := range w.Cells.Cells() {
		if c.Biome != world.Mountain {
			nonMountain++
		}
	}
	assert.Greater(t, 2*prairie[0].Size(), nonMountain, "largest prairie region covers most of the lowland")

	floorUp, floorDown := 0, 0
	for i := range w.Cells.Cells() {
		if w.Cells.Cells()[i].Decoration == world.DecorationFloorDown {
			floorDown++
		}
		if w.Underground.Cells()[i].Decoration == world.DecorationFloorUp {
			floorUp++
		}
	}
	assert.Equal(t, len(res.Caves), floorDown)
	assert.Equal(t, len(res.Caves), floorUp)

	hero, ok := w.Spawn(world.SpawnHero)
	require.True(t, ok)
	cow, ok := w.Spawn(world.SpawnCow)
	require.True(t, ok)
	assert.Equal(t, hero.Position.Add(companionOffset), cow.Position)

	s := res.Summary
	assert.Equal(t, cfg.Seed, s.Seed)
	assert.Equal(t, len(network.Railway), s.RailwayLength)
	assert.Equal(t, len(network.Stations), s.Stations)
	assert.Equal(t, len(network.Roads), s.Roads)
	assert.Equal(t, len(res.Caves), s.Caves)
	assert.Equal(t, len(prairie), s.Regions["prairie"])
	assert.Equal(t, hero.Position, s.Hero)
}

func TestGenerateDeterministic(t *testing.T) {
	cfg, first := smallWorld(t)
	second, err := Generate(cfg)
	require.NoError(t, err)

	a, b := first.World, second.World
	assert.Equal(t, a.Cells, b.Cells)
	assert.Equal(t, a.Underground, b.Underground)
	assert.Equal(t, a.Towns, b.Towns)
	assert.Equal(t, a.Localities, b.Localities)
	assert.Equal(t, a.Network, b.Network)
	assert.Equal(t, a.Spawns, b.Spawns)
	assert.Equal(t, first.Caves, second.Caves)
}

func TestGenerateReportsProgressAndLogs(t *testing.T) {
	var progress Progress
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	smallWorld(t, WithProgress(&progress), WithLogger(log))
	assert.Equal(t, StageDone, progress.Stage())
	assert.Contains(t, buf.String(), "stage done")
	assert.Contains(t, buf.String(), "stage=underground")
}

func TestGenerateRejectsInvalidConfig(t *testing.T) {
	cfg := SmallConfig()
	cfg.Params.TownsCount = 1
	_, err := Generate(cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = SmallConfig()
	cfg.Width = 32
	_, err = Generate(cfg, WithLogger(nil))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
