package worldgen

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// twoTowns places a town west and a town east of the center of the small
// preset, with an optional locality north of the center.
func twoTowns(t *testing.T, cfg Config, withLocality bool) *places {
	t.Helper()
	pl := &places{}
	for _, c := range []core.Vec2I{core.V(20, 42), core.V(64, 42)} {
		town, err := railPoints(cfg, c)
		require.NoError(t, err)
		pl.towns = append(pl.towns, town)
	}
	if withLocality {
		pl.localities = append(pl.localities, outerLocality{
			center:    core.V(42, 20),
			kind:      world.LocalityCamp,
			direction: core.Down,
		})
	}
	return pl
}

func TestExpandLoop(t *testing.T) {
	square := []core.Vec2I{core.V(0, 0), core.V(1, 0), core.V(1, 1), core.V(0, 1)}
	require.NoError(t, checkLoop(square, core.Manhattan))

	loop := expandLoop(square)
	require.Len(t, loop, len(square)*ReducedFactor)
	require.NoError(t, checkLoop(loop, core.Chebyshev))
	for i, pos := range square {
		assert.Equal(t, toMap(pos), loop[ReducedFactor*i])
	}

	path := expandPath(square[:3])
	assert.Equal(t, []core.Vec2I{
		core.V(1, 1), core.V(2, 1), core.V(3, 1),
		core.V(4, 1), core.V(4, 2), core.V(4, 3),
		core.V(4, 4),
	}, path)
	assert.Nil(t, expandPath(nil))
}

func TestCheckLoopRejectsGaps(t *testing.T) {
	assert.ErrorIs(t, checkLoop([]core.Vec2I{core.V(0, 0)}, core.Manhattan), ErrBrokenRailway)
	open := []core.Vec2I{core.V(0, 0), core.V(1, 0), core.V(2, 0)}
	assert.ErrorIs(t, checkLoop(open, core.Manhattan), ErrBrokenRailway)
	diagonal := []core.Vec2I{core.V(0, 0), core.V(1, 1)}
	assert.ErrorIs(t, checkLoop(diagonal, core.Manhattan), ErrBrokenRailway)
	assert.NoError(t, checkLoop(diagonal, core.Chebyshev))
}

func TestRailwayCostGrowsWithSlope(t *testing.T) {
	size := core.Size{W: 9, H: 9}
	raw := flatRaw(size, 0.5, 0.5)
	cost := railwayCost(raw, 225)
	assert.InDelta(t, 1.0, cost(core.V(0, 0), core.V(1, 0)), 1e-9)

	raw.Altitude.SetValue(toMap(core.V(1, 0)), 0.6)
	assert.InDelta(t, 1+225*0.01, cost(core.V(0, 0), core.V(1, 0)), 1e-9)
}

func TestTerrainGridCliffThreshold(t *testing.T) {
	cfg := SmallConfig()
	cells := uniformCells(cfg.Size(), world.Prairie)
	cliff := world.Cell{Biome: world.Mountain, Decoration: world.DecorationCliff}
	// two cliffs around (31, 31), the map cell of reduced (10, 10)
	cells.Set(core.V(30, 30), cliff)
	cells.Set(core.V(32, 32), cliff)

	grid := terrainGrid(cfg, cells)
	assert.True(t, grid.Walkable(core.V(10, 10)))

	cells.Set(core.V(33, 29), cliff)
	grid = terrainGrid(cfg, cells)
	assert.False(t, grid.Walkable(core.V(10, 10)))
	assert.True(t, grid.Walkable(core.V(12, 12)))
}

func TestGenerateNetworkTwoTowns(t *testing.T) {
	cfg := SmallConfig()
	p := cfg.Params
	cells := uniformCells(cfg.Size(), world.Prairie)
	cells.Set(core.V(82, 106), world.Cell{Biome: world.Prairie, Decoration: world.DecorationHerb})
	pl := twoTowns(t, cfg, true)

	network, stats, err := generateNetwork(cfg, flatRaw(cfg.Size(), 0.5, 0.5), cells, pl, core.NewRNG(3), discard)
	require.NoError(t, err)

	// two spurs of 13 cells and two straight 31 cell segments
	assert.Equal(t, 88, stats.reducedLength)
	require.Len(t, network.Railway, 88*ReducedFactor)
	assert.True(t, network.IsClosedLoop())

	travel := len(network.Railway) * p.TrainStepTime
	assert.Equal(t, p.DayTime, network.TotalStopTime()+travel)
	require.Len(t, network.Stations, 2)
	for i, s := range network.Stations {
		assert.Equal(t, toMap(pl.towns[i].station()), network.StationPosition(s))
		assert.Equal(t, s.Index, network.Trains[i].RailwayIndex)
	}

	for _, pos := range network.Railway {
		for _, town := range pl.towns {
			assert.False(t, townFootprint(p, town).Contains(pos))
		}
		assert.Equal(t, world.DecorationNone, cells.At(pos).Decoration)
	}

	// the locality is outside the loop and its station faces inward
	require.NotEmpty(t, network.Roads)
	assert.Zero(t, stats.roadsSkipped)
	for i, pos := range network.Roads {
		assert.Negative(t, network.IndexOf(pos))
		if i > 0 {
			prev := network.Roads[i-1]
			assert.True(t, prev.Y < pos.Y || (prev.Y == pos.Y && prev.X < pos.X))
		}
	}
}

func TestGenerateNetworkWithoutRoads(t *testing.T) {
	cfg := SmallConfig()
	raw := flatRaw(cfg.Size(), 0.5, 0.5)

	network, _, err := generateNetwork(cfg, raw, uniformCells(cfg.Size(), world.Prairie), twoTowns(t, cfg, false), core.NewRNG(3), discard)
	require.NoError(t, err)
	assert.Empty(t, network.Roads)

	cfg.Params.Roads = false
	network, _, err = generateNetwork(cfg, raw, uniformCells(cfg.Size(), world.Prairie), twoTowns(t, cfg, true), core.NewRNG(3), discard)
	require.NoError(t, err)
	assert.Empty(t, network.Roads)
}

func TestGenerateNetworkFailures(t *testing.T) {
	cfg := SmallConfig()
	raw := flatRaw(cfg.Size(), 0.5, 0.5)

	cells := uniformCells(cfg.Size(), world.Prairie)
	cliff := world.Cell{Biome: world.Mountain, Decoration: world.DecorationCliff}
	for y := 0; y < cfg.Height; y++ {
		for x := 120; x < 136; x++ {
			cells.Set(core.V(x, y), cliff)
		}
	}
	_, _, err := generateNetwork(cfg, raw, cells, twoTowns(t, cfg, false), core.NewRNG(3), discard)
	assert.ErrorIs(t, err, ErrNoRoute)

	cfg.Params.DayTime = 1000
	_, _, err = generateNetwork(cfg, raw, uniformCells(cfg.Size(), world.Prairie), twoTowns(t, cfg, false), core.NewRNG(3), discard)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNearestStation(t *testing.T) {
	network := world.Network{
		Railway:  []core.Vec2I{core.V(0, 0), core.V(1, 0), core.V(2, 0), core.V(3, 0)},
		Stations: []world.Station{{Index: 0}, {Index: 3}},
	}
	got, ok := nearestStation(network, core.V(3, 5))
	require.True(t, ok)
	assert.Equal(t, core.V(3, 0), got)

	_, ok = nearestStation(world.Network{}, core.V(0, 0))
	assert.False(t, ok)
}
