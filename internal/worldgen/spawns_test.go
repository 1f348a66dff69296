package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

func TestStartingPosition(t *testing.T) {
	cfg := SmallConfig() // center (128, 128)
	network := world.Network{
		Railway:  []core.Vec2I{core.V(100, 100), core.V(130, 120), core.V(200, 200), core.V(128, 110)},
		Stations: []world.Station{{Index: 0}, {Index: 1}, {Index: 2}},
	}
	pos, err := computeStartingPosition(cfg, &network)
	require.NoError(t, err)
	assert.Equal(t, core.V(132, 118), pos)

	// ties keep the first station
	network.Stations = append(network.Stations, world.Station{Index: 3})
	network.Railway[3] = core.V(128, 138)
	pos, err = computeStartingPosition(cfg, &network)
	require.NoError(t, err)
	assert.Equal(t, core.V(132, 118), pos)

	_, err = computeStartingPosition(cfg, &world.Network{})
	assert.ErrorIs(t, err, ErrStationOffRailway)
}

func TestGenerateSpawns(t *testing.T) {
	cfg := SmallConfig()
	w := world.New(cfg.Size())
	w.Network = world.Network{
		Railway:  []core.Vec2I{core.V(128, 100)},
		Stations: []world.Station{{Index: 0}},
	}
	require.NoError(t, generateSpawns(cfg, w))

	hero, ok := w.Spawn(world.SpawnHero)
	require.True(t, ok)
	assert.Equal(t, core.V(128, 98), hero.Position)
	cow, ok := w.Spawn(world.SpawnCow)
	require.True(t, ok)
	assert.Equal(t, hero.Position.Add(companionOffset), cow.Position)
}

func TestProgress(t *testing.T) {
	var p Progress
	assert.Equal(t, StageStart, p.Stage())
	assert.Zero(t, p.Fraction())

	p.set(StageRails)
	assert.Equal(t, StageRails, p.Stage())
	p.set(StageDone)
	assert.Equal(t, 1.0, p.Fraction())
	assert.Equal(t, "done", p.Stage().String())
	assert.Equal(t, "invalid", Stage(99).String())

	var missing *Progress
	assert.NotPanics(t, func() { missing.set(StageTowns) })
}
