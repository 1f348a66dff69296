package worldgen

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	icore "frontier/internal/core"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

func TestMountainZeroIterationsKeepsSeed(t *testing.T) {
	cells := uniformCells(core.Size{W: 40, H: 30}, world.Mountain)
	p := SmallConfig().Params
	p.MountainIterations = 0

	seeded := seedMountainMask(cells, p.MountainCliffProbability, core.NewRNG(9))
	mask := mountainMask(cells, p, core.NewRNG(9))
	assert.True(t, slices.Equal(seeded.Cells(), mask.Cells()))
	assert.NotZero(t, mask.Count(cliff))
	assert.NotZero(t, mask.Count(ground))
}

func TestMountainStepOnlyTouchesMountains(t *testing.T) {
	cells := uniformCells(core.Size{W: 20, H: 20}, world.Prairie)
	mask := icore.NewByteGridSize(cells.Size())
	mask.Fill(cliff)
	next := stepMountainMask(cells, mask, 6, 8)
	assert.Equal(t, 400, next.Count(ground), "non-mountain cells are always ground")
}

func TestMountainStepThresholds(t *testing.T) {
	cells := uniformCells(core.Size{W: 9, H: 9}, world.Mountain)
	mask := icore.NewByteGridSize(cells.Size())
	center := core.V(4, 4)

	// a lone cliff surrounded by ground has 12 ground neighbors and is born
	mask.Set(center, cliff)
	next := stepMountainMask(cells, mask, 6, 8)
	assert.Equal(t, ground, next.At(center))

	// ground with only 5 ground neighbors dies
	mask.Fill(cliff)
	mask.Set(center, ground)
	for _, off := range twelveNeighbors[:5] {
		mask.Set(center.Add(off), ground)
	}
	next = stepMountainMask(cells, mask, 6, 8)
	assert.Equal(t, cliff, next.At(center))

	// with 6 it survives
	mask.Set(center.Add(twelveNeighbors[5]), ground)
	next = stepMountainMask(cells, mask, 6, 8)
	assert.Equal(t, ground, next.At(center))
}

func TestRemoveIsolatedGround(t *testing.T) {
	cells := uniformCells(core.Size{W: 5, H: 5}, world.Mountain)
	mask := icore.NewByteGridSize(cells.Size())
	mask.Fill(cliff)
	mask.Set(core.V(2, 2), ground)
	mask.Set(core.V(0, 0), ground)
	mask.Set(core.V(1, 0), ground)

	removeIsolatedGround(cells, mask)
	assert.Equal(t, cliff, mask.At(core.V(2, 2)))
	assert.Equal(t, ground, mask.At(core.V(0, 0)))
	assert.Equal(t, ground, mask.At(core.V(1, 0)))
}

func TestGenerateMountainsSealsBorder(t *testing.T) {
	cells := uniformCells(core.Size{W: 32, H: 32}, world.Mountain)
	p := SmallConfig().Params
	p.MountainCliffProbability = 0

	written := generateMountains(cells, p, core.NewRNG(1))
	require.Equal(t, 4*31, written)
	for i, c := range cells.Cells() {
		if cells.IsBorder(cells.Position(i)) {
			assert.Equal(t, world.DecorationCliff, c.Decoration)
		} else {
			assert.Equal(t, world.DecorationNone, c.Decoration)
		}
	}
}
