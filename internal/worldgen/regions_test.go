package worldgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// stripes returns a 12x12 grid: a prairie left half, a desert right half
// with a 2x2 forest island, and a single mountain cell.
func stripes() *core.Grid[world.Cell] {
	cells := uniformCells(core.Size{W: 12, H: 12}, world.Prairie)
	for y := 0; y < 12; y++ {
		for x := 6; x < 12; x++ {
			cells.Set(core.V(x, y), world.Cell{Biome: world.Desert})
		}
	}
	for _, p := range []core.Vec2I{core.V(8, 8), core.V(9, 8), core.V(8, 9), core.V(9, 9)} {
		cells.Set(p, world.Cell{Biome: world.Forest})
	}
	cells.Set(core.V(0, 0), world.Cell{Biome: world.Mountain})
	return cells
}

func TestComputeRegionsPartition(t *testing.T) {
	cells := stripes()
	regions := computeRegions(cells, 0)
	require.Equal(t, 4, regions.Count())

	seen := make(map[core.Vec2I]bool)
	for _, b := range world.Biomes {
		for _, r := range regions.Of(b) {
			assert.Equal(t, b, r.Biome)
			for _, p := range r.Points {
				assert.False(t, seen[p], "%v in two regions", p)
				seen[p] = true
				assert.Equal(t, b, cells.At(p).Biome)
				assert.True(t, r.Bounds.Contains(p))
			}
		}
	}
	assert.Len(t, seen, cells.Size().Area())

	assert.Equal(t, 71, regions.Of(world.Prairie)[0].Size())
	assert.Equal(t, 68, regions.Of(world.Desert)[0].Size())
	forest := regions.Of(world.Forest)[0]
	assert.Equal(t, 4, forest.Size())
	assert.Equal(t, core.RectI{Min: core.V(8, 8), Max: core.V(9, 9)}, forest.Bounds)
	assert.Nil(t, regions.Of(world.Biome(200)))
}

func TestComputeRegionsThreshold(t *testing.T) {
	regions := computeRegions(stripes(), 4)
	assert.Equal(t, 2, regions.Count())
	assert.Empty(t, regions.Of(world.Forest))
	assert.Empty(t, regions.Of(world.Mountain))
}

func TestComputeRegionsLargestFirst(t *testing.T) {
	cells := uniformCells(core.Size{W: 10, H: 3}, world.Desert)
	// prairie runs of 1, 3 and 2 cells separated by desert
	for _, x := range []int{0, 2, 3, 4, 6, 7} {
		cells.Set(core.V(x, 1), world.Cell{Biome: world.Prairie})
	}
	list := regionSizes(t, computeRegions(cells, 0), world.Prairie)
	assert.Equal(t, []int{3, 2, 1}, list)
}

func regionSizes(t *testing.T, r *Regions, b world.Biome) []int {
	t.Helper()
	var sizes []int
	for _, region := range r.Of(b) {
		sizes = append(sizes, region.Size())
	}
	return sizes
}
