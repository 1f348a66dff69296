package worldgen

import (
	icore "frontier/internal/core"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

const (
	ground uint8 = iota
	cliff
)

// twelveNeighbors is the rounded plus shape used by the relief automaton.
//
//	. . X . .
//	. X X X .
//	X X P X X
//	. X X X .
//	. . X . .
var twelveNeighbors = [12]core.Vec2I{
	{0, -2},
	{-1, -1}, {0, -1}, {1, -1},
	{-2, 0}, {-1, 0}, {1, 0}, {2, 0},
	{-1, 1}, {0, 1}, {1, 1},
	{0, 2},
}

// generateMountains carves cliffs into the mountain biome and merges them
// into the decoration layer. It returns the number of cliff cells written.
func generateMountains(cells *core.Grid[world.Cell], p Params, rng *core.RNG) int {
	mask := mountainMask(cells, p, rng)
	removeIsolatedGround(cells, mask)
	return applyMountainMask(cells, mask)
}

// mountainMask seeds the automaton and runs MountainIterations generations.
func mountainMask(cells *core.Grid[world.Cell], p Params, rng *core.RNG) *icore.ByteGrid {
	mask := seedMountainMask(cells, p.MountainCliffProbability, rng)
	for i := 0; i < p.MountainIterations; i++ {
		mask = stepMountainMask(cells, mask, p.MountainSurvivalThreshold, p.MountainBirthThreshold)
	}
	return mask
}

// seedMountainMask draws a cliff with probability prob for each mountain
// cell in row-major order. Everything else starts as ground.
func seedMountainMask(cells *core.Grid[world.Cell], prob float64, rng *core.RNG) *icore.ByteGrid {
	mask := icore.NewByteGridSize(cells.Size())
	for i, c := range cells.Cells() {
		if c.Biome == world.Mountain && rng.Bernoulli(prob) {
			mask.Cells()[i] = cliff
		}
	}
	return mask
}

// stepMountainMask runs one automaton generation and returns the next mask.
// Only mountain cells change; neighbors outside the grid are not counted.
func stepMountainMask(cells *core.Grid[world.Cell], mask *icore.ByteGrid, survival, birth int) *icore.ByteGrid {
	next := icore.NewByteGridSize(cells.Size())
	for i, c := range cells.Cells() {
		if c.Biome != world.Mountain {
			continue
		}
		pos := cells.Position(i)
		count := 0
		for _, off := range twelveNeighbors {
			n := pos.Add(off)
			if mask.Valid(n) && mask.At(n) == ground {
				count++
			}
		}
		threshold := birth
		if mask.Cells()[i] == ground {
			threshold = survival
		}
		if count >= threshold {
			next.Cells()[i] = ground
		} else {
			next.Cells()[i] = cliff
		}
	}
	return next
}

// removeIsolatedGround turns mountain ground cells without a ground
// 4-neighbor into cliffs.
func removeIsolatedGround(cells *core.Grid[world.Cell], mask *icore.ByteGrid) {
	for i, c := range cells.Cells() {
		if c.Biome != world.Mountain || mask.Cells()[i] != ground {
			continue
		}
		pos := cells.Position(i)
		isolated := true
		for _, off := range core.FourNeighbors {
			n := pos.Add(off)
			if mask.Valid(n) && mask.At(n) == ground {
				isolated = false
				break
			}
		}
		if isolated {
			mask.Cells()[i] = cliff
		}
	}
}

// applyMountainMask writes cliffs into the decoration layer. Mountain cells
// on the world border are always cliffs.
func applyMountainMask(cells *core.Grid[world.Cell], mask *icore.ByteGrid) int {
	written := 0
	for i := range cells.Cells() {
		c := &cells.Cells()[i]
		if mask.Cells()[i] == cliff || (c.Biome == world.Mountain && cells.IsBorder(cells.Position(i))) {
			c.Decoration = world.DecorationCliff
			written++
		}
	}
	return written
}
