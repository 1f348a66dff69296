package worldgen

import (
	"sort"

	"github.com/zyedidia/generic/queue"

	icore "frontier/internal/core"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// Region is a maximal 4-connected set of cells sharing one biome.
type Region struct {
	Biome  world.Biome
	Points []core.Vec2I
	Bounds core.RectI
}

// Size returns the number of cells in the region.
func (r *Region) Size() int { return len(r.Points) }

// Regions holds the retained regions of each biome, largest first. They are
// analysis data and are not part of the world snapshot.
type Regions struct {
	ByBiome [len(world.Biomes)][]*Region
}

// Of returns the regions of biome b, largest first.
func (r *Regions) Of(b world.Biome) []*Region {
	if !b.Valid() {
		return nil
	}
	return r.ByBiome[b]
}

// Count returns the number of retained regions across all biomes.
func (r *Regions) Count() int {
	n := 0
	for _, list := range r.ByBiome {
		n += len(list)
	}
	return n
}

// computeRegions flood fills the biome grid. Components with at most
// minimumSize cells are dropped.
func computeRegions(cells *core.Grid[world.Cell], minimumSize int) *Regions {
	visited := icore.NewByteGridSize(cells.Size())
	regions := &Regions{}

	for i, c := range cells.Cells() {
		if visited.Cells()[i] != 0 {
			continue
		}
		start := cells.Position(i)
		biome := c.Biome

		region := &Region{Biome: biome, Bounds: core.RectI{Min: start, Max: start}}
		q := queue.New[core.Vec2I]()
		q.Enqueue(start)
		visited.Set(start, 1)

		for !q.Empty() {
			current := q.Dequeue()
			region.Points = append(region.Points, current)
			region.Bounds = region.Bounds.Extend(current)

			for _, off := range core.FourNeighbors {
				n := current.Add(off)
				if !cells.Valid(n) || visited.At(n) != 0 || cells.At(n).Biome != biome {
					continue
				}
				visited.Set(n, 1)
				q.Enqueue(n)
			}
		}

		if region.Size() > minimumSize {
			regions.ByBiome[biome] = append(regions.ByBiome[biome], region)
		}
	}

	for _, list := range regions.ByBiome {
		sort.SliceStable(list, func(i, j int) bool { return list[i].Size() > list[j].Size() })
	}
	return regions
}
