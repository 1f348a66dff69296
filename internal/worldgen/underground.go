package worldgen

import (
	"fmt"

	icore "frontier/internal/core"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// CaveAccess links a surface cliff to the cave below it.
type CaveAccess struct {
	Entrance core.Vec2I `json:"entrance"`
	Exit     core.Vec2I `json:"exit"`
}

// caveCandidates lists the region cliffs with a cliff 4-neighbor, paired with
// the first such neighbor.
func caveCandidates(cells *core.Grid[world.Cell], region *Region) []CaveAccess {
	var out []CaveAccess
	for _, pos := range region.Points {
		if cells.At(pos).Decoration != world.DecorationCliff {
			continue
		}
		for _, off := range core.FourNeighbors {
			n := pos.Add(off)
			if !cells.Valid(n) {
				continue
			}
			c := cells.At(n)
			// a 4-neighbor with the same biome belongs to the same region
			if c.Biome == region.Biome && c.Decoration == world.DecorationCliff {
				out = append(out, CaveAccess{Entrance: pos, Exit: n})
				break
			}
		}
	}
	return out
}

// caveAccesses picks Size/SurfacePerCave accesses in one region whose
// entrances are pairwise at least CaveMinDistance apart. Candidates are drawn
// without replacement and one too close to an accepted entrance is dropped,
// so the region fails only after every candidate has been tried. A region
// without a single candidate gets no cave.
func caveAccesses(cells *core.Grid[world.Cell], region *Region, p Params, rng *core.RNG) ([]CaveAccess, error) {
	count := region.Size() / p.SurfacePerCave
	if count == 0 {
		return nil, nil
	}
	candidates := caveCandidates(cells, region)
	if len(candidates) == 0 {
		return nil, nil
	}

	reserved := newReservation(region.Bounds)
	accesses := make([]CaveAccess, 0, count)
	for i := 0; i < len(candidates) && len(accesses) < count; i++ {
		j := i + rng.IntN(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
		c := candidates[i]
		if reserved.taken(c.Entrance) {
			continue
		}
		reserved.reserve(c.Entrance, p.CaveMinDistance)
		accesses = append(accesses, c)
	}
	if len(accesses) < count {
		return nil, fmt.Errorf("caves in region of %d cells: %w: %d of %d entrances fit %d apart",
			region.Size(), ErrPlacementInfeasible, len(accesses), count, p.CaveMinDistance)
	}
	return accesses, nil
}

// reservation marks the cells of a rectangle that are too close to an
// accepted cave entrance.
type reservation struct {
	origin core.Vec2I
	mask   *icore.ByteGrid
}

func newReservation(bounds core.RectI) *reservation {
	return &reservation{origin: bounds.Min, mask: icore.NewByteGrid(bounds.W(), bounds.H())}
}

func (r *reservation) taken(pos core.Vec2I) bool {
	return r.mask.At(pos.Sub(r.origin)) != 0
}

// reserve marks every cell at Manhattan distance below distance from pos.
func (r *reservation) reserve(pos core.Vec2I, distance int) {
	local := pos.Sub(r.origin)
	for dy := 1 - distance; dy < distance; dy++ {
		span := distance - 1 - max(dy, -dy)
		for dx := -span; dx <= span; dx++ {
			r.mask.Set(local.Add(core.Vec2I{X: dx, Y: dy}), 1)
		}
	}
}

// generateUnderground carves the caves below every retained mountain region
// and marks their entrances on the surface.
func generateUnderground(p Params, w *world.World, regions *Regions, rng *core.RNG) ([]CaveAccess, error) {
	var all []CaveAccess
	for _, region := range regions.Of(world.Mountain) {
		accesses, err := caveAccesses(w.Cells, region, p, rng)
		if err != nil {
			return nil, err
		}
		for _, a := range accesses {
			carveCave(w, a)
		}
		all = append(all, accesses...)
	}
	return all, nil
}

func carveCave(w *world.World, a CaveAccess) {
	under := w.Underground
	under.Set(a.Entrance, world.UndergroundCell{Decoration: world.DecorationNone})
	under.Neighbors(a.Entrance, core.EightNeighbors[:], func(n core.Vec2I) {
		if under.At(n).Decoration == world.DecorationWall {
			under.Set(n, world.UndergroundCell{Decoration: world.DecorationNone})
		}
	})
	under.Set(a.Exit, world.UndergroundCell{Decoration: world.DecorationFloorUp})
	w.Cells.Ptr(a.Entrance).Decoration = world.DecorationFloorDown
}
