package worldgen

import (
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// generateOutline classifies every cell into a biome and scatters the
// vegetation. Random draws happen in row-major order.
//
//	          1 +----------+--------+
//	            | Mountain | Forest |
//	altitude    +--------+-+--------+
//	            | Desert | Prairie  |
//	          0 +--------+----------+
//	            0     moisture      1
func generateOutline(cfg Config, raw *Raw, rng *core.RNG) *core.Grid[world.Cell] {
	p := cfg.Params
	cells := core.NewGrid(cfg.Size(), world.Cell{})

	for i := range cells.Cells() {
		pos := cells.Position(i)
		altitude := raw.Altitude.Value(pos)
		moisture := raw.Moisture.Value(pos)
		cell := &cells.Cells()[i]

		if altitude < p.AltitudeThreshold {
			if moisture < p.MoistureLoThreshold {
				cell.Biome = world.Desert
				if rng.Bernoulli(p.DesertCactusProbability * moisture / p.MoistureLoThreshold) {
					cell.Decoration = world.DecorationCactus
				}
			} else {
				cell.Biome = world.Prairie
				if rng.Bernoulli(p.PrairieHerbProbability * moisture) {
					cell.Decoration = world.DecorationHerb
				}
			}
			continue
		}

		if moisture < p.MoistureHiThreshold {
			// cliffs come from the mountain automaton
			cell.Biome = world.Mountain
			continue
		}

		cell.Biome = world.Forest
		if cells.IsBorder(pos) || rng.Bernoulli(p.ForestTreeProbability*moisture) {
			cell.Decoration = world.DecorationTree
		}
	}

	return cells
}
