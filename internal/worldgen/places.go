package worldgen

import (
	"fmt"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// Settlements are placed on a grid ReducedFactor times coarser than the map.
// toMap returns the center map cell of a reduced cell.
func toMap(p core.Vec2I) core.Vec2I {
	return p.Mul(ReducedFactor).Add(core.Vec2I{X: ReducedFactor / 2, Y: ReducedFactor / 2})
}

func toReduced(p core.Vec2I) core.Vec2I { return p.Div(ReducedFactor) }

// outerTown is a placed town in reduced coordinates.
type outerTown struct {
	center        core.Vec2I
	railArrival   core.Vec2I
	railDeparture core.Vec2I
}

// space returns the town footprint in reduced coordinates.
func (t outerTown) space(p Params) core.RectI {
	d := p.ReducedTownDiameter()
	return core.RectFromCenterSize(t.center, d, d)
}

// station returns the midpoint of the station spur in reduced coordinates.
func (t outerTown) station() core.Vec2I {
	return t.railArrival.Add(t.railDeparture).Div(2)
}

// spur returns the reduced cells strictly between arrival and departure.
func (t outerTown) spur() []core.Vec2I {
	step := t.railDeparture.Sub(t.railArrival).Sign()
	var cells []core.Vec2I
	for pos := t.railArrival.Add(step); pos != t.railDeparture; pos = pos.Add(step) {
		cells = append(cells, pos)
	}
	return cells
}

type outerLocality struct {
	center    core.Vec2I
	kind      world.LocalityType
	direction core.Direction
}

type places struct {
	towns      []outerTown
	localities []outerLocality

	townRounds     int
	localityRounds int
}

// canHavePlace reports whether the square of the given radius around pos is
// entirely prairie and inside the map.
func canHavePlace(cells *core.Grid[world.Cell], pos core.Vec2I, radius int) bool {
	if !cells.Valid(pos) || cells.At(pos).Biome != world.Prairie {
		return false
	}
	area := core.RectFromCenterSize(pos, 2*radius+1, 2*radius+1)
	if !cells.Valid(area.Min) || !cells.Valid(area.Max) {
		return false
	}
	for y := area.Min.Y; y <= area.Max.Y; y++ {
		for x := area.Min.X; x <= area.Max.X; x++ {
			if cells.At(core.Vec2I{X: x, Y: y}).Biome != world.Prairie {
				return false
			}
		}
	}
	return true
}

// samplePlace draws reduced positions until one can host a square of the
// given map radius.
func samplePlace(cells *core.Grid[world.Cell], reduced core.RectI, radius, maxTries int, rng *core.RNG) (core.Vec2I, error) {
	for try := 0; try < maxTries; try++ {
		pos := rng.Position(reduced)
		if canHavePlace(cells, toMap(pos), radius) {
			return pos, nil
		}
	}
	return core.Vec2I{}, fmt.Errorf("%w: no prairie spot of radius %d after %d tries", ErrPlacementInfeasible, radius, maxTries)
}

// sampleSet fills n candidates, restarting the whole round whenever a new
// candidate conflicts with an earlier one. Rejecting at the first conflict
// accepts exactly the rounds a complete draw followed by a check would.
func sampleSet[T any](n int, p Params, draw func() (T, error), farEnough func(candidate T, accepted []T) bool) ([]T, int, error) {
	accepted := make([]T, 0, n)
	for round := 1; round <= p.MaxPlacementRounds; round++ {
		accepted = accepted[:0]
		ok := true
		for len(accepted) < n {
			candidate, err := draw()
			if err != nil {
				return nil, round, err
			}
			if !farEnough(candidate, accepted) {
				ok = false
				break
			}
			accepted = append(accepted, candidate)
		}
		if ok {
			return accepted, round, nil
		}
	}
	return nil, p.MaxPlacementRounds, fmt.Errorf("%w: %d positions not separated after %d rounds", ErrPlacementInfeasible, n, p.MaxPlacementRounds)
}

// generatePlaces places the towns and then the localities.
func generatePlaces(cfg Config, cells *core.Grid[world.Cell], rng *core.RNG) (*places, error) {
	p := cfg.Params
	reduced := core.RectFromSize(cfg.ReducedSize())
	pl := &places{}

	townRadius := p.TownRadius() + p.RailSpacing*ReducedFactor
	centers, rounds, err := sampleSet(p.TownsCount, p,
		func() (core.Vec2I, error) {
			return samplePlace(cells, reduced, townRadius, p.MaxPlacementTries, rng)
		},
		func(pos core.Vec2I, accepted []core.Vec2I) bool {
			for _, other := range accepted {
				if core.Manhattan(pos, other)*ReducedFactor <= p.TownMinDistance {
					return false
				}
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("towns: %w", err)
	}
	pl.townRounds = rounds

	for _, c := range centers {
		town, err := railPoints(cfg, c)
		if err != nil {
			return nil, err
		}
		pl.towns = append(pl.towns, town)
	}

	positions, rounds, err := sampleSet(p.LocalityCount(), p,
		func() (core.Vec2I, error) {
			return samplePlace(cells, reduced, p.LocalityRadius, p.MaxPlacementTries, rng)
		},
		func(pos core.Vec2I, accepted []core.Vec2I) bool {
			for _, other := range accepted {
				if core.Manhattan(pos, other)*ReducedFactor <= p.LocalityMinDistance {
					return false
				}
			}
			for _, town := range centers {
				if core.Manhattan(pos, town)*ReducedFactor <= p.LocalityMinDistance {
					return false
				}
			}
			return true
		})
	if err != nil {
		return nil, fmt.Errorf("localities: %w", err)
	}
	pl.localityRounds = rounds

	center := cfg.Center()
	for _, pos := range positions {
		pl.localities = append(pl.localities, outerLocality{
			center:    pos,
			kind:      world.LocalityTypes[rng.IntN(len(world.LocalityTypes))],
			direction: core.DirectionOf(center.Sub(toMap(pos))),
		})
	}

	return pl, nil
}

// railPoints computes the station spur of a town. The spur runs along the
// footprint side facing the world center, RailSpacing cells away from it.
func railPoints(cfg Config, center core.Vec2I) (outerTown, error) {
	town := outerTown{center: center}
	space := town.space(cfg.Params)
	putAt := func(o core.Orientation) core.Vec2I {
		return space.Corner(o).Add(o.Displacement().Mul(cfg.Params.RailSpacing))
	}

	switch dir := core.DirectionOf(cfg.Center().Sub(toMap(center))); dir {
	case core.Up:
		town.railArrival, town.railDeparture = putAt(core.NorthEast), putAt(core.NorthWest)
	case core.Right:
		town.railArrival, town.railDeparture = putAt(core.SouthEast), putAt(core.NorthEast)
	case core.Down:
		town.railArrival, town.railDeparture = putAt(core.SouthWest), putAt(core.SouthEast)
	case core.Left:
		town.railArrival, town.railDeparture = putAt(core.NorthWest), putAt(core.SouthWest)
	default:
		return town, fmt.Errorf("%w: direction %d", ErrInvalidEnum, dir)
	}
	return town, nil
}
