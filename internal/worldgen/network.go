package worldgen

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"frontier/internal/route"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// networkStats reports what the router did, for logging and summaries.
type networkStats struct {
	reducedLength int
	stopTime      int
	reversed      bool
	roadsSkipped  int
}

// railwayCost charges the step distance scaled up by the squared altitude
// slope between the two map cells.
func railwayCost(raw *Raw, slopeFactor float64) route.CostFunc {
	return func(from, to core.Vec2I) float64 {
		d := core.Euclidean(from, to)
		a := raw.Altitude.Value(toMap(from))
		b := raw.Altitude.Value(toMap(to))
		slope := math.Abs(a-b) / d
		return d * (1 + slopeFactor*slope*slope)
	}
}

// terrainGrid marks a reduced cell walkable when the 5x5 block around its map
// cell holds at most CliffThreshold cliffs.
func terrainGrid(cfg Config, cells *core.Grid[world.Cell]) *route.Grid {
	grid := route.NewGrid(cfg.ReducedSize())
	size := grid.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			pos := core.Vec2I{X: x, Y: y}
			center := toMap(pos)
			cliffs := 0
			for dy := -2; dy <= 2; dy++ {
				for dx := -2; dx <= 2; dx++ {
					n := core.Vec2I{X: center.X + dx, Y: center.Y + dy}
					if (dx == 0 && dy == 0) || !cells.Valid(n) {
						continue
					}
					if cells.At(n).Decoration == world.DecorationCliff {
						cliffs++
					}
				}
			}
			grid.SetWalkable(pos, cliffs <= cfg.Params.CliffThreshold)
		}
	}
	return grid
}

// blockTowns removes the town footprints from the routing grid. They are
// grown by one cell so that no reduced cell outside them can expand into the
// map footprint.
func blockTowns(grid *route.Grid, p Params, pl *places) {
	for _, town := range pl.towns {
		grid.BlockRect(town.space(p).Grow(1))
	}
}

// blockStations removes the station spurs and their endpoints. The router
// still reaches an endpoint when it is the start or the goal.
func blockStations(grid *route.Grid, pl *places) {
	for _, town := range pl.towns {
		for _, pos := range town.spur() {
			grid.SetWalkable(pos, false)
		}
		grid.SetWalkable(town.railArrival, false)
		grid.SetWalkable(town.railDeparture, false)
	}
}

// blockLocalities removes every locality footprint, grown by one cell,
// except the one at index skip.
func blockLocalities(grid *route.Grid, p Params, pl *places, skip int) {
	d := p.ReducedLocalityDiameter()
	for i, loc := range pl.localities {
		if i == skip {
			continue
		}
		grid.BlockRect(core.RectFromCenterSize(loc.center, d, d).Grow(1))
	}
}

// generateNetwork builds the railway loop through every town in angular
// order around the world center, then stations, trains and roads.
func generateNetwork(cfg Config, raw *Raw, cells *core.Grid[world.Cell], pl *places, rng *core.RNG, log *slog.Logger) (world.Network, networkStats, error) {
	p := cfg.Params
	var stats networkStats

	terrain := terrainGrid(cfg, cells)
	grid := terrain.Clone()
	blockTowns(grid, p, pl)
	blockStations(grid, pl)
	blockLocalities(grid, p, pl, -1)
	cost := railwayCost(raw, p.SlopeFactor)

	order := make([]int, len(pl.towns))
	for i := range order {
		order[i] = i
	}
	worldCenter := toReduced(cfg.Center())
	sort.SliceStable(order, func(i, j int) bool {
		return pl.towns[order[i]].center.Sub(worldCenter).Angle() < pl.towns[order[j]].center.Sub(worldCenter).Angle()
	})

	var reduced []core.Vec2I
	for i, current := range order {
		from := pl.towns[current]
		to := pl.towns[order[(i+1)%len(order)]]

		reduced = append(reduced, from.spur()...)

		path, ok := grid.Route(from.railDeparture, to.railArrival, cost)
		if !ok {
			return world.Network{}, stats, fmt.Errorf("%w: from town at %v to town at %v", ErrNoRoute, toMap(from.center), toMap(to.center))
		}
		for _, pos := range path {
			grid.SetWalkable(pos, false)
			for _, off := range core.EightNeighbors {
				grid.SetWalkable(pos.Add(off), false)
			}
		}
		log.Debug("rail segment", "from", current, "to", order[(i+1)%len(order)], "points", len(path))
		reduced = append(reduced, path...)
	}

	if err := checkLoop(reduced, core.Manhattan); err != nil {
		return world.Network{}, stats, err
	}

	if rng.Bool() {
		slices.Reverse(reduced)
		stats.reversed = true
	}
	stats.reducedLength = len(reduced)

	network := world.Network{Railway: expandLoop(reduced)}
	if err := checkLoop(network.Railway, core.Chebyshev); err != nil {
		return world.Network{}, stats, err
	}
	for _, pos := range network.Railway {
		for _, town := range pl.towns {
			if townFootprint(p, town).Contains(pos) {
				return world.Network{}, stats, fmt.Errorf("%w: railway point %v inside town at %v", ErrBrokenRailway, pos, toMap(town.center))
			}
		}
	}

	travel := len(network.Railway) * p.TrainStepTime
	if travel > p.DayTime {
		return world.Network{}, stats, fmt.Errorf("%w: railway travel time %ds exceeds day length %ds", ErrInvalidConfig, travel, p.DayTime)
	}
	totalStop := p.DayTime - travel
	stopTime := totalStop / len(pl.towns)
	remaining := totalStop % len(pl.towns)
	stats.stopTime = stopTime

	for i, town := range pl.towns {
		station := toMap(town.station())
		index := network.IndexOf(station)
		if index < 0 {
			return world.Network{}, stats, fmt.Errorf("%w: station %v", ErrStationOffRailway, station)
		}
		s := world.Station{Index: index, StopTime: stopTime}
		if i == 0 {
			s.StopTime += remaining
		}
		network.Stations = append(network.Stations, s)
	}

	for _, s := range network.Stations {
		network.Trains = append(network.Trains, world.Train{RailwayIndex: s.Index})
	}

	for _, pos := range network.Railway {
		clearDecoration(cells, pos)
		for _, off := range core.EightNeighbors {
			clearDecoration(cells, pos.Add(off))
		}
	}

	if p.Roads {
		network.Roads, stats.roadsSkipped = generateRoads(cfg, terrain, pl, reduced, network, cost, log)
	}

	return network, stats, nil
}

// checkLoop verifies that consecutive points, wrapping around, are at
// distance 1 under dist.
func checkLoop(points []core.Vec2I, dist func(a, b core.Vec2I) int) error {
	if len(points) < 2 {
		return fmt.Errorf("%w: %d points", ErrBrokenRailway, len(points))
	}
	for i, pos := range points {
		next := points[(i+1)%len(points)]
		if dist(pos, next) != 1 {
			return fmt.Errorf("%w: %v and %v at index %d are not adjacent", ErrBrokenRailway, pos, next, i)
		}
	}
	return nil
}

// expandLoop converts a closed loop of 4-adjacent reduced points into map
// coordinates. Reduced point i lands at index ReducedFactor*i and the gaps
// are filled with straight steps.
func expandLoop(reduced []core.Vec2I) []core.Vec2I {
	out := make([]core.Vec2I, 0, len(reduced)*ReducedFactor)
	for i, pos := range reduced {
		next := reduced[(i+1)%len(reduced)]
		out = append(out, expandStep(pos, next)...)
	}
	return out
}

// expandStep returns the map cells from toMap(from) up to, but excluding,
// toMap(to).
func expandStep(from, to core.Vec2I) []core.Vec2I {
	start := toMap(from)
	step := to.Sub(from).Sign()
	out := make([]core.Vec2I, ReducedFactor)
	for k := range out {
		out[k] = start.Add(step.Mul(k))
	}
	return out
}

// expandPath converts an open path of 4-adjacent reduced points into map
// coordinates, both ends included.
func expandPath(reduced []core.Vec2I) []core.Vec2I {
	if len(reduced) == 0 {
		return nil
	}
	out := make([]core.Vec2I, 0, (len(reduced)-1)*ReducedFactor+1)
	for i := 0; i+1 < len(reduced); i++ {
		out = append(out, expandStep(reduced[i], reduced[i+1])...)
	}
	return append(out, toMap(reduced[len(reduced)-1]))
}

func townFootprint(p Params, t outerTown) core.RectI {
	return core.RectFromCenterSize(toMap(t.center), p.TownDiameter(), p.TownDiameter())
}

func clearDecoration(cells *core.Grid[world.Cell], pos core.Vec2I) {
	if cells.Valid(pos) {
		cells.Ptr(pos).Decoration = world.DecorationNone
	}
}

// roadCrossingPenalty is the cost multiplier for a road step onto the
// railway, so roads cross the tracks instead of running along them.
const roadCrossingPenalty = 10

// generateRoads links every locality to its nearest station. Roads avoid the
// towns and the other localities and may cross the railway. A locality that
// cannot be linked is skipped. It returns the road cells in row-major order
// and the number of skipped localities.
func generateRoads(cfg Config, terrain *route.Grid, pl *places, railway []core.Vec2I, network world.Network, cost route.CostFunc, log *slog.Logger) ([]core.Vec2I, int) {
	p := cfg.Params
	base := terrain.Clone()
	blockTowns(base, p, pl)

	onReducedRailway := mapset.New[core.Vec2I]()
	for _, pos := range railway {
		onReducedRailway.Put(pos)
	}
	roadCost := func(from, to core.Vec2I) float64 {
		c := cost(from, to)
		if onReducedRailway.Has(to) {
			c *= roadCrossingPenalty
		}
		return c
	}

	onRailway := mapset.New[core.Vec2I]()
	for _, pos := range network.Railway {
		onRailway.Put(pos)
	}

	roads := mapset.New[core.Vec2I]()
	skipped := 0
	for i, loc := range pl.localities {
		grid := base.Clone()
		blockLocalities(grid, p, pl, i)

		goal, ok := nearestStation(network, toMap(loc.center))
		if !ok {
			skipped++
			continue
		}
		path, ok := grid.Route(loc.center, toReduced(goal), roadCost)
		if !ok {
			log.Debug("road skipped", "locality", toMap(loc.center))
			skipped++
			continue
		}
		for _, pos := range expandPath(path) {
			if !onRailway.Has(pos) {
				roads.Put(pos)
			}
		}
	}

	out := make([]core.Vec2I, 0, roads.Size())
	roads.Each(func(pos core.Vec2I) {
		out = append(out, pos)
	})
	slices.SortFunc(out, func(a, b core.Vec2I) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out, skipped
}

// nearestStation returns the station position closest to pos.
func nearestStation(network world.Network, pos core.Vec2I) (core.Vec2I, bool) {
	best, found := core.Vec2I{}, false
	bestDistance := 0
	for _, s := range network.Stations {
		station := network.StationPosition(s)
		if d := core.Manhattan(station, pos); !found || d < bestDistance {
			best, bestDistance, found = station, d, true
		}
	}
	return best, found
}
