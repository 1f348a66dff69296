package worldgen

import (
	"fmt"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// newBuildingPool returns one of each structure plus enough vacant lots to
// fill the four street-facing block lines of a town exactly.
func newBuildingPool() []world.Building {
	return []world.Building{
		world.BuildingBank,
		world.BuildingCasino,
		world.BuildingChurch,
		world.BuildingClothShop,
		world.BuildingFoodShop,
		world.BuildingHotel,
		world.BuildingHouse1,
		world.BuildingHouse2,
		world.BuildingHouse3,
		world.BuildingMarshalOffice,
		world.BuildingRestaurant,
		world.BuildingSaloon,
		world.BuildingSchool,
		world.BuildingWeaponShop,

		world.BuildingNone,
		world.BuildingNone,
		world.BuildingNone,
		world.BuildingNone,
		world.BuildingNone,
		world.BuildingNone,
	}
}

// newTowns converts the placed towns to map coordinates.
func newTowns(p Params, pl *places) []world.Town {
	radius := p.TownRadius()
	towns := make([]world.Town, len(pl.towns))
	for i, t := range pl.towns {
		center := toMap(t.center)
		towns[i] = world.Town{
			Center:        center,
			Position:      center.Sub(core.Vec2I{X: radius, Y: radius}),
			RailArrival:   toMap(t.railArrival),
			RailDeparture: toMap(t.railDeparture),
		}
	}
	return towns
}

// generateTowns lays out the blocks of every town and clears the terrain
// decoration under the town footprints.
func generateTowns(p Params, cells *core.Grid[world.Cell], towns []world.Town, rng *core.RNG) error {
	pool := newBuildingPool()
	for i := range towns {
		consumed := layoutTown(&towns[i], pool, rng)
		if consumed != len(pool) {
			return fmt.Errorf("%w: town %d consumed %d of %d buildings", ErrLayoutMismatch, i, consumed, len(pool))
		}
	}

	for i := range towns {
		stackTown(&towns[i])
	}

	for _, t := range towns {
		t.Footprint(p.TownDiameter()).Each(func(pos core.Vec2I) {
			clearDecoration(cells, pos)
		})
	}
	return nil
}

// layoutTown shuffles the pool in place, picks the streets and hands out
// pool entries to the street-facing blocks. It returns how many blocks asked
// for a building, which may exceed the pool size.
func layoutTown(t *world.Town, pool []world.Building, rng *core.RNG) int {
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	t.Buildings = [world.TownBlocks][world.TownBlocks]world.Building{}
	t.HorizontalStreet = rng.IntRange(2, world.TownBlocks-1)
	t.VerticalStreet = rng.IntRange(2, world.TownBlocks-1)

	up, down := t.HorizontalStreet-1, t.HorizontalStreet
	left, right := t.VerticalStreet-1, t.VerticalStreet

	// the row and column passes meet at the four corner blocks
	var seen [world.TownBlocks][world.TownBlocks]bool
	requested := 0
	assign := func(pos core.Vec2I) {
		if seen[pos.Y][pos.X] {
			return
		}
		seen[pos.Y][pos.X] = true
		if requested < len(pool) {
			t.SetBlock(pos, pool[requested])
		}
		requested++
	}

	for i := 0; i < world.TownBlocks; i++ {
		assign(core.Vec2I{X: i, Y: up})
		assign(core.Vec2I{X: i, Y: down})
	}
	for j := 0; j < world.TownBlocks; j++ {
		assign(core.Vec2I{X: left, Y: j})
		assign(core.Vec2I{X: right, Y: j})
	}
	return requested
}

// stackTown pulls structures toward the street crossing along the eight
// half-lines leaving the four corner blocks.
func stackTown(t *world.Town) {
	up, down := t.HorizontalStreet-1, t.HorizontalStreet
	left, right := t.VerticalStreet-1, t.VerticalStreet

	stackBuildings(t, core.Vec2I{X: left, Y: up}, core.Left)
	stackBuildings(t, core.Vec2I{X: left, Y: up}, core.Up)
	stackBuildings(t, core.Vec2I{X: left, Y: down}, core.Left)
	stackBuildings(t, core.Vec2I{X: left, Y: down}, core.Down)
	stackBuildings(t, core.Vec2I{X: right, Y: up}, core.Right)
	stackBuildings(t, core.Vec2I{X: right, Y: up}, core.Up)
	stackBuildings(t, core.Vec2I{X: right, Y: down}, core.Right)
	stackBuildings(t, core.Vec2I{X: right, Y: down}, core.Down)
}

// stackBuildings walks from pos in dir and moves every structure found to
// the next free slot starting at pos, keeping their relative order.
func stackBuildings(t *world.Town, pos core.Vec2I, dir core.Direction) {
	blocks := core.RectFromSize(core.Size{W: world.TownBlocks, H: world.TownBlocks})
	step := dir.Displacement()
	slot := pos
	for current := pos; blocks.Contains(current); current = current.Add(step) {
		if t.Block(current) == world.BuildingNone || t.Block(current) == world.BuildingEmpty {
			continue
		}
		a, b := t.Block(current), t.Block(slot)
		t.SetBlock(current, b)
		t.SetBlock(slot, a)
		slot = slot.Add(step)
	}
}
