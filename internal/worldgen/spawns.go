package worldgen

import (
	"fmt"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// companionOffset places the hero's mount next to the hero.
var companionOffset = core.Vec2I{X: 10}

// computeStartingPosition returns the station closest to the world center,
// pushed two cells further away from the center.
func computeStartingPosition(cfg Config, network *world.Network) (core.Vec2I, error) {
	if len(network.Stations) == 0 {
		return core.Vec2I{}, fmt.Errorf("%w: no station to start from", ErrStationOffRailway)
	}
	center := cfg.Center()
	best := network.StationPosition(network.Stations[0])
	for _, s := range network.Stations[1:] {
		pos := network.StationPosition(s)
		if core.Manhattan(center, pos) < core.Manhattan(center, best) {
			best = pos
		}
	}
	return best.Add(best.Sub(center).Sign().Mul(2)), nil
}

// generateSpawns places the hero and the cow.
func generateSpawns(cfg Config, w *world.World) error {
	hero, err := computeStartingPosition(cfg, &w.Network)
	if err != nil {
		return err
	}
	w.Spawns = []world.Spawn{
		{Kind: world.SpawnHero, Position: hero},
		{Kind: world.SpawnCow, Position: hero.Add(companionOffset)},
	}
	return nil
}
