package worldgen

import "frontier/internal/core"

// Parameters groups every tunable for display in reports and the viewer HUD.
func (c Config) Parameters() core.ParameterSnapshot {
	p := c.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Int64Param("seed", "Seed", c.Seed),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				core.FloatParam("noise_scale", "Noise scale", p.NoiseScale),
				core.IntParam("noise_octaves", "Noise octaves", p.NoiseOctaves),
				core.IntParam("padding", "Border padding", p.Padding),
			},
		},
		{
			Name: "Biomes",
			Params: []core.Parameter{
				core.FloatParam("altitude_threshold", "Altitude threshold", p.AltitudeThreshold),
				core.FloatParam("moisture_lo_threshold", "Moisture low threshold", p.MoistureLoThreshold),
				core.FloatParam("moisture_hi_threshold", "Moisture high threshold", p.MoistureHiThreshold),
				core.FloatParam("prairie_herb_probability", "Herb probability", p.PrairieHerbProbability),
				core.FloatParam("desert_cactus_probability", "Cactus probability", p.DesertCactusProbability),
				core.FloatParam("forest_tree_probability", "Tree probability", p.ForestTreeProbability),
			},
		},
		{
			Name: "Mountains",
			Params: []core.Parameter{
				core.FloatParam("mountain_cliff_probability", "Cliff seed probability", p.MountainCliffProbability),
				core.IntParam("mountain_survival_threshold", "Survival threshold", p.MountainSurvivalThreshold),
				core.IntParam("mountain_birth_threshold", "Birth threshold", p.MountainBirthThreshold),
				core.IntParam("mountain_iterations", "Iterations", p.MountainIterations),
			},
		},
		{
			Name:    "Settlements",
			Summary: "Distances are Manhattan, in map cells.",
			Params: []core.Parameter{
				core.IntParam("towns_count", "Towns", p.TownsCount),
				core.IntParam("town_building_size", "Building size", p.TownBuildingSize),
				core.IntParam("town_street_size", "Street size", p.TownStreetSize),
				core.IntParam("town_min_distance", "Town min distance", p.TownMinDistance),
				core.IntParam("rail_spacing", "Rail spacing", p.RailSpacing),
				core.IntParam("locality_per_town", "Localities per town", p.LocalityPerTown),
				core.IntParam("locality_radius", "Locality radius", p.LocalityRadius),
				core.IntParam("locality_min_distance", "Locality min distance", p.LocalityMinDistance),
				core.IntParam("max_placement_rounds", "Max placement rounds", p.MaxPlacementRounds),
				core.IntParam("max_placement_tries", "Max placement tries", p.MaxPlacementTries),
			},
		},
		{
			Name: "Network",
			Params: []core.Parameter{
				core.IntParam("cliff_threshold", "Cliff threshold", p.CliffThreshold),
				core.FloatParam("slope_factor", "Slope factor", p.SlopeFactor),
				core.IntParam("train_step_time", "Train step time", p.TrainStepTime),
				core.IntParam("day_time", "Day length", p.DayTime),
				core.BoolParam("roads", "Roads", p.Roads),
			},
		},
		{
			Name: "Regions & Caves",
			Params: []core.Parameter{
				core.IntParam("region_minimum_size", "Region minimum size", p.RegionMinimumSize),
				core.IntParam("surface_per_cave", "Surface per cave", p.SurfacePerCave),
				core.IntParam("cave_min_distance", "Cave min distance", p.CaveMinDistance),
			},
		},
	}}
}

// Controls lists the parameters the viewer lets the user step between
// generations.
func Controls() []core.ParameterControl {
	intControl := func(key, label string, step, lo, hi float64) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeInt, Step: step, Min: lo, Max: hi, HasMin: true, HasMax: true}
	}
	floatControl := func(key, label string, step float64) core.ParameterControl {
		return core.ParameterControl{Key: key, Label: label, Type: core.ParamTypeFloat, Step: step, Min: 0, Max: 1, HasMin: true, HasMax: true}
	}
	return []core.ParameterControl{
		{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 1, Min: 1, HasMin: true},
		intControl("noise_octaves", "Octaves", 1, 1, 8),
		floatControl("altitude_threshold", "Altitude", 0.01),
		floatControl("moisture_lo_threshold", "Moisture lo", 0.01),
		floatControl("moisture_hi_threshold", "Moisture hi", 0.01),
		floatControl("mountain_cliff_probability", "Cliff seed", 0.01),
		intControl("mountain_iterations", "Automaton steps", 1, 0, 20),
		intControl("towns_count", "Towns", 1, 2, 12),
		intControl("locality_per_town", "Localities/town", 1, 0, 10),
		{Key: "slope_factor", Label: "Slope factor", Type: core.ParamTypeFloat, Step: 25, Min: 0, HasMin: true},
	}
}
