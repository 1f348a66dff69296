package worldgen

import (
	"fmt"
	"strconv"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// ReducedFactor is the ratio between the map resolution and the coarse grid
// used for settlement placement and rail routing.
const ReducedFactor = 3

// Params holds tunable thresholds and probabilities for world generation.
type Params struct {
	NoiseScale   float64 `json:"noise_scale"`
	NoiseOctaves int     `json:"noise_octaves"`
	Padding      int     `json:"padding"`

	AltitudeThreshold       float64 `json:"altitude_threshold"`
	MoistureLoThreshold     float64 `json:"moisture_lo_threshold"`
	MoistureHiThreshold     float64 `json:"moisture_hi_threshold"`
	PrairieHerbProbability  float64 `json:"prairie_herb_probability"`
	DesertCactusProbability float64 `json:"desert_cactus_probability"`
	ForestTreeProbability   float64 `json:"forest_tree_probability"`

	MountainCliffProbability  float64 `json:"mountain_cliff_probability"`
	MountainSurvivalThreshold int     `json:"mountain_survival_threshold"`
	MountainBirthThreshold    int     `json:"mountain_birth_threshold"`
	MountainIterations        int     `json:"mountain_iterations"`

	TownsCount       int `json:"towns_count"`
	TownBuildingSize int `json:"town_building_size"`
	TownStreetSize   int `json:"town_street_size"`
	TownMinDistance  int `json:"town_min_distance"`
	RailSpacing      int `json:"rail_spacing"`

	LocalityPerTown     int `json:"locality_per_town"`
	LocalityRadius      int `json:"locality_radius"`
	LocalityMinDistance int `json:"locality_min_distance"`

	MaxPlacementRounds int `json:"max_placement_rounds"`
	MaxPlacementTries  int `json:"max_placement_tries"`

	CliffThreshold int     `json:"cliff_threshold"`
	SlopeFactor    float64 `json:"slope_factor"`
	TrainStepTime  int     `json:"train_step_time"`
	DayTime        int     `json:"day_time"`
	Roads          bool    `json:"roads"`

	RegionMinimumSize int `json:"region_minimum_size"`

	SurfacePerCave  int `json:"surface_per_cave"`
	CaveMinDistance int `json:"cave_min_distance"`
}

// Config controls the world dimensions and generation parameters.
type Config struct {
	Width  int   `json:"width"`
	Height int   `json:"height"`
	Seed   int64 `json:"seed"`

	Params Params `json:"params"`
}

// DefaultConfig returns the full-size configuration.
func DefaultConfig() Config {
	return Config{
		Width:  4096,
		Height: 4096,
		Seed:   1337,
		Params: Params{
			NoiseScale:   16,
			NoiseOctaves: 3,
			Padding:      150,

			AltitudeThreshold:       0.55,
			MoistureLoThreshold:     0.45,
			MoistureHiThreshold:     0.55,
			PrairieHerbProbability:  0.2,
			DesertCactusProbability: 0.02,
			ForestTreeProbability:   0.25,

			MountainCliffProbability:  0.4,
			MountainSurvivalThreshold: 6,
			MountainBirthThreshold:    8,
			MountainIterations:        7,

			TownsCount:       5,
			TownBuildingSize: 11,
			TownStreetSize:   3,
			TownMinDistance:  1500,
			RailSpacing:      2,

			LocalityPerTown:     5,
			LocalityRadius:      13,
			LocalityMinDistance: 200,

			MaxPlacementRounds: 100000,
			MaxPlacementTries:  100000,

			CliffThreshold: 2,
			SlopeFactor:    225,
			TrainStepTime:  5,
			DayTime:        24 * 60 * 60,
			Roads:          true,

			RegionMinimumSize: 400,

			SurfacePerCave:  250,
			CaveMinDistance: 10,
		},
	}
}

// SmallConfig returns a scaled-down world suited to tests and quick previews.
// Coarser noise and a wider lowland band keep prairie patches large enough
// for a town footprint on a 256 map.
func SmallConfig() Config {
	c := DefaultConfig()
	c.Width = 256
	c.Height = 256
	c.Seed = 42
	c.Params.NoiseScale = 2
	c.Params.NoiseOctaves = 2
	c.Params.Padding = 10
	c.Params.AltitudeThreshold = 0.65
	c.Params.MoistureLoThreshold = 0.35
	c.Params.TownsCount = 2
	c.Params.TownBuildingSize = 5
	c.Params.TownStreetSize = 1
	c.Params.TownMinDistance = 120
	c.Params.LocalityPerTown = 3
	c.Params.LocalityRadius = 4
	c.Params.LocalityMinDistance = 24
	return c
}

// Size returns the world dimensions.
func (c Config) Size() core.Size { return core.Size{W: c.Width, H: c.Height} }

// ReducedSize returns the dimensions of the coarse placement grid.
func (c Config) ReducedSize() core.Size {
	return core.Size{W: c.Width / ReducedFactor, H: c.Height / ReducedFactor}
}

// Center returns the world center in map coordinates.
func (c Config) Center() core.Vec2I { return c.Size().Center() }

// TownRadius is half the town footprint, streets included.
func (p Params) TownRadius() int {
	return (world.TownBlocks*p.TownBuildingSize + (world.TownBlocks-1)*p.TownStreetSize - 1) / 2
}

// TownDiameter is the side of the town footprint.
func (p Params) TownDiameter() int { return 2*p.TownRadius() + 1 }

// ReducedTownDiameter is the side of the town footprint on the coarse grid.
func (p Params) ReducedTownDiameter() int { return p.TownDiameter() / ReducedFactor }

// LocalityDiameter is the side of a locality footprint.
func (p Params) LocalityDiameter() int { return 2*p.LocalityRadius + 1 }

// ReducedLocalityDiameter is the side of a locality footprint on the coarse grid.
func (p Params) ReducedLocalityDiameter() int { return p.LocalityDiameter() / ReducedFactor }

// LocalityCount is the total number of localities.
func (p Params) LocalityCount() int { return p.TownsCount * p.LocalityPerTown }

// Validate reports configuration values the pipeline cannot work with.
func (c Config) Validate() error {
	p := c.Params
	minSide := ReducedFactor * (p.TownDiameter() + 2*p.RailSpacing*ReducedFactor + 2)
	switch {
	case c.Width < minSide || c.Height < minSide:
		return fmt.Errorf("%w: world %dx%d smaller than one town footprint (%d)", ErrInvalidConfig, c.Width, c.Height, minSide)
	case p.TownsCount < 2:
		return fmt.Errorf("%w: towns_count %d, a railway loop needs at least 2 towns", ErrInvalidConfig, p.TownsCount)
	case p.TownBuildingSize <= 0 || p.TownStreetSize < 0:
		return fmt.Errorf("%w: town geometry building=%d street=%d", ErrInvalidConfig, p.TownBuildingSize, p.TownStreetSize)
	case p.RailSpacing < 1:
		return fmt.Errorf("%w: rail_spacing %d, stations need at least one cell of clearance", ErrInvalidConfig, p.RailSpacing)
	case p.ReducedTownDiameter() < 1:
		return fmt.Errorf("%w: town footprint too small for the coarse grid", ErrInvalidConfig)
	case p.LocalityPerTown < 0 || p.LocalityRadius < 0:
		return fmt.Errorf("%w: locality_per_town=%d locality_radius=%d", ErrInvalidConfig, p.LocalityPerTown, p.LocalityRadius)
	case p.NoiseScale <= 0:
		return fmt.Errorf("%w: noise_scale must be positive", ErrInvalidConfig)
	case p.MountainIterations < 0:
		return fmt.Errorf("%w: mountain_iterations must not be negative", ErrInvalidConfig)
	case p.MaxPlacementRounds <= 0 || p.MaxPlacementTries <= 0:
		return fmt.Errorf("%w: placement retry ceilings must be positive", ErrInvalidConfig)
	case p.TrainStepTime <= 0 || p.DayTime <= 0:
		return fmt.Errorf("%w: train_step_time and day_time must be positive", ErrInvalidConfig)
	case p.SurfacePerCave <= 0:
		return fmt.Errorf("%w: surface_per_cave must be positive", ErrInvalidConfig)
	case p.TownMinDistance < 0 || p.LocalityMinDistance < 0 || p.CaveMinDistance < 0:
		return fmt.Errorf("%w: minimum distances town=%d locality=%d cave=%d must not be negative",
			ErrInvalidConfig, p.TownMinDistance, p.LocalityMinDistance, p.CaveMinDistance)
	case p.RegionMinimumSize < 0:
		return fmt.Errorf("%w: region_minimum_size must not be negative", ErrInvalidConfig)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unknown keys and unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of base from a string map.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	for key, v := range cfg {
		applyOverride(&c, key, v)
	}
	return c
}

// Override sets a single parameter by key. It reports whether the key was
// recognized and the value parsed.
func (c *Config) Override(key, value string) bool {
	return applyOverride(c, key, value)
}

func applyOverride(c *Config, key, v string) bool {
	if dst, ok := intFields(c)[key]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return false
		}
		*dst = parsed
		return true
	}
	if dst, ok := floatFields(c)[key]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return false
		}
		*dst = parsed
		return true
	}
	switch key {
	case "seed":
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return false
		}
		c.Seed = parsed
		return true
	case "roads":
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false
		}
		c.Params.Roads = parsed
		return true
	}
	return false
}

func intFields(c *Config) map[string]*int {
	p := &c.Params
	return map[string]*int{
		"w":                           &c.Width,
		"h":                           &c.Height,
		"noise_octaves":               &p.NoiseOctaves,
		"padding":                     &p.Padding,
		"mountain_survival_threshold": &p.MountainSurvivalThreshold,
		"mountain_birth_threshold":    &p.MountainBirthThreshold,
		"mountain_iterations":         &p.MountainIterations,
		"towns_count":                 &p.TownsCount,
		"town_building_size":          &p.TownBuildingSize,
		"town_street_size":            &p.TownStreetSize,
		"town_min_distance":           &p.TownMinDistance,
		"rail_spacing":                &p.RailSpacing,
		"locality_per_town":           &p.LocalityPerTown,
		"locality_radius":             &p.LocalityRadius,
		"locality_min_distance":       &p.LocalityMinDistance,
		"max_placement_rounds":        &p.MaxPlacementRounds,
		"max_placement_tries":         &p.MaxPlacementTries,
		"cliff_threshold":             &p.CliffThreshold,
		"train_step_time":             &p.TrainStepTime,
		"day_time":                    &p.DayTime,
		"region_minimum_size":         &p.RegionMinimumSize,
		"surface_per_cave":            &p.SurfacePerCave,
		"cave_min_distance":           &p.CaveMinDistance,
	}
}

func floatFields(c *Config) map[string]*float64 {
	p := &c.Params
	return map[string]*float64{
		"noise_scale":                &p.NoiseScale,
		"altitude_threshold":         &p.AltitudeThreshold,
		"moisture_lo_threshold":      &p.MoistureLoThreshold,
		"moisture_hi_threshold":      &p.MoistureHiThreshold,
		"prairie_herb_probability":   &p.PrairieHerbProbability,
		"desert_cactus_probability":  &p.DesertCactusProbability,
		"forest_tree_probability":    &p.ForestTreeProbability,
		"mountain_cliff_probability": &p.MountainCliffProbability,
		"slope_factor":               &p.SlopeFactor,
	}
}
