// Package world holds the immutable snapshot produced by world generation and
// consumed by the runtime, the renderers and the save layer.
package world

// Biome is fixed for a cell once classified.
type Biome uint8

const (
	Prairie Biome = iota
	Desert
	Forest
	Mountain
	biomeCount
)

// Biomes lists every biome in declaration order.
var Biomes = [biomeCount]Biome{Prairie, Desert, Forest, Mountain}

func (b Biome) String() string {
	switch b {
	case Prairie:
		return "prairie"
	case Desert:
		return "desert"
	case Forest:
		return "forest"
	case Mountain:
		return "mountain"
	}
	return "invalid"
}

// Valid reports whether b is one of the declared biomes.
func (b Biome) Valid() bool { return b < biomeCount }

// Decoration is the mutable layer on top of the biome.
type Decoration uint8

const (
	DecorationNone Decoration = iota
	DecorationHerb
	DecorationCactus
	DecorationTree
	DecorationCliff
	DecorationWall
	DecorationFloorUp
	DecorationFloorDown
	decorationCount
)

func (d Decoration) String() string {
	switch d {
	case DecorationNone:
		return "none"
	case DecorationHerb:
		return "herb"
	case DecorationCactus:
		return "cactus"
	case DecorationTree:
		return "tree"
	case DecorationCliff:
		return "cliff"
	case DecorationWall:
		return "wall"
	case DecorationFloorUp:
		return "floor-up"
	case DecorationFloorDown:
		return "floor-down"
	}
	return "invalid"
}

// Valid reports whether d is one of the declared decorations.
func (d Decoration) Valid() bool { return d < decorationCount }

// Blocking reports whether the decoration prevents walking through the cell.
func (d Decoration) Blocking() bool {
	switch d {
	case DecorationCactus, DecorationTree, DecorationCliff, DecorationWall:
		return true
	default:
		return false
	}
}

// Cell is one surface tile.
type Cell struct {
	Biome      Biome      `json:"biome"`
	Decoration Decoration `json:"decoration"`
}

// UndergroundCell is one tile of the cave layer. It starts as Wall.
type UndergroundCell struct {
	Decoration Decoration `json:"decoration"`
}
