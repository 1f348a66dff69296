package render

import (
	"image/color"

	"frontier/pkg/world"
)

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xff}
}

// Terrain colors. Blocking decorations use the darker variant of their biome.
var (
	PrairieColor  = rgb(0xC4D6B0)
	DesertColor   = rgb(0xC2B280)
	ForestColor   = rgb(0x4A6A4D)
	MountainColor = rgb(0x8B5A2B)

	CactusColor   = rgb(0x2F6B2F)
	TreeColor     = rgb(0x16331A)
	CliffColor    = rgb(0x462D16)
	HerbColor     = rgb(0xA9C98A)
	StairColor    = rgb(0xFF00FF)
	RockColor     = rgb(0x404040)
	CaveFloor     = rgb(0xB69F66)
	RailwayColor  = rgb(0x000000)
	StationColor  = rgb(0xE03C31)
	RoadColor     = rgb(0xECBD6B)
	TownColor     = rgb(0xF0FFFF)
	LocalityColor = rgb(0x7FB2E5)
	HeroColor     = rgb(0xFFBF00)
)

// Palette indices are biome*paletteStride + shade.
const (
	shadePlain uint8 = iota
	shadeHerb
	shadeBlocking
	shadeStairs
	paletteStride
)

// surfacePalette is indexed by cellIndex.
var surfacePalette = buildSurfacePalette()

func buildSurfacePalette() []color.RGBA {
	base := [...]color.RGBA{
		world.Prairie:  PrairieColor,
		world.Desert:   DesertColor,
		world.Forest:   ForestColor,
		world.Mountain: MountainColor,
	}
	blocking := [...]color.RGBA{
		world.Prairie:  CliffColor,
		world.Desert:   CactusColor,
		world.Forest:   TreeColor,
		world.Mountain: CliffColor,
	}
	palette := make([]color.RGBA, 0, len(base)*int(paletteStride))
	for b := range base {
		palette = append(palette, base[b], HerbColor, blocking[b], StairColor)
	}
	return palette
}

// cellIndex maps a surface cell to its palette entry.
func cellIndex(c world.Cell) uint8 {
	shade := shadePlain
	switch {
	case c.Decoration == world.DecorationHerb:
		shade = shadeHerb
	case c.Decoration == world.DecorationFloorDown || c.Decoration == world.DecorationFloorUp:
		shade = shadeStairs
	case c.Decoration.Blocking():
		shade = shadeBlocking
	}
	return uint8(c.Biome)*paletteStride + shade
}
