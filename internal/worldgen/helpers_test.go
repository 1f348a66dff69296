package worldgen

import (
	"frontier/internal/heightmap"
	"frontier/pkg/core"
	"frontier/pkg/world"
)

// uniformCells returns a grid where every cell has the given biome.
func uniformCells(size core.Size, b world.Biome) *core.Grid[world.Cell] {
	return core.NewGrid(size, world.Cell{Biome: b})
}

// flatRaw returns fields with constant altitude and moisture.
func flatRaw(size core.Size, altitude, moisture float64) *Raw {
	r := &Raw{Altitude: heightmap.New(size), Moisture: heightmap.New(size)}
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			r.Altitude.SetValue(core.V(x, y), altitude)
			r.Moisture.SetValue(core.V(x, y), moisture)
		}
	}
	return r
}

// testConfig is the small preset resized to the given side.
func testConfig(side int) Config {
	cfg := SmallConfig()
	cfg.Width = side
	cfg.Height = side
	return cfg
}
