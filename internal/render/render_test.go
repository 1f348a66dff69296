package render

import (
	"image"
	"image/color"
	"testing"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

func testWorld() *world.World {
	w := world.New(core.Size{W: 40, H: 20})
	w.Cells.Set(core.V(1, 1), world.Cell{Biome: world.Forest, Decoration: world.DecorationTree})
	w.Cells.Set(core.V(2, 1), world.Cell{Biome: world.Mountain, Decoration: world.DecorationFloorDown})
	w.Underground.Set(core.V(3, 3), world.UndergroundCell{Decoration: world.DecorationNone})
	w.Underground.Set(core.V(4, 3), world.UndergroundCell{Decoration: world.DecorationFloorUp})
	w.Network = world.Network{
		Railway:  []core.Vec2I{core.V(10, 10), core.V(11, 10), core.V(12, 10), core.V(13, 10)},
		Stations: []world.Station{{Index: 0}},
		Roads:    []core.Vec2I{core.V(20, 5)},
	}
	w.Spawns = []world.Spawn{{Kind: world.SpawnHero, Position: core.V(30, 15)}}
	return w
}

func TestSurfaceColors(t *testing.T) {
	img := Image(testWorld(), Options{})
	if got := img.Bounds().Size(); got != image.Pt(40, 20) {
		t.Fatalf("size = %v", got)
	}
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, PrairieColor},
		{1, 1, TreeColor},
		{2, 1, StairColor},
		{10, 10, PrairieColor},
	}
	for _, tc := range cases {
		if got := img.RGBAAt(tc.x, tc.y); got != tc.want {
			t.Errorf("(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestOverlays(t *testing.T) {
	img := Image(testWorld(), Options{Overlays: OverlayAll})
	if got := img.RGBAAt(13, 10); got != RailwayColor {
		t.Errorf("railway pixel = %v", got)
	}
	if got := img.RGBAAt(10, 10); got != StationColor {
		t.Errorf("station pixel = %v", got)
	}
	if got := img.RGBAAt(20, 5); got != RoadColor {
		t.Errorf("road pixel = %v", got)
	}
	if got := img.RGBAAt(31, 16); got != HeroColor {
		t.Errorf("spawn pixel = %v", got)
	}

	img = Image(testWorld(), Options{Overlays: OverlayRoads})
	if got := img.RGBAAt(13, 10); got != PrairieColor {
		t.Errorf("railway drawn without its overlay: %v", got)
	}
	if !OverlayAll.Has(OverlaySpawns) || OverlayRoads.Has(OverlayRailway) {
		t.Error("overlay bits")
	}
}

func TestUndergroundLayer(t *testing.T) {
	img := Image(testWorld(), Options{Layer: LayerUnderground})
	if got := img.RGBAAt(0, 0); got != RockColor {
		t.Errorf("wall = %v", got)
	}
	if got := img.RGBAAt(3, 3); got != CaveFloor {
		t.Errorf("floor = %v", got)
	}
	if got := img.RGBAAt(4, 3); got != StairColor {
		t.Errorf("stairs = %v", got)
	}
}

func TestDownscale(t *testing.T) {
	img := Image(testWorld(), Options{MaxSide: 10})
	if got := img.Bounds().Size(); got != image.Pt(10, 5) {
		t.Fatalf("size = %v", got)
	}
	full := Full(testWorld(), Options{})
	if Downscale(full, 100) != full {
		t.Error("downscale enlarged or copied a small image")
	}
}

func TestFillPaletteClampsIndex(t *testing.T) {
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []uint8{0, 9}, []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}})
	if buf[0] != 1 || buf[4] != 2 {
		t.Errorf("pixels = %v", buf)
	}
	fillPaletteRGBA(buf, []uint8{0, 1}, nil)
	for _, b := range buf {
		if b != 0 {
			t.Fatalf("empty palette left %v", buf)
		}
	}
}
