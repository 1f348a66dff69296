// Package render draws world snapshots into RGBA images for previews, the
// viewer and debugging.
package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"frontier/pkg/core"
	"frontier/pkg/world"
)

// Layer selects which grid is drawn.
type Layer uint8

const (
	LayerSurface Layer = iota
	LayerUnderground
)

func (l Layer) String() string {
	if l == LayerUnderground {
		return "underground"
	}
	return "surface"
}

// Overlay is a bit set of features drawn on top of the terrain.
type Overlay uint8

const (
	OverlayRailway Overlay = 1 << iota
	OverlayRoads
	OverlaySettlements
	OverlaySpawns

	OverlayNone Overlay = 0
	OverlayAll          = OverlayRailway | OverlayRoads | OverlaySettlements | OverlaySpawns
)

// Has reports whether every bit of o2 is set in o.
func (o Overlay) Has(o2 Overlay) bool { return o&o2 == o2 }

// Options control Image.
type Options struct {
	Layer    Layer
	Overlays Overlay
	// MaxSide bounds the longest side of the output. Zero keeps the world
	// resolution.
	MaxSide int
}

// Image renders w at full resolution and then downscales it to fit
// opts.MaxSide.
func Image(w *world.World, opts Options) *image.RGBA {
	img := Full(w, opts)
	if opts.MaxSide <= 0 {
		return img
	}
	return Downscale(img, opts.MaxSide)
}

// Full renders w at one pixel per cell.
func Full(w *world.World, opts Options) *image.RGBA {
	size := w.Size()
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))

	switch opts.Layer {
	case LayerUnderground:
		open := make([]uint8, size.Area())
		for i, c := range w.Underground.Cells() {
			if c.Decoration != world.DecorationWall {
				open[i] = 1
			}
		}
		fillBinaryRGBA(img.Pix, open, CaveFloor, RockColor)
		for i, c := range w.Underground.Cells() {
			if c.Decoration == world.DecorationFloorUp {
				p := w.Underground.Position(i)
				putPixel(img.Pix, size.W, size.H, p.X, p.Y, StairColor)
			}
		}
	default:
		indices := make([]uint8, size.Area())
		for i, c := range w.Cells.Cells() {
			indices[i] = cellIndex(c)
		}
		fillPaletteRGBA(img.Pix, indices, surfacePalette)
	}

	drawOverlays(img, w, opts.Overlays)
	return img
}

func drawOverlays(img *image.RGBA, w *world.World, overlays Overlay) {
	size := w.Size()
	put := func(p core.Vec2I, col color.RGBA) { putPixel(img.Pix, size.W, size.H, p.X, p.Y, col) }

	if overlays.Has(OverlayRoads) {
		for _, p := range w.Network.Roads {
			put(p, RoadColor)
		}
	}
	if overlays.Has(OverlaySettlements) {
		for i := range w.Towns {
			t := &w.Towns[i]
			span := townSpan(t)
			core.RectFromPositionSize(t.Position, span, span).Each(func(p core.Vec2I) {
				if p.X == t.Position.X || p.Y == t.Position.Y || p.X == t.Position.X+span-1 || p.Y == t.Position.Y+span-1 {
					put(p, TownColor)
				}
			})
		}
		for _, l := range w.Localities {
			core.RectFromCenterSize(l.Position, 5, 5).Each(func(p core.Vec2I) { put(p, LocalityColor) })
		}
	}
	if overlays.Has(OverlayRailway) {
		for _, p := range w.Network.Railway {
			put(p, RailwayColor)
		}
		for _, s := range w.Network.Stations {
			core.RectFromCenterSize(w.Network.StationPosition(s), 3, 3).Each(func(p core.Vec2I) { put(p, StationColor) })
		}
	}
	if overlays.Has(OverlaySpawns) {
		for _, s := range w.Spawns {
			core.RectFromCenterSize(s.Position, 3, 3).Each(func(p core.Vec2I) { put(p, HeroColor) })
		}
	}
}

// townSpan recovers the footprint side from the town center and position.
func townSpan(t *world.Town) int {
	return 2*(t.Center.X-t.Position.X) + 1
}

// Downscale shrinks img so that its longest side is at most maxSide.
func Downscale(img *image.RGBA, maxSide int) *image.RGBA {
	b := img.Bounds()
	longest := max(b.Dx(), b.Dy())
	if longest <= maxSide || maxSide <= 0 {
		return img
	}
	w := max(1, b.Dx()*maxSide/longest)
	h := max(1, b.Dy()*maxSide/longest)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
