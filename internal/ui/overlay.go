//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"frontier/internal/render"
)

// Overlay owns the preview toggles and draws the loading bar and key help on
// top of the preview.
type Overlay struct {
	options render.Options
	pixel   *ebiten.Image
}

// NewOverlay starts with every overlay drawn on the surface layer.
func NewOverlay(maxSide int) *Overlay {
	o := &Overlay{options: render.Options{Overlays: render.OverlayAll, MaxSide: maxSide}}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Options returns the current render options.
func (o *Overlay) Options() render.Options { return o.options }

// Update handles the toggle keys and reports whether the preview must be
// redrawn.
func (o *Overlay) Update() bool {
	changed := false
	toggle := func(key ebiten.Key, bits render.Overlay) {
		if inpututil.IsKeyJustPressed(key) {
			o.options.Overlays ^= bits
			changed = true
		}
	}
	toggle(ebiten.KeyDigit1, render.OverlayRailway)
	toggle(ebiten.KeyDigit2, render.OverlayRoads)
	toggle(ebiten.KeyDigit3, render.OverlaySettlements|render.OverlaySpawns)
	if inpututil.IsKeyJustPressed(ebiten.KeyU) {
		if o.options.Layer == render.LayerSurface {
			o.options.Layer = render.LayerUnderground
		} else {
			o.options.Layer = render.LayerSurface
		}
		changed = true
	}
	return changed
}

const helpLine = "R regen  S random  N next  1-3 overlays  U caves  C copy  Q quit"

// Draw paints the help line and, while busy, a loading bar with the stage
// name across the bottom of a width x height preview.
func (o *Overlay) Draw(screen *ebiten.Image, width, height int, busy bool, stage string, fraction float64) {
	face := basicfont.Face7x13
	text.Draw(screen, helpLine, face, 8, 16, color.RGBA{R: 20, G: 20, B: 24, A: 255})
	if !busy {
		return
	}
	const barHeight = 18
	top := height - barHeight
	o.fillRect(screen, 0, top, width, barHeight, color.RGBA{R: 16, G: 16, B: 20, A: 220})
	o.fillRect(screen, 0, top, int(float64(width)*fraction), barHeight, color.RGBA{R: 224, G: 160, B: 48, A: 255})
	label := fmt.Sprintf("generating: %s (%.0f%%)", stage, fraction*100)
	text.Draw(screen, label, face, 8, height-5, color.White)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
