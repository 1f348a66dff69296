//go:build !ebiten

package ui

import "frontier/internal/render"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct {
	options render.Options
}

// NewOverlay constructs a stub overlay.
func NewOverlay(maxSide int) *Overlay {
	return &Overlay{options: render.Options{Overlays: render.OverlayAll, MaxSide: maxSide}}
}

// Options returns the render options.
func (o *Overlay) Options() render.Options { return o.options }

// Update never changes anything in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, int, int, bool, string, float64) {}
