//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"frontier/internal/core"
)

// ParameterSource feeds the HUD and receives the adjustments made with its
// buttons.
type ParameterSource interface {
	Parameters() core.ParameterSnapshot
	SetParameter(key, value string) bool
}

// HUD renders the parameter panel to the right of the world preview.
type HUD struct {
	source   ParameterSource
	width    int
	height   int
	panel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls     []hudControlState
	panelOffsetX int
	title        string
	status       []string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD with +/- buttons for controls.
func NewHUD(source ParameterSource, controls []core.ParameterControl, width, height int) *HUD {
	h := &HUD{source: source, width: max(width, 0), height: height, title: "World parameters"}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layoutControls()
	return h
}

// SetStatus replaces the status lines shown under the title.
func (h *HUD) SetStatus(lines ...string) {
	if h == nil {
		return
	}
	h.status = lines
}

// Update refreshes the cached snapshot and handles button clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.snapshot = h.source.Parameters()
	h.refreshControlValues()
	h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 || h.height <= 0 {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, h.height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawSnapshot()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshControlValues() {
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := h.snapshot.Lookup(state.control.Key)
		state.hasValue = false
		state.value = "--"
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.number = v
		state.value = formatValue(state.control, v)
		state.hasValue = true
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.applyAdjustment(state, 1)
			return
		}
	}
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) {
	target, ok := stepTarget(state.control, state.number, direction)
	if !ok {
		return
	}
	if h.source.SetParameter(state.control.Key, formatValue(state.control, target)) {
		state.number = target
		state.value = formatValue(state.control, target)
	}
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	for _, line := range h.status {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = dimColor
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, canDec := stepTarget(state.control, state.number, -1)
		_, canInc := stepTarget(state.control, state.number, 1)
		h.drawButton(state.minusRect, "-", state.hasValue && canDec)
		h.drawButton(state.plusRect, "+", state.hasValue && canInc)
	}
}

// drawSnapshot lists every parameter below the controls, as far as the
// panel height allows.
func (h *HUD) drawSnapshot() {
	face := basicfont.Face7x13
	y := controlsTop + len(h.controls)*lineHeight + groupSpacing
	for _, group := range h.snapshot.Groups {
		if y > h.height-panelPadding {
			return
		}
		text.Draw(h.panel, group.Name, face, panelPadding, y, titleColor)
		y += snapshotLine
		for _, p := range group.Params {
			if y > h.height-panelPadding {
				return
			}
			text.Draw(h.panel, p.Key, face, panelPadding+8, y, dimColor)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, labelColor)
			y += snapshotLine
		}
		y += groupSpacing - snapshotLine
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control  core.ParameterControl
	value    string
	number   float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 20
	statusSpacing  = 16
	statusLines    = 4
	snapshotLine   = 14
	groupSpacing   = 22
	controlsTop    = panelPadding + headerBaseline + statusLines*statusSpacing + 10
)
