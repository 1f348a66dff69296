//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"frontier/internal/core"
	"frontier/internal/render"
	"frontier/internal/ui"
	"frontier/internal/worldgen"
)

// Game adapts the world generator to the ebiten.Game interface: a preview
// of the last generated world next to the parameter HUD.
type Game struct {
	cfg     worldgen.Config
	session *Session
	log     *slog.Logger

	last    Outcome
	hasLast bool
	dirty   bool
	preview *ebiten.Image
	notice  string

	overlay  *ui.Overlay
	hud      *ui.HUD
	view     int
	hudWidth int
}

// New constructs a Game and starts generating cfg.
func New(cfg worldgen.Config, view, hudWidth int, log *slog.Logger) *Game {
	if log == nil {
		log = slog.Default()
	}
	g := &Game{
		cfg:      cfg,
		session:  NewSession(log),
		log:      log,
		overlay:  ui.NewOverlay(view),
		view:     view,
		hudWidth: hudWidth,
	}
	g.hud = ui.NewHUD(g, worldgen.Controls(), hudWidth, view)
	g.regenerate(cfg.Seed)
	return g
}

// Parameters exposes the pending configuration to the HUD.
func (g *Game) Parameters() core.ParameterSnapshot { return g.cfg.Parameters() }

// SetParameter changes the configuration used by the next generation.
func (g *Game) SetParameter(key, value string) bool {
	return g.cfg.Override(key, value)
}

func (g *Game) regenerate(seed int64) {
	next := g.cfg
	next.Seed = seed
	if !g.session.Start(next) {
		g.notice = "still generating"
		return
	}
	g.cfg = next
	g.notice = ""
}

// Update handles input and collects finished generations.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regenerate(g.cfg.Seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.regenerate(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.regenerate(g.cfg.Seed + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.hasLast {
		if err := clipboard.WriteAll(ClipboardText(g.last)); err != nil {
			g.log.Warn("clipboard", "err", err)
			g.notice = "clipboard unavailable"
		} else {
			g.notice = fmt.Sprintf("copied seed %d", g.last.Config.Seed)
		}
	}

	if g.overlay.Update() {
		g.dirty = true
	}
	if o, ok := g.session.Poll(); ok {
		g.last, g.hasLast, g.dirty = o, true, true
	}

	g.hud.SetStatus(g.status()...)
	g.hud.Update(g.view)
	return nil
}

func (g *Game) status() []string {
	lines := []string{fmt.Sprintf("seed %d", g.cfg.Seed)}
	switch {
	case g.session.Running():
		stage, _ := g.session.Stage()
		lines = append(lines, "generating: "+stage.String())
	case !g.hasLast:
	case g.last.Err != nil:
		lines = append(lines, "failed, try another seed")
	default:
		s := g.last.Result.Summary
		lines = append(lines,
			fmt.Sprintf("%d towns, %d localities, %d caves", s.Towns, s.Localities, s.Caves),
			fmt.Sprintf("railway %d, roads %d, %v", s.RailwayLength, s.Roads, s.Elapsed.Round(time.Millisecond)))
	}
	if g.notice != "" {
		lines = append(lines, g.notice)
	}
	return lines
}

// Draw renders the preview, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.dirty = false
		g.preview = nil
		if g.hasLast && g.last.Err == nil {
			img := render.Image(g.last.Result.World, g.overlay.Options())
			g.preview = ebiten.NewImageFromImage(img)
		}
	}
	if g.preview != nil {
		b := g.preview.Bounds()
		k := float64(g.view) / float64(max(b.Dx(), b.Dy()))
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(k, k)
		screen.DrawImage(g.preview, op)
	}

	stage, fraction := g.session.Stage()
	g.overlay.Draw(screen, g.view, g.view, g.session.Running(), stage.String(), fraction)
	g.hud.Draw(screen, g.view)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view + g.hudWidth, g.view
}
