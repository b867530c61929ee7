//go:build ebiten

package app

import (
	"image/color"
	"time"

	"isoflow/internal/anim"
	"isoflow/internal/contour"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game adapts the animation driver to the ebiten.Game interface. Keyboard
// input mutates the config between frames; the driver re-reads and re-clamps
// it every frame.
type Game struct {
	driver *anim.Driver
	cfg    anim.Config

	start  time.Time
	paused bool

	surf screenSurface
}

// New constructs a Game around the provided driver and initial config.
func New(driver *anim.Driver, cfg anim.Config) *Game {
	return &Game{driver: driver, cfg: cfg.Clamp(), start: time.Now()}
}

// Update handles per-frame input: Up/Down adjust speed, Left/Right the line
// count, -/= the noise scale, Space pauses, Q or Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.cfg.Speed += 0.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.cfg.Speed -= 0.1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.cfg.NumLines++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.cfg.NumLines--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.cfg.NoiseScale += 10
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.cfg.NoiseScale -= 10
	}
	g.cfg = g.cfg.Clamp()
	return nil
}

// Draw renders one animation frame onto the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surf.screen = screen
	cfg := g.cfg
	if g.paused {
		cfg.Speed = 0
	}
	g.driver.Frame(time.Since(g.start).Seconds(), cfg, &g.surf)
}

// Layout tracks the window size so resizes flow into the grid dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

// screenSurface strokes driver segments onto the current frame's image.
type screenSurface struct {
	screen *ebiten.Image
}

func (s *screenSurface) Size() (float64, float64) {
	b := s.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *screenSurface) Clear(c color.NRGBA) {
	s.screen.Fill(c)
}

func (s *screenSurface) Stroke(segs []contour.Segment, c color.NRGBA, width float32) {
	for _, sg := range segs {
		vector.StrokeLine(s.screen,
			float32(sg.A.X), float32(sg.A.Y),
			float32(sg.B.X), float32(sg.B.Y),
			width, c, true)
	}
}
