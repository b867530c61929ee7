// Package anim owns per-frame orchestration: advance field time, rebuild the
// scalar grid, extract each iso-level's contours and stroke them onto a
// Surface. The driver is host-agnostic; ebiten and the SSH terminal both
// drive it through the same entry point.
package anim

import (
	"image/color"

	"isoflow/internal/contour"
	"isoflow/internal/field"
	"isoflow/internal/noise"
)

// Surface is the narrow drawing contract a host must provide. Strokes are
// independent line segments sharing one paint state; no path joining is
// expected.
type Surface interface {
	// Size returns the current drawable area in pixels. It is consulted
	// every frame so resizes take effect immediately.
	Size() (w, h float64)
	Clear(c color.NRGBA)
	Stroke(segs []contour.Segment, c color.NRGBA, width float32)
}

// Background is the fixed clear color shared by all frontends.
var Background = color.NRGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}

// lineBase is the stroke color before the per-level alpha is applied.
var lineBase = color.NRGBA{R: 0xd4, G: 0xdc, B: 0xe6}

// Iso-levels are spaced evenly across this fixed range.
const (
	levelMin = -0.7
	levelMax = 0.7
)

// Driver accumulates field time across frames and holds the reusable grid
// and segment buffers. It is not safe for concurrent use; each host session
// owns one and calls Frame from a single goroutine.
type Driver struct {
	src noise.Source

	elapsed float64
	last    float64
	hasLast bool

	grid *field.Grid
	segs []contour.Segment
}

// NewDriver returns a driver sampling the given noise source.
func NewDriver(src noise.Source) *Driver {
	return &Driver{src: src, grid: field.NewGrid(2, 2)}
}

// Elapsed returns the accumulated field time in seconds.
func (d *Driver) Elapsed() float64 { return d.elapsed }

// Frame renders one animation frame at the given timestamp (seconds,
// monotonically increasing). The first call uses a zero delta.
func (d *Driver) Frame(ts float64, cfg Config, s Surface) {
	cfg = cfg.Clamp()

	var delta float64
	if d.hasLast {
		delta = ts - d.last
	}
	d.last = ts
	d.hasLast = true
	d.elapsed += delta * cfg.Speed

	s.Clear(Background)

	w, h := s.Size()
	cols, rows := field.GridSize(w, h, cfg.CellSize)
	d.grid.Resize(cols, rows)
	field.Build(d.grid, d.src, cfg.CellSize, cfg.NoiseScale, d.elapsed)

	for i := 0; i < cfg.NumLines; i++ {
		frac := float64(i) / float64(cfg.NumLines-1)
		level := levelMin + (levelMax-levelMin)*frac

		col := lineBase
		col.A = uint8(LineAlpha(frac)*255 + 0.5)

		d.segs = contour.Extract(d.grid, cfg.CellSize, level, d.segs[:0])
		if len(d.segs) > 0 {
			s.Stroke(d.segs, col, LineWidth(i))
		}
	}
}
