// Package field builds the dense scalar grid that contour extraction runs
// over: a 3-octave fractal sum of gradient noise, rebuilt in full each frame.
package field

import (
	"math"

	"isoflow/internal/noise"
)

// Grid stores scalar samples in row-major order.
type Grid struct {
	Cols, Rows int
	data       []float64
}

// NewGrid allocates a grid with the given dimensions, clamped to the 2x2
// minimum that contour extraction requires.
func NewGrid(cols, rows int) *Grid {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	return &Grid{Cols: cols, Rows: rows, data: make([]float64, cols*rows)}
}

// Values exposes the backing slice so callers can read samples directly.
func (g *Grid) Values() []float64 { return g.data }

// Index returns the linear slice index for (col, row).
func (g *Grid) Index(col, row int) int { return row*g.Cols + col }

// At returns the sample at (col, row).
func (g *Grid) At(col, row int) float64 { return g.data[row*g.Cols+col] }

// Resize adjusts the grid dimensions, reusing the backing slice when it is
// large enough. Contents are unspecified afterwards.
func (g *Grid) Resize(cols, rows int) {
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	g.Cols, g.Rows = cols, rows
	if n := cols * rows; n <= cap(g.data) {
		g.data = g.data[:n]
	} else {
		g.data = make([]float64, n)
	}
}

// GridSize derives grid dimensions from a drawable area in pixels and the
// pixel spacing between samples. One extra sample per axis closes the final
// cell at the right/bottom edge.
func GridSize(width, height, cellSize float64) (cols, rows int) {
	if cellSize <= 0 {
		cellSize = 1
	}
	cols = int(math.Ceil(width/cellSize)) + 1
	rows = int(math.Ceil(height/cellSize)) + 1
	if cols < 2 {
		cols = 2
	}
	if rows < 2 {
		rows = 2
	}
	return cols, rows
}

// Octave constants: frequency and time multipliers plus weights for the
// three layered noise evaluations. These are part of the visual contract.
const (
	freq2, freq3     = 2.1, 4.3
	tmul2, tmul3     = 1.3, 1.7
	wgt1, wgt2, wgt3 = 0.6, 0.3, 0.1
)

// Build fills g with the fractal noise field for the given time. Spatial
// coordinates are the sample's pixel position divided by scale, so larger
// scales stretch the features. The sum is nominally within [-1, 1] but the
// octave weights can push it slightly past.
func Build(g *Grid, src noise.Source, cellSize, scale, time float64) {
	if scale <= 0 {
		scale = 1
	}
	vals := g.Values()
	for row := 0; row < g.Rows; row++ {
		ny := float64(row) * cellSize / scale
		for col := 0; col < g.Cols; col++ {
			nx := float64(col) * cellSize / scale
			v := src.Sample3(nx, ny, time)*wgt1 +
				src.Sample3(nx*freq2, ny*freq2, time*tmul2)*wgt2 +
				src.Sample3(nx*freq3, ny*freq3, time*tmul3)*wgt3
			vals[row*g.Cols+col] = v
		}
	}
}
