package field

import (
	"math"
	"testing"

	"isoflow/internal/noise"
)

func TestGridSize(t *testing.T) {
	cols, rows := GridSize(100, 60, 10)
	if cols != 11 || rows != 7 {
		t.Fatalf("GridSize(100,60,10) = (%d,%d), want (11,7)", cols, rows)
	}

	// Non-multiple sizes round the cell count up before adding the closing sample.
	cols, rows = GridSize(101, 59, 10)
	if cols != 12 || rows != 7 {
		t.Fatalf("GridSize(101,59,10) = (%d,%d), want (12,7)", cols, rows)
	}

	// Degenerate areas still produce a contourable grid.
	cols, rows = GridSize(0, 0, 10)
	if cols < 2 || rows < 2 {
		t.Fatalf("GridSize(0,0,10) = (%d,%d), want at least (2,2)", cols, rows)
	}
}

func TestBuildDeterministicAtFixedTime(t *testing.T) {
	src := noise.New(7)
	a := NewGrid(16, 12)
	b := NewGrid(16, 12)
	Build(a, src, 12, 140, 3.25)
	Build(b, src, 12, 140, 3.25)
	for i, v := range a.Values() {
		if b.Values()[i] != v {
			t.Fatalf("rebuild at same time differs at %d: %v vs %v", i, b.Values()[i], v)
		}
	}
}

func TestBuildStaysNearUnitRange(t *testing.T) {
	src := noise.New(99)
	g := NewGrid(40, 30)
	for _, tm := range []float64{0, 1.5, 20.75} {
		Build(g, src, 12, 140, tm)
		for i, v := range g.Values() {
			if math.IsNaN(v) || v < -1.2 || v > 1.2 {
				t.Fatalf("t=%v sample %d = %v, outside [-1.2, 1.2]", tm, i, v)
			}
		}
	}
}

func TestResizeReusesBacking(t *testing.T) {
	g := NewGrid(20, 20)
	g.Values()[5] = 1
	g.Resize(10, 10)
	if g.Cols != 10 || g.Rows != 10 || len(g.Values()) != 100 {
		t.Fatalf("Resize(10,10) left dims (%d,%d) len %d", g.Cols, g.Rows, len(g.Values()))
	}
	g.Resize(1, 1)
	if g.Cols != 2 || g.Rows != 2 {
		t.Fatalf("Resize below minimum gave (%d,%d), want (2,2)", g.Cols, g.Rows)
	}
}
