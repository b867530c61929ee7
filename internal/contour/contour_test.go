package contour

import (
	"math"
	"testing"

	"isoflow/internal/field"
)

// cellGrid builds a 2x2 grid holding a single cell with the given corners.
func cellGrid(tl, tr, bl, br float64) *field.Grid {
	g := field.NewGrid(2, 2)
	v := g.Values()
	v[0], v[1], v[2], v[3] = tl, tr, bl, br
	return g
}

func TestUniformCellsEmitNothing(t *testing.T) {
	above := cellGrid(1, 1, 1, 1)
	if segs := Extract(above, 10, 0, nil); len(segs) != 0 {
		t.Fatalf("all corners above level emitted %d segments", len(segs))
	}
	below := cellGrid(-1, -1, -1, -1)
	if segs := Extract(below, 10, 0, nil); len(segs) != 0 {
		t.Fatalf("all corners below level emitted %d segments", len(segs))
	}
}

func TestUniformZeroFieldAboveLevel(t *testing.T) {
	g := cellGrid(0, 0, 0, 0)
	if segs := Extract(g, 10, 0.5, nil); len(segs) != 0 {
		t.Fatalf("uniform zero field at level 0.5 emitted %d segments", len(segs))
	}
}

func TestSingleCornerBelowConnectsLeftAndTop(t *testing.T) {
	// tl below, the rest above: case index 0*8+1*4+1*2+1*1 = 7. The segment
	// must run from the left edge midpoint to the top edge midpoint.
	g := cellGrid(-1, 1, 1, 1)
	segs := Extract(g, 10, 0, nil)
	if len(segs) != 1 {
		t.Fatalf("case 7 emitted %d segments, want 1", len(segs))
	}
	want := Segment{A: Point{0, 5}, B: Point{5, 0}}
	if !segEqual(segs[0], want, 1e-12) {
		t.Fatalf("case 7 segment = %+v, want %+v", segs[0], want)
	}
}

func TestSaddleEmitsTwoDisjointSegments(t *testing.T) {
	// tl and br above, tr and bl below: case 10, the ambiguous diagonal.
	g := cellGrid(1, -1, -1, 1)
	segs := Extract(g, 10, 0, nil)
	if len(segs) != 2 {
		t.Fatalf("saddle emitted %d segments, want 2", len(segs))
	}
	for _, a := range []Point{segs[0].A, segs[0].B} {
		for _, b := range []Point{segs[1].A, segs[1].B} {
			if a == b {
				t.Fatalf("saddle segments share endpoint %+v", a)
			}
		}
	}
}

func TestDegenerateGradientGuard(t *testing.T) {
	// The crossed edges straddle the level by less than the epsilon guard,
	// so the crossing pins to the edge start instead of dividing through a
	// vanishing gradient.
	g := cellGrid(-4e-7, 4e-7, -4e-7, 4e-7)
	segs := Extract(g, 10, 0, nil)
	if len(segs) != 1 {
		t.Fatalf("emitted %d segments, want 1", len(segs))
	}
	want := Segment{A: Point{0, 0}, B: Point{0, 10}}
	if !segEqual(segs[0], want, 1e-12) {
		t.Fatalf("guarded segment = %+v, want %+v", segs[0], want)
	}
}

func TestInteriorCellOffsets(t *testing.T) {
	// 3x3 grid with only the bottom-right corner above the level. The single
	// crossing cell is at (col,row)=(1,1), so its points must be offset by a
	// full cell in both axes.
	g := field.NewGrid(3, 3)
	v := g.Values()
	for i := range v {
		v[i] = -1
	}
	v[g.Index(2, 2)] = 1
	segs := Extract(g, 10, 0, nil)
	if len(segs) != 1 {
		t.Fatalf("emitted %d segments, want 1", len(segs))
	}
	want := Segment{A: Point{15, 20}, B: Point{20, 15}}
	if !segEqual(segs[0], want, 1e-12) {
		t.Fatalf("segment = %+v, want %+v", segs[0], want)
	}
}

func TestExtractAppendsToDst(t *testing.T) {
	g := cellGrid(-1, 1, 1, 1)
	dst := make([]Segment, 0, 8)
	dst = Extract(g, 10, 0, dst)
	dst = Extract(g, 10, 0, dst)
	if len(dst) != 2 {
		t.Fatalf("append reuse produced %d segments, want 2", len(dst))
	}
}

func segEqual(got, want Segment, tol float64) bool {
	close := func(a, b float64) bool { return math.Abs(a-b) <= tol }
	return close(got.A.X, want.A.X) && close(got.A.Y, want.A.Y) &&
		close(got.B.X, want.B.X) && close(got.B.Y, want.B.Y)
}
