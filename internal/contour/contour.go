// Package contour extracts iso-level line segments from a scalar grid using
// marching squares. Segments are emitted per cell and never stitched into
// polylines; the drawing surfaces stroke each one independently.
package contour

import "isoflow/internal/field"

// Point is a position in device-pixel coordinates.
type Point struct {
	X, Y float64
}

// Segment is one straight stroke between two edge crossings of a cell.
type Segment struct {
	A, B Point
}

// Cell edges, indexed clockwise from the top.
const (
	edgeTop = iota
	edgeRight
	edgeBottom
	edgeLeft
)

// caseTable maps the 4-bit corner classification (tl·8 + tr·4 + br·2 + bl·1)
// to the edges each emitted segment crosses. Cases 0 and 15 emit nothing;
// the saddle cases 5 and 10 emit two segments with a fixed pairing that does
// not probe the cell center — good enough for decorative rendering.
var caseTable = [16][][2]int{
	0:  nil,
	1:  {{edgeLeft, edgeBottom}},
	2:  {{edgeBottom, edgeRight}},
	3:  {{edgeLeft, edgeRight}},
	4:  {{edgeTop, edgeRight}},
	5:  {{edgeLeft, edgeTop}, {edgeRight, edgeBottom}},
	6:  {{edgeTop, edgeBottom}},
	7:  {{edgeLeft, edgeTop}},
	8:  {{edgeTop, edgeLeft}},
	9:  {{edgeTop, edgeBottom}},
	10: {{edgeTop, edgeRight}, {edgeBottom, edgeLeft}},
	11: {{edgeTop, edgeRight}},
	12: {{edgeLeft, edgeRight}},
	13: {{edgeRight, edgeBottom}},
	14: {{edgeBottom, edgeLeft}},
	15: nil,
}

// crossFrac returns where the level crosses between two corner values, as a
// fraction from v0 toward v1. A near-zero gradient pins the crossing to the
// first corner instead of dividing by the vanishing difference.
func crossFrac(level, v0, v1 float64) float64 {
	d := v1 - v0
	if d < 1e-6 && d > -1e-6 {
		return 0
	}
	return (level - v0) / d
}

// edgePoint locates the level crossing on one edge of the cell whose
// top-left pixel corner is (x0, y0) and whose corner values are tl, tr, br,
// bl. Cell width and height are both cellSize.
func edgePoint(edge int, level, x0, y0, cellSize, tl, tr, br, bl float64) Point {
	switch edge {
	case edgeTop:
		return Point{X: x0 + crossFrac(level, tl, tr)*cellSize, Y: y0}
	case edgeRight:
		return Point{X: x0 + cellSize, Y: y0 + crossFrac(level, tr, br)*cellSize}
	case edgeBottom:
		return Point{X: x0 + crossFrac(level, bl, br)*cellSize, Y: y0 + cellSize}
	default:
		return Point{X: x0, Y: y0 + crossFrac(level, tl, bl)*cellSize}
	}
}

// Extract appends the segments where the field crosses level to dst and
// returns the extended slice. The grid must be at least 2x2; NewGrid and
// Resize guarantee that.
func Extract(g *field.Grid, cellSize, level float64, dst []Segment) []Segment {
	vals := g.Values()
	for row := 0; row < g.Rows-1; row++ {
		base := row * g.Cols
		y0 := float64(row) * cellSize
		for col := 0; col < g.Cols-1; col++ {
			tl := vals[base+col]
			tr := vals[base+col+1]
			bl := vals[base+g.Cols+col]
			br := vals[base+g.Cols+col+1]

			idx := 0
			if tl >= level {
				idx |= 8
			}
			if tr >= level {
				idx |= 4
			}
			if br >= level {
				idx |= 2
			}
			if bl >= level {
				idx |= 1
			}
			edges := caseTable[idx]
			if edges == nil {
				continue
			}

			x0 := float64(col) * cellSize
			for _, e := range edges {
				dst = append(dst, Segment{
					A: edgePoint(e[0], level, x0, y0, cellSize, tl, tr, br, bl),
					B: edgePoint(e[1], level, x0, y0, cellSize, tl, tr, br, bl),
				})
			}
		}
	}
	return dst
}
