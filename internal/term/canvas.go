// Package term renders the animation into a terminal using half-block
// characters: each cell shows two vertically stacked virtual pixels, the top
// one as the foreground of '▀' and the bottom one as the background. Alpha
// is blended into the pixel buffer up front since terminals have none.
package term

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"isoflow/internal/contour"
)

// pixel is an opaque RGB value in the canvas buffer.
type pixel struct {
	r, g, b uint8
}

// Canvas is a fixed-size pixel buffer implementing the driver's Surface.
// The drawable area is cols x 2*rows pixels for a cols x rows terminal.
type Canvas struct {
	cols, rows int // terminal cells
	px         []pixel
}

// NewCanvas allocates a canvas for the given terminal dimensions.
func NewCanvas(cols, rows int) *Canvas {
	c := &Canvas{}
	c.Resize(cols, rows)
	return c
}

// Resize adjusts the canvas to a new terminal size. Contents are
// unspecified afterwards; the driver clears every frame anyway.
func (c *Canvas) Resize(cols, rows int) {
	if cols < 2 {
		cols = 2
	}
	if rows < 1 {
		rows = 1
	}
	c.cols, c.rows = cols, rows
	if n := cols * rows * 2; n <= cap(c.px) {
		c.px = c.px[:n]
	} else {
		c.px = make([]pixel, n)
	}
}

// Size reports the drawable area in virtual pixels.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.cols), float64(c.rows * 2)
}

// Clear fills the buffer with the given color, ignoring its alpha.
func (c *Canvas) Clear(col color.NRGBA) {
	p := pixel{col.R, col.G, col.B}
	for i := range c.px {
		c.px[i] = p
	}
}

// Stroke rasterizes each segment into the buffer, blending the stroke color
// by its alpha. Widths at or above one pixel thicken the stroke by one
// extra pixel downward.
func (c *Canvas) Stroke(segs []contour.Segment, col color.NRGBA, width float32) {
	thick := width >= 1
	for _, s := range segs {
		c.line(s, col, thick)
	}
}

func (c *Canvas) line(s contour.Segment, col color.NRGBA, thick bool) {
	dx := s.B.X - s.A.X
	dy := s.B.Y - s.A.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))*2) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(s.A.X + dx*t))
		y := int(math.Round(s.A.Y + dy*t))
		c.plot(x, y, col)
		if thick {
			c.plot(x, y+1, col)
		}
	}
}

func (c *Canvas) plot(x, y int, col color.NRGBA) {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return
	}
	i := y*c.cols + x
	a := uint32(col.A)
	p := &c.px[i]
	p.r = uint8((uint32(col.R)*a + uint32(p.r)*(255-a)) / 255)
	p.g = uint8((uint32(col.G)*a + uint32(p.g)*(255-a)) / 255)
	p.b = uint8((uint32(col.B)*a + uint32(p.b)*(255-a)) / 255)
}

// Render encodes the buffer as one ANSI frame, cursor-homed and ready to
// write to the terminal.
func (c *Canvas) Render() string {
	var sb strings.Builder
	sb.Grow(c.cols * c.rows * 40)
	sb.WriteString(MoveTo(1, 1))
	for row := 0; row < c.rows; row++ {
		top := c.px[(row*2)*c.cols:]
		bot := c.px[(row*2+1)*c.cols:]
		for x := 0; x < c.cols; x++ {
			writeHalfBlock(&sb, top[x], bot[x])
		}
		sb.WriteString(Reset)
		if row < c.rows-1 {
			sb.WriteString("\r\n")
		}
	}
	return sb.String()
}

// writeHalfBlock emits one cell with a combined SGR so no color state leaks
// between cells.
func writeHalfBlock(sb *strings.Builder, top, bot pixel) {
	sb.WriteString("\x1b[0;38;2;")
	sb.WriteString(strconv.Itoa(int(top.r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(top.g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(top.b)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(bot.r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bot.g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bot.b)))
	sb.WriteString("m▀")
}
