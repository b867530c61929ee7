package anim

import "math"

// LineAlpha computes the stroke opacity for a level at fraction frac within
// [0, 1] of the level range. Opacity peaks at the middle level and tapers
// toward both extremes.
func LineAlpha(frac float64) float64 {
	falloff := 1 - math.Abs(frac-0.5)*2
	return (0.15 + 0.55*math.Pow(falloff, 0.7)) * 0.75
}

// LineWidth emphasizes every fifth level with a heavier stroke.
func LineWidth(i int) float32 {
	if i%5 == 0 {
		return 1.5
	}
	return 0.75
}
