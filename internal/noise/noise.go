// Package noise provides the 3-D gradient noise that drives the animated
// field. The classic permutation-table generator is the default; an
// OpenSimplex backend is available behind the same Source interface.
package noise

import (
	"math"
	"math/rand/v2"
)

// Source evaluates a smooth scalar noise field at a 3-D coordinate.
// Implementations are pure: identical inputs always yield identical output.
type Source interface {
	Sample3(x, y, z float64) float64
}

// Table is a classic gradient-noise permutation table: a shuffle of 0..255
// mirrored into 512 entries so corner hashing never needs a wrap check.
// Immutable once built and safe for concurrent reads.
type Table struct {
	perm [512]uint8
}

// New builds a Table from the given seed.
func New(seed int64) *Table {
	return NewFromRand(rand.New(rand.NewPCG(uint64(seed), 0)))
}

// NewFromRand builds a Table using the provided random source, so callers
// that need reproducible output across processes can inject their own.
func NewFromRand(r *rand.Rand) *Table {
	t := &Table{}
	p := make([]uint8, 256)
	for i := range p {
		p[i] = uint8(i)
	}
	r.Shuffle(256, func(i, j int) { p[i], p[j] = p[j], p[i] })
	for i := 0; i < 512; i++ {
		t.perm[i] = p[i&255]
	}
	return t
}

// Sample3 returns gradient noise at (x, y, z), in roughly [-1, 1].
// Non-finite coordinates are not supported.
func (t *Table) Sample3(x, y, z float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255
	zi := int(math.Floor(z)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)
	z -= math.Floor(z)

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners through two nested permutation lookups.
	a := int(t.perm[xi]) + yi
	aa := int(t.perm[a]) + zi
	ab := int(t.perm[a+1]) + zi
	b := int(t.perm[xi+1]) + yi
	ba := int(t.perm[b]) + zi
	bb := int(t.perm[b+1]) + zi

	return lerp(w,
		lerp(v,
			lerp(u,
				grad(t.perm[aa], x, y, z),
				grad(t.perm[ba], x-1, y, z)),
			lerp(u,
				grad(t.perm[ab], x, y-1, z),
				grad(t.perm[bb], x-1, y-1, z))),
		lerp(v,
			lerp(u,
				grad(t.perm[aa+1], x, y, z-1),
				grad(t.perm[ba+1], x-1, y, z-1)),
			lerp(u,
				grad(t.perm[ab+1], x, y-1, z-1),
				grad(t.perm[bb+1], x-1, y-1, z-1))))
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

// grad picks a pseudo-gradient from the low 4 bits of the hash and dots it
// with (x, y, z). The gradients are the 12 cube edge centers, with 4 of the
// 16 codes repeating diagonals so the selection is a plain mask.
func grad(hash uint8, x, y, z float64) float64 {
	h := hash & 15
	u := x
	if h >= 8 {
		u = y
	}
	v := y
	if h >= 4 {
		v = z
		if h == 12 || h == 14 {
			v = x
		}
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
