package noise

import "github.com/ojrac/opensimplex-go"

// Simplex wraps an OpenSimplex generator behind the Source interface. It
// produces a visibly different grain than the classic table and is offered
// as an alternate backend.
type Simplex struct {
	n opensimplex.Noise
}

// NewSimplex returns an OpenSimplex source seeded deterministically.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{n: opensimplex.New(seed)}
}

// Sample3 evaluates 3-D OpenSimplex noise at (x, y, z).
func (s *Simplex) Sample3(x, y, z float64) float64 {
	return s.n.Eval3(x, y, z)
}

// NewSource returns the backend named by kind ("simplex" selects
// OpenSimplex, anything else the classic gradient table).
func NewSource(kind string, seed int64) Source {
	if kind == "simplex" {
		return NewSimplex(seed)
	}
	return New(seed)
}
