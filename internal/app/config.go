package app

import (
	"flag"

	"isoflow/internal/anim"
)

// Flags represents the command-line parameters shared by the frontends.
type Flags struct {
	Speed      float64
	Lines      int
	NoiseScale float64
	CellSize   float64
	Seed       int64
	Noise      string
	Width      int
	Height     int
}

// NewFlags returns a Flags populated with sensible defaults.
func NewFlags() *Flags {
	def := anim.DefaultConfig()
	return &Flags{
		Speed:      def.Speed,
		Lines:      def.NumLines,
		NoiseScale: def.NoiseScale,
		CellSize:   def.CellSize,
		Seed:       42,
		Noise:      "perlin",
		Width:      960,
		Height:     600,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&f.Speed, "speed", f.Speed, "field time multiplier")
	fs.IntVar(&f.Lines, "lines", f.Lines, "number of iso-levels to contour")
	fs.Float64Var(&f.NoiseScale, "scale", f.NoiseScale, "pixel length of one noise unit")
	fs.Float64Var(&f.CellSize, "cell", f.CellSize, "pixel spacing between field samples")
	fs.Int64Var(&f.Seed, "seed", f.Seed, "permutation table seed")
	fs.StringVar(&f.Noise, "noise", f.Noise, "noise backend: perlin or simplex")
	fs.IntVar(&f.Width, "width", f.Width, "initial window width")
	fs.IntVar(&f.Height, "height", f.Height, "initial window height")
}

// Anim converts the flags into a clamped animation config.
func (f *Flags) Anim() anim.Config {
	return anim.Config{
		Speed:      f.Speed,
		NumLines:   f.Lines,
		NoiseScale: f.NoiseScale,
		CellSize:   f.CellSize,
	}.Clamp()
}
