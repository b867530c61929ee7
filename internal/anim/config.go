package anim

// Config holds the per-frame tunables. It is owned by the host (UI, flags,
// key handlers) and handed to the driver each frame; the driver only reads
// it, after clamping.
type Config struct {
	// Speed scales wall-clock time into field time. Zero freezes the field.
	Speed float64
	// NumLines is how many iso-levels are contoured per frame.
	NumLines int
	// NoiseScale is the pixel length of one noise-space unit; larger values
	// stretch the features.
	NoiseScale float64
	// CellSize is the pixel spacing between field samples.
	CellSize float64
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Speed:      0.4,
		NumLines:   14,
		NoiseScale: 140,
		CellSize:   12,
	}
}

// Clamp normalizes out-of-range values to safe ones. NumLines below 2 would
// divide by zero when spacing levels and a non-positive CellSize would blow
// up the grid, so both are pulled back silently.
func (c Config) Clamp() Config {
	if c.Speed < 0 {
		c.Speed = 0
	}
	if c.NumLines < 2 {
		c.NumLines = 2
	}
	if c.NoiseScale <= 0 {
		c.NoiseScale = 1
	}
	if c.CellSize <= 0 {
		c.CellSize = 1
	}
	return c
}
