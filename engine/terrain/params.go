package terrain

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned when fBm parameters cannot produce a heightfield.
var ErrInvalidParams = errors.New("invalid terrain parameters")

// Params controls the fractional Brownian motion used to build the heightfield.
type Params struct {
	// Scale multiplies heightmap coordinates before sampling noise.
	Scale float64
	// H is the fractal increment; each octave's amplitude is lacunarity^(-H*i).
	H float64
	// Lacunarity is the frequency gap between successive octaves.
	Lacunarity float64
	// Octaves is the number of noise layers summed.
	Octaves int
	// Offset shifts the normalized baseline. 1.0 centres heights on 0.5.
	Offset float64
}

// DefaultParams returns the stock terrain look.
//
// Returns:
//   - Params: scale 2, H 1.2, lacunarity 2.45, 6 octaves, offset 1
func DefaultParams() Params {
	return Params{
		Scale:      2,
		H:          1.2,
		Lacunarity: 2.45,
		Octaves:    6,
		Offset:     1.0,
	}
}

// Validate reports whether p can be used to sample terrain.
//
// Returns:
//   - error: wraps ErrInvalidParams naming the offending field, or nil
func (p Params) Validate() error {
	switch {
	case p.Scale <= 0:
		return fmt.Errorf("%w: scale must be positive, got %v", ErrInvalidParams, p.Scale)
	case p.Lacunarity <= 1:
		return fmt.Errorf("%w: lacunarity must exceed 1, got %v", ErrInvalidParams, p.Lacunarity)
	case p.Octaves < 1:
		return fmt.Errorf("%w: octaves must be at least 1, got %d", ErrInvalidParams, p.Octaves)
	case p.H < 0:
		return fmt.Errorf("%w: H must not be negative, got %v", ErrInvalidParams, p.H)
	}
	return nil
}

// amplitudes returns the per-octave weights and their sum.
func (p Params) amplitudes() ([]float64, float64) {
	weights := make([]float64, p.Octaves)
	total := 0.0
	frequency := 1.0
	for i := range weights {
		weights[i] = math.Pow(frequency, -p.H)
		total += weights[i]
		frequency *= p.Lacunarity
	}
	return weights, total
}
