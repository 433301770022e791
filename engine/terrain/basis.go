package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// Basis selects the gradient noise summed by the fBm octaves.
type Basis int

const (
	// BasisPerlin is classic Perlin noise.
	BasisPerlin Basis = iota
	// BasisOpenSimplex is OpenSimplex noise, with fewer axis-aligned artifacts.
	BasisOpenSimplex
)

// ErrUnknownBasis is returned by ParseBasis for unrecognised names.
var ErrUnknownBasis = errors.New("unknown noise basis")

func (b Basis) String() string {
	switch b {
	case BasisPerlin:
		return "perlin"
	case BasisOpenSimplex:
		return "opensimplex"
	}
	return fmt.Sprintf("Basis(%d)", int(b))
}

// ParseBasis maps a case-insensitive name to a Basis.
func ParseBasis(name string) (Basis, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "perlin":
		return BasisPerlin, nil
	case "opensimplex", "simplex":
		return BasisOpenSimplex, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBasis, name)
}

// noise2D returns a seeded 2D noise function with output roughly in [-1, 1].
// Unknown bases fall back to Perlin.
func (b Basis) noise2D(seed int64) func(x, y float64) float64 {
	if b == BasisOpenSimplex {
		return opensimplex.New(seed).Eval2
	}
	return perlin.NewPerlin(2, 2, 1, seed).Noise2D
}
