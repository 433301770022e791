package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBasis(t *testing.T) {
	tests := []struct {
		in      string
		want    Basis
		wantErr bool
	}{
		{in: "perlin", want: BasisPerlin},
		{in: " Perlin ", want: BasisPerlin},
		{in: "OpenSimplex", want: BasisOpenSimplex},
		{in: "simplex", want: BasisOpenSimplex},
		{in: "value", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBasis(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownBasis)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, mustParse(t, got.String()), "String round-trips")
		})
	}
	assert.Equal(t, "Basis(7)", Basis(7).String())
}

func mustParse(t *testing.T, name string) Basis {
	t.Helper()
	b, err := ParseBasis(name)
	require.NoError(t, err)
	return b
}

func TestOpenSimplexSampler(t *testing.T) {
	s := newTestSampler(t, WithBasis(BasisOpenSimplex), WithSeed(42))
	assert.Equal(t, BasisOpenSimplex, s.Basis())

	p := newTestSampler(t, WithSeed(42))
	assert.Equal(t, BasisPerlin, p.Basis())

	differs := false
	for i := range 16 {
		center := mgl32.Vec2{float32(i) * 0.37, float32(i) * 0.11}
		h := s.Height(center)
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
		assert.Equal(t, h, s.Height(center))
		if h != p.Height(center) {
			differs = true
		}
	}
	assert.True(t, differs, "bases produce different terrain")
}
