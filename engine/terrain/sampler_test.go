package terrain

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSampler(t *testing.T, options ...SamplerBuilderOption) Sampler {
	t.Helper()
	base := []SamplerBuilderOption{WithLogger(log.New(io.Discard)), WithWorkers(2)}
	s := NewSampler(append(base, options...)...)
	t.Cleanup(s.Close)
	return s
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Params)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Params) {}},
		{name: "zero scale", mutate: func(p *Params) { p.Scale = 0 }, wantErr: true},
		{name: "lacunarity of one", mutate: func(p *Params) { p.Lacunarity = 1 }, wantErr: true},
		{name: "no octaves", mutate: func(p *Params) { p.Octaves = 0 }, wantErr: true},
		{name: "negative H", mutate: func(p *Params) { p.H = -0.1 }, wantErr: true},
		{name: "zero H", mutate: func(p *Params) { p.H = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidParams)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAmplitudes(t *testing.T) {
	p := Params{Scale: 1, H: 1, Lacunarity: 2, Octaves: 3}
	weights, total := p.amplitudes()
	assert.InDeltaSlice(t, []float64{1, 0.5, 0.25}, weights, 1e-12)
	assert.InDelta(t, 1.75, total, 1e-12)
}

func TestNewSamplerPanicsOnInvalidParams(t *testing.T) {
	assert.Panics(t, func() {
		NewSampler(WithLogger(log.New(io.Discard)), WithParams(Params{}))
	})
}

func TestHeightIsNormalizedAndDeterministic(t *testing.T) {
	a := newTestSampler(t, WithSeed(42))
	b := newTestSampler(t, WithSeed(42))

	for _, c := range []mgl32.Vec2{{0, 0}, {0.3, -0.7}, {12.5, 4.25}, {-100, 3}} {
		h := a.Height(c)
		assert.GreaterOrEqual(t, h, float32(0))
		assert.LessOrEqual(t, h, float32(1))
		assert.Equal(t, h, b.Height(c), "same seed gives the same terrain")
		assert.Equal(t, h, float32(a.HeightAt(c, 0.5, 0.5)))
	}
	assert.Equal(t, int64(42), a.Seed())
}

func TestOffsetShiftsBaseline(t *testing.T) {
	s := newTestSampler(t)
	p := DefaultParams()

	p.Offset = 3
	require.NoError(t, s.SetParams(p))
	assert.Equal(t, float32(1), s.Height(mgl32.Vec2{0.1, 0.2}))

	p.Offset = -3
	require.NoError(t, s.SetParams(p))
	assert.Equal(t, float32(0), s.Height(mgl32.Vec2{0.1, 0.2}))
}

func TestSetParamsRejectsInvalid(t *testing.T) {
	s := newTestSampler(t)
	before := s.Params()

	err := s.SetParams(Params{Scale: -1, Lacunarity: 2, Octaves: 1})
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.Equal(t, before, s.Params())
}

func TestGridMatchesPointSamples(t *testing.T) {
	s := newTestSampler(t, WithSeed(7))
	center := mgl32.Vec2{1.25, -0.5}
	const n = 9

	grid := s.Grid(center, n)
	require.Len(t, grid, n)
	for row := range n {
		require.Len(t, grid[row], n)
		for col := range n {
			u := float64(col) / (n - 1)
			v := float64(row) / (n - 1)
			assert.InDelta(t, s.HeightAt(center, u, v), grid[row][col], 1e-6, "row %d col %d", row, col)
		}
	}

	// the middle sample is the camera height query
	assert.InDelta(t, s.Height(center), grid[n/2][n/2], 1e-6)
}

func TestGridSingleSample(t *testing.T) {
	s := newTestSampler(t)
	grid := s.Grid(mgl32.Vec2{2, 2}, 1)
	require.Len(t, grid, 1)
	require.Len(t, grid[0], 1)
	assert.Equal(t, s.Height(mgl32.Vec2{2, 2}), grid[0][0])
}
