package terrain

import (
	"math"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/internal/logging"
)

// DefaultSeed seeds the base noise when WithSeed is not given.
const DefaultSeed int64 = 1

type samplerImpl struct {
	mu *sync.Mutex

	params  Params
	weights []float64
	total   float64

	seed  int64
	basis Basis
	noise func(x, y float64) float64

	workers int
	pool    worker.DynamicWorkerPool

	logger *log.Logger
}

// Sampler evaluates the procedural heightfield on the CPU.
// Heightmap coordinates follow the rendered terrain: a unit square of uv space offset by the
// planar center and multiplied by the scale parameter before noise is sampled.
type Sampler interface {
	// Height returns the normalized height under the planar center, in [0, 1].
	// It satisfies the navigation height query used by FPS mode.
	//
	// Parameters:
	//   - center: the planar center of the camera
	//
	// Returns:
	//   - float32: the normalized height
	Height(center mgl32.Vec2) float32

	// HeightAt returns the normalized height at a heightmap uv coordinate relative to center.
	//
	// Parameters:
	//   - center: the planar center the heightmap is offset by
	//   - u, v: heightmap coordinates, [0, 1] covering the visible terrain
	//
	// Returns:
	//   - float64: the normalized height in [0, 1]
	HeightAt(center mgl32.Vec2, u, v float64) float64

	// Grid samples an n x n heightfield covering uv [0, 1] around center.
	// Rows are computed in parallel on the sampler's worker pool.
	//
	// Parameters:
	//   - center: the planar center the heightmap is offset by
	//   - n: samples per side (values below 2 yield a single sample at the middle)
	//
	// Returns:
	//   - [][]float32: rows of normalized heights indexed [v][u]
	Grid(center mgl32.Vec2, n int) [][]float32

	// Params returns the active fBm parameters.
	//
	// Returns:
	//   - Params: the active parameters
	Params() Params

	// SetParams replaces the fBm parameters.
	//
	// Parameters:
	//   - p: the new parameters
	//
	// Returns:
	//   - error: wraps ErrInvalidParams when p is rejected; the old parameters stay active
	SetParams(p Params) error

	// Seed returns the base noise seed.
	//
	// Returns:
	//   - int64: the seed
	Seed() int64

	// Basis returns the gradient noise the octaves are built from.
	Basis() Basis

	// Close stops the worker pool. The sampler must not be used afterwards.
	Close()
}

var _ Sampler = &samplerImpl{}

// NewSampler creates a terrain sampler.
// Panics when the configured parameters are invalid, as a heightfield cannot be built from them.
//
// Parameters:
//   - options: functional options to configure the sampler
//
// Returns:
//   - Sampler: the newly created sampler
func NewSampler(options ...SamplerBuilderOption) Sampler {
	s := &samplerImpl{
		mu:      &sync.Mutex{},
		params:  DefaultParams(),
		seed:    DefaultSeed,
		workers: max(runtime.NumCPU()-1, 1),
	}
	for _, option := range options {
		option(s)
	}
	if err := s.params.Validate(); err != nil {
		panic("terrain: " + err.Error())
	}
	if s.logger == nil {
		s.logger = logging.WithComponent("terrain")
	}

	s.weights, s.total = s.params.amplitudes()
	s.noise = s.basis.noise2D(s.seed)
	s.pool = worker.NewDynamicWorkerPool(s.workers, 256, 1*time.Second)

	s.logger.Debug("terrain sampler ready", "seed", s.seed, "basis", s.basis, "workers", s.workers, "octaves", s.params.Octaves)
	return s
}

func (s *samplerImpl) Height(center mgl32.Vec2) float32 {
	return float32(s.HeightAt(center, 0.5, 0.5))
}

func (s *samplerImpl) HeightAt(center mgl32.Vec2, u, v float64) float64 {
	s.mu.Lock()
	params, weights, total := s.params, s.weights, s.total
	s.mu.Unlock()

	x := (u + float64(center[0])) * params.Scale
	y := (v + float64(center[1])) * params.Scale
	return s.fbm(x, y, params.Lacunarity, params.Offset, weights, total)
}

func (s *samplerImpl) Grid(center mgl32.Vec2, n int) [][]float32 {
	if n < 2 {
		return [][]float32{{s.Height(center)}}
	}

	s.mu.Lock()
	params, weights, total := s.params, s.weights, s.total
	s.mu.Unlock()

	rows := make([][]float32, n)
	step := 1.0 / float64(n-1)

	var wg sync.WaitGroup
	for row := range n {
		wg.Add(1)
		s.pool.SubmitTask(worker.Task{
			ID: row,
			Do: func() (any, error) {
				defer wg.Done()
				values := make([]float32, n)
				y := (float64(row)*step + float64(center[1])) * params.Scale
				for col := range n {
					x := (float64(col)*step + float64(center[0])) * params.Scale
					values[col] = float32(s.fbm(x, y, params.Lacunarity, params.Offset, weights, total))
				}
				rows[row] = values
				return nil, nil
			},
		})
	}
	wg.Wait()
	return rows
}

func (s *samplerImpl) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params
}

func (s *samplerImpl) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	weights, total := p.amplitudes()

	s.mu.Lock()
	s.params, s.weights, s.total = p, weights, total
	s.mu.Unlock()

	s.logger.Debug("terrain parameters updated",
		"scale", p.Scale, "H", p.H, "lacunarity", p.Lacunarity, "octaves", p.Octaves, "offset", p.Offset,
	)
	return nil
}

func (s *samplerImpl) Seed() int64 {
	return s.seed
}

func (s *samplerImpl) Basis() Basis {
	return s.basis
}

func (s *samplerImpl) Close() {
	s.pool.Stop()
}

// fbm sums weighted octaves of base noise and maps the result into [0, 1].
// The base noise table is read-only after construction, so concurrent calls are safe.
func (s *samplerImpl) fbm(x, y, lacunarity, offset float64, weights []float64, total float64) float64 {
	sum := 0.0
	for _, w := range weights {
		sum += w * s.noise(x, y)
		x *= lacunarity
		y *= lacunarity
	}
	h := 0.5*(sum/total) + 0.5*offset
	return math.Min(math.Max(h, 0), 1)
}
