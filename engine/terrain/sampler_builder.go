package terrain

import "github.com/charmbracelet/log"

type SamplerBuilderOption func(*samplerImpl)

// WithParams sets the fBm parameters. Invalid parameters make NewSampler panic.
//
// Parameters:
//   - p: the fBm parameters
//
// Returns:
//   - SamplerBuilderOption: a function that sets the parameters
func WithParams(p Params) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.params = p
	}
}

// WithBasis selects the gradient noise. Defaults to BasisPerlin.
//
// Parameters:
//   - b: the noise basis
//
// Returns:
//   - SamplerBuilderOption: a function that sets the basis
func WithBasis(b Basis) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.basis = b
	}
}

// WithSeed sets the base noise seed.
//
// Parameters:
//   - seed: the seed
//
// Returns:
//   - SamplerBuilderOption: a function that sets the seed
func WithSeed(seed int64) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.seed = seed
	}
}

// WithWorkers sets the number of goroutines used by Grid.
// Values below 1 are raised to 1.
//
// Parameters:
//   - n: the worker count
//
// Returns:
//   - SamplerBuilderOption: a function that sets the worker count
func WithWorkers(n int) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.workers = max(n, 1)
	}
}

// WithLogger sets the logger used by the sampler.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - SamplerBuilderOption: a function that sets the logger
func WithLogger(logger *log.Logger) SamplerBuilderOption {
	return func(s *samplerImpl) {
		s.logger = logger
	}
}
