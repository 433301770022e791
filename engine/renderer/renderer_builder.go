package renderer

import "github.com/charmbracelet/log"

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample anti-aliasing sample count for the renderer.
// When not specified, the default is MSAA4x. Use MSAAOff to disable MSAA entirely.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff or MSAA4x)
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithTerrainExtent sets the world-space width covered by the heightfield mesh.
//
// Parameters:
//   - extent: width in world units
//
// Returns:
//   - RendererBuilderOption: a function that sets the terrain extent
func WithTerrainExtent(extent float32) RendererBuilderOption {
	return func(r *renderer) {
		r.terrainExtent = extent
	}
}

// WithHeightScale sets the world height of a normalized terrain height of 1.
// It should match the navigation tuning so FPS mode walks on the drawn surface.
//
// Parameters:
//   - scale: world units per normalized height
//
// Returns:
//   - RendererBuilderOption: a function that sets the height scale
func WithHeightScale(scale float32) RendererBuilderOption {
	return func(r *renderer) {
		r.heightScale = scale
	}
}

// WithWaterLevel sets the normalized height below which terrain is shaded as water.
//
// Parameters:
//   - level: normalized water height
//
// Returns:
//   - RendererBuilderOption: a function that sets the water level
func WithWaterLevel(level float32) RendererBuilderOption {
	return func(r *renderer) {
		r.waterLevel = level
	}
}

// WithLogger sets the logger used by the renderer.
//
// Parameters:
//   - logger: the logger
//
// Returns:
//   - RendererBuilderOption: a function that sets the logger
func WithLogger(logger *log.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.logger = logger
	}
}
