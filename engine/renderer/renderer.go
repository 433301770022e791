package renderer

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-terrain/common"
	"github.com/Carmen-Shannon/oxy-terrain/engine/camera"
	"github.com/Carmen-Shannon/oxy-terrain/engine/daylight"
	"github.com/Carmen-Shannon/oxy-terrain/engine/window"
	"github.com/Carmen-Shannon/oxy-terrain/internal/logging"
)

const cameraUniformSize = camera.GPUCameraUniformSize

// Defaults for the terrain mesh and shading.
const (
	DefaultTerrainExtent float32 = 100
	DefaultHeightScale   float32 = 20
	DefaultWaterLevel    float32 = 0.35
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	terrainExtent float32
	heightScale   float32
	waterLevel    float32

	logger *log.Logger

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer draws the terrain heightfield under the sky clear colour.
// Each frame it uploads the camera and lighting uniforms and, when the terrain has been
// resampled, the new heightfield mesh.
type Renderer interface {
	// Resize reconfigures the surface for a new framebuffer size.
	//
	// Parameters:
	//   - width: framebuffer width in pixels
	//   - height: framebuffer height in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode; it applies on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use
	SetPresentMode(mode PresentMode)

	// UploadTerrain triangulates a heightfield and replaces the terrain mesh.
	//
	// Parameters:
	//   - heights: rows of normalized heights, as produced by terrain.Sampler.Grid
	//
	// Returns:
	//   - error: ErrEmptyHeightfield for fields smaller than 2x2, or a GPU buffer error
	UploadTerrain(heights [][]float32) error

	// RenderFrame draws one frame.
	//
	// Parameters:
	//   - cam: the packed camera state for this frame
	//   - light: the day/night state for this frame
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	RenderFrame(cam camera.GPUCameraUniform, light daylight.State) error

	// Close releases all GPU resources.
	Close()
}

var _ Renderer = &renderer{}

// NewRenderer creates a new Renderer for the given window.
// It panics if no adapter or device can be acquired or the terrain pipeline fails to build.
//
// Parameters:
//   - backendType: the type of rendering backend to use (e.g., WGPU)
//   - window: the window whose surface the renderer draws to
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backendType RendererBackendType, window window.Window, options ...RendererBuilderOption) Renderer {
	r := &renderer{
		mu:            &sync.Mutex{},
		backendType:   backendType,
		terrainExtent: DefaultTerrainExtent,
		heightScale:   DefaultHeightScale,
		waterLevel:    DefaultWaterLevel,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.WithComponent("renderer")
	}
	r.terrainExtent = common.Coalesce(r.terrainExtent, DefaultTerrainExtent)
	r.heightScale = common.Coalesce(r.heightScale, DefaultHeightScale)

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend = newWGPURendererBackend(window.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	r.backend.ConfigureSurface(window.Width(), window.Height())
	if err := r.backend.CreateTerrainPipeline(); err != nil {
		panic(fmt.Sprintf("failed to create terrain pipeline: %v", err))
	}

	r.logger.Info("renderer ready", "width", window.Width(), "height", window.Height(), "msaa", uint32(msaa))
	return r
}

func (r *renderer) Resize(width, height int) {
	r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) UploadTerrain(heights [][]float32) error {
	r.mu.Lock()
	extent, scale := r.terrainExtent, r.heightScale
	r.mu.Unlock()

	mesh, err := BuildTerrainMesh(heights, extent, scale)
	if err != nil {
		return err
	}
	if err := r.backend.UploadTerrainMesh(mesh); err != nil {
		return fmt.Errorf("upload terrain mesh: %w", err)
	}
	return nil
}

func (r *renderer) RenderFrame(cam camera.GPUCameraUniform, light daylight.State) error {
	r.mu.Lock()
	scene := sceneUniform(light, r.heightScale, r.waterLevel)
	r.mu.Unlock()

	r.backend.WriteUniforms(cam.Marshal(), scene.Marshal())

	if err := r.backend.BeginFrame(clearColor(light)); err != nil {
		return fmt.Errorf("begin frame: %w", err)
	}
	r.backend.DrawTerrain()
	r.backend.EndFrame()
	r.backend.Present()
	return nil
}

func (r *renderer) Close() {
	r.backend.Release()
}

// sceneUniform packs the lighting state with the shading constants.
func sceneUniform(light daylight.State, heightScale, waterLevel float32) GPUSceneUniform {
	return GPUSceneUniform{
		LightAngle:  light.LightAngle,
		SnowHeight:  light.SnowHeight,
		HeightScale: heightScale,
		WaterLevel:  waterLevel,
	}
}

// clearColor converts the sky colour to a wgpu clear value.
func clearColor(light daylight.State) wgpu.Color {
	return wgpu.Color{
		R: float64(light.Sky[0]),
		G: float64(light.Sky[1]),
		B: float64(light.Sky[2]),
		A: 1.0,
	}
}
