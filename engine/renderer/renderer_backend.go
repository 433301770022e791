package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// RendererBackendType names the GPU API a Renderer drives. Only WebGPU exists today.
type RendererBackendType int

const (
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode selects how finished frames reach the display.
type PresentMode int

const (
	// PresentModeVSync queues frames behind the vertical blank. No tearing; frame rate follows the monitor.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped hands frames over as soon as they are done.
	PresentModeUncapped
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeVSync:
		return "vsync"
	case PresentModeUncapped:
		return "uncapped"
	}
	return fmt.Sprintf("PresentMode(%d)", int(m))
}

// wgpuPresentMode maps the mode onto the surface setting. Unknown modes present immediately.
func (m PresentMode) wgpuPresentMode() wgpu.PresentMode {
	if m == PresentModeVSync {
		return wgpu.PresentModeFifo
	}
	return wgpu.PresentModeImmediate
}

// MSAASampleCount is the per-pixel sample count of the terrain pass.
// WebGPU only guarantees 1 and 4.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4
)

// RendererBackend is what the Renderer talks to; the selected API's backend satisfies it.
type RendererBackend interface {
	wgpuRendererBackend
}
