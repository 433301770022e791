package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/common"
)

// GPUCameraUniformSize is the byte size of the packed camera uniform block.
const GPUCameraUniformSize = 160

// GPUCameraUniform is the GPU-aligned representation of the camera uniform buffer.
// WGSL layout:
//
//	struct CameraUniform {
//	    view_proj: mat4x4<f32>,        // offset   0
//	    mirror_view_proj: mat4x4<f32>, // offset  64
//	    position: vec3<f32>,           // offset 128
//	    center: vec2<f32>,             // offset 144
//	}
//
// Size: 160 bytes.
type GPUCameraUniform struct {
	ViewProj       mgl32.Mat4 // offset   0: combined view-projection matrix
	MirrorViewProj mgl32.Mat4 // offset  64: reflection view-projection matrix for the water pass
	CameraPosition mgl32.Vec3 // offset 128: world-space eye position, padded to 16 bytes
	Center         mgl32.Vec2 // offset 144: planar noise offset, padded to 16 bytes
}

// Size returns the size of the packed uniform in bytes.
//
// Returns:
//   - int: the packed size in bytes (160)
func (g *GPUCameraUniform) Size() int {
	return GPUCameraUniformSize
}

// Marshal serializes the uniform into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, GPUCameraUniformSize)
	common.PutFloats(buf, 0, g.ViewProj[:]...)
	common.PutFloats(buf, 64, g.MirrorViewProj[:]...)
	common.PutFloats(buf, 128, g.CameraPosition[:]...)
	common.PutFloats(buf, 144, g.Center[:]...)
	return buf
}
