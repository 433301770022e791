package renderer

import "github.com/Carmen-Shannon/oxy-terrain/common"

// GPUSceneUniformSize is the byte size of the packed scene uniform block.
const GPUSceneUniformSize = 16

// GPUSceneUniform carries the lighting and terrain shading inputs.
// WGSL layout: four consecutive f32 values, 16 bytes.
type GPUSceneUniform struct {
	LightAngle  float32 // sun angle in radians
	SnowHeight  float32 // snow line offset
	HeightScale float32 // world height of a normalized height of 1
	WaterLevel  float32 // normalized height below which terrain is shaded as water
}

// Marshal serializes the uniform into a little-endian byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUSceneUniform) Marshal() []byte {
	buf := make([]byte, GPUSceneUniformSize)
	common.PutFloats(buf, 0, g.LightAngle, g.SnowHeight, g.HeightScale, g.WaterLevel)
	return buf
}
