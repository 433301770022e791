package renderer

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-terrain/engine/daylight"
)

func vertexAt(m TerrainMesh, i int) (pos, normal mgl32.Vec3, height float32) {
	v := m.Vertices[i*terrainVertexFloats:]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, v[6]
}

func TestBuildTerrainMeshFlat(t *testing.T) {
	heights := [][]float32{
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
		{0.5, 0.5, 0.5},
	}
	mesh, err := BuildTerrainMesh(heights, 10, 20)
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 9*terrainVertexFloats)
	require.Len(t, mesh.Indices, 4*6)

	pos, normal, h := vertexAt(mesh, 0)
	assert.Equal(t, mgl32.Vec3{-5, 10, 5}, pos, "first row sits at +z")
	assert.True(t, normal.ApproxEqual(mgl32.Vec3{0, 1, 0}))
	assert.Equal(t, float32(0.5), h)

	pos, _, _ = vertexAt(mesh, 4)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, pos, "middle sample is under the camera")

	pos, _, _ = vertexAt(mesh, 8)
	assert.Equal(t, mgl32.Vec3{5, 10, -5}, pos)

	assert.Equal(t, []uint32{0, 3, 1, 1, 3, 4}, mesh.Indices[:6])
	for _, idx := range mesh.Indices {
		assert.Less(t, idx, uint32(9))
	}
}

func TestBuildTerrainMeshSlopeNormal(t *testing.T) {
	// height rises with u, i.e. towards +x
	heights := [][]float32{
		{0, 0.5, 1},
		{0, 0.5, 1},
	}
	mesh, err := BuildTerrainMesh(heights, 2, 1)
	require.NoError(t, err)

	_, normal, _ := vertexAt(mesh, 1)
	assert.InDelta(t, 1, normal.Len(), 1e-6)
	assert.Greater(t, normal[1], float32(0), "normals point up")
	assert.Less(t, normal[0], float32(0), "normals lean away from the rise")
	assert.InDelta(t, 0, normal[2], 1e-6)
}

func TestBuildTerrainMeshRejectsSmallFields(t *testing.T) {
	tests := []struct {
		name    string
		heights [][]float32
	}{
		{name: "nil", heights: nil},
		{name: "single row", heights: [][]float32{{1, 2}}},
		{name: "single column", heights: [][]float32{{1}, {2}}},
		{name: "ragged", heights: [][]float32{{1, 2}, {3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildTerrainMesh(tt.heights, 1, 1)
			assert.ErrorIs(t, err, ErrEmptyHeightfield)
		})
	}
}

func TestTerrainMeshBytes(t *testing.T) {
	mesh := TerrainMesh{Vertices: []float32{1.5, -2}, Indices: []uint32{7, 65536}}

	vb := mesh.VertexBytes()
	require.Len(t, vb, 8)
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(vb)))
	assert.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(vb[4:])))

	ib := mesh.IndexBytes()
	require.Len(t, ib, 8)
	assert.Equal(t, uint32(7), binary.LittleEndian.Uint32(ib))
	assert.Equal(t, uint32(65536), binary.LittleEndian.Uint32(ib[4:]))
}

func TestSceneUniform(t *testing.T) {
	light := daylight.State{LightAngle: 1.25, SnowHeight: -0.1, Sky: mgl32.Vec3{0.5, 0.25, 1}}
	u := sceneUniform(light, 20, 0.35)

	buf := u.Marshal()
	require.Len(t, buf, GPUSceneUniformSize)
	read := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	assert.Equal(t, float32(1.25), read(0))
	assert.Equal(t, float32(-0.1), read(4))
	assert.Equal(t, float32(20), read(8))
	assert.Equal(t, float32(0.35), read(12))

	c := clearColor(light)
	assert.Equal(t, 0.5, c.R)
	assert.Equal(t, 0.25, c.G)
	assert.Equal(t, 1.0, c.B)
	assert.Equal(t, 1.0, c.A)
}

func TestPresentMode(t *testing.T) {
	assert.Equal(t, "vsync", PresentModeVSync.String())
	assert.Equal(t, "uncapped", PresentModeUncapped.String())
	assert.Equal(t, "PresentMode(5)", PresentMode(5).String())

	assert.Equal(t, wgpu.PresentModeFifo, PresentModeVSync.wgpuPresentMode())
	assert.Equal(t, wgpu.PresentModeImmediate, PresentModeUncapped.wgpuPresentMode())
	assert.Equal(t, wgpu.PresentModeImmediate, PresentMode(5).wgpuPresentMode())
}
