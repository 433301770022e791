package renderer

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/common"
)

// terrainVertexFloats is the number of floats per vertex: position, normal, normalized height.
const terrainVertexFloats = 7

// terrainVertexStride is the byte stride of one terrain vertex.
const terrainVertexStride = terrainVertexFloats * 4

// ErrEmptyHeightfield is returned when a heightfield has fewer than 2x2 samples.
var ErrEmptyHeightfield = errors.New("heightfield needs at least 2x2 samples")

// TerrainMesh is a triangulated heightfield ready for upload.
type TerrainMesh struct {
	// Vertices holds terrainVertexFloats floats per vertex.
	Vertices []float32
	// Indices lists triangle corners, two triangles per grid cell.
	Indices []uint32
}

// BuildTerrainMesh triangulates an n x n heightfield centred on the world origin.
// Row v of the heightfield maps to -z so that forward motion along +z walks up the rows.
//
// Parameters:
//   - heights: rows of normalized heights indexed [v][u], all rows of equal length
//   - extent: world-space width of the heightfield
//   - heightScale: world-space height of a normalized height of 1
//
// Returns:
//   - TerrainMesh: the vertices and indices
//   - error: ErrEmptyHeightfield for fields smaller than 2x2
func BuildTerrainMesh(heights [][]float32, extent, heightScale float32) (TerrainMesh, error) {
	rows := len(heights)
	if rows < 2 || len(heights[0]) < 2 {
		return TerrainMesh{}, ErrEmptyHeightfield
	}
	cols := len(heights[0])
	for _, row := range heights {
		if len(row) != cols {
			return TerrainMesh{}, ErrEmptyHeightfield
		}
	}

	stepX := extent / float32(cols-1)
	stepZ := extent / float32(rows-1)
	position := func(r, c int) mgl32.Vec3 {
		return mgl32.Vec3{
			float32(c)*stepX - extent/2,
			heights[r][c] * heightScale,
			extent/2 - float32(r)*stepZ,
		}
	}

	mesh := TerrainMesh{
		Vertices: make([]float32, 0, rows*cols*terrainVertexFloats),
		Indices:  make([]uint32, 0, (rows-1)*(cols-1)*6),
	}
	for r := range rows {
		for c := range cols {
			// central differences, clamped at the border
			left, right := position(r, max(c-1, 0)), position(r, min(c+1, cols-1))
			near, far := position(max(r-1, 0), c), position(min(r+1, rows-1), c)
			normal := right.Sub(left).Cross(far.Sub(near))
			if normal.Len() > 0 {
				normal = normal.Normalize()
			} else {
				normal = mgl32.Vec3{0, 1, 0}
			}

			p := position(r, c)
			mesh.Vertices = append(mesh.Vertices, p[0], p[1], p[2], normal[0], normal[1], normal[2], heights[r][c])
		}
	}

	for r := range rows - 1 {
		for c := range cols - 1 {
			i := uint32(r*cols + c)
			below := i + uint32(cols)
			mesh.Indices = append(mesh.Indices, i, below, i+1, i+1, below, below+1)
		}
	}
	return mesh, nil
}

// VertexBytes packs the vertices as little-endian floats.
//
// Returns:
//   - []byte: the vertex buffer contents
func (m TerrainMesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*4)
	common.PutFloats(buf, 0, m.Vertices...)
	return buf
}

// IndexBytes packs the indices as little-endian uint32 values.
//
// Returns:
//   - []byte: the index buffer contents
func (m TerrainMesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		common.PutUint32(buf, i*4, idx)
	}
	return buf
}
