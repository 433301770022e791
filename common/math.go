package common

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LookAt creates a view matrix for a camera at eye looking along front.
// The resulting matrix transforms world coordinates to view/camera space.
//
// Parameters:
//   - eye: camera position in world space
//   - front: view direction (need not be normalized)
//   - up: up vector defining camera orientation
//
// Returns:
//   - mgl32.Mat4: the column-major view matrix
func LookAt(eye, front, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, eye.Add(front), up)
}

// Perspective creates a perspective projection matrix.
// Unlike mgl32.Perspective it maps depth to the WebGPU clip range [0, 1].
//
// Parameters:
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
//
// Returns:
//   - mgl32.Mat4: the column-major projection matrix
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))

	var out mgl32.Mat4
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
	return out
}

// MirrorY reflects a vector in the y = 0 plane.
//
// Parameters:
//   - v: the vector to reflect
//
// Returns:
//   - mgl32.Vec3: v with its y component negated
func MirrorY(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v[0], -v[1], v[2]}
}

// PutFloats writes values into buf as little-endian IEEE-754 floats starting at offset.
// It returns the offset just past the last written value.
//
// Parameters:
//   - buf: destination buffer (must hold offset + 4*len(values) bytes)
//   - offset: byte offset of the first value
//   - values: the floats to write
//
// Returns:
//   - int: the offset following the written values
func PutFloats(buf []byte, offset int, values ...float32) int {
	for _, v := range values {
		binary.LittleEndian.PutUint32(buf[offset:], math.Float32bits(v))
		offset += 4
	}
	return offset
}

// PutUint32 writes v into buf at offset as a little-endian uint32.
//
// Parameters:
//   - buf: destination buffer (must hold offset + 4 bytes)
//   - offset: byte offset of the value
//   - v: the value to write
func PutUint32(buf []byte, offset int, v uint32) {
	binary.LittleEndian.PutUint32(buf[offset:], v)
}
