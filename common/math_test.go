package common

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookAtMatchesTargetForm(t *testing.T) {
	eye := mgl32.Vec3{1, 20, -3}
	front := mgl32.Vec3{0, -0.5, 1}.Normalize()
	up := mgl32.Vec3{0, 1, 0}

	view := LookAt(eye, front, up)
	assert.True(t, view.ApproxEqual(mgl32.LookAtV(eye, eye.Add(front), up)))

	// eye maps to the view-space origin
	origin := view.Mul4x1(eye.Vec4(1))
	assert.InDelta(t, 0, origin.Vec3().Len(), 1e-4)
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.1), float32(100)
	proj := Perspective(mgl32.DegToRad(45), 16.0/9.0, near, far)

	ndcDepth := func(z float32) float32 {
		clip := proj.Mul4x1(mgl32.Vec4{0, 0, -z, 1})
		return clip[2] / clip[3]
	}
	assert.InDelta(t, 0, ndcDepth(near), 1e-5)
	assert.InDelta(t, 1, ndcDepth(far), 1e-4)
	assert.Equal(t, float32(-1), proj[11])
}

func TestMirrorY(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{1, -2, 3}, MirrorY(mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, MirrorY(MirrorY(mgl32.Vec3{1, 2, 3})))
}

func TestPutFloats(t *testing.T) {
	buf := make([]byte, 16)
	next := PutFloats(buf, 4, 1.5, -2, 0.25)
	require.Equal(t, 16, next)

	assert.Zero(t, binary.LittleEndian.Uint32(buf[0:]))
	assert.Equal(t, float32(1.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(-2), math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])))
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(buf[12:])))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "b", Coalesce("", "b", "c"))
	assert.Equal(t, 0, Coalesce(0, 0))
	assert.Equal(t, 3, Coalesce(3, 4))
}
