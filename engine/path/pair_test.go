package path

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairAppendKeepsCurvesInStep(t *testing.T) {
	p := NewPair()
	assert.Equal(t, 0, p.Count())

	for i := range 5 {
		p.Append(mgl32.Vec3{float32(i), 10, 0}, mgl32.Vec3{-5, 90 + float32(i), 0})
	}
	assert.Equal(t, 5, p.Count())
	assert.Equal(t, 5, p.Angle.Count())

	pos, angle := p.Evaluate(0)
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, pos)
	assert.Equal(t, mgl32.Vec3{-5, 90, 0}, angle)
}

func TestPairZeroValueCount(t *testing.T) {
	var p Pair
	assert.Equal(t, 0, p.Count())
}

func TestPrerecorded(t *testing.T) {
	p := Prerecorded()
	require.Equal(t, len(prerecordedPositions), p.Count())
	require.Equal(t, len(prerecordedAngles), p.Angle.Count())
	assert.Equal(t, 6, p.Position.Segments())

	start, startAngle := p.Evaluate(0)
	assertVecInDelta(t, mgl32.Vec3{0, 20, 0}, start, tolerance)
	assertVecInDelta(t, mgl32.Vec3{2.80488, 171.884, 0}, startAngle, 1e-4)

	end, _ := p.Evaluate(float32(p.Count() - 1))
	assertVecInDelta(t, mgl32.Vec3{0, 20, 0}, end, tolerance)

	// fresh curves per call
	other := Prerecorded()
	other.Append(mgl32.Vec3{}, mgl32.Vec3{})
	assert.Equal(t, len(prerecordedPositions), p.Count())
}
