package navigation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// FrontFromAngles converts yaw and pitch in degrees to a unit view direction.
// Yaw 0 looks down +X, yaw 90 down +Z; positive pitch looks up.
//
// Parameters:
//   - yaw: heading in degrees
//   - pitch: elevation in degrees
//
// Returns:
//   - mgl32.Vec3: the normalized forward direction
func FrontFromAngles(yaw, pitch float32) mgl32.Vec3 {
	y := float64(mgl32.DegToRad(yaw))
	p := float64(mgl32.DegToRad(pitch))
	front := mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(math.Sin(y) * math.Cos(p)),
	}
	return front.Normalize()
}

// planarStep projects a world-space displacement onto the noise-sampling plane.
// The plane's second axis runs opposite to world z.
func planarStep(d mgl32.Vec3) mgl32.Vec2 {
	return mgl32.Vec2{d[0], -d[2]}
}
