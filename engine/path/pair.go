package path

import "github.com/go-gl/mathgl/mgl32"

// Pair couples a position curve with an angle curve sampled at the same instants.
// Angle control points pack pitch in x and yaw in y, both in degrees.
type Pair struct {
	Position Curve
	Angle    Curve
}

// NewPair creates a Pair of empty curves, ready for live recording.
//
// Returns:
//   - Pair: the empty pair
func NewPair() Pair {
	return Pair{
		Position: NewCurve(),
		Angle:    NewCurve(),
	}
}

// Append adds one synchronized sample to both curves.
//
// Parameters:
//   - position: eye position sample
//   - angle: (pitch, yaw, 0) sample in degrees
func (p Pair) Append(position, angle mgl32.Vec3) {
	p.Position.Append(position)
	p.Angle.Append(angle)
}

// Count returns the number of samples in the position curve, which drives path completion.
//
// Returns:
//   - int: the sample count
func (p Pair) Count() int {
	if p.Position == nil {
		return 0
	}
	return p.Position.Count()
}

// Evaluate samples both curves at t.
//
// Parameters:
//   - t: curve parameter
//
// Returns:
//   - position: the interpolated position
//   - angle: the interpolated (pitch, yaw, 0)
func (p Pair) Evaluate(t float32) (position, angle mgl32.Vec3) {
	return p.Position.Evaluate(t), p.Angle.Evaluate(t)
}
