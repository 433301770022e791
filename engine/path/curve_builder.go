package path

import "github.com/go-gl/mathgl/mgl32"

// CurveBuilderOption is a functional option for configuring a Curve.
type CurveBuilderOption func(*curveImpl)

// WithPoints appends the given control points in order, exactly as repeated Append calls would.
//
// Parameters:
//   - points: control points to append
//
// Returns:
//   - CurveBuilderOption: functional option to seed the curve
func WithPoints(points ...mgl32.Vec3) CurveBuilderOption {
	return func(c *curveImpl) {
		for _, p := range points {
			c.append(p)
		}
	}
}
