package path

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// SegmentDegree is the degree of every Bézier segment in a Curve.
const SegmentDegree = 3

type curveImpl struct {
	mu *sync.Mutex

	points   []mgl32.Vec3
	segments int
}

// Curve defines an appendable chain of cubic Bézier segments.
// Control points are stored in insertion order and never removed. Whenever an append closes a
// segment, the knot shared with the previous segment is replaced by the midpoint of its two
// neighbours so adjacent segments meet without a positional jump.
type Curve interface {
	// Append adds a control point to the end of the curve.
	// Closing a segment rewrites the knot SegmentDegree positions back.
	//
	// Parameters:
	//   - point: the control point to append
	Append(point mgl32.Vec3)

	// Evaluate returns the point on the curve at parameter t.
	// t spans the whole curve in control-point units; callers are expected to stop at Count()-1.
	// An empty curve evaluates to the origin and a single point curve to that point.
	//
	// Parameters:
	//   - t: non-negative curve parameter
	//
	// Returns:
	//   - mgl32.Vec3: the interpolated point
	Evaluate(t float32) mgl32.Vec3

	// Count returns the number of control points appended so far.
	//
	// Returns:
	//   - int: the control point count
	Count() int

	// Segments returns the number of closed segments (knots rewritten so far).
	//
	// Returns:
	//   - int: the closed segment count
	Segments() int

	// Points returns a copy of the stored control points.
	//
	// Returns:
	//   - []mgl32.Vec3: the control points in insertion order
	Points() []mgl32.Vec3
}

var _ Curve = &curveImpl{}

// NewCurve creates an empty Curve and applies the given options.
//
// Parameters:
//   - options: functional options to configure the curve
//
// Returns:
//   - Curve: the newly created curve
func NewCurve(options ...CurveBuilderOption) Curve {
	c := &curveImpl{
		mu:     &sync.Mutex{},
		points: make([]mgl32.Vec3, 0, 16),
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *curveImpl) Append(point mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.append(point)
}

func (c *curveImpl) Evaluate(t float32) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := len(c.points)
	switch n {
	case 0:
		return mgl32.Vec3{}
	case 1:
		return c.points[0]
	}

	if c.segments < 1 {
		return bezier(c.points, float64(t)/float64(n))
	}

	start := int(math.Floor(float64(t)/SegmentDegree)) * SegmentDegree
	if start < 0 {
		start = 0
	}
	end := start + SegmentDegree

	// Past the final closed knot the window keeps its start and stretches to the last point.
	if end > c.segments*SegmentDegree {
		end = n - 1
	}
	if end <= start {
		return c.points[min(start, n-1)]
	}

	local := (float64(t) - float64(start)) / float64(end-start)
	return bezier(c.points[start:end+1], local)
}

func (c *curveImpl) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.points)
}

func (c *curveImpl) Segments() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.segments
}

func (c *curveImpl) Points() []mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]mgl32.Vec3, len(c.points))
	copy(out, c.points)
	return out
}

// append stores point and enforces knot continuity when a segment closes.
// Caller must hold the mutex.
func (c *curveImpl) append(point mgl32.Vec3) {
	n := len(c.points)
	if n > SegmentDegree && n%SegmentDegree == 0 {
		knot := n - SegmentDegree
		c.points[knot] = c.points[knot-1].Add(c.points[knot+1]).Mul(0.5)
		c.segments++
	}
	c.points = append(c.points, point)
}

// bezier evaluates the Bernstein blend of points at local parameter t in [0, 1].
// The degree of the blend is len(points)-1.
func bezier(points []mgl32.Vec3, t float64) mgl32.Vec3 {
	degree := len(points) - 1
	var x, y, z float64
	for i, p := range points {
		w := bernstein(t, degree, i)
		x += float64(p[0]) * w
		y += float64(p[1]) * w
		z += float64(p[2]) * w
	}
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func bernstein(t float64, n, i int) float64 {
	return binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

func binomial(n, k int) float64 {
	return factorial(n) / (factorial(n-k) * factorial(k))
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
