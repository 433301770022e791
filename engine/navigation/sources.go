package navigation

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

// HeightSampler answers the terrain height query for a planar center.
// Heights are normalized; the controller scales them to world altitude.
type HeightSampler interface {
	Height(center mgl32.Vec2) float32
}

// HeightSamplerFunc adapts a plain function to HeightSampler.
type HeightSamplerFunc func(center mgl32.Vec2) float32

func (f HeightSamplerFunc) Height(center mgl32.Vec2) float32 { return f(center) }

// Clock is the monotonic time source queried once per tick.
type Clock interface {
	Seconds() float64
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() float64

func (f ClockFunc) Seconds() float64 { return f() }

// wallClock counts seconds since it was created.
type wallClock struct {
	start time.Time
}

func newWallClock() wallClock {
	return wallClock{start: time.Now()}
}

func (c wallClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}
