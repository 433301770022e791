package daylight

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Slider ranges for the manual controls.
const (
	MinDayTime         float32 = 0
	MaxDayTime         float32 = 10
	MinSpeed           float32 = 1
	MaxSpeed           float32 = 10
	MinSnowSpeed       float32 = 1
	MaxSnowSpeed       float32 = 20
	MinCustomSnowLevel float32 = -0.5
	MaxCustomSnowLevel float32 = 0.175
)

var (
	nightSky = mgl32.Vec3{0.02, 0.02, 0.08}
	daySky   = mgl32.Vec3{0.45, 0.65, 0.9}
)

// State is the lighting input for one frame.
type State struct {
	// LightAngle is the sun angle in radians fed to the terrain, water and sky passes.
	LightAngle float32
	// SnowHeight shifts the snow line; 0 keeps the default line.
	SnowHeight float32
	// Sky is the linear RGB clear colour.
	Sky mgl32.Vec3
}

type cycleImpl struct {
	mu *sync.Mutex

	auto            bool
	dynamicSnow     bool
	dayTime         float32
	speed           float32
	snowSpeed       float32
	customSnowLevel float32
}

// Cycle computes the day/night light angle and snow line.
// In auto mode the sun moves with time; in manual mode the day-time control sets it directly.
type Cycle interface {
	// At returns the lighting state for the given time.
	//
	// Parameters:
	//   - seconds: time since start, used only in auto mode
	//
	// Returns:
	//   - State: light angle, snow height and sky colour
	At(seconds float64) State

	// Auto reports whether the sun follows time.
	//
	// Returns:
	//   - bool: true in auto mode
	Auto() bool

	// SetAuto switches between auto and manual mode.
	//
	// Parameters:
	//   - auto: true to follow time
	SetAuto(auto bool)

	// DynamicSnow reports whether the snow line moves.
	//
	// Returns:
	//   - bool: true when the snow line is driven by the cycle or the custom level
	DynamicSnow() bool

	// SetDynamicSnow enables or disables snow line movement.
	//
	// Parameters:
	//   - dynamic: true to move the snow line
	SetDynamicSnow(dynamic bool)

	// SetDayTime sets the manual light angle, clamped to [MinDayTime, MaxDayTime].
	//
	// Parameters:
	//   - t: the light angle in radians
	SetDayTime(t float32)

	// SetSpeed sets the auto cycle speed, clamped to [MinSpeed, MaxSpeed].
	//
	// Parameters:
	//   - speed: the cycle speed multiplier
	SetSpeed(speed float32)

	// SetSnowSpeed sets the snow oscillation divisor, clamped to [MinSnowSpeed, MaxSnowSpeed].
	//
	// Parameters:
	//   - speed: the divisor applied to the light angle
	SetSnowSpeed(speed float32)

	// SetCustomSnowLevel sets the manual snow height, clamped to [MinCustomSnowLevel, MaxCustomSnowLevel].
	//
	// Parameters:
	//   - level: the snow height offset
	SetCustomSnowLevel(level float32)
}

var _ Cycle = &cycleImpl{}

// NewCycle creates a manual-mode cycle at day time 1 with a static snow line.
//
// Parameters:
//   - options: functional options to configure the cycle
//
// Returns:
//   - Cycle: the newly created cycle
func NewCycle(options ...CycleBuilderOption) Cycle {
	c := &cycleImpl{
		mu:        &sync.Mutex{},
		dayTime:   1,
		speed:     1,
		snowSpeed: 10,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cycleImpl) At(seconds float64) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s State
	if c.auto {
		s.LightAngle = float32(seconds/10) * c.speed
		if c.dynamicSnow {
			s.SnowHeight = 0.5 * float32(math.Sin(float64(s.LightAngle/c.snowSpeed)))
		}
	} else {
		s.LightAngle = c.dayTime
		if c.dynamicSnow {
			s.SnowHeight = c.customSnowLevel
		}
	}
	s.Sky = SkyColor(s.LightAngle)
	return s
}

func (c *cycleImpl) Auto() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.auto
}

func (c *cycleImpl) SetAuto(auto bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.auto = auto
}

func (c *cycleImpl) DynamicSnow() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dynamicSnow
}

func (c *cycleImpl) SetDynamicSnow(dynamic bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dynamicSnow = dynamic
}

func (c *cycleImpl) SetDayTime(t float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dayTime = mgl32.Clamp(t, MinDayTime, MaxDayTime)
}

func (c *cycleImpl) SetSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = mgl32.Clamp(speed, MinSpeed, MaxSpeed)
}

func (c *cycleImpl) SetSnowSpeed(speed float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snowSpeed = mgl32.Clamp(speed, MinSnowSpeed, MaxSnowSpeed)
}

func (c *cycleImpl) SetCustomSnowLevel(level float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customSnowLevel = mgl32.Clamp(level, MinCustomSnowLevel, MaxCustomSnowLevel)
}

// SkyColor blends from night to day by the sun's elevation sin(angle).
// The sky is fully dark once the sun is 0.2 below the horizon.
//
// Parameters:
//   - angle: the light angle in radians
//
// Returns:
//   - mgl32.Vec3: linear RGB clear colour
func SkyColor(angle float32) mgl32.Vec3 {
	elevation := float32(math.Sin(float64(angle)))
	f := mgl32.Clamp((elevation+0.2)/1.2, 0, 1)
	return nightSky.Add(daySky.Sub(nightSky).Mul(f))
}
