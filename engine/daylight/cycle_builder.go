package daylight

import "github.com/go-gl/mathgl/mgl32"

type CycleBuilderOption func(*cycleImpl)

// WithAuto makes the sun follow time.
//
// Parameters:
//   - auto: true for auto mode
//
// Returns:
//   - CycleBuilderOption: a function that sets the mode
func WithAuto(auto bool) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.auto = auto
	}
}

// WithDynamicSnow enables snow line movement.
//
// Parameters:
//   - dynamic: true to move the snow line
//
// Returns:
//   - CycleBuilderOption: a function that sets snow movement
func WithDynamicSnow(dynamic bool) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.dynamicSnow = dynamic
	}
}

// WithDayTime sets the manual light angle.
//
// Parameters:
//   - t: the light angle in radians
//
// Returns:
//   - CycleBuilderOption: a function that sets the day time
func WithDayTime(t float32) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.dayTime = mgl32.Clamp(t, MinDayTime, MaxDayTime)
	}
}

// WithSpeed sets the auto cycle speed.
//
// Parameters:
//   - speed: the cycle speed multiplier
//
// Returns:
//   - CycleBuilderOption: a function that sets the speed
func WithSpeed(speed float32) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.speed = mgl32.Clamp(speed, MinSpeed, MaxSpeed)
	}
}

// WithSnowSpeed sets the snow oscillation divisor.
//
// Parameters:
//   - speed: the divisor applied to the light angle
//
// Returns:
//   - CycleBuilderOption: a function that sets the snow speed
func WithSnowSpeed(speed float32) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.snowSpeed = mgl32.Clamp(speed, MinSnowSpeed, MaxSnowSpeed)
	}
}

// WithCustomSnowLevel sets the manual snow height.
//
// Parameters:
//   - level: the snow height offset
//
// Returns:
//   - CycleBuilderOption: a function that sets the snow level
func WithCustomSnowLevel(level float32) CycleBuilderOption {
	return func(c *cycleImpl) {
		c.customSnowLevel = mgl32.Clamp(level, MinCustomSnowLevel, MaxCustomSnowLevel)
	}
}
