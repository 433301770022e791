package navigation

import (
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/engine/path"
)

// ControllerBuilderOption is a functional option for configuring a Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithMode sets the initial navigation mode. Invalid modes are ignored.
//
// Parameters:
//   - mode: the starting mode
//
// Returns:
//   - ControllerBuilderOption: functional option to set the mode
func WithMode(mode Mode) ControllerBuilderOption {
	return func(c *controllerImpl) {
		if mode.Valid() {
			c.mode = mode
		}
	}
}

// WithTuning replaces the motion constants.
//
// Parameters:
//   - tuning: the constants to use
//
// Returns:
//   - ControllerBuilderOption: functional option to set the tuning
func WithTuning(tuning Tuning) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.tuning = tuning
	}
}

// WithEye sets the starting eye position.
//
// Parameters:
//   - eye: world-space eye position
//
// Returns:
//   - ControllerBuilderOption: functional option to set the eye
func WithEye(eye mgl32.Vec3) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.eye = eye
	}
}

// WithCenter sets the starting planar center.
//
// Parameters:
//   - center: planar noise-sampling offset
//
// Returns:
//   - ControllerBuilderOption: functional option to set the center
func WithCenter(center mgl32.Vec2) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.center = center
	}
}

// WithAngles sets the starting yaw and pitch in degrees.
//
// Parameters:
//   - yaw: heading in degrees
//   - pitch: elevation in degrees
//
// Returns:
//   - ControllerBuilderOption: functional option to set the orientation
func WithAngles(yaw, pitch float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

// WithPlaybackSpeed sets the initial path replay speed multiplier.
//
// Parameters:
//   - speed: curve parameter units per second; negative values are clamped to 0
//
// Returns:
//   - ControllerBuilderOption: functional option to set the playback speed
func WithPlaybackSpeed(speed float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.playbackSpeed = max(speed, 0)
	}
}

// WithKeyBindings replaces the key to action bindings.
//
// Parameters:
//   - bindings: the bindings to use
//
// Returns:
//   - ControllerBuilderOption: functional option to set key bindings
func WithKeyBindings(bindings KeyBindings) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.bindings = bindings
	}
}

// WithHeightSampler attaches the terrain height query used by FPS mode.
//
// Parameters:
//   - sampler: the terrain height source
//
// Returns:
//   - ControllerBuilderOption: functional option to set the sampler
func WithHeightSampler(sampler HeightSampler) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.sampler = sampler
	}
}

// WithResampleHandler registers a callback invoked synchronously, outside the controller lock,
// whenever an update or FPS entry requests a terrain resample.
//
// Parameters:
//   - handler: receives the planar center to resample at
//
// Returns:
//   - ControllerBuilderOption: functional option to set the handler
func WithResampleHandler(handler func(center mgl32.Vec2)) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.onResample = handler
	}
}

// WithClock sets the monotonic time source. Defaults to wall time since construction.
//
// Parameters:
//   - clock: the time source
//
// Returns:
//   - ControllerBuilderOption: functional option to set the clock
func WithClock(clock Clock) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.clock = clock
	}
}

// WithRecordedPath seeds the live-recorded curves, e.g. to resume an earlier recording.
//
// Parameters:
//   - pair: the position/angle curves
//
// Returns:
//   - ControllerBuilderOption: functional option to set the recorded path
func WithRecordedPath(pair path.Pair) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.recorded = pair
	}
}

// WithPrerecordedPath replaces the baked demo curves.
//
// Parameters:
//   - pair: the position/angle curves
//
// Returns:
//   - ControllerBuilderOption: functional option to set the prerecorded path
func WithPrerecordedPath(pair path.Pair) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.prerecorded = pair
	}
}

// WithLogger sets the logger. Defaults to the process logger tagged with component=navigation.
//
// Parameters:
//   - logger: the logger to use
//
// Returns:
//   - ControllerBuilderOption: functional option to set the logger
func WithLogger(logger *log.Logger) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.logger = logger
	}
}
