package navigation

import "github.com/go-gl/mathgl/mgl32"

// Tuning holds the motion constants shared by every mode.
type Tuning struct {
	// MinPitch and MaxPitch bound pitch in the damped modes, in degrees.
	MinPitch, MaxPitch float32

	// MaxSpeed caps the magnitude of forward speed in Flythrough.
	MaxSpeed float32
	// FPSMaxSpeed caps the magnitude of forward speed in FPS.
	FPSMaxSpeed float32
	// StraightAcceleration is added to forward speed per tick while W/S is held.
	StraightAcceleration float32
	// AngleAcceleration is added to yaw/pitch rate per tick while the key is held.
	AngleAcceleration float32
	// Deceleration multiplies speed and rates each tick their keys are released.
	Deceleration float32

	// StepSpeed is the per-tick displacement in the direct modes.
	StepSpeed float32
	// VerticalSpeedMultiplier scales the vertical part of a step into altitude.
	VerticalSpeedMultiplier float32
	// MouseSensitivity converts cursor pixels into degrees.
	MouseSensitivity float32

	// PlaybackStep is the playback speed change per tick while W/S is held during replay.
	PlaybackStep float32

	// HeightScale, EyeOffset and MinAltitude turn a normalized terrain sample into FPS altitude.
	HeightScale float32
	EyeOffset   float32
	MinAltitude float32
}

// DefaultTuning returns the stock navigation constants.
//
// Returns:
//   - Tuning: the default tuning
func DefaultTuning() Tuning {
	return Tuning{
		MinPitch:                -80,
		MaxPitch:                80,
		MaxSpeed:                0.005,
		FPSMaxSpeed:             0.001,
		StraightAcceleration:    0.0001,
		AngleAcceleration:       0.1,
		Deceleration:            0.9,
		StepSpeed:               0.001,
		VerticalSpeedMultiplier: 250,
		MouseSensitivity:        0.05,
		PlaybackStep:            0.01,
		HeightScale:             20,
		EyeOffset:               4,
		MinAltitude:             4,
	}
}

// Starting pose.
const (
	DefaultYaw           float32 = 90
	DefaultPitch         float32 = 0
	DefaultPlaybackSpeed float32 = 0.5
)

var (
	defaultEye = mgl32.Vec3{0, 20, 0}
	defaultUp  = mgl32.Vec3{0, 1, 0}
)
