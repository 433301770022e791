package navigation

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/engine/path"
	"github.com/Carmen-Shannon/oxy-terrain/internal/logging"
)

// controllerImpl is the single implementation of Controller.
// Exactly one motion model runs per Update; orientation recompute and the resample
// decision are shared steps that run after it.
type controllerImpl struct {
	mu *sync.Mutex

	mode   Mode
	tuning Tuning

	// Pose
	eye   mgl32.Vec3
	front mgl32.Vec3
	up    mgl32.Vec3
	yaw   float32 // degrees
	pitch float32 // degrees

	// center is the planar (x, -z) offset used to sample terrain and water noise.
	center mgl32.Vec2

	// Damped motion state
	speed     float32
	yawRate   float32
	pitchRate float32

	// Replay state
	playbackSpeed float32
	pathTime      float32
	restartPath   bool
	recorded      path.Pair
	prerecorded   path.Pair

	// Input
	bindings  KeyBindings
	input     inputState
	dragging  bool
	firstLook bool
	lastX     float64
	lastY     float64

	clock    Clock
	lastTick float64
	ticked   bool

	sampler    HeightSampler
	onResample func(center mgl32.Vec2)
	resample   bool

	logger *log.Logger
}

// Controller drives the camera through one of several mutually exclusive motion models.
// Input arrives through key and cursor events at any time; the pose only changes in Update
// (plus mouse look and mode entry, which apply immediately).
type Controller interface {
	// Mode returns the active navigation mode.
	//
	// Returns:
	//   - Mode: the active mode
	Mode() Mode

	// SetMode switches the active mode. Switching is instantaneous; entering FPS resamples the
	// terrain and snaps the eye to the ground. Invalid modes are ignored.
	//
	// Parameters:
	//   - mode: the mode to activate
	SetMode(mode Mode)

	// Eye returns the camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Front returns the unit view direction.
	//
	// Returns:
	//   - mgl32.Vec3: the forward direction
	Front() mgl32.Vec3

	// Up returns the fixed up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Center returns the planar offset used for terrain and water noise sampling.
	//
	// Returns:
	//   - mgl32.Vec2: the planar center
	Center() mgl32.Vec2

	// Yaw returns the heading in degrees.
	Yaw() float32

	// Pitch returns the elevation in degrees.
	Pitch() float32

	// Speed returns the damped forward speed.
	Speed() float32

	// YawRate returns the damped yaw rate in degrees per tick.
	YawRate() float32

	// PitchRate returns the damped pitch rate in degrees per tick.
	PitchRate() float32

	// PlaybackSpeed returns the path replay speed multiplier.
	PlaybackSpeed() float32

	// PathTime returns the current replay curve parameter.
	PathTime() float32

	// RecordedPath returns the live-recorded position/angle curves.
	//
	// Returns:
	//   - path.Pair: the recorded curves
	RecordedPath() path.Pair

	// PrerecordedPath returns the baked demo curves.
	//
	// Returns:
	//   - path.Pair: the prerecorded curves
	PrerecordedPath() path.Pair

	// KeyDown marks every action bound to keyCode as held.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyDown(keyCode uint32)

	// KeyUp releases every action bound to keyCode. Releasing a commit key in
	// ModeRecordPath commits the current pose.
	//
	// Parameters:
	//   - keyCode: the virtual key code
	KeyUp(keyCode uint32)

	// SetActionHeld sets the held state of a single action.
	//
	// Parameters:
	//   - action: the logical action
	//   - held: whether it is held
	SetActionHeld(action Action, held bool)

	// SetDragging starts or stops a mouse-look drag gesture.
	//
	// Parameters:
	//   - dragging: true while the look button is held
	SetDragging(dragging bool)

	// CursorMoved feeds a cursor sample. While dragging in a direct mode the delta since the
	// previous sample turns the camera; the first sample of a drag only sets the baseline.
	//
	// Parameters:
	//   - x, y: cursor position in pixels
	CursorMoved(x, y float64)

	// CommitPoint appends the current pose to the recorded path. Only active in ModeRecordPath.
	CommitPoint()

	// Update runs one tick: samples the clock and held inputs, runs the active motion model,
	// recomputes orientation and reports whether the terrain must be resampled.
	//
	// Returns:
	//   - bool: true if the planar center moved or a replay is running this tick
	Update() bool

	// NeedsResample reports the resample decision of the last Update.
	//
	// Returns:
	//   - bool: the last resample flag
	NeedsResample() bool
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller in ModeFreeCustom at the default pose, with an empty
// recorded path and the prerecorded demo path.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:            &sync.Mutex{},
		mode:          ModeFreeCustom,
		tuning:        DefaultTuning(),
		eye:           defaultEye,
		up:            defaultUp,
		yaw:           DefaultYaw,
		pitch:         DefaultPitch,
		speed:         DefaultTuning().StepSpeed,
		playbackSpeed: DefaultPlaybackSpeed,
		restartPath:   true,
		recorded:      path.NewPair(),
		prerecorded:   path.Prerecorded(),
		bindings:      DefaultKeyBindings(),
		firstLook:     true,
		clock:         newWallClock(),
	}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = logging.WithComponent("navigation")
	}
	if c.recorded.Position == nil || c.recorded.Angle == nil {
		c.recorded = path.NewPair()
	}
	if c.prerecorded.Position == nil || c.prerecorded.Angle == nil {
		c.prerecorded = path.Prerecorded()
	}
	c.updateFront()
	if c.mode == ModeFPS {
		c.snapToGround()
	}
	return c
}

func (c *controllerImpl) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

func (c *controllerImpl) SetMode(mode Mode) {
	c.mu.Lock()
	if !mode.Valid() {
		c.mu.Unlock()
		c.logger.Warn("ignoring invalid navigation mode", "mode", mode)
		return
	}
	prev := c.mode
	c.mode = mode
	var handler func(mgl32.Vec2)
	if mode == ModeFPS {
		c.snapToGround()
		handler = c.onResample
	}
	center := c.center
	c.mu.Unlock()

	if prev != mode {
		c.logger.Debug("navigation mode changed", "from", prev, "to", mode)
	}
	if handler != nil {
		handler(center)
	}
}

func (c *controllerImpl) Eye() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eye
}

func (c *controllerImpl) Front() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.front
}

func (c *controllerImpl) Up() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up
}

func (c *controllerImpl) Center() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.center
}

func (c *controllerImpl) Yaw() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yaw
}

func (c *controllerImpl) Pitch() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitch
}

func (c *controllerImpl) Speed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

func (c *controllerImpl) YawRate() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.yawRate
}

func (c *controllerImpl) PitchRate() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pitchRate
}

func (c *controllerImpl) PlaybackSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.playbackSpeed
}

func (c *controllerImpl) PathTime() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pathTime
}

func (c *controllerImpl) RecordedPath() path.Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.recorded
}

func (c *controllerImpl) PrerecordedPath() path.Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prerecorded
}

func (c *controllerImpl) KeyDown(keyCode uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, a := range c.bindings[keyCode] {
		c.input[a] = true
	}
}

func (c *controllerImpl) KeyUp(keyCode uint32) {
	c.mu.Lock()
	commit := false
	for _, a := range c.bindings[keyCode] {
		c.input[a] = false
		if a == ActionCommit {
			commit = true
		}
	}
	c.mu.Unlock()

	if commit {
		c.CommitPoint()
	}
}

func (c *controllerImpl) SetActionHeld(action Action, held bool) {
	if action < 0 || action >= actionCount {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input[action] = held
}

func (c *controllerImpl) CommitPoint() {
	c.mu.Lock()
	if c.mode != ModeRecordPath {
		c.mu.Unlock()
		return
	}
	point := mgl32.Vec3{c.center[0], c.eye[1], c.center[1]}
	angle := mgl32.Vec3{c.pitch, c.yaw, 0}
	c.recorded.Append(point, angle)
	count := c.recorded.Count()
	c.mu.Unlock()

	c.logger.Debug("recorded path point",
		"index", count-1,
		"x", point[0], "y", point[1], "z", point[2],
		"pitch", angle[0], "yaw", angle[1],
	)
}

func (c *controllerImpl) Update() bool {
	c.mu.Lock()

	now := c.clock.Seconds()
	var elapsed float64
	if c.ticked {
		elapsed = now - c.lastTick
	}
	c.lastTick = now
	c.ticked = true

	input := c.input
	yaw, pitch := c.yaw, c.pitch

	model, ok := motionModels[c.mode]
	resample := false
	if ok {
		resample = model.update(c, input, float32(elapsed))
	}
	if c.yaw != yaw || c.pitch != pitch {
		c.updateFront()
	}
	c.resample = resample

	handler := c.onResample
	center := c.center
	c.mu.Unlock()

	if resample && handler != nil {
		handler(center)
	}
	return resample
}

func (c *controllerImpl) NeedsResample() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resample
}

// --- internal helpers ---

// updateFront recomputes the view direction from yaw and pitch.
// Caller must hold the mutex.
func (c *controllerImpl) updateFront() {
	c.front = FrontFromAngles(c.yaw, c.pitch)
}

// snapToGround places the eye a fixed offset above the terrain under the planar center.
// It is a no-op without a HeightSampler. Caller must hold the mutex.
func (c *controllerImpl) snapToGround() {
	if c.sampler == nil {
		return
	}
	h := c.sampler.Height(c.center)*c.tuning.HeightScale + c.tuning.EyeOffset
	c.eye[1] = max(h, c.tuning.MinAltitude)
}
