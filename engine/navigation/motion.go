package navigation

import "github.com/go-gl/mathgl/mgl32"

// motionModel advances the pose for one tick.
// It returns true when the terrain must be resampled at the new planar center.
// Implementations run with the controller mutex held.
type motionModel interface {
	update(c *controllerImpl, input inputState, elapsed float32) bool
}

var motionModels = map[Mode]motionModel{
	ModeFreeCustom:      directMotion{},
	ModeRecordPath:      directMotion{},
	ModeFlythrough:      dampedMotion{},
	ModeFPS:             dampedMotion{followTerrain: true},
	ModeCustomPath:      replayMotion{},
	ModePrerecordedPath: replayMotion{prerecorded: true},
}

// directMotion nudges the camera by a fixed step per held key.
type directMotion struct{}

func (directMotion) update(c *controllerImpl, input inputState, _ float32) bool {
	moved := false
	step := c.tuning.StepSpeed

	if input.held(ActionForward) {
		c.translate(c.front.Mul(step))
		moved = true
	}
	if input.held(ActionBack) {
		c.translate(c.front.Mul(-step))
		moved = true
	}

	left, right := input.held(ActionStrafeLeft), input.held(ActionStrafeRight)
	if left || right {
		side := c.front.Cross(c.up)
		if side.Len() > 1e-6 {
			side = side.Normalize().Mul(step)
		} else {
			side = mgl32.Vec3{}
		}
		if left {
			c.strafe(side.Mul(-1))
		}
		if right {
			c.strafe(side)
		}
		moved = true
	}
	return moved
}

// dampedMotion accelerates speed and turn rates while keys are held and decays them otherwise.
// With followTerrain the eye rides the terrain instead of climbing along the view direction.
type dampedMotion struct {
	followTerrain bool
}

func (m dampedMotion) update(c *controllerImpl, input inputState, _ float32) bool {
	t := c.tuning
	forward, back := input.held(ActionForward), input.held(ActionBack)

	if !forward && !back {
		c.speed *= t.Deceleration
	}
	if !input.held(ActionYawLeft) && !input.held(ActionYawRight) {
		c.yawRate *= t.Deceleration
	}
	if !input.held(ActionPitchUp) && !input.held(ActionPitchDown) {
		c.pitchRate *= t.Deceleration
	}

	moved := false
	if forward || back {
		if forward {
			c.speed += t.StraightAcceleration
		}
		if back {
			c.speed -= t.StraightAcceleration
		}
		limit := t.MaxSpeed
		if m.followTerrain {
			limit = min(limit, t.FPSMaxSpeed)
		}
		c.speed = mgl32.Clamp(c.speed, -limit, limit)

		d := c.front.Mul(c.speed)
		c.center = c.center.Add(planarStep(d))
		if m.followTerrain {
			c.snapToGround()
		} else {
			c.eye[1] += t.VerticalSpeedMultiplier * d[1]
		}
		moved = true
	}

	if input.held(ActionYawRight) {
		c.yawRate += t.AngleAcceleration
	}
	if input.held(ActionYawLeft) {
		c.yawRate -= t.AngleAcceleration
	}
	if input.held(ActionPitchUp) {
		c.pitchRate += t.AngleAcceleration
	}
	if input.held(ActionPitchDown) {
		c.pitchRate -= t.AngleAcceleration
	}

	c.yaw += c.yawRate
	c.pitch = mgl32.Clamp(c.pitch+c.pitchRate, t.MinPitch, t.MaxPitch)
	if c.pitch == t.MinPitch || c.pitch == t.MaxPitch {
		c.pitchRate = 0
	}
	return moved
}

// replayMotion flies the camera along a recorded or prerecorded Bézier path, looping forever.
type replayMotion struct {
	prerecorded bool
}

func (m replayMotion) update(c *controllerImpl, input inputState, elapsed float32) bool {
	t := c.tuning
	if input.held(ActionForward) {
		c.playbackSpeed += t.PlaybackStep
	}
	if input.held(ActionBack) {
		c.playbackSpeed = max(c.playbackSpeed-t.PlaybackStep, 0)
	}

	pair := c.recorded
	if m.prerecorded {
		pair = c.prerecorded
	}
	count := pair.Count()
	if count == 0 {
		return false
	}

	if c.restartPath {
		c.pathTime = 0
		c.restartPath = false
		return true
	}

	c.pathTime += elapsed * c.playbackSpeed
	if c.pathTime > float32(count-1) {
		c.restartPath = true
		c.center = mgl32.Vec2{}
		return true
	}

	position, angle := pair.Evaluate(c.pathTime)
	c.eye[1] = position[1]
	c.center = mgl32.Vec2{position[0], position[2]}
	c.pitch = angle[0]
	c.yaw = angle[1]
	return true
}

// translate moves along a world-space displacement: planar center horizontally and eye
// altitude by the scaled vertical part.
func (c *controllerImpl) translate(d mgl32.Vec3) {
	c.center = c.center.Add(planarStep(d))
	c.eye[1] += c.tuning.VerticalSpeedMultiplier * d[1]
}

// strafe moves sideways; the side vector is horizontal so altitude only changes by its y.
func (c *controllerImpl) strafe(d mgl32.Vec3) {
	c.center = c.center.Add(planarStep(d))
	c.eye[1] += d[1]
}
