package navigation

import "github.com/Carmen-Shannon/oxy-terrain/common"

// Action is a logical navigation input, decoupled from physical keys.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionStrafeLeft
	ActionStrafeRight
	ActionYawLeft
	ActionYawRight
	ActionPitchUp
	ActionPitchDown
	ActionCommit

	actionCount
)

// KeyBindings maps a key code to the actions it drives.
// A key may drive several actions; each motion model only reads the ones it understands.
type KeyBindings map[uint32][]Action

// DefaultKeyBindings returns the WASD layout: A/D strafe in direct modes and yaw in damped
// modes, Q/E pitch, R commits a recorded point.
//
// Returns:
//   - KeyBindings: the default bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		common.KeyW: {ActionForward},
		common.KeyS: {ActionBack},
		common.KeyA: {ActionStrafeLeft, ActionYawLeft},
		common.KeyD: {ActionStrafeRight, ActionYawRight},
		common.KeyQ: {ActionPitchUp},
		common.KeyE: {ActionPitchDown},
		common.KeyR: {ActionCommit},
	}
}

// inputState is the set of actions held during one tick.
type inputState [actionCount]bool

func (s inputState) held(a Action) bool {
	return a >= 0 && a < actionCount && s[a]
}
