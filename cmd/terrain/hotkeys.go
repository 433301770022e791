package main

import (
	"github.com/Carmen-Shannon/oxy-terrain/common"
	"github.com/Carmen-Shannon/oxy-terrain/engine/daylight"
	"github.com/Carmen-Shannon/oxy-terrain/engine/navigation"
)

// modeKeys maps the digit row to navigation modes in settings panel order.
var modeKeys = map[uint32]navigation.Mode{
	common.Key1: navigation.ModeFlythrough,
	common.Key2: navigation.ModeFPS,
	common.Key3: navigation.ModeRecordPath,
	common.Key4: navigation.ModeCustomPath,
	common.Key5: navigation.ModeFreeCustom,
	common.Key6: navigation.ModePrerecordedPath,
}

// handleHotkey applies the viewer's non-movement keys: digits select a navigation mode,
// L toggles the automatic day/night cycle and N toggles the dynamic snow line.
//
// Parameters:
//   - keyCode: the pressed key
//   - ctl: the navigation controller
//   - cycle: the day/night cycle
//
// Returns:
//   - bool: true if the key was consumed
func handleHotkey(keyCode uint32, ctl navigation.Controller, cycle daylight.Cycle) bool {
	if mode, ok := modeKeys[keyCode]; ok {
		ctl.SetMode(mode)
		return true
	}
	switch keyCode {
	case common.KeyL:
		cycle.SetAuto(!cycle.Auto())
		return true
	case common.KeyN:
		cycle.SetDynamicSnow(!cycle.DynamicSnow())
		return true
	}
	return false
}
