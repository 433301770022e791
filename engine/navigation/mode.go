package navigation

import (
	"errors"
	"fmt"
	"strings"
)

// Mode selects which motion model drives the camera each tick.
// The numeric values follow the order of the settings panel radio buttons.
type Mode int

const (
	// ModeFlythrough is damped free flight; altitude follows the view direction.
	ModeFlythrough Mode = iota
	// ModeFPS is damped walking; altitude snaps to the terrain below the camera.
	ModeFPS
	// ModeRecordPath is direct movement that can commit the current pose to the recorded path.
	ModeRecordPath
	// ModeCustomPath replays the recorded path.
	ModeCustomPath
	// ModeFreeCustom is direct movement with mouse look.
	ModeFreeCustom
	// ModePrerecordedPath replays the baked demo path.
	ModePrerecordedPath
)

// ErrUnknownMode is returned by ParseMode for names that do not match any mode.
var ErrUnknownMode = errors.New("unknown navigation mode")

var modeNames = map[Mode]string{
	ModeFlythrough:      "flythrough",
	ModeFPS:             "fps",
	ModeRecordPath:      "record",
	ModeCustomPath:      "custom-path",
	ModeFreeCustom:      "free",
	ModePrerecordedPath: "prerecorded",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

// Replays reports whether m plays back a Bézier path.
func (m Mode) Replays() bool {
	return m == ModeCustomPath || m == ModePrerecordedPath
}

// ParseMode resolves a mode from its name, case-insensitively.
//
// Parameters:
//   - name: the mode name, e.g. "flythrough" or "prerecorded"
//
// Returns:
//   - Mode: the matching mode
//   - error: wraps ErrUnknownMode when no mode matches
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}
