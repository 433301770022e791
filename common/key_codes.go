package common

// Key codes delivered by the window callbacks. They are GLFW key values, which equal the
// ASCII code for letters and digits.
//
// Reference: https://www.glfw.org/docs/latest/group__keys.html
const (
	// Movement and recording.
	KeyW = 87
	KeyA = 65
	KeyS = 83
	KeyD = 68
	KeyQ = 81
	KeyE = 69
	KeyR = 82

	// Day/night toggles.
	KeyL = 76
	KeyN = 78

	// Mode selection.
	Key1 = 49
	Key2 = 50
	Key3 = 51
	Key4 = 52
	Key5 = 53
	Key6 = 54

	KeyEsc = 256
)
