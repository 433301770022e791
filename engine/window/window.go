package window

import (
	"fmt"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/Carmen-Shannon/oxy-terrain/common"
)

// DefaultTitle is the title bar text when WithTitle is not given.
const DefaultTitle = "oxy-terrain"

// Window provides platform windowing and input event handling.
// Wraps platform-specific window implementations with a common interface.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the virtual key code
	SetKeyUpCallback(callback func(keyCode uint32))

	// SetDragCallback sets the callback for left mouse button press and release.
	// Mouse look is active while the button is held.
	//
	// Parameters:
	//   - callback: function receiving true on press and false on release
	SetDragCallback(callback func(dragging bool))

	// SetCursorCallback sets the callback for cursor movement.
	//
	// Parameters:
	//   - callback: function receiving the cursor x, y position in screen coordinates
	SetCursorCallback(callback func(x, y float64))

	// Seconds returns the time since the window system was initialized.
	// It satisfies navigation.Clock.
	//
	// Returns:
	//   - float64: elapsed seconds
	Seconds() float64

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// RequestClose asks the message loop to exit after the current iteration.
	// Unlike Close it may be called from any goroutine.
	RequestClose()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls OnUpdate callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// sizeLimits bounds the framebuffer size the user can resize to.
type sizeLimits struct {
	minWidth, minHeight int
	maxWidth, maxHeight int
}

// clamp fits a requested size into the limits. Zero maxima mean unbounded.
func (l sizeLimits) clamp(width, height int) (int, int) {
	width = max(width, l.minWidth)
	height = max(height, l.minHeight)
	if l.maxWidth > 0 {
		width = min(width, l.maxWidth)
	}
	if l.maxHeight > 0 {
		height = min(height, l.maxHeight)
	}
	return width, height
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	title  string
	limits sizeLimits

	// Framebuffer size in pixels, kept current by the resize handler.
	width, height int

	// internalWindow holds the platform window (*glfwWindow).
	internalWindow any

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)
	onDrag    func(dragging bool)
	onCursor  func(x, y float64)
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a Window. Options are applied over the defaults and the
// requested size is clamped to the size limits before the platform window is created.
// Panics if the platform window cannot be created.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		limits: sizeLimits{minWidth: 600, minHeight: 200, maxWidth: 2560, maxHeight: 1600},
		width:  1280,
		height: 720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, DefaultTitle)
	w.width, w.height = w.limits.clamp(w.width, w.height)

	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(keyCode uint32)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetDragCallback(callback func(dragging bool)) {
	w.onDrag = callback
}

func (w *engineWindow) SetCursorCallback(callback func(x, y float64)) {
	w.onCursor = callback
}

func (w *engineWindow) Seconds() float64 {
	return platformTime()
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) RequestClose() {
	platformRequestClose(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if !platformProcessMessages(w) {
			break
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// handleKey routes a key transition to the key callbacks. Repeats count as presses.
// Escape is reserved for closing the window.
//
// Returns:
//   - bool: true if the key asks the window to close
func (w *engineWindow) handleKey(keyCode uint32, pressed, released bool) bool {
	if keyCode == common.KeyEsc {
		return pressed
	}
	switch {
	case pressed && w.onKeyDown != nil:
		w.onKeyDown(keyCode)
	case released && w.onKeyUp != nil:
		w.onKeyUp(keyCode)
	}
	return false
}

// handleMouseButton turns left button transitions into drag start and stop.
func (w *engineWindow) handleMouseButton(left, pressed bool) {
	if !left || w.onDrag == nil {
		return
	}
	w.onDrag(pressed)
}

// handleFramebufferSize records the new size and notifies the resize callback.
func (w *engineWindow) handleFramebufferSize(width, height int) {
	w.width, w.height = width, height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
