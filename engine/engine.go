package engine

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Carmen-Shannon/oxy-terrain/engine/camera"
	"github.com/Carmen-Shannon/oxy-terrain/engine/profiler"
	"github.com/Carmen-Shannon/oxy-terrain/engine/renderer"
	"github.com/Carmen-Shannon/oxy-terrain/engine/window"
	"github.com/Carmen-Shannon/oxy-terrain/internal/logging"
)

// engine owns the three loops of the viewer: the window message loop on the main goroutine,
// a fixed-rate tick goroutine and a free-running render goroutine.
type engine struct {
	tickRateChannel chan time.Duration // rate changes while running

	mu      *sync.Mutex
	running bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once
	closeOnce   sync.Once

	window   window.Window
	camera   camera.Camera
	renderer renderer.Renderer

	profiler         *profiler.Profiler
	profilingEnabled bool

	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	renderCallback func(deltaTime float32)

	renderFrameLimit time.Duration // 0 = uncapped

	logger *log.Logger
}

// Engine runs the viewer: navigation ticks at a fixed rate, frames are drawn as fast as the
// present mode allows, and window events are pumped until the window closes.
type Engine interface {
	// Window returns the window the message loop runs on.
	//
	// Returns:
	//   - window.Window: the window
	Window() window.Window

	// EnableProfiler starts logging frame statistics.
	EnableProfiler()

	// DisableProfiler stops logging frame statistics.
	DisableProfiler()

	// SetTickRate changes how often the tick callback runs. Takes effect immediately when running.
	//
	// Parameters:
	//   - fps: ticks per second; non-positive values select 60
	SetTickRate(fps float64)

	// SetTickCallback sets the per-tick function, which advances navigation.
	//
	// Parameters:
	//   - callback: receives the seconds since the previous tick
	SetTickCallback(callback func(deltaTime float32))

	// SetRenderCallback sets the per-frame function. All GPU work belongs here; it always runs
	// on the render goroutine.
	//
	// Parameters:
	//   - callback: receives the seconds since the previous frame
	SetRenderCallback(callback func(deltaTime float32))

	// SetRenderFrameLimit caps the render loop.
	//
	// Parameters:
	//   - fps: frames per second; 0 removes the cap
	SetRenderFrameLimit(fps float64)

	// Run starts the main engine loop and blocks until the window closes or Quit is called.
	Run()

	// Quit stops both loops and asks the window to close, which makes Run return.
	// Later calls do nothing.
	Quit()
}

var _ Engine = &engine{}

// NewEngine builds an Engine. With a window attached, resize events update the camera
// aspect and the renderer surface.
//
// Parameters:
//   - options: functional options (window, camera, renderer, rates, profiling)
//
// Returns:
//   - Engine: the engine, not yet running
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel:  make(chan time.Duration, 1),
		quitChannel:      make(chan struct{}),
		mu:               &sync.Mutex{},
		profilingEnabled: false,
		engineTickRate:   time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logging.WithComponent("engine")
	}
	e.profiler = profiler.NewProfiler(profiler.WithLogger(e.logger))

	if e.window != nil {
		e.window.SetResizeCallback(e.resize)
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

// Run launches the engine and render goroutines, then runs the window message loop on the
// calling goroutine. When the message loop ends the goroutines are stopped and joined before
// the window is destroyed.
func (e *engine) Run() {
	e.mu.Lock()
	e.running = true
	e.mu.Unlock()

	e.handle()
	e.window.ProcessMessages()
	e.signalQuit()
	e.wg.Wait()
	e.closeOnce.Do(func() {
		if err := e.window.Close(); err != nil {
			e.logger.Warn("failed to close window", "err", err)
		}
	})
}

func (e *engine) Quit() {
	e.signalQuit()
}

// signalQuit closes the quit channel once and flags the window.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.mu.Lock()
		e.running = false
		e.mu.Unlock()
		close(e.quitChannel)
		if e.window != nil {
			e.window.RequestClose()
		}
	})
}

// handle starts the tick and render goroutines under the WaitGroup.
func (e *engine) handle() {
	e.wg.Add(2)
	go e.handleEngine()
	go e.handleRender()
}

// resize forwards a framebuffer size change to the camera and renderer.
func (e *engine) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if e.camera != nil {
		e.camera.SetAspect(float32(width) / float32(height))
	}
	if e.renderer != nil {
		e.renderer.Resize(width, height)
	}
}

// handleEngine fires the tick callback on a ticker until quit, picking up rate changes
// from tickRateChannel.
func (e *engine) handleEngine() {
	defer e.wg.Done()

	e.mu.Lock()
	rate := e.engineTickRate
	e.mu.Unlock()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now

			if cb := e.tick(); cb != nil {
				cb(dt)
			}
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.mu.Lock()
			e.engineTickRate = newRate
			e.mu.Unlock()
		}
	}
}

// handleRender calls the render callback back to back, sleeping out the frame limit if one
// is set. A panic in a frame is logged and shuts the engine down.
func (e *engine) handleRender() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("render goroutine recovered from panic", "panic", r)
			e.signalQuit()
		}
	}()

	lastRender := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		default:
			now := time.Now()
			dt := float32(now.Sub(lastRender).Seconds())
			lastRender = now

			e.mu.Lock()
			cb := e.renderCallback
			profiling := e.profilingEnabled
			limit := e.renderFrameLimit
			e.mu.Unlock()

			if cb != nil {
				cb(dt)
			}

			if profiling {
				e.profiler.Tick()
			}

			if limit > 0 {
				elapsed := time.Since(lastRender)
				if remaining := limit - elapsed; remaining > 0 {
					time.Sleep(remaining)
				}
			}
		}
	}
}

func (e *engine) tick() func(float32) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tickCallback
}

func (e *engine) EnableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	running := e.running
	if !running {
		e.engineTickRate = newRate
	}
	e.mu.Unlock()
	if !running {
		return
	}

	// keep only the newest pending rate
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) SetRenderCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderCallback = callback
}

func (e *engine) SetRenderFrameLimit(fps float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderFrameLimit = frameDuration(fps)
}

// frameDuration converts a rate cap to a minimum frame duration; 0 means uncapped.
func frameDuration(fps float64) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / fps)
}
