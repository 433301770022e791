package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-terrain/engine"
	"github.com/Carmen-Shannon/oxy-terrain/engine/camera"
	"github.com/Carmen-Shannon/oxy-terrain/engine/daylight"
	"github.com/Carmen-Shannon/oxy-terrain/engine/navigation"
	"github.com/Carmen-Shannon/oxy-terrain/engine/renderer"
	"github.com/Carmen-Shannon/oxy-terrain/engine/terrain"
	"github.com/Carmen-Shannon/oxy-terrain/engine/window"
	"github.com/Carmen-Shannon/oxy-terrain/internal/logging"
)

const gridResolution = 128

func main() {
	width := flag.Int("width", 1280, "window width in pixels")
	height := flag.Int("height", 720, "window height in pixels")
	modeName := flag.String("mode", navigation.ModeFreeCustom.String(), "initial navigation mode")
	seed := flag.Int64("seed", terrain.DefaultSeed, "terrain noise seed")
	noise := flag.String("noise", terrain.BasisPerlin.String(), "terrain noise basis (perlin, opensimplex)")
	profile := flag.Bool("profile", false, "log frame statistics once per second")
	vsync := flag.Bool("vsync", true, "wait for vertical blank before presenting")
	flag.Parse()

	logging.InitLogger()
	logger := logging.GetLogger()

	mode, err := navigation.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}
	basis, err := terrain.ParseBasis(*noise)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle("oxy-terrain"),
		window.WithSize(*width, *height),
	)

	// ── Terrain + navigation ────────────────────────────────────────────
	sampler := terrain.NewSampler(terrain.WithSeed(*seed), terrain.WithBasis(basis))
	defer sampler.Close()

	feed := newTerrainFeed(sampler, gridResolution)
	tuning := navigation.DefaultTuning()
	ctl := navigation.NewController(
		navigation.WithMode(mode),
		navigation.WithTuning(tuning),
		navigation.WithClock(win),
		navigation.WithHeightSampler(sampler),
		navigation.WithResampleHandler(feed.resample),
	)
	feed.resample(ctl.Center())

	cycle := daylight.NewCycle()

	// ── Camera + renderer ───────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithPose(ctl),
	)

	presentMode := renderer.PresentModeUncapped
	if *vsync {
		presentMode = renderer.PresentModeVSync
	}
	r := renderer.NewRenderer(renderer.BackendTypeWGPU, win,
		renderer.WithPresentMode(presentMode),
		renderer.WithHeightScale(tuning.HeightScale),
	)
	defer r.Close()

	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithCamera(cam),
		engine.WithRenderer(r),
		engine.WithProfiling(*profile),
		engine.WithTickRate(60),
	)

	// ── Input ───────────────────────────────────────────────────────────
	win.SetKeyDownCallback(func(keyCode uint32) {
		if handleHotkey(keyCode, ctl, cycle) {
			return
		}
		ctl.KeyDown(keyCode)
	})
	win.SetKeyUpCallback(ctl.KeyUp)
	win.SetDragCallback(ctl.SetDragging)
	win.SetCursorCallback(ctl.CursorMoved)

	// ── Loops ───────────────────────────────────────────────────────────
	eng.SetTickCallback(func(float32) {
		ctl.Update()
	})
	eng.SetRenderCallback(func(float32) {
		if grid := feed.take(); grid != nil {
			if err := r.UploadTerrain(grid); err != nil {
				logger.Error("terrain upload failed", "err", err)
			}
		}
		cam.Update()
		if err := r.RenderFrame(cam.Uniform(), cycle.At(win.Seconds())); err != nil {
			logger.Warn("frame skipped", "err", err)
		}
	})

	logger.Info("starting terrain viewer",
		"mode", mode,
		"seed", *seed,
		"noise", basis,
		"keys", "WASD move, Q/E pitch, R commit point, 1-6 mode, L auto light, N dynamic snow, drag to look",
	)
	eng.Run()
}
