package main

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Carmen-Shannon/oxy-terrain/engine/terrain"
)

// terrainFeed samples the heightfield when the controller asks for a resample and holds the
// newest grid until the render loop takes it. Older grids that were never taken are dropped.
// Resamples run on both the window and tick goroutines, so each request is numbered and a grid
// is only kept when no later request has already delivered one.
type terrainFeed struct {
	mu         *sync.Mutex
	sampler    terrain.Sampler
	resolution int
	pending    [][]float32
	issued     uint64
	delivered  uint64
}

func newTerrainFeed(sampler terrain.Sampler, resolution int) *terrainFeed {
	return &terrainFeed{
		mu:         &sync.Mutex{},
		sampler:    sampler,
		resolution: max(resolution, 2),
	}
}

// resample is the controller's resample handler.
func (f *terrainFeed) resample(center mgl32.Vec2) {
	seq := f.begin()
	f.deliver(seq, f.sampler.Grid(center, f.resolution))
}

// begin numbers a new resample request.
func (f *terrainFeed) begin() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return f.issued
}

// deliver stores grid unless a later request already delivered.
//
// Returns:
//   - bool: true if the grid was kept
func (f *terrainFeed) deliver(seq uint64, grid [][]float32) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if seq <= f.delivered {
		return false
	}
	f.delivered = seq
	f.pending = grid
	return true
}

// take returns the newest grid, or nil when nothing changed since the last call.
func (f *terrainFeed) take() [][]float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	grid := f.pending
	f.pending = nil
	return grid
}
