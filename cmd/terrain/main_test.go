package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-terrain/common"
	"github.com/Carmen-Shannon/oxy-terrain/engine/daylight"
	"github.com/Carmen-Shannon/oxy-terrain/engine/navigation"
	"github.com/Carmen-Shannon/oxy-terrain/engine/terrain"
)

func TestHandleHotkeySelectsModes(t *testing.T) {
	ctl := navigation.NewController(navigation.WithLogger(log.New(io.Discard)))
	cycle := daylight.NewCycle()

	tests := []struct {
		key  uint32
		want navigation.Mode
	}{
		{common.Key1, navigation.ModeFlythrough},
		{common.Key2, navigation.ModeFPS},
		{common.Key3, navigation.ModeRecordPath},
		{common.Key4, navigation.ModeCustomPath},
		{common.Key5, navigation.ModeFreeCustom},
		{common.Key6, navigation.ModePrerecordedPath},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			require.True(t, handleHotkey(tt.key, ctl, cycle))
			assert.Equal(t, tt.want, ctl.Mode())
		})
	}
}

func TestHandleHotkeyTogglesDaylight(t *testing.T) {
	ctl := navigation.NewController(navigation.WithLogger(log.New(io.Discard)))
	cycle := daylight.NewCycle()

	require.True(t, handleHotkey(common.KeyL, ctl, cycle))
	assert.True(t, cycle.Auto())
	require.True(t, handleHotkey(common.KeyL, ctl, cycle))
	assert.False(t, cycle.Auto())

	require.True(t, handleHotkey(common.KeyN, ctl, cycle))
	assert.True(t, cycle.DynamicSnow())
}

func TestHandleHotkeyLeavesMovementKeys(t *testing.T) {
	ctl := navigation.NewController(navigation.WithLogger(log.New(io.Discard)))
	cycle := daylight.NewCycle()

	for _, key := range []uint32{common.KeyW, common.KeyA, common.KeyS, common.KeyD, common.KeyQ, common.KeyE, common.KeyR} {
		assert.False(t, handleHotkey(key, ctl, cycle), "key %d", key)
	}
	assert.Equal(t, navigation.ModeFreeCustom, ctl.Mode())
}

func TestTerrainFeedHandsOffNewestGrid(t *testing.T) {
	sampler := terrain.NewSampler(terrain.WithWorkers(2), terrain.WithLogger(log.New(io.Discard)))
	defer sampler.Close()

	feed := newTerrainFeed(sampler, 1)
	assert.Nil(t, feed.take())

	feed.resample(mgl32.Vec2{0, 0})
	feed.resample(mgl32.Vec2{3, 4})

	grid := feed.take()
	require.Len(t, grid, 2, "resolution is at least 2")
	require.Len(t, grid[0], 2)
	assert.InDelta(t, sampler.HeightAt(mgl32.Vec2{3, 4}, 0, 0), float64(grid[0][0]), 1e-6)

	assert.Nil(t, feed.take(), "a grid is taken once")
}

func TestTerrainFeedDropsStaleGrid(t *testing.T) {
	feed := newTerrainFeed(nil, 2)
	older, newer := feed.begin(), feed.begin()
	oldGrid := [][]float32{{1, 1}, {1, 1}}
	newGrid := [][]float32{{2, 2}, {2, 2}}

	// the newer request finishes first
	assert.True(t, feed.deliver(newer, newGrid))
	assert.False(t, feed.deliver(older, oldGrid))
	assert.Equal(t, newGrid, feed.take())

	// a late grid stays dropped after the newer one was taken
	assert.False(t, feed.deliver(older, oldGrid))
	assert.Nil(t, feed.take())

	latest := feed.begin()
	assert.True(t, feed.deliver(latest, oldGrid))
	assert.Equal(t, oldGrid, feed.take())
}
