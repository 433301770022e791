package navigation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-terrain/engine/path"
)

func TestDampedSpeedDecaysGeometrically(t *testing.T) {
	c, _ := newTestController(WithMode(ModeFlythrough))
	initial := float64(c.Speed())
	require.InDelta(t, 0.001, initial, 1e-9)

	for k := 1; k <= 10; k++ {
		moved := c.Update()
		assert.False(t, moved, "no forward key held, no resample")
		assert.InDelta(t, initial*math.Pow(0.9, float64(k)), c.Speed(), 1e-9, "tick %d", k)
	}

	for range 300 {
		c.Update()
	}
	assert.Less(t, math.Abs(float64(c.Speed())), 1e-12)
	assert.Equal(t, mgl32.Vec2{}, c.Center())
}

func TestDampedForwardAcceleratesToCap(t *testing.T) {
	tests := []struct {
		name          string
		mode          Mode
		expectedSpeed float64
	}{
		{name: "flythrough cap", mode: ModeFlythrough, expectedSpeed: 0.005},
		{name: "fps cap", mode: ModeFPS, expectedSpeed: 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestController(WithMode(tt.mode))
			c.SetActionHeld(ActionForward, true)

			for range 100 {
				assert.True(t, c.Update())
				assert.LessOrEqual(t, float64(c.Speed()), tt.expectedSpeed+1e-9)
			}
			assert.InDelta(t, tt.expectedSpeed, c.Speed(), 1e-7)
			assert.Less(t, float64(c.Center()[1]), 0.0, "looking down +z moves the center along -y")
		})
	}
}

func TestDampedBackwardReachesNegativeCap(t *testing.T) {
	c, _ := newTestController(WithMode(ModeFlythrough))
	c.SetActionHeld(ActionBack, true)
	for range 200 {
		c.Update()
	}
	assert.InDelta(t, -0.005, c.Speed(), 1e-7)
	assert.Greater(t, float64(c.Center()[1]), 0.0)
}

func TestFlythroughClimbsAlongView(t *testing.T) {
	c, _ := newTestController(WithMode(ModeFlythrough), WithAngles(90, 30))
	c.SetActionHeld(ActionForward, true)

	c.Update()

	// speed 0.001 + 0.0001, vertical component sin(30) scaled by 250
	assert.InDelta(t, 20+250*0.0011*0.5, c.Eye()[1], 1e-4)
}

func TestFlythroughBackingOffRetracesView(t *testing.T) {
	c, _ := newTestController(WithMode(ModeFlythrough), WithAngles(90, 30))
	c.SetActionHeld(ActionBack, true)
	for range 200 {
		c.Update()
	}
	require.InDelta(t, -0.005, c.Speed(), 1e-7)

	before := c.Eye()[1]
	c.Update()

	// negative speed along a raised view drops altitude: 250 * -0.005 * sin(30)
	assert.InDelta(t, before-0.625, c.Eye()[1], 1e-4)
}

func TestDampedYawRateDecays(t *testing.T) {
	c, _ := newTestController(WithMode(ModeFlythrough))
	c.SetActionHeld(ActionYawRight, true)
	for range 3 {
		c.Update()
	}
	assert.InDelta(t, 0.3, c.YawRate(), 1e-5)
	assert.InDelta(t, 90.6, c.Yaw(), 1e-4)
	assertVec3InDelta(t, FrontFromAngles(c.Yaw(), c.Pitch()), c.Front(), 1e-6)

	c.SetActionHeld(ActionYawRight, false)
	c.Update()
	assert.InDelta(t, 0.27, c.YawRate(), 1e-5)
	assert.InDelta(t, 90.87, c.Yaw(), 1e-4)
}

func TestDampedPitchClamped(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		bound  float32
	}{
		{name: "pitch up stops at max", action: ActionPitchUp, bound: 80},
		{name: "pitch down stops at min", action: ActionPitchDown, bound: -80},
	}

	for _, tt := range tests {
		for _, mode := range []Mode{ModeFlythrough, ModeFPS} {
			t.Run(tt.name+"/"+mode.String(), func(t *testing.T) {
				c, _ := newTestController(WithMode(mode))
				c.SetActionHeld(tt.action, true)

				hitBound := false
				for range 100 {
					c.Update()
					pitch := c.Pitch()
					require.GreaterOrEqual(t, pitch, float32(-80))
					require.LessOrEqual(t, pitch, float32(80))
					if pitch == tt.bound {
						hitBound = true
						assert.Zero(t, c.PitchRate(), "rate is zeroed on the tick the bound is hit")
					}
				}
				assert.True(t, hitBound)
				assert.Equal(t, tt.bound, c.Pitch())
			})
		}
	}
}

func TestFPSFollowsTerrain(t *testing.T) {
	var queried []mgl32.Vec2
	sampler := HeightSamplerFunc(func(center mgl32.Vec2) float32 {
		queried = append(queried, center)
		return 0.25
	})
	c, _ := newTestController(WithMode(ModeFPS), WithHeightSampler(sampler))
	require.Len(t, queried, 1, "construction in FPS snaps once")
	assert.InDelta(t, 9, c.Eye()[1], tolerance)

	c.SetActionHeld(ActionForward, true)
	assert.True(t, c.Update())

	require.Len(t, queried, 2)
	assert.Equal(t, c.Center(), queried[1], "height is sampled at the new center")
	assertVec2InDelta(t, mgl32.Vec2{0, -0.001}, c.Center(), 1e-6)
	assert.InDelta(t, 9, c.Eye()[1], tolerance)

	// no movement, no sample
	c.SetActionHeld(ActionForward, false)
	assert.False(t, c.Update())
	assert.Len(t, queried, 2)
}

func TestReplayPrerecordedLoops(t *testing.T) {
	c, clock := newTestController(WithMode(ModePrerecordedPath), WithPlaybackSpeed(100))
	pair := c.PrerecordedPath()
	last := float32(pair.Count() - 1)

	// fresh play-through: parameter resets, pose untouched
	assert.True(t, c.Update())
	assert.Zero(t, c.PathTime())
	assert.Equal(t, mgl32.Vec2{}, c.Center())

	for _, expected := range []float32{10, 20} {
		clock.advance(0.1)
		assert.True(t, c.Update())
		require.InDelta(t, expected, c.PathTime(), 1e-3)

		pos, angle := pair.Evaluate(c.PathTime())
		assert.Equal(t, pos[1], c.Eye()[1])
		assert.Equal(t, mgl32.Vec2{pos[0], pos[2]}, c.Center())
		assert.Equal(t, angle[0], c.Pitch())
		assert.Equal(t, angle[1], c.Yaw())
		assertVec3InDelta(t, FrontFromAngles(angle[1], angle[0]), c.Front(), 1e-6)
	}

	clock.advance(0.1)
	assert.True(t, c.Update())
	assert.Greater(t, c.PathTime(), last)
	assert.Equal(t, mgl32.Vec2{}, c.Center(), "finishing the path returns to the origin")

	clock.advance(0.1)
	assert.True(t, c.Update())
	assert.Zero(t, c.PathTime(), "the next tick restarts the loop")
	assert.Equal(t, mgl32.Vec2{}, c.Center())

	clock.advance(0.1)
	c.Update()
	assert.InDelta(t, 10, c.PathTime(), 1e-3)
}

func TestReplayRecordedPath(t *testing.T) {
	rec := path.NewPair()
	rec.Append(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{0, 90, 0})
	rec.Append(mgl32.Vec3{1, 12, 1}, mgl32.Vec3{-10, 100, 0})
	rec.Append(mgl32.Vec3{2, 14, 2}, mgl32.Vec3{-20, 110, 0})

	c, clock := newTestController(WithMode(ModeCustomPath), WithRecordedPath(rec), WithPlaybackSpeed(1))
	c.Update()

	clock.advance(1.5)
	assert.True(t, c.Update())
	require.InDelta(t, 1.5, c.PathTime(), 1e-6)

	pos, angle := rec.Evaluate(1.5)
	assert.Equal(t, pos[1], c.Eye()[1])
	assert.Equal(t, mgl32.Vec2{pos[0], pos[2]}, c.Center())
	assert.Equal(t, angle[0], c.Pitch())
	assert.Equal(t, angle[1], c.Yaw())
}

func TestReplayEmptyPathIsNoop(t *testing.T) {
	c, clock := newTestController(WithMode(ModeCustomPath), WithCenter(mgl32.Vec2{3, 4}))

	for range 5 {
		clock.advance(0.5)
		assert.False(t, c.Update())
	}
	assert.Equal(t, mgl32.Vec2{3, 4}, c.Center())
	assert.Equal(t, mgl32.Vec3{0, 20, 0}, c.Eye())
	assert.Equal(t, DefaultYaw, c.Yaw())
	assert.Zero(t, c.PathTime())
}

func TestReplayPlaybackSpeedKeys(t *testing.T) {
	c, _ := newTestController(WithMode(ModePrerecordedPath))

	c.SetActionHeld(ActionBack, true)
	for range 100 {
		c.Update()
		assert.GreaterOrEqual(t, c.PlaybackSpeed(), float32(0))
	}
	assert.Zero(t, c.PlaybackSpeed())

	c.SetActionHeld(ActionBack, false)
	c.SetActionHeld(ActionForward, true)
	for range 10 {
		c.Update()
	}
	assert.InDelta(t, 0.1, c.PlaybackSpeed(), 1e-5)
}

func TestReplayEntryUsesFreshClockDelta(t *testing.T) {
	c, clock := newTestController(WithPlaybackSpeed(1))

	// time passes in another mode
	for range 3 {
		clock.advance(10)
		c.Update()
	}

	c.SetMode(ModePrerecordedPath)
	c.Update()
	assert.Zero(t, c.PathTime())

	clock.advance(0.25)
	c.Update()
	assert.InDelta(t, 0.25, c.PathTime(), 1e-6)
}
