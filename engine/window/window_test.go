package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/oxy-terrain/common"
)

func TestSizeLimitsClamp(t *testing.T) {
	limits := sizeLimits{minWidth: 600, minHeight: 200, maxWidth: 1600, maxHeight: 1200}

	tests := []struct {
		name         string
		inW, inH     int
		wantW, wantH int
	}{
		{"inside", 1280, 720, 1280, 720},
		{"too small", 100, 100, 600, 200},
		{"too large", 4000, 3000, 1600, 1200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := limits.clamp(tt.inW, tt.inH)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}

	w, h := sizeLimits{}.clamp(5000, 4000)
	assert.Equal(t, 5000, w, "zero maximum is unbounded")
	assert.Equal(t, 4000, h)
}

func TestHandleKey(t *testing.T) {
	var down, up []uint32
	w := &engineWindow{
		onKeyDown: func(k uint32) { down = append(down, k) },
		onKeyUp:   func(k uint32) { up = append(up, k) },
	}

	assert.False(t, w.handleKey(common.KeyW, true, false))
	assert.False(t, w.handleKey(common.KeyW, true, false), "repeat")
	assert.False(t, w.handleKey(common.KeyW, false, true))
	assert.Equal(t, []uint32{common.KeyW, common.KeyW}, down)
	assert.Equal(t, []uint32{common.KeyW}, up)

	assert.True(t, w.handleKey(common.KeyEsc, true, false))
	assert.False(t, w.handleKey(common.KeyEsc, false, true))
	assert.Len(t, down, 2, "escape is not forwarded")
	assert.Len(t, up, 1)

	bare := &engineWindow{}
	assert.False(t, bare.handleKey(common.KeyA, true, false))
}

func TestHandleMouseButton(t *testing.T) {
	var got []bool
	w := &engineWindow{onDrag: func(d bool) { got = append(got, d) }}

	w.handleMouseButton(true, true)
	w.handleMouseButton(false, true)
	w.handleMouseButton(true, false)
	assert.Equal(t, []bool{true, false}, got)
}

func TestHandleFramebufferSize(t *testing.T) {
	var gotW, gotH int
	w := &engineWindow{onResize: func(width, height int) { gotW, gotH = width, height }}

	w.handleFramebufferSize(800, 600)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.Equal(t, 800, gotW)
	assert.Equal(t, 600, gotH)
}
