package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfilerTickReportsOncePerInterval(t *testing.T) {
	var out bytes.Buffer
	logger := log.NewWithOptions(&out, log.Options{Level: log.InfoLevel})

	now := time.Unix(0, 0)
	p := NewProfiler(
		WithLogger(logger),
		WithInterval(time.Second),
		withClock(func() time.Time { return now }),
	)

	for i := 0; i < 9; i++ {
		now = now.Add(100 * time.Millisecond)
		assert.False(t, p.Tick(), "tick %d is inside the interval", i)
	}
	assert.Empty(t, out.String())

	now = now.Add(100 * time.Millisecond)
	require.True(t, p.Tick())
	assert.Contains(t, out.String(), "frame stats")
	assert.Contains(t, out.String(), "fps=10")

	out.Reset()
	now = now.Add(time.Second / 2)
	assert.False(t, p.Tick(), "counter restarts after a report")
}

func TestWithIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	assert.Equal(t, time.Second, p.updateInterval)

	p = NewProfiler(WithInterval(250 * time.Millisecond))
	assert.Equal(t, 250*time.Millisecond, p.updateInterval)
}
