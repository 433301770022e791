package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{input: "flythrough", expected: ModeFlythrough},
		{input: "FPS", expected: ModeFPS},
		{input: "record", expected: ModeRecordPath},
		{input: "custom-path", expected: ModeCustomPath},
		{input: " free ", expected: ModeFreeCustom},
		{input: "prerecorded", expected: ModePrerecordedPath},
		{input: "orbit", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, m)
		})
	}
}

func TestModeHelpers(t *testing.T) {
	for m := ModeFlythrough; m <= ModePrerecordedPath; m++ {
		assert.True(t, m.Valid())
		parsed, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.Contains(t, motionModels, m)
	}

	assert.False(t, Mode(-1).Valid())
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.True(t, ModeCustomPath.Replays())
	assert.True(t, ModePrerecordedPath.Replays())
	assert.False(t, ModeFlythrough.Replays())
}
