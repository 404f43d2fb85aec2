package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaybackState_String(t *testing.T) {
	tests := []struct {
		state    PlaybackState
		expected string
	}{
		{StateLoading, "Loading"},
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateFinished, "Finished"},
		{PlaybackState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestPlaybackStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, PlaybackState(0), StateLoading)
	assert.Equal(t, PlaybackState(1), StatePlaying)
	assert.Equal(t, PlaybackState(2), StatePaused)
	assert.Equal(t, PlaybackState(3), StateFinished)
}
