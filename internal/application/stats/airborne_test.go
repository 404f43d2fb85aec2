package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

func TestAirborneCollector(t *testing.T) {
	grounded := []bool{true, true, false, false, true, false, true}
	frames := buildFrames([]float64{0, 0.5, 0.5, 0.5, 0.5, 0.25, 0.5}, nil)
	for i := range frames {
		frames[i].Grounded = grounded[i]
	}

	c := NewAirborneCollector()
	for _, f := range frames {
		c.Collect(f)
	}

	assert.Equal(t, 2, c.Takeoffs())
	assert.Equal(t, 1.25, c.AirTime())
	assert.Equal(t, 1.0, c.LongestAirTime())
}

func TestAirborneCollector_StartsAirborne(t *testing.T) {
	frames := []ghost.Frame{ghost.NewFrame(0), ghost.NewFrame(1)}

	c := NewAirborneCollector()
	for _, f := range frames {
		c.Collect(f)
	}

	assert.Equal(t, 0, c.Takeoffs(), "spawning in the air is not a takeoff")
}
