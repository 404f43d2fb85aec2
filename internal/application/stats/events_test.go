package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

func TestEventCollector(t *testing.T) {
	events := []ghost.TriggerEvent{
		ghost.NoEvent{},
		ghost.JumpEvent{},
		ghost.LandEvent{},
		ghost.BulletEvent{Type: ghost.BulletRocket},
		ghost.BulletEvent{Type: ghost.BulletRocket},
		ghost.BulletHitEvent{},
		ghost.DiscardEvent{Ability: ghost.DiscardDash},
		ghost.JumpEvent{},
	}

	c := NewEventCollector()
	for i, ev := range events {
		f := ghost.NewFrame(i)
		f.Event = ev
		c.Collect(f)
	}
	// zero-value frames carry no event at all
	c.Collect(ghost.Frame{Index: len(events)})

	assert.Equal(t, 2, c.Jumps())
	assert.Equal(t, 1, c.Lands())
	assert.Equal(t, 1, c.BulletHits())
	assert.Equal(t, 2, c.Bullets(ghost.BulletRocket))
	assert.Equal(t, 0, c.Bullets(ghost.BulletSwipe))
	assert.Equal(t, 1, c.Discards(ghost.DiscardDash))

	s := c.Summary()
	n, ok := metric(s, "shots Rocket")
	require.True(t, ok)
	assert.Equal(t, 2.0, n)
	_, ok = metric(s, "shots Swipe")
	assert.False(t, ok, "zero counts are omitted")
	n, ok = metric(s, "discards Dash")
	require.True(t, ok)
	assert.Equal(t, 1.0, n)
}
