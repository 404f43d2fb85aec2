package stats

import (
	"fmt"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// EventCollector counts trigger events by kind
type EventCollector struct {
	jumps    int
	lands    int
	hits     int
	bullets  map[ghost.BulletType]int
	discards map[ghost.DiscardAbility]int
}

// NewEventCollector creates an empty event collector
func NewEventCollector() *EventCollector {
	return &EventCollector{
		bullets:  make(map[ghost.BulletType]int),
		discards: make(map[ghost.DiscardAbility]int),
	}
}

// Collect implements Collector
func (c *EventCollector) Collect(f ghost.Frame) {
	switch ev := f.Event.(type) {
	case nil, ghost.NoEvent:
	case ghost.JumpEvent:
		c.jumps++
	case ghost.LandEvent:
		c.lands++
	case ghost.BulletEvent:
		c.bullets[ev.Type]++
	case ghost.DiscardEvent:
		c.discards[ev.Ability]++
	case ghost.BulletHitEvent:
		c.hits++
	default:
		panic(fmt.Sprintf("stats: unhandled trigger event %T", ev))
	}
}

// Jumps returns the number of jump events
func (c *EventCollector) Jumps() int { return c.jumps }

// Lands returns the number of land events
func (c *EventCollector) Lands() int { return c.lands }

// BulletHits returns the number of bullet hit events
func (c *EventCollector) BulletHits() int { return c.hits }

// Bullets returns the number of shots of the given type
func (c *EventCollector) Bullets(t ghost.BulletType) int { return c.bullets[t] }

// Discards returns the number of discards of the given ability
func (c *EventCollector) Discards(d ghost.DiscardAbility) int { return c.discards[d] }

// Summary implements Collector. Bullet and discard lines only appear when nonzero.
func (c *EventCollector) Summary() Summary {
	metrics := []Metric{
		{Name: "jump events", Value: float64(c.jumps)},
		{Name: "land events", Value: float64(c.lands)},
		{Name: "bullet hits", Value: float64(c.hits)},
	}
	for _, bt := range ghost.BulletTypes {
		if n := c.bullets[bt]; n > 0 {
			metrics = append(metrics, Metric{Name: "shots " + bt.String(), Value: float64(n)})
		}
	}
	for _, d := range ghost.DiscardAbilities {
		if n := c.discards[d]; n > 0 {
			metrics = append(metrics, Metric{Name: "discards " + d.String(), Value: float64(n)})
		}
	}
	return Summary{Collector: "Events", Metrics: metrics}
}
