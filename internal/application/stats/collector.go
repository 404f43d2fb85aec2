// Package stats derives summary statistics from a decoded ghost.
//
// A Collector sees every frame once, in order, and keeps its own state.
// Several collectors share one pass over the frames via Run.
package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// Collector aggregates frames into a summary
type Collector interface {
	// Collect consumes the next frame in playback order
	Collect(f ghost.Frame)
	// Summary reports the result for all frames seen so far
	Summary() Summary
}

// Metric is one named value in a summary
type Metric struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
	Unit  string  `json:"unit,omitempty" yaml:"unit,omitempty"`
}

// Summary is the output of a collector
type Summary struct {
	Collector string   `json:"collector" yaml:"collector"`
	Metrics   []Metric `json:"metrics" yaml:"metrics"`
}

// String renders the summary as indented "name: value unit" lines
func (s Summary) String() string {
	var sb strings.Builder
	sb.WriteString(s.Collector)
	sb.WriteString(":\n")
	for _, m := range s.Metrics {
		fmt.Fprintf(&sb, "  %s: %s", m.Name, strconv.FormatFloat(m.Value, 'g', -1, 64))
		if m.Unit != "" {
			sb.WriteString(" " + m.Unit)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MultiCollector fans frames out to several collectors in registration order
type MultiCollector struct {
	cs []Collector
}

// Multi creates a MultiCollector. Nil collectors are dropped.
func Multi(cs ...Collector) *MultiCollector {
	out := &MultiCollector{cs: make([]Collector, 0, len(cs))}
	for _, c := range cs {
		if c != nil {
			out.cs = append(out.cs, c)
		}
	}
	return out
}

// Collect forwards f to every collector
func (m *MultiCollector) Collect(f ghost.Frame) {
	for _, c := range m.cs {
		c.Collect(f)
	}
}

// Summaries returns one summary per collector, in registration order
func (m *MultiCollector) Summaries() []Summary {
	out := make([]Summary, len(m.cs))
	for i, c := range m.cs {
		out[i] = c.Summary()
	}
	return out
}

// Run drives all collectors over frames in a single pass
func Run(frames []ghost.Frame, cs ...Collector) []Summary {
	m := Multi(cs...)
	for _, f := range frames {
		m.Collect(f)
	}
	return m.Summaries()
}

// Collector names accepted by ByName
const (
	NameFrameTime = "frametime"
	NameVelocity  = "velocity"
	NameAirborne  = "airborne"
	NameEvents    = "events"
)

// DefaultNames lists the collectors of a standard report, in report order
var DefaultNames = []string{NameFrameTime, NameVelocity, NameAirborne, NameEvents}

// Default returns fresh instances of the standard collectors
func Default() []Collector {
	cs, _ := ByName(DefaultNames)
	return cs
}

// ByName returns fresh collectors for the given names, in the given order
func ByName(names []string) ([]Collector, error) {
	cs := make([]Collector, 0, len(names))
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case NameFrameTime:
			cs = append(cs, NewFrameTimeCollector())
		case NameVelocity:
			cs = append(cs, NewVelocityCollector())
		case NameAirborne:
			cs = append(cs, NewAirborneCollector())
		case NameEvents:
			cs = append(cs, NewEventCollector())
		default:
			return nil, fmt.Errorf("unknown collector %q", name)
		}
	}
	return cs, nil
}
