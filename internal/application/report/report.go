// Package report renders decoded ghost statistics for people and tools.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/application/stats"
	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// Format selects the report encoding
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by Render for unsupported formats
var ErrUnknownFormat = errors.New("unknown report format")

// Report is everything printed for one ghost
type Report struct {
	Level         string          `json:"level" yaml:"level"`
	ForcedGhostID int64           `json:"forcedGhostId" yaml:"forcedGhostId"`
	HeaderTime    float64         `json:"headerTime" yaml:"headerTime"`
	FrameTimeSum  float64         `json:"frameTimeSum" yaml:"frameTimeSum"`
	Frames        int             `json:"frames" yaml:"frames"`
	Summaries     []stats.Summary `json:"summaries" yaml:"summaries"`
}

// New builds a report for g from collector summaries
func New(g *ghost.Ghost, summaries []stats.Summary) Report {
	return Report{
		Level:         g.LevelName,
		ForcedGhostID: g.ForcedGhostID,
		HeaderTime:    g.TotalTime,
		FrameTimeSum:  g.FrameTimeSum(),
		Frames:        g.Len(),
		Summaries:     summaries,
	}
}

// Render writes r to w in the given format
func Render(w io.Writer, r Report, format Format) error {
	switch format {
	case FormatText:
		return renderText(w, r)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, r Report) error {
	p := message.NewPrinter(language.English)

	if _, err := p.Fprintf(w, "Ghost stats for %s:\n", r.Level); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Ghost time / total frame time: %s / %s\n", formatFloat(r.HeaderTime), formatFloat(r.FrameTimeSum)); err != nil {
		return err
	}
	if _, err := p.Fprintf(w, "Frames: %d\n", r.Frames); err != nil {
		return err
	}

	for _, s := range r.Summaries {
		if _, err := p.Fprintf(w, "\n%s:\n", s.Collector); err != nil {
			return err
		}
		for _, m := range s.Metrics {
			line := "  " + m.Name + ": " + formatValue(p, m.Value)
			if m.Unit != "" {
				line += " " + m.Unit
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatValue prints whole numbers with digit grouping and everything else as is
func formatValue(p *message.Printer, v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return p.Sprintf("%d", int64(v))
	}
	return formatFloat(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
