// Package decode turns ghost recording text into a resolved ghost.Ghost.
//
// The input is "{header}${frame}|{frame}|...". The header is five
// '/'-separated fields. Each frame is a run of single-letter labels
// followed by their values, with values relative to the previous frame.
package decode

import (
	"math"
	"strconv"
	"strings"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

const (
	streamSeparator = "$"
	frameSeparator  = "|"
)

type options struct {
	checkDuration     bool
	durationTolerance float64
}

// Option configures Decode
type Option func(*options)

// WithDurationCheck makes Decode fail when the header's total time and the
// summed frame times differ by more than tolerance seconds.
func WithDurationCheck(tolerance float64) Option {
	return func(o *options) {
		o.checkDuration = true
		o.durationTolerance = tolerance
	}
}

// Decode parses a complete ghost recording. It returns either a fully
// decoded ghost or an error; there is no partial result.
func Decode(input string, opts ...Option) (*ghost.Ghost, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	input = strings.TrimRight(input, "\r\n")
	header, stream, ok := strings.Cut(input, streamSeparator)
	if !ok {
		return nil, &DecodeError{Frame: HeaderFrame, Err: ErrMissingFrameStream}
	}

	g := ghost.New()
	if err := parseHeader(header, g); err != nil {
		return nil, err
	}

	if err := decodeFrames(g, strings.Split(stream, frameSeparator)); err != nil {
		return nil, err
	}

	if o.checkDuration {
		if diff := math.Abs(g.TotalTime - g.FrameTimeSum()); diff > o.durationTolerance {
			return nil, &DecodeError{
				Frame: HeaderFrame,
				Label: "total time",
				Value: strconv.FormatFloat(g.FrameTimeSum(), 'f', -1, 64),
				Err:   ErrDurationMismatch,
			}
		}
	}

	return g, nil
}

func decodeFrames(g *ghost.Ghost, tokens []string) error {
	var prev *ghost.Frame
	for i, token := range tokens {
		f, err := decodeFrame(i, token, prev)
		if err != nil {
			return err
		}
		if err := g.Append(f); err != nil {
			return err
		}
		prev = &g.Frames[len(g.Frames)-1]
	}
	return nil
}
