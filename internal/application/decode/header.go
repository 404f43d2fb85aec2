package decode

import (
	"strconv"
	"strings"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

const (
	headerSentinel = "2"
	headerFields   = 5
)

// parseHeader reads "2/{forced id}/{level}/{total time}/0.03333" into g
func parseHeader(segment string, g *ghost.Ghost) error {
	fields := strings.Split(segment, "/")
	if len(fields) != headerFields {
		return &DecodeError{Frame: HeaderFrame, Value: segment, Err: ErrHeaderFieldCount}
	}

	if fields[0] != headerSentinel {
		return &DecodeError{Frame: HeaderFrame, Label: "version", Value: fields[0], Err: ErrHeaderSentinel}
	}

	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return &DecodeError{Frame: HeaderFrame, Label: "forced id", Value: fields[1], Err: ErrHeaderField}
	}

	total, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return &DecodeError{Frame: HeaderFrame, Label: "total time", Value: fields[3], Err: ErrHeaderField}
	}

	if fields[4] != ghost.NominalFrameTime {
		return &DecodeError{Frame: HeaderFrame, Label: "tick", Value: fields[4], Err: ErrHeaderTickRate}
	}

	g.ForcedGhostID = id
	g.LevelName = fields[2]
	g.TotalTime = total
	return nil
}
