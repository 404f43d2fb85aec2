package decode

import (
	"errors"
	"fmt"
)

var (
	ErrMissingFrameStream = errors.New("missing '$' between header and frames")
	ErrHeaderFieldCount   = errors.New("header must have exactly 5 fields")
	ErrHeaderSentinel     = errors.New("first header field must be '2'")
	ErrHeaderTickRate     = errors.New("fifth header field must be '0.03333'")
	ErrHeaderField        = errors.New("invalid header field")

	ErrUnknownLabel   = errors.New("unknown field label")
	ErrDuplicateLabel = errors.New("field label repeated in frame")
	ErrOrphanValue    = errors.New("value before first field label")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrInvalidVector  = errors.New("invalid vector")

	ErrEventCode      = errors.New("unknown trigger event code")
	ErrBulletType     = errors.New("invalid bullet type")
	ErrDiscardAbility = errors.New("invalid discard ability")

	ErrDurationMismatch = errors.New("header total time does not match frame times")
)

// HeaderFrame is the Frame value of errors raised while decoding the header
const HeaderFrame = -1

// DecodeError locates a decode failure in the input
type DecodeError struct {
	Frame int    // frame index, HeaderFrame for the header
	Label string // field label or header field name, may be empty
	Value string // offending text, may be empty
	Err   error
}

func (e *DecodeError) Error() string {
	where := "header"
	if e.Frame != HeaderFrame {
		where = fmt.Sprintf("frame %d", e.Frame)
	}
	if e.Label != "" {
		where += " field " + e.Label
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: %v [%q]", where, e.Err, e.Value)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
