package decode

import (
	"strconv"

	"github.com/PandorasFox/neon-white-ghost-parser/internal/domain/ghost"
)

// timeScale converts the recorded tick count to seconds
const timeScale = 10000.0

// anglePlaceholder is written by the recorder for tiny negative angles
const anglePlaceholder = "-"

// decodeFrame resolves one frame token on top of the previous frame
func decodeFrame(index int, token string, prev *ghost.Frame) (ghost.Frame, error) {
	f := ghost.NewFrame(index)
	if prev != nil {
		f.CarryFrom(*prev)
	}

	fields, err := tokenize(index, token)
	if err != nil {
		return ghost.Frame{}, err
	}

	for _, fl := range fields {
		if err := applyField(&f, fl); err != nil {
			return ghost.Frame{}, &DecodeError{Frame: index, Label: string(fl.label), Value: fl.value, Err: err}
		}
	}

	f.Accumulate()
	return f, nil
}

func applyField(f *ghost.Frame, fl field) error {
	switch fl.label {
	case labelTimeDelta:
		ticks, err := strconv.ParseInt(fl.value, 10, 64)
		if err != nil {
			return ErrInvalidNumber
		}
		f.FrameTime = float64(ticks) / timeScale
	case labelPosDelta:
		v, err := ghost.ParseVector3(fl.value)
		if err != nil {
			return ErrInvalidVector
		}
		f.PosChange = v
	case labelFacing:
		a, err := parseAngle(fl.value)
		if err != nil {
			return err
		}
		f.FacingAngleChange = a
	case labelPitch:
		a, err := parseAngle(fl.value)
		if err != nil {
			return err
		}
		f.CameraPitchChange = a
	case labelEvent:
		code, err := strconv.ParseInt(fl.value, 10, 64)
		if err != nil {
			return ErrInvalidNumber
		}
		ev, err := classifyEvent(code)
		if err != nil {
			return err
		}
		f.Event = ev
	case labelShot:
		f.PlayShotAnimation = true
	case labelGrounded:
		f.Grounded = true
	case labelZipline:
		f.Ziplining = true
	case labelStomping:
		f.Stomping = true
	case labelBulletID:
		id, err := strconv.ParseInt(fl.value, 10, 64)
		if err != nil {
			return ErrInvalidNumber
		}
		f.BulletID = id
	case labelBulletHit:
		v, err := ghost.ParseVector3(fl.value)
		if err != nil {
			return ErrInvalidVector
		}
		f.BulletHitPos = v
	default:
		// tokenize only emits labels in a..k
		panic("decode: unhandled field label " + strconv.QuoteRune(fl.label))
	}
	return nil
}

func parseAngle(s string) (float64, error) {
	if s == anglePlaceholder {
		return 0, nil
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidNumber
	}
	return a, nil
}
