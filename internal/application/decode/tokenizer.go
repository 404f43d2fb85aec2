package decode

import (
	"unicode"
	"unicode/utf8"
)

// Field labels as written by the recorder
const (
	labelTimeDelta = 'a'
	labelPosDelta  = 'b'
	labelFacing    = 'c'
	labelPitch     = 'd'
	labelEvent     = 'e'
	labelShot      = 'f'
	labelGrounded  = 'g'
	labelZipline   = 'h'
	labelStomping  = 'i'
	labelBulletID  = 'j'
	labelBulletHit = 'k'
	firstLabel     = labelTimeDelta
	lastLabel      = labelBulletHit
	labelCount     = lastLabel - firstLabel + 1
)

// field is one labeled value inside a frame token
type field struct {
	label rune
	value string
}

// tokenize splits a frame token into labeled fields in one pass.
//
// Values are not delimited: a value runs from its label up to the next
// letter or the end of the token. This only works because no value ever
// contains a letter.
func tokenize(frame int, token string) ([]field, error) {
	var (
		fields []field
		seen   [labelCount]bool
		start  = -1
		label  rune
	)

	flush := func(end int) {
		if start >= 0 {
			fields = append(fields, field{label: label, value: token[start:end]})
		}
	}

	for i := 0; i < len(token); {
		r, size := utf8.DecodeRuneInString(token[i:])
		if !unicode.IsLetter(r) {
			if start < 0 {
				return nil, &DecodeError{Frame: frame, Value: token, Err: ErrOrphanValue}
			}
			i += size
			continue
		}

		if r < firstLabel || r > lastLabel {
			return nil, &DecodeError{Frame: frame, Label: string(r), Value: token, Err: ErrUnknownLabel}
		}
		if seen[r-firstLabel] {
			return nil, &DecodeError{Frame: frame, Label: string(r), Value: token, Err: ErrDuplicateLabel}
		}
		seen[r-firstLabel] = true

		flush(i)
		label = r
		i += size
		start = i
	}
	flush(len(token))

	return fields, nil
}
