package ghost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector3(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Vector3
	}{
		{"full", "1,2,3", Vector3{1, 2, 3}},
		{"missing z", "1,2", Vector3{1, 2, 0}},
		{"single", "4.5", Vector3{4.5, 0, 0}},
		{"negative", "-1.25,0,-3", Vector3{-1.25, 0, -3}},
		{"non-numeric x", "x,2,3", Vector3{0, 2, 3}},
		{"empty component", "1,,3", Vector3{1, 0, 3}},
		{"empty string", "", Vector3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVector3(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestParseVector3_TooManyComponents(t *testing.T) {
	_, err := ParseVector3("1,2,3,4")
	assert.ErrorIs(t, err, ErrTooManyComponents)
}

func TestVector3_AddSub(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{0.5, -2, 10}

	assert.Equal(t, Vector3{1.5, 0, 13}, a.Add(b))
	assert.Equal(t, Vector3{0.5, 4, -7}, a.Sub(b))
	assert.Equal(t, a, a.Add(b).Sub(b))
}

func TestVector3_HorizontalLen(t *testing.T) {
	v := Vector3{X: 3, Y: 100, Z: 4}
	assert.InDelta(t, 5.0, v.HorizontalLen(), 1e-12, "y must not contribute")
}
