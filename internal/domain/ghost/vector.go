package ghost

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrTooManyComponents is returned when a vector string has more than three fields
var ErrTooManyComponents = errors.New("too many vector components")

// Vector3 is a position or position delta in world units
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// ParseVector3 parses "x,y,z". Missing trailing components stay zero.
//
// A component that is not a number is read as 0 instead of failing. The
// recorder writes these fields itself and the game accepts the same lossy
// reading, so a garbled component decodes as a valid zero.
func ParseVector3(s string) (Vector3, error) {
	var v Vector3
	for i, field := range strings.Split(s, ",") {
		val := lenientFloat(field)
		switch i {
		case 0:
			v.X = val
		case 1:
			v.Y = val
		case 2:
			v.Z = val
		default:
			return Vector3{}, ErrTooManyComponents
		}
	}
	return v, nil
}

func lenientFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Add returns the component-wise sum
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns the component-wise difference v - o
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// HorizontalLen returns the length of the (x, z) projection
func (v Vector3) HorizontalLen() float64 {
	return math.Hypot(v.X, v.Z)
}
