package geom

import (
	"fmt"
	"math"

	"github.com/quasilyte/gmath"
)

type Vector struct {
	X float64
	Y float64
}

func (v Vector) Add(other Vector) Vector {
	return vectorOf(v.vec().Add(other.vec()))
}

func (v Vector) Sub(other Vector) Vector {
	return vectorOf(v.vec().Sub(other.vec()))
}

func (v Vector) Mulf(scalar float64) Vector {
	return vectorOf(v.vec().Mulf(scalar))
}

func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Z component of the 3D cross product, treating both vectors as lying in the
// XY plane. Positive when other is counterclockwise from v.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

func (v Vector) SqMag() float64 {
	return v.Dot(v)
}

// The left perpendicular, i.e. v rotated a quarter turn counterclockwise.
func (v Vector) Normal() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Rotate counterclockwise by an angle in radians.
func (v Vector) Rotated(angle float64) Vector {
	return vectorOf(v.vec().Rotated(gmath.Rad(angle)))
}

// Rotate counterclockwise by a fraction of a full turn, so 0.25 is a quarter
// turn.
func (v Vector) RotatedTurns(turns float64) Vector {
	return v.Rotated(turns * 2 * math.Pi)
}

func (v Vector) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}

func (v Vector) vec() gmath.Vec {
	return gmath.Vec{X: v.X, Y: v.Y}
}

func vectorOf(v gmath.Vec) Vector {
	return Vector{X: v.X, Y: v.Y}
}
