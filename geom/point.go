// Package geom is the small 2D kernel the cover circle machinery is built on.
//
// Positions (Point) and displacements (Vector) are distinct types so that
// nonsensical operations, like adding two positions, don't type check.
package geom

import (
	"fmt"
	"math"

	"github.com/quasilyte/gmath"
)

type Point struct {
	X float64
	Y float64
}

// The vector from other to p.
func (p Point) Sub(other Point) Vector {
	return vectorOf(p.vec().Sub(other.vec()))
}

func (p Point) Add(v Vector) Point {
	return pointOf(p.vec().Add(v.vec()))
}

func (p Point) Minus(v Vector) Point {
	return pointOf(p.vec().Sub(v.vec()))
}

func (p Point) DistanceTo(other Point) float64 {
	return p.vec().DistanceTo(other.vec())
}

// Squared distance. Comparisons on the hot paths use this to avoid the square
// root.
func (p Point) SqDistanceTo(other Point) float64 {
	return p.Sub(other).SqMag()
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Note that this is bit equality, not tolerance based. 0.0 and -0.0 are
// different points, and NaN coordinates equal themselves.
func (p Point) Identical(other Point) bool {
	return p.Key() == other.Key()
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (p Point) vec() gmath.Vec {
	return gmath.Vec{X: p.X, Y: p.Y}
}

func pointOf(v gmath.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}
