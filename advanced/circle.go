package advanced

import (
	"fmt"
	"math"

	"github.com/osuushi/covercircle/geom"
	opt "github.com/repeale/fp-go/option"
)

// A closed disk. The squared radius is the canonical form, so that membership
// tests never need a square root.
type Circle struct {
	Center   geom.Point
	SqRadius float64
}

// The "no data" circle, with a NaN center and zero radius. It covers nothing.
func EmptyCircle() Circle {
	return Circle{Center: geom.Point{X: math.NaN(), Y: math.NaN()}}
}

// The circle with the two points as a diameter. The center is computed as a
// plain coordinate average so that swapping the points gives a bit-identical
// result.
func FromTwoPoints(p1, p2 geom.Point) Circle {
	return Circle{
		Center:   geom.Point{X: (p1.X + p2.X) * 0.5, Y: (p1.Y + p2.Y) * 0.5},
		SqRadius: 0.25 * p2.Sub(p1).SqMag(),
	}
}

// The circumscribed circle of three points.
//
// The points must not be collinear. That is not checked: the denominator
// vanishes and the result is garbage. A cheap guard is to check that no two
// point circle of a pair covers the third, since for collinear points one of
// them always does.
func FromThreePoints(p1, p2, p3 geom.Point) Circle {
	var origin geom.Point
	denominator := 2 * (p1.X*(p2.Y-p3.Y) -
		p1.Y*(p2.X-p3.X) +
		p2.X*p3.Y -
		p2.Y*p3.X)

	m1 := p1.Sub(origin).SqMag()
	m2 := p2.Sub(origin).SqMag()
	m3 := p3.Sub(origin).SqMag()
	center := geom.Point{
		X: (m1*(p2.Y-p3.Y) + m2*(p3.Y-p1.Y) + m3*(p1.Y-p2.Y)) / denominator,
		Y: (m1*(p3.X-p2.X) + m2*(p1.X-p3.X) + m3*(p2.X-p1.X)) / denominator,
	}
	return Circle{Center: center, SqRadius: p1.SqDistanceTo(center)}
}

// Inclusive disk test.
func (c Circle) Covers(point geom.Point) bool {
	return point.SqDistanceTo(c.Center) <= c.SqRadius
}

func (c Circle) Radius() float64 {
	return math.Sqrt(c.SqRadius)
}

func (c Circle) IsEmpty() bool {
	return math.IsNaN(c.Center.X) || math.IsNaN(c.Center.Y)
}

func (c Circle) String() string {
	if c.IsEmpty() {
		return "Circle{empty}"
	}
	return fmt.Sprintf("Circle{center: %v, radius: %v}", c.Center, c.Radius())
}

// Derive an enclosing circle from the hull's vertices.
//
// This is a heuristic, not an exact minimum enclosing circle. It takes the
// middle of the hull's bounding box as an approximate center, then builds the
// circle through the two vertices farthest from it, and switches to the
// circle through the three farthest if the third isn't already covered. It is
// exact for the symmetric cases that matter here (regular polygons, segments)
// and can be too small for lopsided hulls.
func CoverCircle(h *Hull) Circle {
	switch h.Degree() {
	case 0:
		return EmptyCircle()
	case 1:
		return Circle{Center: h.Vertex(0)}
	}

	center := boundingBoxCenter(h)
	i1 := farthestVertex(h, center, -1, -1)
	i2 := farthestVertex(h, center, i1, -1)
	p1, p2 := h.Vertex(i1), h.Vertex(i2)
	circle := FromTwoPoints(p1, p2)

	i3 := farthestVertex(h, center, i1, i2)
	if i3 >= 0 {
		// p3 outside the diameter circle means the three can't be collinear
		if p3 := h.Vertex(i3); !circle.Covers(p3) {
			return FromThreePoints(p1, p2, p3)
		}
	}
	return circle
}

var (
	east  = geom.Vector{X: 1}
	west  = geom.Vector{X: -1}
	north = geom.Vector{Y: 1}
	south = geom.Vector{Y: -1}
)

func boundingBoxCenter(h *Hull) geom.Point {
	maxX := supportVertex(h, east).X
	minX := supportVertex(h, west).X
	maxY := supportVertex(h, north).Y
	minY := supportVertex(h, south).Y
	return geom.Point{X: (minX + maxX) * 0.5, Y: (minY + maxY) * 0.5}
}

// FindBest can come up empty on a nearly degenerate hull, where rounding in
// the edge vectors flips a sign. Fall back to a plain scan in that case.
func supportVertex(h *Hull, direction geom.Vector) geom.Point {
	if best := h.FindBest(direction); opt.IsSome(best) {
		return best.Value.Position()
	}
	var origin geom.Point
	bestIndex := 0
	bestValue := math.Inf(-1)
	for i, vertex := range h.vertices {
		if value := vertex.Sub(origin).Dot(direction); value > bestValue {
			bestIndex, bestValue = i, value
		}
	}
	return h.vertices[bestIndex]
}

// Index of the vertex farthest from the point, skipping up to two indices
// (pass -1 to skip nothing). Ties go to the lowest index. Returns -1 if every
// vertex was skipped.
func farthestVertex(h *Hull, from geom.Point, skipA, skipB int) int {
	result := -1
	var resultDistance float64
	for i, vertex := range h.vertices {
		if i == skipA || i == skipB {
			continue
		}
		distance := vertex.SqDistanceTo(from)
		if result < 0 || distance > resultDistance {
			result, resultDistance = i, distance
		}
	}
	return result
}

// The exact minimum enclosing circle of the hull's vertices, which is also the
// minimum enclosing circle of everything the hull covers.
//
// This is the deterministic incremental construction: walk the vertices, and
// whenever one falls outside the current circle, rebuild the circle with that
// vertex on its boundary. It's cubic in the worst case, but hulls are small and
// the order is fixed, so results are reproducible. Hull vertices are strictly
// convex, so the three point case never sees collinear points.
func MinimumCoverCircle(h *Hull) Circle {
	vertices := h.vertices
	if len(vertices) == 0 {
		return EmptyCircle()
	}

	circle := Circle{Center: vertices[0]}
	for i := 1; i < len(vertices); i++ {
		p := vertices[i]
		if circle.Covers(p) {
			continue
		}
		circle = Circle{Center: p}
		for j := 0; j < i; j++ {
			q := vertices[j]
			if circle.Covers(q) {
				continue
			}
			circle = FromTwoPoints(p, q)
			for k := 0; k < j; k++ {
				if r := vertices[k]; !circle.Covers(r) {
					circle = FromThreePoints(p, q, r)
				}
			}
		}
	}
	return circle
}
