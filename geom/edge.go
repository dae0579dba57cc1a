package geom

import "fmt"

// Side is the classification of a point against a directed edge.
type Side int

const (
	// Exterior means the point is to the right of the edge. For a
	// counterclockwise polygon, that's outside.
	Exterior Side = iota - 1
	// Boundary means the point is on the line through the edge (not
	// necessarily between its endpoints).
	Boundary
	// Interior means the point is to the left of the edge.
	Interior
)

var sideLabels = [3]string{"Exterior", "Boundary", "Interior"}

func (s Side) String() string {
	if s > Interior || s < Exterior {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideLabels[int(s+1)]
}

type Edge struct {
	From, To Point
}

func (e Edge) Direction() Vector {
	return e.To.Sub(e.From)
}

// Classify a point by the sign of the dot product between the edge's left
// normal and the vector from the edge's start to the point.
//
// A zero length edge (which shows up on single vertex hulls) classifies every
// point as Boundary.
func (e Edge) Classify(p Point) Side {
	d := e.Direction().Normal().Dot(p.Sub(e.From))
	switch {
	case d > 0:
		return Interior
	case d < 0:
		return Exterior
	}
	return Boundary
}

func (e Edge) String() string {
	return fmt.Sprintf("%v→%v", e.From, e.To)
}
