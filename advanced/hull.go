package advanced

import (
	"github.com/osuushi/covercircle/geom"
	opt "github.com/repeale/fp-go/option"
)

// A convex hull maintained one point at a time, stored as a counterclockwise
// cyclic sequence of vertices.
//
// The hull is a mechanism, not a policy. Insert reports which points stopped
// being vertices, and Remove takes out exactly one vertex without looking for
// points that the removal exposes. Keeping track of those points is the job of
// the owner (see Cloud).
//
// Degenerate hulls are legal: empty, a single point, and a segment of two
// points, whose two "edges" are the same segment in opposite directions.
// Every other hull is a strictly convex polygon. No three consecutive vertices
// are collinear, because insertion evicts boundary vertices along with
// interior ones.
type Hull struct {
	vertices []geom.Point
	// Bumped by every mutation so that outstanding cursors can detect that
	// their indices no longer mean anything.
	generation uint64
}

func (h *Hull) Degree() int {
	return len(h.vertices)
}

func (h *Hull) Vertex(index int) geom.Point {
	return h.vertices[index]
}

// Copy of the vertices in hull order.
func (h *Hull) Vertices() []geom.Point {
	return append([]geom.Point(nil), h.vertices...)
}

// A cursor at vertex 0, for callers that just need somewhere to start walking.
func (h *Hull) SomeVertex() opt.Option[VertexCursor] {
	if len(h.vertices) == 0 {
		return opt.None[VertexCursor]()
	}
	return opt.Some(h.cursor(0))
}

// Find the vertex bit-identical to the point.
func (h *Hull) Find(point geom.Point) opt.Option[VertexCursor] {
	key := point.Key()
	for i, vertex := range h.vertices {
		if vertex.Key() == key {
			return opt.Some(h.cursor(i))
		}
	}
	return opt.None[VertexCursor]()
}

// Find the supporting vertex along a direction: the vertex whose forward edge
// does not head further along the direction, and whose reverse edge does not
// head back against it. Ties (an edge perpendicular to the direction) go to
// whichever qualifying vertex comes first in hull order.
func (h *Hull) FindBest(direction geom.Vector) opt.Option[VertexCursor] {
	for i := range h.vertices {
		cursor := h.cursor(i)
		if cursor.FwdEdge().Direction().Dot(direction) <= 0 &&
			cursor.RevEdge().Direction().Dot(direction) >= 0 {
			return opt.Some(cursor)
		}
	}
	return opt.None[VertexCursor]()
}

// Is the point inside or on the boundary of the hull?
//
// For polygons this is the edge test: no forward edge classifies the point as
// exterior. The degenerate hulls need their own rules, since every point on
// the infinite line through a segment is on the boundary of both its edges.
func (h *Hull) Covers(point geom.Point) bool {
	switch len(h.vertices) {
	case 0:
		return false
	case 1:
		return h.vertices[0] == point
	case 2:
		return h.onSegment(point)
	}
	for i := range h.vertices {
		if h.fwdEdge(i).Classify(point) == geom.Exterior {
			return false
		}
	}
	return true
}

// Add a point to the hull, and return the points that are no longer vertices.
//
// If the point is outside, it becomes a vertex, and the chain of vertices it
// hides (possibly empty) is evicted. If it is covered, or a duplicate of an
// existing vertex, the hull doesn't change and the point itself is returned,
// since it is the one point that didn't make it onto the hull. Either way,
// the degree plus the number of returned points is one more than the
// degree before the call.
func (h *Hull) Insert(point geom.Point) (evicted []geom.Point) {
	// Find any edge that can see the point
	visibleEdge := -1
	for i := range h.vertices {
		if h.fwdEdge(i).Classify(point) == geom.Exterior {
			visibleEdge = i
			break
		}
	}
	if visibleEdge < 0 {
		return h.absorb(point)
	}

	n := len(h.vertices)
	// Walk outward in both directions until the edges stop seeing the point.
	// Edges that merely have the point on their line count as seeing it, so
	// that a vertex made collinear by the new point gets evicted.
	v0 := visibleEdge
	for steps := 0; h.revEdge(v0).Classify(point) != geom.Interior; steps++ {
		if steps >= n {
			fatalf("no tangent found walking back from edge %d for point %v", visibleEdge, point)
		}
		v0 = CircularIndex(v0-1, n)
	}
	v1 := CircularIndex(visibleEdge+1, n)
	for steps := 0; h.fwdEdge(v1).Classify(point) != geom.Interior; steps++ {
		if steps >= n {
			fatalf("no tangent found walking forward from edge %d for point %v", visibleEdge, point)
		}
		v1 = CircularIndex(v1+1, n)
	}
	if v0 == v1 {
		fatalf("tangent vertices for %v collapsed to vertex %d", point, v0)
	}

	return h.splice(v0, v1, point)
}

// Remove exactly one vertex, shifting later indices down. This does not repair
// anything; see the type docs.
func (h *Hull) Remove(index int) geom.Point {
	if index < 0 || index >= len(h.vertices) {
		fatalf("cannot remove vertex %d from hull of degree %d", index, len(h.vertices))
	}
	removed := h.vertices[index]
	h.vertices = append(h.vertices[:index], h.vertices[index+1:]...)
	h.generation++
	return removed
}

// Handle a point that no edge can see.
func (h *Hull) absorb(point geom.Point) []geom.Point {
	if opt.IsSome(h.Find(point)) {
		return []geom.Point{point}
	}

	switch len(h.vertices) {
	case 1:
		// Same place, different bits (0 and -0). A zero length segment would
		// classify everything as Boundary, so the copy is interior instead.
		if h.vertices[0] == point {
			return []geom.Point{point}
		}
		fallthrough
	case 0:
		// Degenerate hulls have to grow to a segment before edges mean anything
		h.vertices = append(h.vertices, point)
		h.generation++
		return nil
	case 2:
		return h.extendSegment(point)
	}
	return []geom.Point{point}
}

// A point that no edge of a segment can see is on the segment's line. If it
// is past one of the ends, it replaces that end.
func (h *Hull) extendSegment(point geom.Point) []geom.Point {
	a, b := h.vertices[0], h.vertices[1]
	ab := b.Sub(a)
	t := point.Sub(a).Dot(ab)
	switch {
	case ab.SqMag() == 0:
		fatalf("segment hull %v has zero length", h)
	case t < 0: // Beyond a
		h.vertices[0] = point
		h.generation++
		return []geom.Point{a}
	case t > ab.SqMag(): // Beyond b
		h.vertices[1] = point
		h.generation++
		return []geom.Point{b}
	}
	return []geom.Point{point}
}

// Replace the vertices strictly between the tangent vertices v0 and v1 with
// the point. If the run wraps around the end of the buffer, the survivors
// start at v1.
func (h *Hull) splice(v0, v1 int, point geom.Point) []geom.Point {
	var evicted, kept []geom.Point
	if v0 < v1 {
		evicted = append(evicted, h.vertices[v0+1:v1]...)
		kept = make([]geom.Point, 0, len(h.vertices)-len(evicted)+1)
		kept = append(kept, h.vertices[:v0+1]...)
		kept = append(kept, point)
		kept = append(kept, h.vertices[v1:]...)
	} else {
		evicted = append(evicted, h.vertices[v0+1:]...)
		evicted = append(evicted, h.vertices[:v1]...)
		kept = make([]geom.Point, 0, len(h.vertices)-len(evicted)+1)
		kept = append(kept, h.vertices[v1:v0+1]...)
		kept = append(kept, point)
	}
	h.vertices = kept
	h.generation++
	return evicted
}

func (h *Hull) onSegment(point geom.Point) bool {
	edge := h.fwdEdge(0)
	ab := edge.Direction()
	if ab.SqMag() == 0 {
		return edge.From == point
	}
	if edge.Classify(point) != geom.Boundary {
		return false
	}
	t := point.Sub(edge.From).Dot(ab)
	return t >= 0 && t <= ab.SqMag()
}

func (h *Hull) cursor(index int) VertexCursor {
	return VertexCursor{hull: h, index: index, generation: h.generation}
}

func (h *Hull) fwdEdge(index int) geom.Edge {
	n := len(h.vertices)
	return geom.Edge{From: h.vertices[index], To: h.vertices[CircularIndex(index+1, n)]}
}

func (h *Hull) revEdge(index int) geom.Edge {
	n := len(h.vertices)
	return geom.Edge{From: h.vertices[CircularIndex(index-1, n)], To: h.vertices[index]}
}
