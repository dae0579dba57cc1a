package advanced

import (
	"fmt"

	"github.com/osuushi/covercircle/geom"
)

// A handle on one hull vertex, for walking the hull and its edges.
//
// A cursor is just the hull plus an index, and the vertex is looked up fresh
// on every access. Any Insert or Remove on the hull shifts indices, so a
// cursor must not be kept across a mutating call. Using one afterwards panics
// with a CoverError.
type VertexCursor struct {
	hull       *Hull
	index      int
	generation uint64
}

func (c VertexCursor) Index() int {
	c.check()
	return c.index
}

func (c VertexCursor) Position() geom.Point {
	c.check()
	return c.hull.vertices[c.index]
}

func (c VertexCursor) FwdVertex() VertexCursor {
	c.check()
	c.index = CircularIndex(c.index+1, len(c.hull.vertices))
	return c
}

func (c VertexCursor) RevVertex() VertexCursor {
	c.check()
	c.index = CircularIndex(c.index-1, len(c.hull.vertices))
	return c
}

// The edge leaving this vertex.
func (c VertexCursor) FwdEdge() geom.Edge {
	c.check()
	return c.hull.fwdEdge(c.index)
}

// The edge arriving at this vertex.
func (c VertexCursor) RevEdge() geom.Edge {
	c.check()
	return c.hull.revEdge(c.index)
}

func (c VertexCursor) String() string {
	return fmt.Sprintf("vertex %d of %s", c.index, c.hull.DbgName())
}

func (c VertexCursor) check() {
	if c.hull == nil {
		fatalf("use of zero vertex cursor")
	}
	if c.generation != c.hull.generation {
		fatalf("stale vertex cursor at index %d: hull was modified", c.index)
	}
}
