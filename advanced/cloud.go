package advanced

import (
	"github.com/osuushi/covercircle/dbg"
	"github.com/osuushi/covercircle/geom"
	opt "github.com/repeale/fp-go/option"
	"github.com/rs/zerolog/log"
)

// A sliding window of points whose enclosing circle is kept up to date.
//
// Points come in at the back with Push and leave from the front with Pop. The
// cloud keeps the convex hull of the window, and files every point that isn't
// a hull vertex in the interior set. Because of that, every window point is
// accounted for exactly once:
//
//	len(window) == hull.Degree() + interior.Len()
//
// The zero value is an empty cloud. A Cloud is not safe for concurrent use.
type Cloud struct {
	hull     Hull
	interior interiorSet
	window   []geom.Point
}

func NewCloud() *Cloud {
	return &Cloud{}
}

func (c *Cloud) Push(point geom.Point) {
	c.window = append(c.window, point)
	evicted := c.hull.Insert(point)
	for _, p := range evicted {
		c.interior.Add(p)
	}
	if len(evicted) > 0 && evicted[0].Identical(point) {
		return
	}
	if event := log.Debug(); event.Enabled() {
		event.
			Str("cloud", dbg.Name(c)).
			Str("point", point.String()).
			Int("evicted", len(evicted)).
			Msg("hull grew")
	}
}

// Push each point in order.
func (c *Cloud) Extend(points ...geom.Point) {
	for _, p := range points {
		c.Push(p)
	}
}

// Remove the oldest point, and return it. Returns None if the window is empty.
func (c *Cloud) Pop() opt.Option[geom.Point] {
	if len(c.window) == 0 {
		return opt.None[geom.Point]()
	}
	point := c.window[0]
	c.window = c.window[1:]

	if c.interior.Remove(point) {
		return opt.Some(point)
	}

	found := c.hull.Find(point)
	if opt.IsNone(found) {
		fatalf("popped point %v is neither interior nor a hull vertex", point)
	}
	vertex := found.Value
	before := vertex.RevVertex().Position()
	after := vertex.FwdVertex().Position()
	c.hull.Remove(vertex.Index())
	c.repair(before, after, point)
	return opt.Some(point)
}

// After a vertex is removed, the only interior points that can have become
// hull vertices are the ones in the triangle it made with its old neighbors.
// Pull those out of the interior and feed them back into the hull. Whatever
// the hull doesn't keep goes back into the interior.
func (c *Cloud) repair(before, after, removed geom.Point) {
	var lost Hull
	lost.Insert(before)
	lost.Insert(after)
	lost.Insert(removed)

	exposed := c.interior.RemoveWhere(lost.Covers)
	for _, p := range exposed {
		for _, evicted := range c.hull.Insert(p) {
			c.interior.Add(evicted)
		}
	}

	if event := log.Debug(); event.Enabled() {
		event.
			Str("cloud", dbg.Name(c)).
			Str("removed", removed.String()).
			Int("rescanned", len(exposed)).
			Str("hull", c.hull.DbgName()).
			Int("degree", c.hull.Degree()).
			Msg("repaired hull")
	}
}

// The window size. Panics with a CoverError if the window, hull and interior
// have fallen out of step.
func (c *Cloud) Len() int {
	if expected := c.hull.Degree() + c.interior.Len(); len(c.window) != expected {
		fatalf("window holds %d points, but hull and interior hold %d", len(c.window), expected)
	}
	return len(c.window)
}

func (c *Cloud) CoverCircle() Circle {
	return CoverCircle(&c.hull)
}

// The exact minimum enclosing circle of the window. See MinimumCoverCircle.
func (c *Cloud) MinimumCoverCircle() Circle {
	return MinimumCoverCircle(&c.hull)
}

func (c *Cloud) CoverRadius() float64 {
	if c.hull.Degree() == 0 {
		return 0
	}
	return c.CoverCircle().Radius()
}

// Copy of the hull vertices, counterclockwise.
func (c *Cloud) Hull() []geom.Point {
	return c.hull.Vertices()
}

// Copy of the interior points.
func (c *Cloud) Interior() []geom.Point {
	return c.interior.Points()
}

// Copy of the window, oldest first.
func (c *Cloud) Window() []geom.Point {
	return append([]geom.Point(nil), c.window...)
}
