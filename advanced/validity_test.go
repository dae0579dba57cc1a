package advanced

// This contains no actual tests. It is just a helper for checking that a cloud
// is internally consistent.

import (
	"sort"
	"testing"

	"github.com/osuushi/covercircle/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a cloud is valid. The rules are:
// 1. The window size equals the hull degree plus the interior size.
// 2. The window, as a multiset, is exactly the hull vertices plus the interior.
// 3. The hull is strictly convex and counterclockwise.
// 4. No window point is outside the hull.
// 5. The hull vertices are exactly the vertices of the convex hull of the
//    window, as computed from scratch, and no two share a location.
// 6. The minimum cover circle covers every window point, up to rounding.
func AssertValidCloud(t *testing.T, cloud *Cloud) {
	t.Helper()
	defer func() {
		if t.Failed() {
			t.Logf("cloud: %s", cloud.hull.String())
			cloud.dbgDraw(20)
		}
	}()

	require.NotPanics(t, func() { cloud.Len() }, "window, hull and interior out of step")

	counts := make(map[geom.Key]int)
	for _, p := range cloud.window {
		counts[p.Key()]++
	}
	for _, p := range cloud.hull.vertices {
		counts[p.Key()]--
	}
	for _, p := range cloud.interior.Points() {
		counts[p.Key()]--
	}
	for key, count := range counts {
		require.Zero(t, count, "point %v is miscounted", key.Point())
	}

	hull := cloud.hull.vertices
	if len(hull) >= 3 {
		for i := range hull {
			a := hull[i]
			b := hull[CircularIndex(i+1, len(hull))]
			c := hull[CircularIndex(i+2, len(hull))]
			require.Greater(t, b.Sub(a).Cross(c.Sub(b)), 0.0, "hull turns clockwise or straight at %v", b)
		}
	}

	for _, p := range cloud.window {
		require.True(t, cloud.hull.Covers(p), "window point %v is outside the hull", p)
		if len(hull) >= 3 {
			for i := range hull {
				assert.NotEqual(t, geom.Exterior, cloud.hull.fwdEdge(i).Classify(p))
			}
		}
	}

	expected := locationSet(referenceHull(cloud.window))
	actual := locationSet(hull)
	require.Len(t, actual, len(hull), "two hull vertices share a location")
	require.Equal(t, expected, actual, "hull vertices differ from the convex hull of the window")

	circle := cloud.MinimumCoverCircle()
	for _, p := range cloud.window {
		require.LessOrEqual(t, p.DistanceTo(circle.Center), circle.Radius()*(1+1e-9)+1e-12, "%v is not covered by %v", p, circle)
	}
}

// Keys of the points' locations, with -0 folded into 0. Copies of a point that
// differ only in the sign of a zero land on the same key, so it doesn't matter
// which copy ended up on the hull.
func locationSet(points []geom.Point) map[geom.Key]struct{} {
	set := make(map[geom.Key]struct{})
	for _, p := range points {
		if p.X == 0 {
			p.X = 0
		}
		if p.Y == 0 {
			p.Y = 0
		}
		set[p.Key()] = struct{}{}
	}
	return set
}

// Andrew's monotone chain, for checking against. Collinear points are dropped,
// so the result is the strictly convex hull, counterclockwise.
func referenceHull(input []geom.Point) []geom.Point {
	points := append([]geom.Point(nil), input...)
	n := len(points)
	if n <= 1 {
		return points
	}

	sort.Slice(points, func(i, j int) bool {
		if points[i].X == points[j].X {
			return points[i].Y < points[j].Y
		}
		return points[i].X < points[j].X
	})

	turn := func(o, a, b geom.Point) float64 {
		return a.Sub(o).Cross(b.Sub(o))
	}

	var lower []geom.Point
	for _, p := range points {
		for len(lower) >= 2 && turn(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []geom.Point
	for i := n - 1; i >= 0; i-- {
		p := points[i]
		for len(upper) >= 2 && turn(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
